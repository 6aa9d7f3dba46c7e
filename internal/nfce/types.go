// Package nfce extracts structured purchase data from Brazilian NFC-e
// (nota fiscal de consumidor eletrônica) pages reachable through the QR-code
// URL printed on retail receipts. The page is div/span/label soup with
// synthetic ids, so every extractor leans on the only stable structural cues
// the tax authority gives us: reserved ids and generic css classes in a
// fixed document order.
package nfce

// Merchant identifies the issuing store. Any field may be empty when the
// expected markup is absent; that is normal page variance, not a fault.
type Merchant struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
}

// Payment carries the payment method and the total amount paid. TotalPaid is
// the raw page text (comma decimal separator), not a parsed number.
type Payment struct {
	Method    string `json:"method,omitempty"`
	TotalPaid string `json:"total_paid,omitempty"`
}

// LineItem is one purchased product. All numeric-looking fields are raw text
// slices from the page; locale-aware parsing belongs to the caller.
type LineItem struct {
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

// Invoice is the assembled record for one invoice page. Items preserve the
// document order of the Item rows. The value is immutable once built.
type Invoice struct {
	Merchant Merchant   `json:"merchant"`
	Items    []LineItem `json:"items"`
	Payment  Payment    `json:"payment"`
}
