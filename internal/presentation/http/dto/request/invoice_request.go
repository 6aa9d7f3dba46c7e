package request

// ImportInvoiceRequest carries the QR-code URL of the invoice page
type ImportInvoiceRequest struct {
	NotaURL string `json:"nota_url" binding:"required,url"`
}
