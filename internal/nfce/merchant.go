package nfce

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractMerchant pulls the issuing merchant's name, tax id and address from
// the page. The merchant block is the div#u20 container; the tax id and
// address live in the generic div.text elements that follow it in document
// order. A page without the container yields the zero Merchant, never an
// error.
func ExtractMerchant(doc *goquery.Document) Merchant {
	container := doc.Find("div#u20").First()
	if container.Length() == 0 {
		return Merchant{}
	}

	var m Merchant
	m.Name = stripControlChars(strings.TrimSpace(container.Text()))

	// First following div.text is "CNPJ: <number>"; the page has no
	// labeled tax-id field, only this positional convention.
	texts := followingElements(doc, container.Nodes[0], "div.text")
	if texts.Length() > 0 {
		raw := strings.TrimSpace(texts.First().Text())
		if i := strings.LastIndex(raw, ":"); i >= 0 {
			raw = raw[i+1:]
		}
		m.TaxID = strings.TrimSpace(raw)
	}

	// Everything after the tax id line is address fragments.
	if texts.Length() > 1 {
		parts := make([]string, 0, texts.Length()-1)
		texts.Slice(1, texts.Length()).Each(func(_ int, s *goquery.Selection) {
			parts = append(parts, strings.TrimSpace(s.Text()))
		})
		m.Address = stripControlChars(strings.Join(parts, ", "))
	}

	return m
}

// stripControlChars removes the raw newline and tab characters the page
// injects into rendered text.
func stripControlChars(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "\t", "")
}
