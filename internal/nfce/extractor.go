package nfce

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// DocumentFetcher retrieves and parses an invoice page. Tests substitute it
// to run the pipeline without the network.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Extractor is the pipeline entry point: one fetch, then the three block
// extractors over the same read-only document.
type Extractor struct {
	fetcher DocumentFetcher
}

// NewExtractor creates an extractor backed by the given fetcher.
func NewExtractor(fetcher DocumentFetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract fetches the invoice page at url and assembles the full record.
// A fetch failure short-circuits before any extractor runs. A fault in any
// block extractor fails the whole call; no partial record is ever returned.
func (e *Extractor) Extract(ctx context.Context, url string) (*Invoice, error) {
	doc, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ExtractDocument(doc)
}

// ExtractDocument runs the merchant, payment and item extractors against an
// already fetched document. Extraction is a pure function of the document:
// the same bytes always yield the same Invoice.
func ExtractDocument(doc *goquery.Document) (*Invoice, error) {
	merchant := ExtractMerchant(doc)

	payment, err := ExtractPayment(doc)
	if err != nil {
		return nil, fmt.Errorf("extract payment: %w", err)
	}

	items, err := ExtractItems(doc)
	if err != nil {
		return nil, fmt.Errorf("extract items: %w", err)
	}

	return &Invoice{
		Merchant: merchant,
		Items:    items,
		Payment:  payment,
	}, nil
}
