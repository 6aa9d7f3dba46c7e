package nfce

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/openfiscal/notafiscal-api/internal/config"
)

// ErrDocumentUnavailable is returned for every way a fetch can fail:
// transport faults, timeouts and non-200 statuses all collapse into it.
// Callers only need "document unavailable", not which hop broke.
var ErrDocumentUnavailable = errors.New("invoice document unavailable")

// Fetcher retrieves invoice pages from the tax authority.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

// NewFetcher creates a fetcher with the configured timeout and the
// browser-identifying User-Agent. The tax authority serves a different (or
// no) page to clients that do not look like a browser.
func NewFetcher(cfg config.NFCeConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		userAgent:  cfg.UserAgent,
	}
}

// Fetch downloads the invoice page at url and parses it into a navigable
// document. The context cancels the request when the caller goes away.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrDocumentUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}
	return doc, nil
}
