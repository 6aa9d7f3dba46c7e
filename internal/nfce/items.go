package nfce

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrMalformedRow reports an item row that does not follow the fixed marker
// grammar. One bad row fails the whole extraction: partial item lists are
// worse than an explicit failure once the data feeds product registration.
var ErrMalformedRow = errors.New("malformed invoice item row")

// Markers of the concatenated product-info cell, in the order the page
// emits them: "<name>(<code>)Qtde.:<qty>UN:<unit>Vl. Unit.:<price>".
const (
	markerCode      = "("
	markerQuantity  = "Qtde.:"
	markerUnit      = "UN:"
	markerUnitPrice = "Vl. Unit.:"
	markerTotal     = "Vl. Total"
)

// ExtractItems returns every purchased item, in document order. Item rows
// are the tr elements whose id starts with "Item" (Item1, Item2, ...).
func ExtractItems(doc *goquery.Document) ([]LineItem, error) {
	rows := doc.Find(`tr[id^="Item"]`)
	items := make([]LineItem, 0, rows.Length())

	var rowErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 2 {
			rowErr = fmt.Errorf("%w %d: want 2 cells, got %d", ErrMalformedRow, i+1, cells.Length())
			return false
		}

		item, err := parseProductInfo(strings.TrimSpace(cells.Eq(0).Text()))
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i+1, err)
			return false
		}

		// The second cell renders as "Vl. Total<amount>"; drop the literal
		// label wherever it occurs, not just as a prefix.
		item.TotalPrice = strings.ReplaceAll(strings.TrimSpace(cells.Eq(1).Text()), markerTotal, "")

		items = append(items, item)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return items, nil
}

// parseProductInfo splits the first cell's concatenated text by the literal
// markers. The product code parenthesis is optional (a missing "(" leaves
// the whole text as the name); the quantity, unit and unit-price markers
// are mandatory.
func parseProductInfo(info string) (LineItem, error) {
	var item LineItem

	name, _, _ := strings.Cut(info, markerCode)
	item.ProductName = strings.TrimSpace(name)

	rest, ok := cutAfter(info, markerQuantity)
	if !ok {
		return item, fmt.Errorf("%w: missing marker %q", ErrMalformedRow, markerQuantity)
	}
	item.Quantity = textBefore(rest, markerUnit)

	rest, ok = cutAfter(info, markerUnit)
	if !ok {
		return item, fmt.Errorf("%w: missing marker %q", ErrMalformedRow, markerUnit)
	}
	item.Unit = textBefore(rest, markerUnitPrice)

	rest, ok = cutAfter(info, markerUnitPrice)
	if !ok {
		return item, fmt.Errorf("%w: missing marker %q", ErrMalformedRow, markerUnitPrice)
	}
	item.UnitPrice = rest

	return item, nil
}

// cutAfter returns the text after the first occurrence of marker.
func cutAfter(s, marker string) (string, bool) {
	_, after, ok := strings.Cut(s, marker)
	return after, ok
}

// textBefore returns the text before the first occurrence of marker, or all
// of s when the marker is absent.
func textBefore(s, marker string) string {
	before, _, _ := strings.Cut(s, marker)
	return before
}
