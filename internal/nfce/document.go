package nfce

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// followingElements returns the elements matched by selector that appear
// after ref in document order, the way a reader scans the page top to
// bottom. The NFC-e page relates fields positionally (the tax id is "the
// next div.text after the merchant container"), so sibling traversal is not
// enough; descendants and cousins all count.
func followingElements(doc *goquery.Document, ref *html.Node, selector string) *goquery.Selection {
	order := documentOrder(doc)
	refIdx, ok := order[ref]
	if !ok {
		return doc.Find(selector).Slice(0, 0)
	}
	return doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		idx, ok := order[s.Nodes[0]]
		return ok && idx > refIdx
	})
}

// documentOrder assigns each node its pre-order traversal index.
func documentOrder(doc *goquery.Document) map[*html.Node]int {
	order := make(map[*html.Node]int)
	idx := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		order[n] = idx
		idx++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return order
}
