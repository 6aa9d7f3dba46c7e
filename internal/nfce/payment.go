package nfce

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractPayment pulls the payment method and the total amount paid. The
// method value sits in an unlabeled label right after the label.txtMax2
// caption inside div#linhaForma; the total lives in span.totalNumb inside
// the div#linhaTotal that follows the payment row. A page without the
// payment row yields the zero Payment; a payment row with broken innards is
// a fault.
func ExtractPayment(doc *goquery.Document) (Payment, error) {
	row := doc.Find("div#linhaForma").First()
	if row.Length() == 0 {
		return Payment{}, nil
	}

	caption := row.Find("label.txtMax2").First()
	if caption.Length() == 0 {
		return Payment{}, fmt.Errorf("payment row: method caption missing")
	}
	value := followingElements(doc, caption.Nodes[0], "label").First()
	if value.Length() == 0 {
		return Payment{}, fmt.Errorf("payment row: method value missing")
	}

	totalLine := followingElements(doc, row.Nodes[0], "div#linhaTotal").First()
	if totalLine.Length() == 0 {
		return Payment{}, fmt.Errorf("payment row: total line missing")
	}
	total := totalLine.Find("span.totalNumb").First()
	if total.Length() == 0 {
		return Payment{}, fmt.Errorf("payment row: total amount missing")
	}

	return Payment{
		Method:    strings.TrimSpace(value.Text()),
		TotalPaid: strings.TrimSpace(total.Text()),
	}, nil
}
