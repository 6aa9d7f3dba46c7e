package nfce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItems(t *testing.T) {
	doc := mustDoc(t, `<table id="tabResult">
		<tr id="Item1">
			<td>Arroz Tipo 1 5kg(7891234500001)Qtde.:1UN:PCVl. Unit.:25,90</td>
			<td>Vl. Total25,90</td>
		</tr>
		<tr id="Item2">
			<td>Feijao Preto(7891234500002)Qtde.:2UN:PCVl. Unit.:8,75</td>
			<td>Vl. Total17,50</td>
		</tr>
	</table>`)

	items, err := ExtractItems(doc)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, LineItem{
		ProductName: "Arroz Tipo 1 5kg",
		Quantity:    "1",
		Unit:        "PC",
		UnitPrice:   "25,90",
		TotalPrice:  "25,90",
	}, items[0])
	assert.Equal(t, "Feijao Preto", items[1].ProductName)
	assert.Equal(t, "2", items[1].Quantity)
	assert.Equal(t, "17,50", items[1].TotalPrice)
}

func TestExtractItemsPreservesDocumentOrder(t *testing.T) {
	// Prefix match on the row id, and rows keep page order even past Item9.
	doc := mustDoc(t, `<table>
		<tr id="Item1"><td>A(1)Qtde.:1UN:PCVl. Unit.:1,00</td><td>Vl. Total1,00</td></tr>
		<tr id="cabecalho"><td>not an item</td><td>-</td></tr>
		<tr id="Item2"><td>B(2)Qtde.:1UN:PCVl. Unit.:2,00</td><td>Vl. Total2,00</td></tr>
		<tr id="Item10"><td>C(3)Qtde.:1UN:PCVl. Unit.:3,00</td><td>Vl. Total3,00</td></tr>
	</table>`)

	items, err := ExtractItems(doc)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].ProductName)
	assert.Equal(t, "B", items[1].ProductName)
	assert.Equal(t, "C", items[2].ProductName)
}

func TestExtractItemsNoRows(t *testing.T) {
	items, err := ExtractItems(mustDoc(t, `<table><tr id="header"><td>x</td></tr></table>`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExtractItemsMissingCodeKeepsFullName(t *testing.T) {
	doc := mustDoc(t, `<table>
		<tr id="Item1"><td>Banana Prata Qtde.:3UN:KGVl. Unit.:4,99</td><td>Vl. Total14,97</td></tr>
	</table>`)

	items, err := ExtractItems(doc)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Banana Prata Qtde.:3UN:KGVl. Unit.:4,99", items[0].ProductName)
	assert.Equal(t, "3", items[0].Quantity)
	assert.Equal(t, "KG", items[0].Unit)
	assert.Equal(t, "4,99", items[0].UnitPrice)
}

func TestExtractItemsMalformedRowFailsWholeExtraction(t *testing.T) {
	cases := map[string]string{
		"missing quantity marker": `<table>
			<tr id="Item1"><td>OK(1)Qtde.:1UN:PCVl. Unit.:1,00</td><td>Vl. Total1,00</td></tr>
			<tr id="Item2"><td>Widget(SKU1)UN:PCVl. Unit.:5,00</td><td>Vl. Total5,00</td></tr>
		</table>`,
		"missing unit marker": `<table>
			<tr id="Item1"><td>Widget(SKU1)Qtde.:2Vl. Unit.:5,00</td><td>Vl. Total10,00</td></tr>
		</table>`,
		"missing unit price marker": `<table>
			<tr id="Item1"><td>Widget(SKU1)Qtde.:2UN:PC</td><td>Vl. Total10,00</td></tr>
		</table>`,
		"missing total cell": `<table>
			<tr id="Item1"><td>Widget(SKU1)Qtde.:2UN:PCVl. Unit.:5,00</td></tr>
		</table>`,
	}

	for name, html := range cases {
		t.Run(name, func(t *testing.T) {
			items, err := ExtractItems(mustDoc(t, html))
			require.ErrorIs(t, err, ErrMalformedRow)
			assert.Nil(t, items)
		})
	}
}
