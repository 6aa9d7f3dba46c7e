package nfce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paymentHTML = `
	<div id="linhaForma">
		<label class="tx txtMax2">Forma de pagamento:</label>
		<label class="tx">Cartão de Débito</label>
	</div>
	<div id="linhaTotal">
		<label class="txtMax">Valor a pagar R$:</label>
		<span class="totalNumb txtMax">34,50</span>
	</div>`

func TestExtractPayment(t *testing.T) {
	doc := mustDoc(t, paymentHTML)

	p, err := ExtractPayment(doc)
	require.NoError(t, err)
	assert.Equal(t, "Cartão de Débito", p.Method)
	assert.Equal(t, "34,50", p.TotalPaid)
}

func TestExtractPaymentRowAbsent(t *testing.T) {
	doc := mustDoc(t, `<div id="u20">LOJA</div>`)

	p, err := ExtractPayment(doc)
	require.NoError(t, err)
	assert.Equal(t, Payment{}, p)
}

func TestExtractPaymentBrokenRow(t *testing.T) {
	// The row exists but its innards do not follow the expected shape;
	// unlike a missing row, that is a fault.
	cases := map[string]string{
		"no method caption": `<div id="linhaForma"><label>Dinheiro</label></div>`,
		"no method value":   `<div id="linhaForma"><label class="txtMax2">Forma de pagamento:</label></div>`,
		"no total line": `<div id="linhaForma">
			<label class="txtMax2">Forma de pagamento:</label><label>Dinheiro</label></div>`,
		"no total amount": `<div id="linhaForma">
			<label class="txtMax2">Forma de pagamento:</label><label>Dinheiro</label></div>
			<div id="linhaTotal"><span class="txtMax">34,50</span></div>`,
	}

	for name, html := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractPayment(mustDoc(t, html))
			assert.Error(t, err)
		})
	}
}
