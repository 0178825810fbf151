package invoicegen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-generator/pkg/invoicegen"
)

func TestGenerate(t *testing.T) {
	inv, data, err := invoicegen.Generate(invoicegen.Draft{
		From:  invoicegen.Party{Name: "Acme", Email: "a@acme.com"},
		To:    invoicegen.Party{Name: "Bob", Email: "b@b.com"},
		Items: []invoicegen.Item{{Description: "Widget", Quantity: 3, UnitPrice: 10}},
	})
	require.NoError(t, err)
	require.NotNil(t, inv)

	assert.Equal(t, 30.0, inv.Subtotal)
	assert.Equal(t, 30.0, inv.Total)
	assert.Equal(t, invoicegen.StatusDraft, inv.Status)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.True(t, strings.HasPrefix(invoicegen.Filename(inv), "invoice-INV-"))
}

func TestGenerate_ValidationFailure(t *testing.T) {
	inv, data, err := invoicegen.Generate(invoicegen.Draft{})
	require.Error(t, err)
	assert.Nil(t, data)
	require.NotNil(t, inv)

	verr, ok := invoicegen.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, verr.Violations, 3)
}

func TestNormalize(t *testing.T) {
	inv := invoicegen.Normalize(invoicegen.Draft{
		From:     invoicegen.Party{Name: "Acme", Email: "a@acme.com"},
		To:       invoicegen.Party{Name: "Bob", Email: "b@b.com"},
		Items:    []invoicegen.Item{{Description: "Widget", Quantity: 2, UnitPrice: 5}},
		Currency: "INR",
	})

	// INR defaults to 18% GST when no rate is supplied.
	assert.Equal(t, 18.0, inv.TaxRate)
	assert.Equal(t, 10.0, inv.Subtotal)
	assert.InDelta(t, 1.8, inv.TaxAmount, 1e-9)
	assert.InDelta(t, 11.8, inv.Total, 1e-9)
}

func TestLookupTax(t *testing.T) {
	assert.Equal(t, "GST", invoicegen.LookupTax("AUD").TaxName)
	assert.Equal(t, "Tax", invoicegen.LookupTax("???").TaxName)
}
