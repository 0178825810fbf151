package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/invoice-generator/internal/money"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "30.00", money.Amount(30))
	assert.Equal(t, "10.50", money.Amount(10.5))
	assert.Equal(t, "0.00", money.Amount(0))
	assert.Equal(t, "2.00", money.Amount(2.0000000001))
	assert.Equal(t, "-4.25", money.Amount(-4.25))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "USD 30.00", money.Format("USD", 30))
	assert.Equal(t, "EUR 99.99", money.Format("EUR", 99.99))
}

func TestFormatNegated(t *testing.T) {
	assert.Equal(t, "-USD 5.00", money.FormatNegated("USD", 5))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "3", money.Quantity(3))
	assert.Equal(t, "2.5", money.Quantity(2.5))
	assert.Equal(t, "0.125", money.Quantity(0.125))
}

func TestRate(t *testing.T) {
	assert.Equal(t, "8", money.Rate(8))
	assert.Equal(t, "8.1", money.Rate(8.1))
}
