// Package money formats monetary amounts for documents and API output.
//
// Arithmetic on invoice amounts is plain float64 throughout the calculator;
// decimals are only involved at the display boundary, where every amount is
// rendered with exactly two decimal places.
package money

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount renders a bare amount with two decimal places, e.g. "30.00".
func Amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Format renders an amount with its currency code, e.g. "USD 30.00".
func Format(code string, v float64) string {
	return fmt.Sprintf("%s %s", code, Amount(v))
}

// FormatNegated renders a deduction, e.g. "-USD 5.00".
func FormatNegated(code string, v float64) string {
	return fmt.Sprintf("-%s %s", code, Amount(v))
}

// Quantity renders a quantity with no trailing zeros, e.g. "3" or "2.5".
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rate renders a percentage with no trailing zeros, e.g. "8" or "8.1".
func Rate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
