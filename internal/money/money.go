// Package money wraps shopspring/decimal with the few operations receipt
// amounts need. Prices travel through the pipeline as strings; this is
// where they are parsed and summed exactly.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero.
var Zero = decimal.Zero

// FromString parses a decimal amount from its string form.
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// SumStrings parses and sums a list of amount strings. Any unparsable
// entry fails the whole sum.
func SumStrings(values []string) (decimal.Decimal, error) {
	sum := Zero
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Zero, err
		}
		sum = sum.Add(d)
	}
	return sum, nil
}

// Format renders an amount with exactly two fraction digits, the shape
// every reconciled price uses.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
