// Package money provides the currency arithmetic for invoice totals.
//
// Amounts are shopspring decimals. Line values are kept at full precision;
// rounding to two decimals happens only at the invoice-total level and when
// rendering amounts, using round-half-up as EN 16931 validators expect.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// FromString parses a decimal amount from a string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Round2 rounds to two decimal places, half up. Decimal's Round is
// half-away-from-zero, which is half-up for the non-negative amounts an
// invoice carries.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// VAT computes the tax amount for a net amount and a VAT percentage,
// rounded to two decimals: round2(net * percent / 100).
func VAT(net, percent decimal.Decimal) decimal.Decimal {
	return net.Mul(percent).Div(hundred).Round(2)
}

// Sum sums a slice of decimals at full precision
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// Format renders an amount with exactly two decimal places, e.g. "1485.00".
// This is the only textual form amounts take in the document.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
