package model

import "github.com/shopspring/decimal"

// ClampedFee sums the cost components and subtracts the rebate.
// The result is never negative.
func ClampedFee(rebate decimal.Decimal, costs ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(c)
	}
	fee := total.Sub(rebate)
	if fee.IsNegative() {
		return decimal.Zero
	}
	return fee
}

// AmountOrZero parses a decimal amount, treating unparsable input as zero.
func AmountOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
