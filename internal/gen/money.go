package gen

import "github.com/shopspring/decimal"

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
// Every derived amount in the dataset (subtotal, tax, total, restocking fee,
// refund) goes through this one helper so the arithmetic invariants hold by
// construction rather than by post-hoc reconciliation.
func Round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}

// Sub2 subtracts b from a in decimal space and returns the exact 2-decimal
// result. Used where a difference must reconstitute its minuend exactly,
// e.g. refund_amount = subtotal - restocking_fee.
func Sub2(a, b float64) float64 {
	out, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).Float64()
	return out
}
