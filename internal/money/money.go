// Package money holds the fixed-point rupiah arithmetic used by the sale
// write path. Amounts are integer rupiah; no float math anywhere.
package money

// The fixed sales tax rate is 1.5% (15 per mille). Not configurable.
const (
	taxNumerator   = 15
	taxDenominator = 1000
)

// Line returns quantity * unitPrice.
func Line(quantity int, unitPrice int64) int64 {
	return int64(quantity) * unitPrice
}

// Tax returns round(subtotal * 0.015), half up, in integer math.
func Tax(subtotal int64) int64 {
	return (subtotal*taxNumerator + taxDenominator/2) / taxDenominator
}

// Total returns subtotal + tax - discount.
func Total(subtotal, tax, discount int64) int64 {
	return subtotal + tax - discount
}
