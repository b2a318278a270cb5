// Package stock classifies stock levels against their configured minimums.
// The same rules drive the inventory badge, the low-stock endpoint, and the
// assistant's restock answers.
package stock

import "github.com/shopspring/decimal"

type Status int

const (
	OutOfStock Status = iota
	LowStock
	InStock
)

func (s Status) String() string {
	switch s {
	case OutOfStock:
		return "out-of-stock"
	case LowStock:
		return "low-stock"
	default:
		return "in-stock"
	}
}

// Classify maps a current stock level and minimum threshold to a status.
// Zero stock is always out-of-stock, regardless of the minimum. Negative
// stock is a caller precondition violation.
func Classify(current, min decimal.Decimal) Status {
	if current.IsZero() {
		return OutOfStock
	}
	if current.Sign() > 0 && current.Cmp(min) <= 0 {
		return LowStock
	}
	return InStock
}

// ClassifyInt is Classify for whole-unit stock counts (menu items).
func ClassifyInt(current, min int) Status {
	return Classify(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(min)))
}
