package pos

import "github.com/shopspring/decimal"

// DefaultTaxRate is the billing tax rate when no override is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.05)

// Bill holds the derived totals for a set of lines. Values are kept at full
// precision; formatting to two decimal places happens only for display.
type Bill struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeBill derives subtotal, tax and total from the given lines. Cheap
// enough to recompute on every cart change; line counts are bounded by menu
// size.
func ComputeBill(lines []Line, taxRate decimal.Decimal) Bill {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	tax := subtotal.Mul(taxRate)
	return Bill{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// FormatAmount renders a currency value with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
