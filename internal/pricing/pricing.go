// Package pricing computes order totals. All arithmetic is exact; rounding only happens when
// an amount is formatted for display.
package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	ShippingFee = decimal.RequireFromString("5.99")
	TaxRate     = decimal.RequireFromString("0.08")
)

// Line is anything with a unit price and a quantity.
type Line interface {
	UnitPrice() decimal.Decimal
	Units() int
}

type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func Price[L Line](lines []L) Summary {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Units()))))
	}

	tax := subtotal.Mul(TaxRate)
	return Summary{
		Subtotal: subtotal,
		Shipping: ShippingFee,
		Tax:      tax,
		Total:    subtotal.Add(ShippingFee).Add(tax),
	}
}
