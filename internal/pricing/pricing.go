// Package pricing computes order billing figures from line-item snapshots.
// Everything is fixed-point decimal arithmetic; each displayed figure is
// rounded to the currency's minor unit exactly once, at the end.
package pricing

import "github.com/shopspring/decimal"

// tolerance is one minor currency unit. A submitted total further than
// this from the recomputed one is treated as a mismatch, not corrected.
var tolerance = decimal.New(1, -2)

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Policy holds the tax and delivery parameters supplied by configuration.
type Policy struct {
	CGSTRate          decimal.Decimal
	SGSTRate          decimal.Decimal
	FreeDeliveryAbove decimal.Decimal
	DeliveryFee       decimal.Decimal
}

type Bill struct {
	Subtotal       decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	DeliveryCharge decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
}

// Quote prices a set of lines under a policy. Delivery is waived when the
// subtotal exceeds the free-delivery threshold.
func Quote(lines []Line, p Policy, discount decimal.Decimal) Bill {
	subtotal := decimal.Zero
	for _, ln := range lines {
		subtotal = subtotal.Add(ln.UnitPrice.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}

	cgst := subtotal.Mul(p.CGSTRate)
	sgst := subtotal.Mul(p.SGSTRate)

	delivery := p.DeliveryFee
	if subtotal.GreaterThan(p.FreeDeliveryAbove) {
		delivery = decimal.Zero
	}

	total := subtotal.Add(cgst).Add(sgst).Add(delivery).Sub(discount)

	return Bill{
		Subtotal:       subtotal.Round(2),
		CGST:           cgst.Round(2),
		SGST:           sgst.Round(2),
		DeliveryCharge: delivery.Round(2),
		Discount:       discount.Round(2),
		Total:          total.Round(2),
	}
}

// Matches reports whether a caller-submitted total agrees with the
// recomputed one within currency-rounding tolerance.
func (b Bill) Matches(total decimal.Decimal) bool {
	return b.Total.Sub(total).Abs().LessThanOrEqual(tolerance)
}
