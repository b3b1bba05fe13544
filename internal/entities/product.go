package entities

import "github.com/shopspring/decimal"

// Product carries the catalog fields the order engine needs for a
// reservation: pricing and remaining stock. The catalog itself (search,
// categories, images) is owned elsewhere.
type Product struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	SalePrice     decimal.NullDecimal
	StockQuantity int
}

// EffectivePrice is the sale price when one is set, otherwise the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.Valid {
		return p.SalePrice.Decimal
	}
	return p.Price
}
