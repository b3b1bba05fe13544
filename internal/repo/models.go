package repo

import (
	"database/sql"
	"time"

	"github.com/localmart/storefront/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	OrderNumber     string          `db:"order_number"`
	Status          string          `db:"status"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	CGSTAmount      decimal.Decimal `db:"cgst_amount"`
	SGSTAmount      decimal.Decimal `db:"sgst_amount"`
	DeliveryCharges decimal.Decimal `db:"delivery_charges"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	PaymentMethod   string          `db:"payment_method"`
	PaymentStatus   string          `db:"payment_status"`
	ShippingAddress string          `db:"shipping_address"`
	BillingAddress  string          `db:"billing_address"`
	CustomerName    string          `db:"customer_name"`
	CustomerPhone   string          `db:"customer_phone"`
	CustomerEmail   string          `db:"customer_email"`
	Notes           sql.NullString  `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID   int64           `db:"order_id"`
	ProductID sql.NullInt64   `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type OrderSummary struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	OrderNumber   string          `db:"order_number"`
	Status        string          `db:"status"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentMethod string          `db:"payment_method"`
	PaymentStatus string          `db:"payment_status"`
	CustomerName  string          `db:"customer_name"`
	ItemCount     int             `db:"item_count"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Product struct {
	ID            int64               `db:"id"`
	Name          string              `db:"name"`
	Price         decimal.Decimal     `db:"price"`
	SalePrice     decimal.NullDecimal `db:"sale_price"`
	StockQuantity int                 `db:"stock_quantity"`
}

type CartItem struct {
	UserID    int64 `db:"user_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Status:          entities.OrderStatus(o.Status),
		Subtotal:        o.Subtotal,
		CGST:            o.CGSTAmount,
		SGST:            o.SGSTAmount,
		DeliveryCharge:  o.DeliveryCharges,
		Discount:        o.DiscountAmount,
		Total:           o.TotalAmount,
		PaymentMethod:   entities.PaymentMethod(o.PaymentMethod),
		PaymentStatus:   entities.PaymentStatus(o.PaymentStatus),
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		Notes:           nullStringToString(o.Notes),
		CreatedAt:       o.CreatedAt,
	}

	if len(items) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(items))
		for _, it := range items {
			order.Lines = append(order.Lines, OrderItemToEntity(it))
		}
	}

	return order
}

func OrderItemToEntity(it OrderItem) entities.OrderLine {
	return entities.OrderLine{
		OrderID: it.OrderID,
		// zeroed when the product was removed; the snapshot stays authoritative
		ProductID: it.ProductID.Int64,
		Quantity:  it.Quantity,
		UnitPrice: it.Price,
	}
}

func OrderSummaryToEntity(o OrderSummary) entities.OrderSummary {
	return entities.OrderSummary{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		Status:        entities.OrderStatus(o.Status),
		Total:         o.TotalAmount,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		CustomerName:  o.CustomerName,
		ItemCount:     o.ItemCount,
		CreatedAt:     o.CreatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
	}
}

func CartItemToEntity(c CartItem) entities.CartLine {
	return entities.CartLine{
		UserID:    c.UserID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
