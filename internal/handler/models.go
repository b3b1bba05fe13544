package handler

import (
	"time"

	"github.com/localmart/storefront/internal/entities"
	"github.com/localmart/storefront/internal/pricing"
	"github.com/localmart/storefront/internal/service"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest mirrors the storefront checkout form. Money fields
// carry the totals the client displayed; they are re-verified server side.
type PlaceOrderRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
	BillingAddress  string `json:"billing_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
	Notes           string `json:"notes,omitempty"`

	Items []PlaceOrderItem `json:"items" validate:"required,min=1,dive"`

	Subtotal       decimal.Decimal `json:"subtotal" validate:"required"`
	CGST           decimal.Decimal `json:"cgst_amount"`
	SGST           decimal.Decimal `json:"sgst_amount"`
	DeliveryCharge decimal.Decimal `json:"delivery_charges"`
	Discount       decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total_amount" validate:"required"`
}

type PlaceOrderItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Order is the full JSON view of a placed order.
type Order struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	CGST           decimal.Decimal `json:"cgst_amount"`
	SGST           decimal.Decimal `json:"sgst_amount"`
	DeliveryCharge decimal.Decimal `json:"delivery_charges"`
	Discount       decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total_amount"`

	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`

	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	Notes           string `json:"notes,omitempty"`

	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	CustomerName  string          `json:"customer_name"`
	ItemCount     int             `json:"item_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderList struct {
	Orders []OrderSummary `json:"orders"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type Quote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	CGST           decimal.Decimal `json:"cgst_amount"`
	SGST           decimal.Decimal `json:"sgst_amount"`
	DeliveryCharge decimal.Decimal `json:"delivery_charges"`
	Discount       decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total_amount"`
}

func PlaceOrderRequestToInput(userID int64, req PlaceOrderRequest) service.PlaceOrderInput {
	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return service.PlaceOrderInput{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   entities.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
		Items:           items,
		Subtotal:        req.Subtotal,
		CGST:            req.CGST,
		SGST:            req.SGST,
		DeliveryCharge:  req.DeliveryCharge,
		Discount:        req.Discount,
		Total:           req.Total,
	}
}

func OrderItemEntityToJSON(l entities.OrderLine) OrderItem {
	return OrderItem{
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, OrderItemEntityToJSON(l))
	}

	return Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Status:          string(o.Status),
		Subtotal:        o.Subtotal,
		CGST:            o.CGST,
		SGST:            o.SGST,
		DeliveryCharge:  o.DeliveryCharge,
		Discount:        o.Discount,
		Total:           o.Total,
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		Notes:           o.Notes,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}

func OrderSummaryEntityToJSON(s entities.OrderSummary) OrderSummary {
	return OrderSummary{
		ID:            s.ID,
		OrderNumber:   s.OrderNumber,
		Status:        string(s.Status),
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		PaymentStatus: string(s.PaymentStatus),
		CustomerName:  s.CustomerName,
		ItemCount:     s.ItemCount,
		CreatedAt:     s.CreatedAt,
	}
}

func OrderListToJSON(summaries []entities.OrderSummary, total, limit, offset int) OrderList {
	orders := make([]OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		orders = append(orders, OrderSummaryEntityToJSON(s))
	}
	return OrderList{Orders: orders, Total: total, Limit: limit, Offset: offset}
}

func BillToJSON(b pricing.Bill) Quote {
	return Quote{
		Subtotal:       b.Subtotal,
		CGST:           b.CGST,
		SGST:           b.SGST,
		DeliveryCharge: b.DeliveryCharge,
		Discount:       b.Discount,
		Total:          b.Total,
	}
}
