package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether a customer may still cancel an order
// in this status. Shipped and later states only move via admin override.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

type PaymentMethod string

const (
	PaymentCOD        PaymentMethod = "cod"
	PaymentNetbanking PaymentMethod = "netbanking"
	PaymentPaytm      PaymentMethod = "paytm"
	PaymentPhonePe    PaymentMethod = "phonepe"
	PaymentPaypal     PaymentMethod = "paypal"
	PaymentCard       PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentNetbanking, PaymentPaytm, PaymentPhonePe, PaymentPaypal, PaymentCard:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// OrderLine is one product-quantity-price triple within an order.
// UnitPrice is frozen at placement time and stays authoritative even
// if the product's price changes or the product is removed later.
type OrderLine struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

type Order struct {
	ID          int64
	OrderNumber string
	UserID      int64
	Status      OrderStatus

	Subtotal       decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	DeliveryCharge decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus

	ShippingAddress string
	BillingAddress  string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Notes           string

	CreatedAt time.Time

	Lines []OrderLine
}

// OrderSummary is the list-view projection of an order, without its lines.
type OrderSummary struct {
	ID            int64
	OrderNumber   string
	UserID        int64
	Status        OrderStatus
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	CustomerName  string
	ItemCount     int
	CreatedAt     time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderLine{})
}
