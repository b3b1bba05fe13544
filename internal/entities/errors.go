package entities

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPricingMismatch   = errors.New("pricing mismatch")
	ErrNotCancellable    = errors.New("order cannot be cancelled")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidPayment    = errors.New("unknown payment method")
	ErrMissingField      = errors.New("missing required field")

	// ErrOrderNumberTaken is returned by the ledger when an insert hits the
	// order_number unique constraint. The engine regenerates and retries.
	ErrOrderNumberTaken = errors.New("order number already taken")
)
