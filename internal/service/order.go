package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/localmart/storefront/internal/entities"
	"github.com/localmart/storefront/internal/events"
	"github.com/localmart/storefront/internal/pricing"
	"github.com/localmart/storefront/pkg/trm"
	"github.com/localmart/storefront/pkg/utils"

	"github.com/shopspring/decimal"
)

type OrderStore interface {
	Create(ctx context.Context, o *entities.Order) error
	GetByID(ctx context.Context, orderID int64) (entities.Order, error)
	GetForUpdate(ctx context.Context, orderID int64) (entities.Order, error)
	SetStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]entities.OrderSummary, int, error)
	List(ctx context.Context, status entities.OrderStatus, limit, offset int) ([]entities.OrderSummary, int, error)
}

type ProductStore interface {
	GetForReservation(ctx context.Context, productID int64) (entities.Product, error)
	// Reserve is an atomic conditional decrement: it succeeds only when the
	// remaining stock covers quantity, evaluated by the storage layer.
	Reserve(ctx context.Context, productID int64, quantity int) error
	Release(ctx context.Context, productID int64, quantity int) error
}

type CartStore interface {
	ListForUser(ctx context.Context, userID int64) ([]entities.CartLine, error)
	ClearForUser(ctx context.Context, userID int64) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev events.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderStore
	products  ProductStore
	cart      CartStore
	cache     Cache
	publisher EventPublisher
	policy    pricing.Policy
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderStore,
	products ProductStore,
	cart CartStore,
	cache Cache,
	publisher EventPublisher,
	policy pricing.Policy,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		products:  products,
		cart:      cart,
		cache:     cache,
		publisher: publisher,
		policy:    policy,
	}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

type PlaceOrderInput struct {
	UserID int64

	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   entities.PaymentMethod
	Notes           string

	// Items are reserved in the given order, so which product runs out
	// first under a multi-item order is reproducible. Duplicate product ids
	// compose additively.
	Items []OrderItemInput

	// Billing figures computed by the caller. They are not authoritative:
	// the engine recomputes them from the persisted price snapshots and
	// rejects the order when the totals disagree beyond tolerance.
	Subtotal       decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	DeliveryCharge decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
}

func (in PlaceOrderInput) Validate() error {
	if len(in.Items) == 0 {
		return entities.ErrEmptyOrder
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("product %d: %w", it.ProductID, entities.ErrInvalidQuantity)
		}
	}
	if !in.PaymentMethod.Valid() {
		return fmt.Errorf("%q: %w", in.PaymentMethod, entities.ErrInvalidPayment)
	}
	required := map[string]string{
		"customer_name":    in.CustomerName,
		"customer_phone":   in.CustomerPhone,
		"customer_email":   in.CustomerEmail,
		"shipping_address": in.ShippingAddress,
		"billing_address":  in.BillingAddress,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%s: %w", field, entities.ErrMissingField)
		}
	}
	return nil
}

const orderNumberAttempts = 3

// PlaceOrder converts the submitted line items into an immutable order.
// Stock reservation, price snapshotting and order persistence share one
// unit of work: any failure rolls everything back and no partial order or
// dangling reservation survives. Cart cleanup and event publication run
// after commit and are best-effort.
func (s *orderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error) {
	if err := in.Validate(); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		lines := make([]entities.OrderLine, 0, len(in.Items))
		for _, it := range in.Items {
			if err := s.products.Reserve(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
			// the reservation locked the row, so this price read is the
			// price at the moment of reservation
			product, err := s.products.GetForReservation(ctx, it.ProductID)
			if err != nil {
				return err
			}
			lines = append(lines, entities.OrderLine{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: product.EffectivePrice(),
			})
		}

		bill := pricing.Quote(pricingLines(lines), s.policy, in.Discount)
		if !bill.Matches(in.Total) {
			return fmt.Errorf("submitted %s, recomputed %s: %w",
				in.Total, bill.Total, entities.ErrPricingMismatch)
		}

		order = entities.Order{
			UserID:          in.UserID,
			Status:          entities.StatusPending,
			Subtotal:        bill.Subtotal,
			CGST:            bill.CGST,
			SGST:            bill.SGST,
			DeliveryCharge:  bill.DeliveryCharge,
			Discount:        bill.Discount,
			Total:           bill.Total,
			PaymentMethod:   in.PaymentMethod,
			PaymentStatus:   entities.PaymentStatusPending,
			ShippingAddress: in.ShippingAddress,
			BillingAddress:  in.BillingAddress,
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			CustomerEmail:   in.CustomerEmail,
			Notes:           in.Notes,
			Lines:           lines,
		}

		// collisions are vanishingly rare but handled, not assumed away
		for attempt := 1; ; attempt++ {
			order.OrderNumber = newOrderNumber()
			err := s.orders.Create(ctx, &order)
			if err == nil {
				return nil
			}
			if !errors.Is(err, entities.ErrOrderNumberTaken) {
				return err
			}
			if attempt == orderNumberAttempts {
				return fmt.Errorf("order number collision after %d attempts: %w", attempt, err)
			}
		}
	})
	if err != nil {
		return entities.Order{}, err
	}

	// the order is committed; a cart row left behind here is cosmetic
	if err := s.cart.ClearForUser(ctx, in.UserID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear cart after checkout",
			slog.Int64("user_id", in.UserID), slog.Any("error", err))
	}

	s.cacheOrder(order)
	s.publish(ctx, events.TypeOrderPlaced, order)

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", order.OrderNumber), slog.Int64("user_id", in.UserID))
	return order, nil
}

// CancelOrder moves an order to cancelled and returns its reservations to
// stock, all in one unit of work. Only the owner may cancel, and only while
// the order is still pending or processing.
func (s *orderService) CancelOrder(ctx context.Context, orderID, userID int64) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return entities.ErrNotCancellable
		}
		if !o.Status.Cancellable() {
			return entities.ErrNotCancellable
		}

		if err := s.orders.SetStatus(ctx, orderID, entities.StatusCancelled); err != nil {
			return err
		}
		for _, ln := range o.Lines {
			// lines whose product was removed carry a zero product id;
			// there is nothing left to release for them
			if ln.ProductID == 0 {
				continue
			}
			if err := s.products.Release(ctx, ln.ProductID, ln.Quantity); err != nil {
				return err
			}
		}

		o.Status = entities.StatusCancelled
		order = o
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderCacheKey(orderID))
	s.publish(ctx, events.TypeOrderCancelled, order)

	s.logger.InfoContext(ctx, "order cancelled",
		slog.String("order_number", order.OrderNumber), slog.Int64("user_id", userID))
	return order, nil
}

// SetStatus is the administrative override: any status in the enumerated
// set may be applied regardless of the current one. It never touches stock.
func (s *orderService) SetStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, fmt.Errorf("%q: %w", status, entities.ErrInvalidStatus)
	}

	if err := s.orders.SetStatus(ctx, orderID, status); err != nil {
		return entities.Order{}, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderCacheKey(orderID))
	s.publish(ctx, events.TypeOrderStatusChanged, order)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID, userID int64) (entities.Order, error) {
	key := orderCacheKey(orderID)
	if data, ok := s.cache.Get(key); ok {
		var cached entities.Order
		err := cached.Unmarshal(data)
		if err == nil {
			if cached.UserID != userID {
				return entities.Order{}, entities.ErrOrderNotFound
			}
			return cached, nil
		}
		// an unreadable entry must not shadow the stored order
		s.logger.WarnContext(ctx, "dropping unreadable cached order",
			slog.Int64("order_id", orderID), slog.Any("error", err))
		s.cache.Delete(key)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID int64, limit, offset int) ([]entities.OrderSummary, int, error) {
	return s.orders.ListByUser(ctx, userID, limit, offset)
}

func (s *orderService) ListOrders(ctx context.Context, status entities.OrderStatus, limit, offset int) ([]entities.OrderSummary, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%q: %w", status, entities.ErrInvalidStatus)
	}
	return s.orders.List(ctx, status, limit, offset)
}

// CartQuote prices the user's current cart under the engine's policy, so
// the storefront can show checkout figures the engine will later accept.
func (s *orderService) CartQuote(ctx context.Context, userID int64, discount decimal.Decimal) (pricing.Bill, error) {
	cartLines, err := s.cart.ListForUser(ctx, userID)
	if err != nil {
		return pricing.Bill{}, err
	}

	lines := make([]pricing.Line, 0, len(cartLines))
	for _, cl := range cartLines {
		product, err := s.products.GetForReservation(ctx, cl.ProductID)
		if err != nil {
			return pricing.Bill{}, err
		}
		lines = append(lines, pricing.Line{
			UnitPrice: product.EffectivePrice(),
			Quantity:  cl.Quantity,
		})
	}

	return pricing.Quote(lines, s.policy, discount), nil
}

func (s *orderService) publish(ctx context.Context, eventType string, order entities.Order) {
	if err := s.publisher.Publish(ctx, events.NewOrderEvent(eventType, order)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err))
	}
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order for cache", slog.Any("error", err))
		return
	}
	s.cache.Set(orderCacheKey(order.ID), data)
}

func orderCacheKey(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}

func pricingLines(lines []entities.OrderLine) []pricing.Line {
	out := make([]pricing.Line, 0, len(lines))
	for _, ln := range lines {
		out = append(out, pricing.Line{UnitPrice: ln.UnitPrice, Quantity: ln.Quantity})
	}
	return out
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newOrderNumber() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixNano(), suffix)
}
