package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/localmart/storefront/internal/entities"
	"github.com/localmart/storefront/internal/pricing"
	"github.com/localmart/storefront/internal/service"
	mocks "github.com/localmart/storefront/internal/service/mocks"
	txMocks "github.com/localmart/storefront/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testPolicy() pricing.Policy {
	return pricing.Policy{
		CGSTRate:          dec("0.09"),
		SGSTRate:          dec("0.09"),
		FreeDeliveryAbove: dec("20.00"),
		DeliveryFee:       dec("5.00"),
	}
}

type engineMocks struct {
	orders    *mocks.MockOrderStore
	products  *mocks.MockProductStore
	cart      *mocks.MockCartStore
	cache     *mocks.MockCache
	publisher *mocks.MockEventPublisher
	tx        *txMocks.MockManager
}

type orderEngine interface {
	PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, userID int64) (entities.Order, error)
	SetStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID, userID int64) (entities.Order, error)
	CartQuote(ctx context.Context, userID int64, discount decimal.Decimal) (pricing.Bill, error)
}

func newEngine(t *testing.T) (*engineMocks, orderEngine) {
	m := &engineMocks{
		orders:    mocks.NewMockOrderStore(t),
		products:  mocks.NewMockProductStore(t),
		cart:      mocks.NewMockCartStore(t),
		cache:     mocks.NewMockCache(t),
		publisher: mocks.NewMockEventPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, m.tx, m.orders, m.products, m.cart, m.cache, m.publisher, testPolicy())
	return m, svc
}

// passthroughTx makes Manager.Do run its callback directly.
func passthroughTx(m *engineMocks) {
	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

func validInput() service.PlaceOrderInput {
	return service.PlaceOrderInput{
		UserID:          7,
		CustomerName:    "John Doe",
		CustomerPhone:   "+15550100",
		CustomerEmail:   "john@example.com",
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
		PaymentMethod:   entities.PaymentCOD,
		Items: []service.OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		Subtotal:       dec("25.00"),
		CGST:           dec("2.25"),
		SGST:           dec("2.25"),
		DeliveryCharge: dec("0.00"),
		Discount:       decimal.Zero,
		Total:          dec("29.50"),
	}
}

func productA() entities.Product {
	return entities.Product{ID: 1, Name: "Coffee Maker", Price: dec("10.00"), StockQuantity: 3}
}

func productB() entities.Product {
	// on sale: the snapshot must use the sale price
	return entities.Product{
		ID:            2,
		Name:          "Yoga Mat",
		Price:         dec("6.00"),
		SalePrice:     decimal.NullDecimal{Decimal: dec("5.00"), Valid: true},
		StockQuantity: 9,
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		input        func() service.PlaceOrderInput
		mockBehavior func(m *engineMocks)
		wantErr      error
	}{
		{
			name:  "OK",
			input: validInput,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, int64(1), 2).Return(nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
				m.products.EXPECT().Reserve(mock.Anything, int64(2), 1).Return(nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o *entities.Order) error {
						o.ID = 42
						return nil
					}).Once()
				m.cart.EXPECT().ClearForUser(mock.Anything, int64(7)).Return(nil).Once()
				m.cache.EXPECT().Set("42", mock.Anything).Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "empty item list rejected before any side effect",
			input: func() service.PlaceOrderInput {
				in := validInput()
				in.Items = nil
				return in
			},
			mockBehavior: func(m *engineMocks) {},
			wantErr:      entities.ErrEmptyOrder,
		},
		{
			name: "non-positive quantity rejected",
			input: func() service.PlaceOrderInput {
				in := validInput()
				in.Items[1].Quantity = 0
				return in
			},
			mockBehavior: func(m *engineMocks) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name: "unknown payment method rejected",
			input: func() service.PlaceOrderInput {
				in := validInput()
				in.PaymentMethod = "barter"
				return in
			},
			mockBehavior: func(m *engineMocks) {},
			wantErr:      entities.ErrInvalidPayment,
		},
		{
			name: "missing customer field rejected",
			input: func() service.PlaceOrderInput {
				in := validInput()
				in.ShippingAddress = ""
				return in
			},
			mockBehavior: func(m *engineMocks) {},
			wantErr:      entities.ErrMissingField,
		},
		{
			name:  "unknown product aborts the order",
			input: validInput,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, int64(1), 2).
					Return(entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "insufficient stock on second item aborts whole order",
			input: validInput,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, int64(1), 2).Return(nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
				m.products.EXPECT().Reserve(mock.Anything, int64(2), 1).
					Return(entities.ErrInsufficientStock).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "submitted total disagreeing beyond tolerance is rejected",
			input: func() service.PlaceOrderInput {
				in := validInput()
				in.Total = dec("19.50")
				return in
			},
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, int64(1), 2).Return(nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
				m.products.EXPECT().Reserve(mock.Anything, int64(2), 1).Return(nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()
			},
			wantErr: entities.ErrPricingMismatch,
		},
		{
			name:  "order number collision is retried",
			input: validInput,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).
					Return(entities.ErrOrderNumberTaken).Once()
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o *entities.Order) error {
						o.ID = 43
						return nil
					}).Once()
				m.cart.EXPECT().ClearForUser(mock.Anything, int64(7)).Return(nil).Once()
				m.cache.EXPECT().Set("43", mock.Anything).Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "persistence failure surfaces",
			input: validInput,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:  "cart cleanup failure does not fail the placed order",
			input: validInput,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o *entities.Order) error {
						o.ID = 44
						return nil
					}).Once()
				m.cart.EXPECT().ClearForUser(mock.Anything, int64(7)).Return(dbError).Once()
				m.cache.EXPECT().Set("44", mock.Anything).Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "event publish failure does not fail the placed order",
			input: validInput,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.products.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
				m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o *entities.Order) error {
						o.ID = 45
						return nil
					}).Once()
				m.cart.EXPECT().ClearForUser(mock.Anything, int64(7)).Return(nil).Once()
				m.cache.EXPECT().Set("45", mock.Anything).Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newEngine(t)
			tc.mockBehavior(m)

			order, err := svc.PlaceOrder(context.Background(), tc.input())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusPending, order.Status)
			assert.Equal(t, entities.PaymentStatusPending, order.PaymentStatus)
			assert.NotEmpty(t, order.OrderNumber)
		})
	}
}

func TestOrderService_PlaceOrder_SnapshotsEffectivePrice(t *testing.T) {
	m, svc := newEngine(t)
	passthroughTx(m)

	m.products.EXPECT().Reserve(mock.Anything, int64(1), 2).Return(nil).Once()
	m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
	m.products.EXPECT().Reserve(mock.Anything, int64(2), 1).Return(nil).Once()
	m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()

	var persisted entities.Order
	m.orders.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o *entities.Order) error {
			o.ID = 50
			persisted = *o
			return nil
		}).Once()
	m.cart.EXPECT().ClearForUser(mock.Anything, int64(7)).Return(nil).Once()
	m.cache.EXPECT().Set("50", mock.Anything).Return().Once()
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, persisted.Lines, 2)
	assert.True(t, dec("10.00").Equal(persisted.Lines[0].UnitPrice), "list price expected, got %s", persisted.Lines[0].UnitPrice)
	assert.True(t, dec("5.00").Equal(persisted.Lines[1].UnitPrice), "sale price expected, got %s", persisted.Lines[1].UnitPrice)
	assert.True(t, dec("25.00").Equal(persisted.Subtotal))
	assert.True(t, dec("29.50").Equal(persisted.Total))
}

func cancellableOrder() entities.Order {
	return entities.Order{
		ID:             10,
		OrderNumber:    "ORD-1-TEST",
		UserID:         7,
		Status:         entities.StatusPending,
		Subtotal:       dec("25.00"),
		CGST:           dec("2.25"),
		SGST:           dec("2.25"),
		DeliveryCharge: dec("0.00"),
		Discount:       dec("0.00"),
		Total:          dec("29.50"),
		Lines: []entities.OrderLine{
			{OrderID: 10, ProductID: 1, Quantity: 2, UnitPrice: dec("10.00")},
			{OrderID: 10, ProductID: 2, Quantity: 1, UnitPrice: dec("5.00")},
		},
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		orderID      int64
		userID       int64
		mockBehavior func(m *engineMocks)
		wantErr      error
	}{
		{
			name:    "OK releases every reservation",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.orders.EXPECT().GetForUpdate(mock.Anything, int64(10)).Return(cancellableOrder(), nil).Once()
				m.orders.EXPECT().SetStatus(mock.Anything, int64(10), entities.StatusCancelled).Return(nil).Once()
				m.products.EXPECT().Release(mock.Anything, int64(1), 2).Return(nil).Once()
				m.products.EXPECT().Release(mock.Anything, int64(2), 1).Return(nil).Once()
				m.cache.EXPECT().Delete("10").Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "order not found",
			orderID: 99,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.orders.EXPECT().GetForUpdate(mock.Anything, int64(99)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "another user's order is not cancellable",
			orderID: 10,
			userID:  8,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.orders.EXPECT().GetForUpdate(mock.Anything, int64(10)).Return(cancellableOrder(), nil).Once()
			},
			wantErr: entities.ErrNotCancellable,
		},
		{
			name:    "shipped order is not cancellable",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				o := cancellableOrder()
				o.Status = entities.StatusShipped
				m.orders.EXPECT().GetForUpdate(mock.Anything, int64(10)).Return(o, nil).Once()
			},
			wantErr: entities.ErrNotCancellable,
		},
		{
			name:    "release of a removed product is skipped",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				o := cancellableOrder()
				o.Lines[1].ProductID = 0
				m.orders.EXPECT().GetForUpdate(mock.Anything, int64(10)).Return(o, nil).Once()
				m.orders.EXPECT().SetStatus(mock.Anything, int64(10), entities.StatusCancelled).Return(nil).Once()
				m.products.EXPECT().Release(mock.Anything, int64(1), 2).Return(nil).Once()
				m.cache.EXPECT().Delete("10").Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "failed release fails the whole cancellation",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				passthroughTx(m)
				m.orders.EXPECT().GetForUpdate(mock.Anything, int64(10)).Return(cancellableOrder(), nil).Once()
				m.orders.EXPECT().SetStatus(mock.Anything, int64(10), entities.StatusCancelled).Return(nil).Once()
				m.products.EXPECT().Release(mock.Anything, int64(1), 2).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newEngine(t)
			tc.mockBehavior(m)

			order, err := svc.CancelOrder(context.Background(), tc.orderID, tc.userID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, order.Status)
		})
	}
}

func TestOrderService_SetStatus(t *testing.T) {
	testCases := []struct {
		name         string
		status       entities.OrderStatus
		mockBehavior func(m *engineMocks)
		wantErr      error
	}{
		{
			name:   "OK overrides regardless of current state",
			status: entities.StatusDelivered,
			mockBehavior: func(m *engineMocks) {
				m.orders.EXPECT().SetStatus(mock.Anything, int64(10), entities.StatusDelivered).Return(nil).Once()
				o := cancellableOrder()
				o.Status = entities.StatusDelivered
				m.orders.EXPECT().GetByID(mock.Anything, int64(10)).Return(o, nil).Once()
				m.cache.EXPECT().Delete("10").Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "status outside the enum is rejected",
			status:       "archived",
			mockBehavior: func(m *engineMocks) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:   "missing order",
			status: entities.StatusShipped,
			mockBehavior: func(m *engineMocks) {
				m.orders.EXPECT().SetStatus(mock.Anything, int64(10), entities.StatusShipped).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newEngine(t)
			tc.mockBehavior(m)

			order, err := svc.SetStatus(context.Background(), 10, tc.status)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, order.Status)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	validOrder := cancellableOrder()
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      int64
		userID       int64
		mockBehavior func(m *engineMocks)
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				m.cache.EXPECT().Get("10").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cached order of another user is hidden",
			orderID: 10,
			userID:  8,
			mockBehavior: func(m *engineMocks) {
				m.cache.EXPECT().Get("10").Return(validData, true).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "success from repo and set to cache",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				m.cache.EXPECT().Get("10").Return(nil, false).Once()
				m.orders.EXPECT().GetByID(mock.Anything, int64(10)).Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("10", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "corrupt cache entry is dropped and repo wins",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				m.cache.EXPECT().Get("10").Return([]byte("not gob"), true).Once()
				m.cache.EXPECT().Delete("10").Return().Once()
				m.orders.EXPECT().GetByID(mock.Anything, int64(10)).Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("10", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: 11,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				m.cache.EXPECT().Get("11").Return(nil, false).Once()
				m.orders.EXPECT().GetByID(mock.Anything, int64(11)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: 10,
			userID:  7,
			mockBehavior: func(m *engineMocks) {
				m.cache.EXPECT().Get("10").Return(nil, false).Once()
				m.orders.EXPECT().GetByID(mock.Anything, int64(10)).
					Return(entities.Order{}, errors.New("some error")).Once()
				m.orders.EXPECT().GetByID(mock.Anything, int64(10)).
					Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("10", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newEngine(t)
			tc.mockBehavior(m)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID, tc.userID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_CartQuote(t *testing.T) {
	m, svc := newEngine(t)

	m.cart.EXPECT().ListForUser(mock.Anything, int64(7)).Return([]entities.CartLine{
		{UserID: 7, ProductID: 1, Quantity: 2},
		{UserID: 7, ProductID: 2, Quantity: 1},
	}, nil).Once()
	m.products.EXPECT().GetForReservation(mock.Anything, int64(1)).Return(productA(), nil).Once()
	m.products.EXPECT().GetForReservation(mock.Anything, int64(2)).Return(productB(), nil).Once()

	bill, err := svc.CartQuote(context.Background(), 7, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, dec("25.00").Equal(bill.Subtotal), "subtotal %s", bill.Subtotal)
	assert.True(t, dec("29.50").Equal(bill.Total), "total %s", bill.Total)
}
