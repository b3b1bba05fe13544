package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/localmart/storefront/internal/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() entities.Order {
	return entities.Order{
		OrderNumber:     "ORD-1-TEST",
		UserID:          7,
		Status:          entities.StatusPending,
		Subtotal:        decimal.RequireFromString("25.00"),
		CGST:            decimal.RequireFromString("2.25"),
		SGST:            decimal.RequireFromString("2.25"),
		DeliveryCharge:  decimal.Zero,
		Discount:        decimal.Zero,
		Total:           decimal.RequireFromString("29.50"),
		PaymentMethod:   entities.PaymentCOD,
		PaymentStatus:   entities.PaymentStatusPending,
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
		CustomerName:    "John Doe",
		CustomerPhone:   "+15550100",
		CustomerEmail:   "john@example.com",
		Lines: []entities.OrderLine{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}
}

func TestOrderRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO orders \(.+\) VALUES \(.+\) ON CONFLICT \(order_number\) DO NOTHING RETURNING id, created_at`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))
		mock.ExpectExec(`INSERT INTO order_items \(order_id,product_id,quantity,price\) VALUES \(.+\),\(.+\)`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		order := sampleOrder()
		err := repo.Create(ctx, &order)
		require.NoError(t, err)

		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, now, order.CreatedAt)
		for _, line := range order.Lines {
			assert.Equal(t, int64(42), line.OrderID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("OrderNumberTaken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		// taken number: the conflict suppresses the insert, so RETURNING
		// yields no row instead of a statement error
		mock.ExpectQuery(`INSERT INTO orders .+ ON CONFLICT \(order_number\) DO NOTHING RETURNING`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

		order := sampleOrder()
		err := repo.Create(ctx, &order)
		assert.ErrorIs(t, err, entities.ErrOrderNumberTaken)
	})

	t.Run("InsertErrorNotMasked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(sql.ErrConnDone)

		order := sampleOrder()
		err := repo.Create(ctx, &order)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrOrderNumberTaken)
	})
}

func TestOrderRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	orderColumns := []string{
		"id", "user_id", "order_number", "status", "subtotal", "cgst_amount",
		"sgst_amount", "delivery_charges", "discount_amount", "total_amount",
		"payment_method", "payment_status", "shipping_address", "billing_address",
		"customer_name", "customer_phone", "customer_email", "notes", "created_at",
	}

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectQuery(`SELECT id, user_id, order_number, .+ FROM orders WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
				42, 7, "ORD-1-TEST", "pending", "25.00", "2.25",
				"2.25", "0.00", "0.00", "29.50",
				"cod", "pending", "1 Main St", "1 Main St",
				"John Doe", "+15550100", "john@example.com", nil, time.Now(),
			))
		mock.ExpectQuery(`SELECT order_id, product_id, quantity, price FROM order_items WHERE order_id = \$1 ORDER BY id`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity", "price"}).
				AddRow(42, 1, 2, "10.00").
				AddRow(42, nil, 1, "5.00"))

		order, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)

		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, entities.StatusPending, order.Status)
		require.Len(t, order.Lines, 2)
		assert.Equal(t, int64(1), order.Lines[0].ProductID)
		// removed product keeps the snapshot but loses its reference
		assert.Equal(t, int64(0), order.Lines[1].ProductID)
		assert.Equal(t, "5", order.Lines[1].UnitPrice.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectQuery(`SELECT id, user_id, order_number, .+ FROM orders WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("ForUpdateLocksRow", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectQuery(`SELECT id, user_id, order_number, .+ FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
				42, 7, "ORD-1-TEST", "pending", "25.00", "2.25",
				"2.25", "0.00", "0.00", "29.50",
				"cod", "pending", "1 Main St", "1 Main St",
				"John Doe", "+15550100", "john@example.com", nil, time.Now(),
			))
		mock.ExpectQuery(`SELECT order_id, product_id, quantity, price FROM order_items`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity", "price"}))

		_, err := repo.GetForUpdate(ctx, 42)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepo_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectExec(`UPDATE orders SET status = \$1, updated_at = now\(\) WHERE id = \$2`).
			WithArgs("shipped", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetStatus(ctx, 42, entities.StatusShipped)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectExec(`UPDATE orders SET status = \$1`).
			WithArgs("shipped", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetStatus(ctx, 99, entities.StatusShipped)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderRepo_List(t *testing.T) {
	ctx := context.Background()

	summaryColumns := []string{
		"id", "user_id", "order_number", "status", "total_amount",
		"payment_method", "payment_status", "customer_name", "item_count", "created_at",
	}

	t.Run("ByUser", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectQuery(`SELECT o.id, o.user_id, .+ FROM orders o LEFT JOIN order_items oi ON oi.order_id = o.id WHERE o.user_id = \$1 GROUP BY o.id ORDER BY o.created_at DESC LIMIT 20 OFFSET 0`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(summaryColumns).
				AddRow(42, 7, "ORD-1-A", "pending", "29.50", "cod", "pending", "John Doe", 2, time.Now()).
				AddRow(41, 7, "ORD-1-B", "delivered", "10.00", "card", "paid", "John Doe", 1, time.Now()))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE user_id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		orders, total, err := repo.ListByUser(ctx, 7, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, orders, 2)
		assert.Equal(t, 2, orders[0].ItemCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ByStatus", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectQuery(`FROM orders o LEFT JOIN order_items oi ON oi.order_id = o.id WHERE o.status = \$1`).
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows(summaryColumns).
				AddRow(42, 7, "ORD-1-A", "pending", "29.50", "cod", "pending", "John Doe", 2, time.Now()))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE status = \$1`).
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		orders, total, err := repo.List(ctx, entities.StatusPending, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, orders, 1)
	})

	t.Run("NoFilter", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepo(db)

		mock.ExpectQuery(`FROM orders o LEFT JOIN order_items oi`).
			WillReturnRows(sqlmock.NewRows(summaryColumns))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		orders, total, err := repo.List(ctx, "", 20, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, orders)
	})
}
