package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/localmart/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type OrderRepo struct {
	store
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{store: newStore(db)}
}

// Create persists the order and its lines and fills in the generated id and
// creation time. An order_number collision surfaces as ErrOrderNumberTaken
// so the caller can regenerate and retry. The collision is detected with
// ON CONFLICT DO NOTHING rather than by catching the unique-violation
// error: a statement error would abort the surrounding transaction and no
// retry could run inside it.
func (r *OrderRepo) Create(ctx context.Context, o *entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"user_id", "order_number", "status", "subtotal", "cgst_amount",
			"sgst_amount", "delivery_charges", "discount_amount", "total_amount",
			"payment_method", "payment_status", "shipping_address", "billing_address",
			"customer_name", "customer_phone", "customer_email", "notes",
		).
		Values(
			o.UserID, o.OrderNumber, string(o.Status), o.Subtotal, o.CGST,
			o.SGST, o.DeliveryCharge, o.Discount, o.Total,
			string(o.PaymentMethod), string(o.PaymentStatus), o.ShippingAddress, o.BillingAddress,
			o.CustomerName, o.CustomerPhone, o.CustomerEmail, nullString(o.Notes),
		).
		Suffix("ON CONFLICT (order_number) DO NOTHING RETURNING id, created_at").
		MustSql()

	var created struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.getContext(ctx, &created, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrOrderNumberTaken
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	o.ID = created.ID
	o.CreatedAt = created.CreatedAt

	if len(o.Lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "price")
	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
		q = q.Values(o.ID, o.Lines[i].ProductID, o.Lines[i].Quantity, o.Lines[i].UnitPrice)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, orderID int64) (entities.Order, error) {
	return r.get(ctx, orderID, false)
}

// GetForUpdate loads the order with a row lock so a concurrent cancellation
// or status change on the same order serializes behind this transaction.
func (r *OrderRepo) GetForUpdate(ctx context.Context, orderID int64) (entities.Order, error) {
	return r.get(ctx, orderID, true)
}

func (r *OrderRepo) get(ctx context.Context, orderID int64, forUpdate bool) (entities.Order, error) {
	q := r.qb.Select(
		"id", "user_id", "order_number", "status", "subtotal", "cgst_amount",
		"sgst_amount", "delivery_charges", "discount_amount", "total_amount",
		"payment_method", "payment_status", "shipping_address", "billing_address",
		"customer_name", "customer_phone", "customer_email", "notes", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *OrderRepo) SetStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]entities.OrderSummary, int, error) {
	return r.list(ctx, sq.Eq{"o.user_id": userID}, limit, offset)
}

// List returns order summaries across all users, optionally filtered by
// status. An empty status means no filter.
func (r *OrderRepo) List(ctx context.Context, status entities.OrderStatus, limit, offset int) ([]entities.OrderSummary, int, error) {
	var cond any = sq.Eq{}
	if status != "" {
		cond = sq.Eq{"o.status": string(status)}
	}
	return r.list(ctx, cond, limit, offset)
}

func (r *OrderRepo) list(ctx context.Context, cond any, limit, offset int) ([]entities.OrderSummary, int, error) {
	query, args := r.qb.Select(
		"o.id", "o.user_id", "o.order_number", "o.status", "o.total_amount",
		"o.payment_method", "o.payment_status", "o.customer_name",
		"COUNT(oi.id) AS item_count", "o.created_at").
		From("orders o").
		LeftJoin("order_items oi ON oi.order_id = o.id").
		Where(cond).
		GroupBy("o.id").
		OrderBy("o.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var rows []OrderSummary
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	countCond := rewriteAlias(cond)
	query, args = r.qb.Select("COUNT(*)").From("orders").Where(countCond).MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	result := make([]entities.OrderSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, OrderSummaryToEntity(row))
	}
	return result, total, nil
}

// rewriteAlias strips the "o." table alias from an sq.Eq built for the
// joined list query so it can be reused against the bare orders table.
func rewriteAlias(cond any) any {
	eq, ok := cond.(sq.Eq)
	if !ok {
		return cond
	}
	out := sq.Eq{}
	for k, v := range eq {
		if len(k) > 2 && k[:2] == "o." {
			out[k[2:]] = v
		} else {
			out[k] = v
		}
	}
	return out
}
