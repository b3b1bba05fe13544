package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/localmart/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct {
	store
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{store: newStore(db)}
}

// GetForReservation reads the pricing snapshot and remaining stock for one
// product. Inside a unit of work that already reserved the product, the row
// is locked by our own update, so the price read here is stable.
func (r *ProductRepo) GetForReservation(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "price", "sale_price", "stock_quantity").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, fmt.Errorf("product %d: %w", productID, entities.ErrProductNotFound)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

// Reserve decrements stock by quantity only if enough remains. The
// condition is evaluated by the database in a single statement, so
// concurrent reservations on the same product can never oversell.
func (r *ProductRepo) Reserve(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity - ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock_quantity": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// zero rows: either the product is gone or there is not enough stock
	query, args = r.qb.Select("1").From("products").Where(sq.Eq{"id": productID}).MustSql()

	var one int
	err = r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("product %d: %w", productID, entities.ErrProductNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}

	return fmt.Errorf("product %d: %w", productID, entities.ErrInsufficientStock)
}

// Release returns reserved stock to a product. A missing product is not an
// error: stock bookkeeping for a deleted product is moot.
func (r *ProductRepo) Release(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity + ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	return nil
}
