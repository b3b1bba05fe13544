package repo

import (
	"context"
	"fmt"

	"github.com/localmart/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type CartRepo struct {
	store
}

func NewCartRepo(db *sqlx.DB) *CartRepo {
	return &CartRepo{store: newStore(db)}
}

func (r *CartRepo) ListForUser(ctx context.Context, userID int64) ([]entities.CartLine, error) {
	query, args := r.qb.Select("user_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	lines := make([]entities.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, CartItemToEntity(it))
	}
	return lines, nil
}

// ClearForUser drops every cart row for a user. The cart is a convenience
// cache, so this runs outside the order's unit of work, best-effort.
func (r *CartRepo) ClearForUser(ctx context.Context, userID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
