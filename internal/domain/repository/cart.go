package repository

import (
	"context"

	"github.com/kiralago/storefront/internal/domain/model"
)

// CartRepository manages per-user cart lines.
type CartRepository interface {
	// AddItem upserts the (user, product) line: quantity+1 when present,
	// quantity 1 otherwise.
	AddItem(ctx context.Context, userID, productID int64) (*model.CartLine, error)
	// Remove deletes a line only when it belongs to the user.
	Remove(ctx context.Context, userID, lineID int64) error
	Clear(ctx context.Context, userID int64) error
	ItemsWithProducts(ctx context.Context, userID int64) ([]model.CartItem, error)
	// CheckoutClear reads and deletes all lines of the user within a single
	// transaction and returns what was purchased.
	CheckoutClear(ctx context.Context, userID int64) ([]model.CartItem, error)
}
