package usecase

import (
	"context"

	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/domain/repository"
)

// CartUseCase manages the per-user cart ledger.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Add puts one unit of the product into the user's cart. A line already
// holding the product gets its quantity incremented.
func (u *CartUseCase) Add(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.carts.AddItem(ctx, userID, productID)
}

// Remove deletes a cart line owned by the user.
func (u *CartUseCase) Remove(ctx context.Context, userID, lineID int64) error {
	return u.carts.Remove(ctx, userID, lineID)
}

// Clear empties the user's cart. Safe on an already empty cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}

// View returns the cart lines joined with product data and the total at
// current prices.
func (u *CartUseCase) View(ctx context.Context, userID int64) ([]model.CartItem, float64, error) {
	items, err := u.carts.ItemsWithProducts(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, model.CartTotal(items), nil
}
