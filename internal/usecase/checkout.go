package usecase

import (
	"context"
	"time"

	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/domain/repository"
)

// CheckoutUseCase drives the review-then-submit checkout flow.
type CheckoutUseCase struct {
	carts repository.CartRepository
	now   func() time.Time
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(carts repository.CartRepository) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, now: time.Now}
}

// Review presents the cart for confirmation without mutating it.
func (u *CheckoutUseCase) Review(ctx context.Context, userID int64) ([]model.CartItem, float64, error) {
	items, err := u.carts.ItemsWithProducts(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, model.CartTotal(items), nil
}

// Submit validates the payment fields and, treating payment as accepted,
// clears the cart atomically. An incomplete payment leaves the cart intact.
func (u *CheckoutUseCase) Submit(ctx context.Context, userID int64, payment model.Payment) (*model.OrderConfirmation, error) {
	if err := ValidatePayment(payment); err != nil {
		return nil, err
	}

	items, err := u.carts.CheckoutClear(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.OrderConfirmation{
		Items:    items,
		Total:    model.CartTotal(items),
		PlacedAt: u.now(),
	}, nil
}
