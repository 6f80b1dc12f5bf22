package handlers

import (
	"context"

	"github.com/kiralago/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
// PictureURL is included because login fills the session bag with the
// resolved picture reference.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error
	PictureURL(name string) string
}

// ProfileFacade provides profile read and update operations.
type ProfileFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, email, address, phone string) (*model.User, error)
	UploadPicture(ctx context.Context, userID int64, data []byte, filename string) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error
	PictureURL(name string) string
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) ([]model.CartItem, float64, error)
	AddToCart(ctx context.Context, userID, productID int64) (*model.CartLine, error)
	RemoveFromCart(ctx context.Context, userID, lineID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// CheckoutFacade provides the review and submit checkout steps.
type CheckoutFacade interface {
	CheckoutReview(ctx context.Context, userID int64) ([]model.CartItem, float64, error)
	CheckoutSubmit(ctx context.Context, userID int64, payment model.Payment) (*model.OrderConfirmation, error)
}

// CatalogFacade serves read-only product listings.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Category(ctx context.Context, slug string) ([]model.Product, string, error)
	NewArrivals(ctx context.Context) ([]model.Product, error)
	Bestsellers(ctx context.Context) ([]model.Product, error)
	Offers(ctx context.Context) ([]model.Product, error)
	Discounted(ctx context.Context) ([]model.Product, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	ProfileFacade
	CartFacade
	CheckoutFacade
	CatalogFacade
}
