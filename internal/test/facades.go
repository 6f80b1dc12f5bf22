package test

import (
	"context"
	"time"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn       func(context.Context, string, string, string) (*model.User, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, error)
	ChangePasswordFn func(context.Context, int64, string, string, string) error
	PictureURLFn     func(string) string
}

// Register delegates to the override or returns a default user.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return &model.User{ID: 1, Username: username, Email: email}, nil
}

// Authenticate delegates to the override or returns a default user.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, nil
}

// ChangePassword executes the configured handler.
func (s AuthFacadeStub) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, userID, current, newPassword, confirm)
	}
	return nil
}

// PictureURL resolves names via the override or a fixed prefix.
func (s AuthFacadeStub) PictureURL(name string) string {
	if s.PictureURLFn != nil {
		return s.PictureURLFn(name)
	}
	if name == "" {
		return ""
	}
	return "/media/profile_pics/" + name
}

// ProfileFacadeStub provides controllable behaviour for profile endpoints.
type ProfileFacadeStub struct {
	ProfileFn        func(context.Context, int64) (*model.User, error)
	UpdateProfileFn  func(context.Context, int64, string, string, string) (*model.User, error)
	UploadPictureFn  func(context.Context, int64, []byte, string) (*model.User, error)
	ChangePasswordFn func(context.Context, int64, string, string, string) error
	PictureURLFn     func(string) string
}

// Profile delegates to the override or returns a default user.
func (s ProfileFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Username: "ayse", Email: "ayse@example.com"}, nil
}

// UpdateProfile delegates to the override or echoes the input.
func (s ProfileFacadeStub) UpdateProfile(ctx context.Context, userID int64, email, address, phone string) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, email, address, phone)
	}
	return &model.User{ID: userID, Username: "ayse", Email: email, Address: address, Phone: phone}, nil
}

// UploadPicture delegates to the override or returns a user with the name set.
func (s ProfileFacadeStub) UploadPicture(ctx context.Context, userID int64, data []byte, filename string) (*model.User, error) {
	if s.UploadPictureFn != nil {
		return s.UploadPictureFn(ctx, userID, data, filename)
	}
	return &model.User{ID: userID, Username: "ayse", ProfilePic: "user_1_1.png"}, nil
}

// ChangePassword executes the configured handler.
func (s ProfileFacadeStub) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, userID, current, newPassword, confirm)
	}
	return nil
}

// PictureURL resolves names via the override or a fixed prefix.
func (s ProfileFacadeStub) PictureURL(name string) string {
	if s.PictureURLFn != nil {
		return s.PictureURLFn(name)
	}
	if name == "" {
		return ""
	}
	return "/media/profile_pics/" + name
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	CartFn   func(context.Context, int64) ([]model.CartItem, float64, error)
	AddFn    func(context.Context, int64, int64) (*model.CartLine, error)
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error
}

// Cart returns the configured items or an empty cart.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartItem, float64, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return nil, 0, nil
}

// AddToCart delegates to the override or returns a fresh line.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	return &model.CartLine{ID: 1, UserID: userID, ProductID: productID, Quantity: 1}, nil
}

// RemoveFromCart executes the configured handler.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, userID, lineID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, lineID)
	}
	return nil
}

// ClearCart executes the configured handler.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// CheckoutFacadeStub simulates the checkout flow.
type CheckoutFacadeStub struct {
	ReviewFn func(context.Context, int64) ([]model.CartItem, float64, error)
	SubmitFn func(context.Context, int64, model.Payment) (*model.OrderConfirmation, error)
}

// CheckoutReview returns the configured items or an empty cart.
func (s CheckoutFacadeStub) CheckoutReview(ctx context.Context, userID int64) ([]model.CartItem, float64, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, userID)
	}
	return nil, 0, nil
}

// CheckoutSubmit delegates to the override or confirms an empty order.
func (s CheckoutFacadeStub) CheckoutSubmit(ctx context.Context, userID int64, payment model.Payment) (*model.OrderConfirmation, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, payment)
	}
	return &model.OrderConfirmation{PlacedAt: time.Unix(0, 0)}, nil
}

// CatalogFacadeStub serves a fixed product slice for every listing.
type CatalogFacadeStub struct {
	Items     []model.Product
	ProductFn func(context.Context, int64) (*model.Product, error)
	Err       error
}

// Products returns the configured slice.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	return s.Items, s.Err
}

// Product delegates to the override or scans the slice.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Items {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Category returns the configured slice with a fixed display name.
func (s CatalogFacadeStub) Category(ctx context.Context, slug string) ([]model.Product, string, error) {
	return s.Items, "Category", s.Err
}

// NewArrivals returns the configured slice.
func (s CatalogFacadeStub) NewArrivals(ctx context.Context) ([]model.Product, error) {
	return s.Items, s.Err
}

// Bestsellers returns the configured slice.
func (s CatalogFacadeStub) Bestsellers(ctx context.Context) ([]model.Product, error) {
	return s.Items, s.Err
}

// Offers returns the configured slice.
func (s CatalogFacadeStub) Offers(ctx context.Context) ([]model.Product, error) {
	return s.Items, s.Err
}

// Discounted returns the configured slice.
func (s CatalogFacadeStub) Discounted(ctx context.Context) ([]model.Product, error) {
	return s.Items, s.Err
}

// StorefrontFacadeStub aggregates the per-concern stubs into the full
// facade surface. ChangePassword and PictureURL are pinned to the profile
// stub to keep promotion unambiguous.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
	CatalogFacadeStub
}

// ChangePassword delegates to the profile stub.
func (s StorefrontFacadeStub) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	return s.ProfileFacadeStub.ChangePassword(ctx, userID, current, newPassword, confirm)
}

// PictureURL delegates to the profile stub.
func (s StorefrontFacadeStub) PictureURL(name string) string {
	return s.ProfileFacadeStub.PictureURL(name)
}
