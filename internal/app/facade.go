package app

import (
	"context"

	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/usecase"
)

// StorefrontFacade aggregates the use cases behind a single application
// surface consumed by HTTP handlers and the media janitor.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	profile  *usecase.ProfileUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	catalog  *usecase.CatalogUseCase
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	profile *usecase.ProfileUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	catalog *usecase.CatalogUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:     auth,
		profile:  profile,
		cart:     cart,
		checkout: checkout,
		catalog:  catalog,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, email, password)
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *StorefrontFacade) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	return f.auth.ChangePassword(ctx, userID, current, newPassword, confirm)
}

func (f *StorefrontFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.profile.Get(ctx, userID)
}

func (f *StorefrontFacade) UpdateProfile(ctx context.Context, userID int64, email, address, phone string) (*model.User, error) {
	return f.profile.UpdateProfile(ctx, userID, email, address, phone)
}

func (f *StorefrontFacade) UploadPicture(ctx context.Context, userID int64, data []byte, filename string) (*model.User, error) {
	return f.profile.UploadPicture(ctx, userID, data, filename)
}

func (f *StorefrontFacade) PictureURL(name string) string {
	return f.profile.PictureURL(name)
}

func (f *StorefrontFacade) ReferencedPictures(ctx context.Context) ([]string, error) {
	return f.profile.ReferencedPictures(ctx)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) ([]model.CartItem, float64, error) {
	return f.cart.View(ctx, userID)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	return f.cart.Add(ctx, userID, productID)
}

func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, userID, lineID int64) error {
	return f.cart.Remove(ctx, userID, lineID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *StorefrontFacade) CheckoutReview(ctx context.Context, userID int64) ([]model.CartItem, float64, error) {
	return f.checkout.Review(ctx, userID)
}

func (f *StorefrontFacade) CheckoutSubmit(ctx context.Context, userID int64, payment model.Payment) (*model.OrderConfirmation, error) {
	return f.checkout.Submit(ctx, userID, payment)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) Category(ctx context.Context, slug string) ([]model.Product, string, error) {
	return f.catalog.ByCategory(ctx, slug)
}

func (f *StorefrontFacade) NewArrivals(ctx context.Context) ([]model.Product, error) {
	return f.catalog.NewArrivals(ctx)
}

func (f *StorefrontFacade) Bestsellers(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Bestsellers(ctx)
}

func (f *StorefrontFacade) Offers(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Offers(ctx)
}

func (f *StorefrontFacade) Discounted(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Discounted(ctx)
}
