package usecase

import (
	"context"
	"strings"

	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/domain/repository"
)

// featuredLimit caps the truncated catalog listings.
const featuredLimit = 8

// CatalogUseCase serves read-only catalog queries. The featured endpoints
// have no real filtering criteria; they return the full or truncated
// catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns the whole catalog.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get returns a single product.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// ByCategory returns the catalog with a display name derived from the slug.
func (u *CatalogUseCase) ByCategory(ctx context.Context, slug string) ([]model.Product, string, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, "", err
	}
	return products, categoryName(slug), nil
}

// NewArrivals returns the newest products.
func (u *CatalogUseCase) NewArrivals(ctx context.Context) ([]model.Product, error) {
	return u.products.ListNewest(ctx, featuredLimit)
}

// Bestsellers returns a truncated listing.
func (u *CatalogUseCase) Bestsellers(ctx context.Context) ([]model.Product, error) {
	return u.products.ListFirst(ctx, featuredLimit)
}

// Offers returns a truncated listing.
func (u *CatalogUseCase) Offers(ctx context.Context) ([]model.Product, error) {
	return u.products.ListFirst(ctx, featuredLimit)
}

// Discounted returns the full catalog.
func (u *CatalogUseCase) Discounted(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

func categoryName(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
