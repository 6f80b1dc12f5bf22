package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/test"
)

func catalogOf(n int) *CatalogUseCase {
	products := make([]model.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, model.Product{ID: int64(i), Name: "Item", Price: float64(i)})
	}
	return NewCatalogUseCase(&test.ProductRepositoryStub{Products: products})
}

func TestCatalogGet(t *testing.T) {
	uc := catalogOf(3)

	product, err := uc.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if product.ID != 2 {
		t.Fatalf("expected product 2, got %d", product.ID)
	}

	if _, err := uc.Get(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogFeaturedLimits(t *testing.T) {
	uc := catalogOf(12)

	newArrivals, err := uc.NewArrivals(context.Background())
	if err != nil {
		t.Fatalf("new arrivals: %v", err)
	}
	if len(newArrivals) != featuredLimit {
		t.Fatalf("expected %d new arrivals, got %d", featuredLimit, len(newArrivals))
	}

	bestsellers, err := uc.Bestsellers(context.Background())
	if err != nil {
		t.Fatalf("bestsellers: %v", err)
	}
	if len(bestsellers) != featuredLimit {
		t.Fatalf("expected %d bestsellers, got %d", featuredLimit, len(bestsellers))
	}

	all, err := uc.Discounted(context.Background())
	if err != nil {
		t.Fatalf("discounted: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("expected the full catalog, got %d", len(all))
	}
}

func TestCatalogByCategoryName(t *testing.T) {
	uc := catalogOf(2)

	cases := []struct {
		slug string
		want string
	}{
		{"tents", "Tents"},
		{"sleeping-bags", "Sleeping Bags"},
		{"camp-kitchen-gear", "Camp Kitchen Gear"},
	}
	for _, tc := range cases {
		products, name, err := uc.ByCategory(context.Background(), tc.slug)
		if err != nil {
			t.Fatalf("by category %q: %v", tc.slug, err)
		}
		if name != tc.want {
			t.Fatalf("slug %q: expected %q, got %q", tc.slug, tc.want, name)
		}
		if len(products) != 2 {
			t.Fatalf("slug %q: expected full catalog, got %d", tc.slug, len(products))
		}
	}
}
