package repository

import (
	"context"

	"github.com/kiralago/storefront/internal/domain/model"
)

// ProductRepository describes read access to the catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListNewest(ctx context.Context, limit int) ([]model.Product, error)
	ListFirst(ctx context.Context, limit int) ([]model.Product, error)
}
