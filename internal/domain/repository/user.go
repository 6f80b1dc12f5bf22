package repository

import (
	"context"

	"github.com/kiralago/storefront/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, email, address, phone string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdatePicture(ctx context.Context, id int64, filename string) error
	ListPictureFilenames(ctx context.Context) ([]string, error)
}
