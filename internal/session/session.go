package session

import (
	"context"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
)

// Identity is the small key/value bag bound to an opaque session token.
// It carries the authenticated user plus denormalized display fields.
type Identity struct {
	UserID        int64  `json:"user_id" redis:"user_id"`
	Username      string `json:"username" redis:"username"`
	Email         string `json:"email" redis:"email"`
	ProfilePicURL string `json:"profile_pic_url" redis:"profile_pic_url"`
}

// Store binds opaque tokens to identities. Created on login, refreshed when
// denormalized fields change, destroyed on logout.
type Store interface {
	Create(ctx context.Context, identity Identity) (string, error)
	Get(ctx context.Context, token string) (*Identity, error)
	Refresh(ctx context.Context, token string, identity Identity) error
	Delete(ctx context.Context, token string) error
}

// ErrNotFound is returned when a token is unknown or expired.
var ErrNotFound = domainErrors.ErrSessionNotFound
