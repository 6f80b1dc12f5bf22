package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/domain/repository"
	pkgAuth "github.com/kiralago/storefront/internal/pkg/auth"
)

// AuthUseCase handles registration, login and password changes.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	logger *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, logger: logger}
}

// Register creates a new user. Username and email uniqueness are verified
// before the insert; the unique constraints remain the backstop under
// concurrent registration.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return nil, domainErrors.ErrDuplicateUsername
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, domainErrors.ErrDuplicateEmail
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, username, email, hash)
}

// Authenticate validates credentials. Unknown usernames and wrong passwords
// are indistinguishable to the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Debug("login attempt for unknown user", slog.String("username", username))
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		u.logger.Debug("login attempt with wrong password", slog.String("username", username))
		return nil, domainErrors.ErrInvalidCredentials
	}

	return usr, nil
}

// ChangePassword runs the policy checks, verifies the current password and
// commits the new hash. No write happens before every check passes.
func (u *AuthUseCase) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	if err := ValidatePasswordChange(current, newPassword, confirm); err != nil {
		return err
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.hasher.Compare(usr.PasswordHash, current); err != nil {
		return domainErrors.ErrWrongPassword
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return u.users.UpdatePassword(ctx, userID, hash)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
