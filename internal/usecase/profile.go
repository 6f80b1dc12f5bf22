package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/domain/repository"
	"github.com/kiralago/storefront/internal/media"
)

// ProfileOptions tune profile behaviour from configuration.
type ProfileOptions struct {
	// MaxUploadBytes caps accepted profile picture payloads.
	MaxUploadBytes int64
	// StrictEmailUpdate re-checks email uniqueness on profile update. The
	// original behaviour skips the check, so this defaults to off.
	StrictEmailUpdate bool
}

// ProfileUseCase manages mutable user attributes and the profile picture.
type ProfileUseCase struct {
	users  repository.UserRepository
	files  media.FileStore
	logger *slog.Logger
	opts   ProfileOptions
	now    func() time.Time
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(users repository.UserRepository, files media.FileStore, logger *slog.Logger, opts ProfileOptions) *ProfileUseCase {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 2 << 20
	}
	return &ProfileUseCase{users: users, files: files, logger: logger, opts: opts, now: time.Now}
}

// Get fetches the user's profile.
func (u *ProfileUseCase) Get(ctx context.Context, userID int64) (*model.User, error) {
	return u.users.GetByID(ctx, userID)
}

// UpdateProfile overwrites email, address and phone. Email uniqueness is only
// re-checked when StrictEmailUpdate is enabled.
func (u *ProfileUseCase) UpdateProfile(ctx context.Context, userID int64, email, address, phone string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	if u.opts.StrictEmailUpdate {
		existing, err := u.users.GetByEmail(ctx, email)
		if err == nil && existing.ID != userID {
			return nil, domainErrors.ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
	}

	if err := u.users.UpdateProfile(ctx, userID, email, address, phone); err != nil {
		return nil, err
	}
	return u.users.GetByID(ctx, userID)
}

// UploadPicture validates and stores a new profile picture. The file is
// written before the row is updated so the stored reference never points at
// a missing file; a leftover old file is only logged.
func (u *ProfileUseCase) UploadPicture(ctx context.Context, userID int64, data []byte, originalFilename string) (*model.User, error) {
	if originalFilename == "" || len(data) == 0 {
		return nil, domainErrors.ErrNoFile
	}
	if int64(len(data)) > u.opts.MaxUploadBytes {
		return nil, domainErrors.ErrFileTooLarge
	}
	ext, ok := media.AllowedExtension(originalFilename)
	if !ok {
		return nil, domainErrors.ErrUnsupportedType
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if usr.ProfilePic != "" {
		if _, err := u.files.Delete(ctx, usr.ProfilePic); err != nil {
			u.logger.Warn("failed to delete old profile picture",
				slog.Int64("user_id", userID),
				slog.String("file", usr.ProfilePic),
				slog.String("error", err.Error()),
			)
		}
	}

	name := media.PictureFilename(userID, ext, u.now())
	if err := u.files.Save(ctx, name, data); err != nil {
		return nil, fmt.Errorf("save profile picture: %w", err)
	}
	if err := u.users.UpdatePicture(ctx, userID, name); err != nil {
		return nil, fmt.Errorf("commit profile picture: %w", err)
	}

	usr.ProfilePic = name
	return usr, nil
}

// PictureURL resolves the public URL of a stored picture name.
func (u *ProfileUseCase) PictureURL(name string) string {
	if name == "" {
		return ""
	}
	return u.files.URL(name)
}

// ReferencedPictures lists picture filenames currently referenced by users.
func (u *ProfileUseCase) ReferencedPictures(ctx context.Context) ([]string, error) {
	return u.users.ListPictureFilenames(ctx)
}
