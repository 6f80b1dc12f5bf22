package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/kiralago/storefront/internal/config"
	"github.com/kiralago/storefront/internal/domain/repository"
	"github.com/kiralago/storefront/internal/media"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCartUseCase,
	NewCheckoutUseCase,
	NewCatalogUseCase,
	newProfileUseCase,
)

type profileParams struct {
	fx.In

	Users  repository.UserRepository
	Files  media.FileStore
	Logger *slog.Logger
	Config *config.Config
}

func newProfileUseCase(p profileParams) *ProfileUseCase {
	return NewProfileUseCase(p.Users, p.Files, p.Logger, ProfileOptions{
		MaxUploadBytes:    p.Config.MaxUploadBytes,
		StrictEmailUpdate: p.Config.StrictEmailUpdate,
	})
}
