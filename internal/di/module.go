package di

import (
	"go.uber.org/fx"

	"github.com/kiralago/storefront/internal/app"
	"github.com/kiralago/storefront/internal/config"
	"github.com/kiralago/storefront/internal/logger"
	"github.com/kiralago/storefront/internal/media"
	"github.com/kiralago/storefront/internal/pkg/auth"
	"github.com/kiralago/storefront/internal/server/http/handlers"
	"github.com/kiralago/storefront/internal/server/http/router"
	"github.com/kiralago/storefront/internal/session"
	"github.com/kiralago/storefront/internal/storage/postgres"
	"github.com/kiralago/storefront/internal/usecase"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		session.Module,
		media.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
