package media

import (
	"context"

	"go.uber.org/fx"

	"github.com/kiralago/storefront/internal/config"
)

// Module wires the media store backend selected by configuration.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

func newStore(p storeParams) (FileStore, error) {
	if p.Config.MediaBackend == config.MediaBackendS3 {
		return NewS3Store(p.Ctx, p.Config)
	}
	return NewDiskStore(p.Config.UploadDir, p.Config.MediaBaseURL)
}
