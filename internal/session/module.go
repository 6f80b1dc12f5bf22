package session

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/kiralago/storefront/internal/config"
)

// Module wires the session store backend selected by configuration.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Invoke(registerLifecycle),
)

type storeResult struct {
	fx.Out

	Store Store
	Redis redis.UniversalClient
}

func newStore(cfg *config.Config) (storeResult, error) {
	if cfg.SessionBackend == config.SessionBackendRedis {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return storeResult{Store: NewRedisStore(client, cfg.SessionTTL), Redis: client}, nil
	}
	return storeResult{Store: NewMemoryStore(cfg.SessionTTL)}, nil
}

func registerLifecycle(lc fx.Lifecycle, client redis.UniversalClient) {
	if client == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
