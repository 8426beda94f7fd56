package cache

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams defines the dependencies for creating the cache store.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the cache store selected by cache.provider.
func NewStore(params StoreParams) (Store, error) {
	cfg := params.Config.Cache

	var store Store
	switch cfg.Provider {
	case constants.CacheProviderRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = NewRedisStore(client)

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}

				return nil
			},
		})
	case constants.CacheProviderMemory, "":
		store = NewMemoryStore(cfg.MaxEntries, cfg.TTL)
	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}

	params.Logger.Info("Product cache configured",
		slog.String("provider", cfg.Provider),
		slog.Duration("ttl", cfg.TTL),
		slog.Int("maxEntries", cfg.MaxEntries),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
