package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/greenloop/greenpoints/internal/config"
)

// Module exposes the catalog cache implementation to the fx graph.
var Module = fx.Provide(newCatalogCache)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newCatalogCache(p cacheParams) CatalogCache {
	if p.Config.RedisAddr == "" {
		return Noop{}
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddr})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx).Err()
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client, p.Config.CatalogCacheTTL, p.Logger)
}
