package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"commerce-core/internal/infra/cache"
	"commerce-core/internal/infra/idempotency"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/config"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewCartCache,
		NewIdempotencyStore,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		logger.Warn("Redis disabled; cart cache is off and idempotency keys are kept in memory")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "ping redis at %s", cfg.Redis.Addr)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewCartCache(client *redis.Client, cfg config.Config) queries.CartCache {
	if client == nil {
		return cache.NewNoopCartCache()
	}
	return cache.NewRedisCartCache(client, cfg.Redis.CartTTL)
}

func NewIdempotencyStore(client *redis.Client, cfg config.Config, clk clock.Clock) commands.IdempotencyStore {
	if client == nil {
		return idempotency.NewMemoryStore(clk, cfg.Redis.IdempotencyTTL)
	}
	return idempotency.NewRedisStore(client, cfg.Redis.IdempotencyTTL)
}
