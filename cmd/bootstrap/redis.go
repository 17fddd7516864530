package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when neither the lease store nor the rate limiter needs Redis.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (redis.UniversalClient, error) {
	if !NeedsRedis(cfg) {
		return nil, nil
	}

	client, err := OpenRedis(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("redis connected", "addr", cfg.Redis.Addr)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func OpenRedis(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

func NeedsRedis(cfg config.Config) bool {
	return cfg.Redis.Enabled || cfg.Lease.Backend == "redis" || cfg.RateLimit.Enabled
}
