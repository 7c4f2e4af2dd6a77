package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/infra/draftstore"
	"hotel-reservation/internal/infra/idempotency"
	"hotel-reservation/internal/infra/observability"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

const sweepInterval = 5 * time.Minute

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
		func(s commands.DraftRepository) queries.DraftReadStore { return s },
	),
)

type Stores struct {
	fx.Out

	Drafts      commands.DraftRepository
	Idempotency commands.IdempotencyStore
}

func NewStores(
	lc fx.Lifecycle,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
	metrics *observability.Metrics,
) (Stores, error) {
	if cfg.DraftStore.UsesRedis() {
		return newRedisStores(lc, cfg.DraftStore, clk, logger, metrics), nil
	}
	return newMemoryStores(lc, cfg.DraftStore, clk, logger, metrics), nil
}

func newRedisStores(
	lc fx.Lifecycle,
	cfg config.DraftStoreConfig,
	clk clock.Clock,
	logger *slog.Logger,
	metrics *observability.Metrics,
) Stores {
	client := draftstore.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	drafts := draftstore.NewRedisStore(client, cfg.TTL, logger, metrics)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := drafts.Ping(ctx); err != nil {
				return errs.Wrapf(err, "redis %s unreachable", cfg.RedisAddr)
			}
			logger.Info("Draft store connected", "driver", "redis", "addr", cfg.RedisAddr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return Stores{
		Drafts:      drafts,
		Idempotency: idempotency.NewRedisStore(client, cfg.IdempotencyTTL, clk, logger),
	}
}

func newMemoryStores(
	lc fx.Lifecycle,
	cfg config.DraftStoreConfig,
	clk clock.Clock,
	logger *slog.Logger,
	metrics *observability.Metrics,
) Stores {
	drafts := draftstore.NewMemoryStore(cfg.TTL, clk, logger, metrics)
	keys := idempotency.NewMemoryStore(cfg.IdempotencyTTL, clk, logger)
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := drafts.Sweep(); n > 0 {
							logger.Debug("Expired drafts swept", "count", n)
						}
						if n := keys.Sweep(); n > 0 {
							logger.Debug("Expired idempotency keys swept", "count", n)
						}
					case <-stop:
						return
					}
				}
			}()
			logger.Info("Draft store ready", "driver", "memory", "ttl", cfg.TTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			return nil
		},
	})
	return Stores{Drafts: drafts, Idempotency: keys}
}
