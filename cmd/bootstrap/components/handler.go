package components

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

const limiterSweepInterval = time.Minute

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewQuoteHandler,
		NewSubmitLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

// NewSubmitLimiter builds the per-client submit limiter and evicts idle
// clients while the app runs.
func NewSubmitLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *middleware.SubmitLimiter {
	limiter := middleware.NewSubmitLimiter(cfg.RateLimit, clk)
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(limiterSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := limiter.Sweep(); n > 0 {
							logger.Debug("Idle rate limit clients swept", "count", n)
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			return nil
		},
	})
	return limiter
}
