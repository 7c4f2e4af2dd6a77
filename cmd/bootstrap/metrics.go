package bootstrap

import (
	"hotel-reservation/internal/infra/observability"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		observability.NewRegistry,
		func(reg *prometheus.Registry) *observability.Metrics {
			return observability.NewMetrics(reg)
		},
	),
)
