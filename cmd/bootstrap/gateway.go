package bootstrap

import (
	"log/slog"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/infra/epayco"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewEpaycoGateway,
		func(g *epayco.Gateway) commands.PaymentGateway { return g },
		func(g *epayco.Gateway) payment.Settings { return g.Settings() },
		NewInvoiceGenerator,
	),
)

func NewEpaycoGateway(cfg config.Config, logger *slog.Logger) *epayco.Gateway {
	return epayco.NewGateway(cfg.Payment, logger)
}

func NewInvoiceGenerator(cfg config.Config, clk clock.Clock) payment.InvoiceGenerator {
	if cfg.Payment.InvoiceStrategy == "uuid" {
		return payment.NewUUIDInvoiceGenerator(cfg.Payment.InvoicePrefix)
	}
	return payment.NewTimestampInvoiceGenerator(cfg.Payment.InvoicePrefix, clk)
}
