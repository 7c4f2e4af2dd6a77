package epayco

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
)

// Gateway hands payment requests to the ePayco hosted checkout. The widget
// runs in the browser, so opening it means returning the configured handoff
// the page passes to ePayco.checkout.configure(...).open(data). Card data and
// the payment outcome never reach this service.
type Gateway struct {
	cfg    config.PaymentConfig
	logger *slog.Logger
}

func NewGateway(cfg config.PaymentConfig, logger *slog.Logger) *Gateway {
	return &Gateway{cfg: cfg, logger: logger}
}

func (g *Gateway) Open(ctx context.Context, req payment.Request) (*payment.Checkout, error) {
	if g.cfg.PublicKey == "" {
		return nil, errs.ErrGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "open checkout"), errs.ErrGatewayUnavailable)
	}
	if req.Invoice == "" {
		return nil, payment.ErrEmptyInvoice
	}

	g.logger.InfoContext(ctx, "Checkout handed off",
		"invoice", req.Invoice,
		"amount", req.Amount,
		"currency", req.Currency,
		"test_mode", g.cfg.TestMode,
	)

	return &payment.Checkout{
		Key:       g.cfg.PublicKey,
		Test:      g.cfg.TestMode,
		ScriptURL: g.cfg.ScriptURL,
		Request:   req,
	}, nil
}

func (g *Gateway) Settings() payment.Settings {
	s := payment.DefaultSettings()
	if g.cfg.Currency != "" {
		s.Currency = g.cfg.Currency
	}
	if g.cfg.Country != "" {
		s.Country = g.cfg.Country
	}
	if g.cfg.Lang != "" {
		s.Lang = g.cfg.Lang
	}
	s.ResponseURL = g.cfg.ResponseURL
	s.ConfirmationURL = g.cfg.ConfirmationURL
	return s
}
