package commands

import (
	"context"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

//go:generate mockgen -source=form_ports.go -destination=../../../tests/mock/commands/form_ports_mock.go -package=commandsmock

type DraftRepository interface {
	Save(ctx context.Context, d *reservation.Draft) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentGateway is the hosted checkout capability. Open is the only call;
// what happens after the handoff belongs to the widget.
type PaymentGateway interface {
	Open(ctx context.Context, req payment.Request) (*payment.Checkout, error)
}

type IdempotencyStore interface {
	TryInsert(ctx context.Context, rec readmodel.IdempotencyKeyRM) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*readmodel.IdempotencyKeyRM, error)
	Complete(ctx context.Context, key, draftID uuid.UUID, checkout payment.Checkout) error
	Release(ctx context.Context, key uuid.UUID) error
}
