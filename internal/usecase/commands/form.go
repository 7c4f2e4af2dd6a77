package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/domain/reservation"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/observability"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

//go:generate mockgen -source=form.go -destination=../../../tests/mock/commands/form_mock.go -package=commandsmock

type UpdateFieldResult struct {
	Draft   reservation.Snapshot
	Applied bool
}

type SubmitResult struct {
	DraftID  uuid.UUID
	Checkout *payment.Checkout
	// Replayed is set when the result was recalled by idempotency key instead
	// of opening a new checkout.
	Replayed bool
}

type FormCommands interface {
	StartDraft(ctx context.Context) (*reservation.Snapshot, error)
	UpdateField(ctx context.Context, draftID uuid.UUID, req reqdto.UpdateFieldRequest) (*UpdateFieldResult, error)
	Submit(ctx context.Context, draftID uuid.UUID, idempotencyKey uuid.UUID) (*SubmitResult, error)
	Checkout(ctx context.Context, req reqdto.CheckoutRequest, idempotencyKey uuid.UUID) (*SubmitResult, error)
}

type formCommandsImpl struct {
	drafts      DraftRepository
	gateway     PaymentGateway
	idempotency IdempotencyStore
	invoices    payment.InvoiceGenerator
	settings    payment.Settings
	services    *reservation.Services
	metrics     *observability.Metrics
}

func NewFormCommands(
	drafts DraftRepository,
	gateway PaymentGateway,
	idempotency IdempotencyStore,
	invoices payment.InvoiceGenerator,
	settings payment.Settings,
	services *reservation.Services,
	metrics *observability.Metrics,
) FormCommands {
	return &formCommandsImpl{
		drafts:      drafts,
		gateway:     gateway,
		idempotency: idempotency,
		invoices:    invoices,
		settings:    settings,
		services:    services,
		metrics:     metrics,
	}
}

func (u *formCommandsImpl) StartDraft(ctx context.Context) (*reservation.Snapshot, error) {
	d := reservation.NewDraft(u.services)
	if err := u.drafts.Save(ctx, d); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	u.metrics.ObserveDraftStarted("session")

	snap := d.Snapshot()
	return &snap, nil
}

func (u *formCommandsImpl) UpdateField(
	ctx context.Context,
	draftID uuid.UUID,
	req reqdto.UpdateFieldRequest,
) (*UpdateFieldResult, error) {
	field, err := reservation.ParseField(req.Field)
	if err != nil {
		return nil, err
	}

	d, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	applied, err := d.UpdateField(u.services, field, req.Value)
	if err != nil {
		return nil, err
	}
	u.metrics.ObserveFieldUpdate(field.String(), applied)

	if applied {
		if err := u.drafts.Save(ctx, d); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}

	return &UpdateFieldResult{Draft: d.Snapshot(), Applied: applied}, nil
}

func (u *formCommandsImpl) Submit(ctx context.Context, draftID, idempotencyKey uuid.UUID) (*SubmitResult, error) {
	return u.withIdempotency(ctx, idempotencyKey, "POST /drafts/:id/submit", hashOf(draftID), func() (*SubmitResult, error) {
		d, err := u.loadDraft(ctx, draftID)
		if err != nil {
			return nil, err
		}

		result, err := u.submitDraft(ctx, d)
		if err != nil {
			return nil, err
		}

		// The handoff already happened; a stale draft only wastes a TTL slot.
		if err := u.drafts.Delete(ctx, draftID); err != nil {
			slog.WarnContext(ctx, "failed to discard submitted draft", "draft_id", draftID, "error", err)
		}
		return result, nil
	})
}

func (u *formCommandsImpl) Checkout(
	ctx context.Context,
	req reqdto.CheckoutRequest,
	idempotencyKey uuid.UUID,
) (*SubmitResult, error) {
	return u.withIdempotency(ctx, idempotencyKey, "POST /checkout", hashOf(req), func() (*SubmitResult, error) {
		d := reservation.NewDraft(u.services)
		u.metrics.ObserveDraftStarted("oneshot")

		for _, fv := range req.FieldValues() {
			applied, err := d.UpdateField(u.services, fv.Field, fv.Value)
			if err != nil {
				return nil, err
			}
			if !applied {
				u.metrics.ObserveFieldUpdate(fv.Field.String(), false)
			}
		}

		return u.submitDraft(ctx, d)
	})
}

// withIdempotency runs submit at most once per key. A completed key replays
// its checkout; a failed run releases the key so the client may retry.
func (u *formCommandsImpl) withIdempotency(
	ctx context.Context,
	key uuid.UUID,
	endpoint, requestHash string,
	submit func() (*SubmitResult, error),
) (*SubmitResult, error) {
	if key == uuid.Nil || u.idempotency == nil {
		return submit()
	}

	inserted, err := u.idempotency.TryInsert(ctx, readmodel.IdempotencyKeyRM{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if !inserted {
		return u.replay(ctx, key, requestHash)
	}

	result, err := submit()
	if err != nil {
		if rerr := u.idempotency.Release(ctx, key); rerr != nil {
			slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", rerr)
		}
		return nil, err
	}

	if err := u.idempotency.Complete(ctx, key, result.DraftID, *result.Checkout); err != nil {
		slog.WarnContext(ctx, "failed to complete idempotency key", "key", key, "error", err)
	}
	return result, nil
}

func (u *formCommandsImpl) replay(ctx context.Context, key uuid.UUID, requestHash string) (*SubmitResult, error) {
	existing, err := u.idempotency.Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Released or expired between the claim and now.
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}
	if !existing.IsCompleted() {
		return nil, errs.ErrIdempotencyInProgress
	}

	u.metrics.ObserveSubmission(observability.SubmitReplayed)
	return &SubmitResult{DraftID: *existing.DraftID, Checkout: existing.Checkout, Replayed: true}, nil
}

func (u *formCommandsImpl) submitDraft(ctx context.Context, d *reservation.Draft) (*SubmitResult, error) {
	if ve := reservation.Validate(d); !ve.OK() {
		u.metrics.ObserveSubmission(observability.SubmitInvalid)
		return nil, reservation.NewValidationError(ve)
	}

	req, err := payment.NewRequest(d, u.invoices.NextInvoice(), u.settings)
	if err != nil {
		return nil, err
	}

	checkout, err := u.gateway.Open(ctx, req)
	if err != nil {
		u.metrics.ObserveSubmission(observability.SubmitGatewayError)
		slog.ErrorContext(ctx, "checkout handoff failed", "draft_id", d.ID(), "invoice", req.Invoice, "error", err)
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	u.metrics.ObserveHandoff(roomTypeLabel(d.RoomType()), req.Amount)
	slog.InfoContext(ctx, "reservation submitted", "draft_id", d.ID(), "invoice", req.Invoice, "amount", req.Amount)

	return &SubmitResult{DraftID: d.ID(), Checkout: checkout}, nil
}

func (u *formCommandsImpl) loadDraft(ctx context.Context, draftID uuid.UUID) (*reservation.Draft, error) {
	d, err := u.drafts.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDraftNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return d, nil
}

func roomTypeLabel(rt reservation.RoomType) string {
	if rt.IsValid() {
		return rt.String()
	}
	return "other"
}

func hashOf(v any) string {
	data, _ := json.Marshal(v)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
