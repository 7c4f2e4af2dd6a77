package queries

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=form.go -destination=../../../tests/mock/queries/form_mock.go -package=queriesmock

type DraftReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Draft, error)
}

type QuoteView struct {
	RoomType       string `json:"roomType"`
	Guests         int    `json:"guests"`
	BasePrice      int64  `json:"basePrice"`
	GuestSurcharge int64  `json:"guestSurcharge"`
	TotalPrice     int64  `json:"totalPrice"`
	Display        string `json:"display"`
}

type FormQueries interface {
	GetDraft(ctx context.Context, draftID uuid.UUID) (*reservation.Snapshot, error)
	Quote(roomType, adults, children string) *QuoteView
}

type formQueriesImpl struct {
	store DraftReadStore
	calc  reservation.PriceCalculator
}

func NewFormQueries(store DraftReadStore, calc reservation.PriceCalculator) FormQueries {
	return &formQueriesImpl{store: store, calc: calc}
}

func (q *formQueriesImpl) GetDraft(ctx context.Context, draftID uuid.UUID) (*reservation.Snapshot, error) {
	d, err := q.store.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDraftNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	snap := d.Snapshot()
	return &snap, nil
}

// Quote prices an arbitrary combination without touching any draft.
func (q *formQueriesImpl) Quote(roomType, adults, children string) *QuoteView {
	pq := q.calc.Quote(reservation.RoomType(roomType), adults, children)
	return &QuoteView{
		RoomType:       roomType,
		Guests:         pq.Guests(),
		BasePrice:      pq.Base().Amount(),
		GuestSurcharge: pq.Surcharge().Amount(),
		TotalPrice:     pq.Total().Amount(),
		Display:        pq.Total().String(),
	}
}
