//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/reservation"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/patch"
)

var FixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

type DraftBuilder struct {
	Name     string
	Email    string
	Phone    string
	RoomType string
	Adults   string
	Children string
	CheckIn  string
	CheckOut string
	Now      time.Time
}

// NewDraftBuilder returns a complete, submittable form: deluxe room for
// three guests, quoted at 140000.
func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		Name:     "Ana Gómez",
		Email:    "ana@example.com",
		Phone:    "3001234567",
		RoomType: "deluxe",
		Adults:   "2",
		Children: "1",
		CheckIn:  "2025-04-01",
		CheckOut: "2025-04-03",
		Now:      FixedNow,
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) Empty() *DraftBuilder {
	now := b.Now
	*b = DraftBuilder{Now: now}
	return b
}

func (b *DraftBuilder) Values() map[reservation.Field]string {
	return map[reservation.Field]string{
		reservation.FieldName:     b.Name,
		reservation.FieldEmail:    b.Email,
		reservation.FieldPhone:    b.Phone,
		reservation.FieldRoomType: b.RoomType,
		reservation.FieldAdults:   b.Adults,
		reservation.FieldChildren: b.Children,
		reservation.FieldCheckIn:  b.CheckIn,
		reservation.FieldCheckOut: b.CheckOut,
	}
}

func (b *DraftBuilder) BuildServices() *reservation.Services {
	return &reservation.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: reservation.NewDefaultPriceCalculator(),
	}
}

// BuildDomain fills a fresh draft field by field, the way a user types.
func (b *DraftBuilder) BuildDomain() *reservation.Draft {
	services := b.BuildServices()
	d := reservation.NewDraft(services)
	values := b.Values()
	for _, f := range reservation.Fields {
		if v := values[f]; v != "" {
			_, _ = d.UpdateField(services, f, v)
		}
	}
	return d
}

func (b *DraftBuilder) BuildSnapshot() reservation.Snapshot {
	return b.BuildDomain().Snapshot()
}

func (b *DraftBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Name:     patch.Ptr(b.Name),
		Email:    patch.Ptr(b.Email),
		Phone:    patch.Ptr(b.Phone),
		RoomType: patch.Ptr(b.RoomType),
		Adults:   patch.Ptr(b.Adults),
		Children: patch.Ptr(b.Children),
		CheckIn:  patch.Ptr(b.CheckIn),
		CheckOut: patch.Ptr(b.CheckOut),
	}
}

func (b *DraftBuilder) BuildUpdateFieldRequestDTO(field reservation.Field) reqdto.UpdateFieldRequest {
	return reqdto.UpdateFieldRequest{Field: field.String(), Value: b.Values()[field]}
}
