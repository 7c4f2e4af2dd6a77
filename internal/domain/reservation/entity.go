package reservation

import (
	"time"

	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownField         = errs.New("unknown draft field")
	ErrMissingRequiredField = errs.New("missing required field")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// Draft is the in-progress reservation form of a single browser session.
type Draft struct {
	id        uuid.UUID
	values    map[Field]string
	quote     PriceQuote
	createdAt time.Time
	updatedAt time.Time
}

func NewDraft(services *Services) *Draft {
	now := services.Clock.Now()
	d := &Draft{
		id:        uuid.New(),
		values:    make(map[Field]string, len(Fields)),
		createdAt: now,
		updatedAt: now,
	}
	d.quote = services.PriceCalculator.Quote(d.RoomType(), d.Adults(), d.Children())
	return d
}

// UpdateField stores value under field and reports whether it was applied.
// Phone values with anything but ASCII digits are dropped without error so
// the previous phone stays in place.
func (d *Draft) UpdateField(services *Services, field Field, value string) (bool, error) {
	if !field.IsValid() {
		return false, errs.Wrap(ErrUnknownField, string(field))
	}

	if field == FieldPhone && !isDigits(value) {
		return false, nil
	}

	d.values[field] = value
	d.updatedAt = services.Clock.Now()

	if field.affectsPrice() {
		d.quote = services.PriceCalculator.Quote(d.RoomType(), d.Adults(), d.Children())
	}
	return true, nil
}

func (d *Draft) Value(field Field) string {
	return d.values[field]
}

func (d *Draft) ID() uuid.UUID        { return d.id }
func (d *Draft) Name() string         { return d.values[FieldName] }
func (d *Draft) Email() string        { return d.values[FieldEmail] }
func (d *Draft) Phone() string        { return d.values[FieldPhone] }
func (d *Draft) Adults() string       { return d.values[FieldAdults] }
func (d *Draft) Children() string     { return d.values[FieldChildren] }
func (d *Draft) CheckIn() string      { return d.values[FieldCheckIn] }
func (d *Draft) CheckOut() string     { return d.values[FieldCheckOut] }
func (d *Draft) RoomType() RoomType   { return RoomType(d.values[FieldRoomType]) }
func (d *Draft) Quote() PriceQuote    { return d.quote }
func (d *Draft) CreatedAt() time.Time { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time { return d.updatedAt }

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
