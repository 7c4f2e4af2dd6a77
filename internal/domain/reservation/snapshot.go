package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the flat form of a Draft used by stores and responses.
type Snapshot struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Adults         string    `json:"adults"`
	Children       string    `json:"children"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	RoomType       string    `json:"roomType"`
	BasePrice      int64     `json:"basePrice"`
	GuestSurcharge int64     `json:"guestSurcharge"`
	TotalPrice     int64     `json:"totalPrice"`
	Guests         int       `json:"guests"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (d *Draft) Snapshot() Snapshot {
	return Snapshot{
		ID:             d.id,
		Name:           d.Name(),
		Email:          d.Email(),
		Phone:          d.Phone(),
		Adults:         d.Adults(),
		Children:       d.Children(),
		CheckIn:        d.CheckIn(),
		CheckOut:       d.CheckOut(),
		RoomType:       string(d.RoomType()),
		BasePrice:      d.quote.Base().Amount(),
		GuestSurcharge: d.quote.Surcharge().Amount(),
		TotalPrice:     d.quote.Total().Amount(),
		Guests:         d.quote.Guests(),
		CreatedAt:      d.createdAt,
		UpdatedAt:      d.updatedAt,
	}
}

func ReconstructDraft(s Snapshot) *Draft {
	values := map[Field]string{
		FieldName:     s.Name,
		FieldEmail:    s.Email,
		FieldPhone:    s.Phone,
		FieldAdults:   s.Adults,
		FieldChildren: s.Children,
		FieldCheckIn:  s.CheckIn,
		FieldCheckOut: s.CheckOut,
		FieldRoomType: s.RoomType,
	}
	for f, v := range values {
		if v == "" {
			delete(values, f)
		}
	}

	return &Draft{
		id:        s.ID,
		values:    values,
		quote:     NewPriceQuote(NewMoney(s.BasePrice), NewMoney(s.GuestSurcharge), s.Guests),
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}
