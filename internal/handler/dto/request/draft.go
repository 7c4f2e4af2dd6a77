package request

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/patch"
)

// UpdateFieldRequest carries one keystroke-level change. An empty value
// clears the field.
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// CheckoutRequest is a complete form posted in one go. Every field is
// optional at the binding level; presence is checked by validation so the
// caller gets the localized messages.
type CheckoutRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Adults   *string `json:"adults"`
	Children *string `json:"children"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	RoomType *string `json:"roomType"`
}

type FieldValue struct {
	Field reservation.Field
	Value string
}

// FieldValues returns the posted values in form order.
func (r CheckoutRequest) FieldValues() []FieldValue {
	byField := map[reservation.Field]*string{
		reservation.FieldName:     r.Name,
		reservation.FieldEmail:    r.Email,
		reservation.FieldPhone:    r.Phone,
		reservation.FieldAdults:   r.Adults,
		reservation.FieldChildren: r.Children,
		reservation.FieldCheckIn:  r.CheckIn,
		reservation.FieldCheckOut: r.CheckOut,
		reservation.FieldRoomType: r.RoomType,
	}

	out := make([]FieldValue, 0, len(reservation.Fields))
	for _, f := range reservation.Fields {
		out = append(out, FieldValue{Field: f, Value: patch.Coalesce(byField[f], "")})
	}
	return out
}

type QuoteRequest struct {
	RoomType string `form:"roomType"`
	Adults   string `form:"adults"`
	Children string `form:"children"`
}
