package response

import (
	"time"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DraftResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Adults         string    `json:"adults"`
	Children       string    `json:"children"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	RoomType       string    `json:"roomType"`
	Guests         int       `json:"guests"`
	BasePrice      int64     `json:"basePrice"`
	GuestSurcharge int64     `json:"guestSurcharge"`
	TotalPrice     int64     `json:"totalPrice"`
	PriceDisplay   string    `json:"priceDisplay"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UpdateFieldResponse struct {
	Draft   *DraftResponse `json:"draft"`
	Applied bool           `json:"applied"`
}

type CheckoutResponse struct {
	DraftID  uuid.UUID        `json:"draftId"`
	Checkout payment.Checkout `json:"checkout"`
}

// ValidationDetail feeds both the inline messages and the summary list.
type ValidationDetail struct {
	Fields  map[string]string `json:"fields"`
	Summary []string          `json:"summary"`
}

func FromDraftSnapshot(snap *reservation.Snapshot) (*DraftResponse, error) {
	var resp DraftResponse
	if err := copier.Copy(&resp, snap); err != nil {
		return nil, err
	}
	resp.PriceDisplay = reservation.NewMoney(snap.TotalPrice).String()
	return &resp, nil
}

func FromCheckout(draftID uuid.UUID, c *payment.Checkout) *CheckoutResponse {
	return &CheckoutResponse{DraftID: draftID, Checkout: *c}
}

func FromValidationErrors(ve reservation.ValidationErrors) ValidationDetail {
	fields := make(map[string]string, len(ve))
	for f, msg := range ve {
		fields[f.String()] = msg
	}
	return ValidationDetail{Fields: fields, Summary: ve.Summary()}
}
