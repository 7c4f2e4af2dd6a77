package readmodel

import (
	"time"

	"hotel-reservation/internal/domain/payment"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

// IdempotencyKeyRM is what is remembered about one Idempotency-Key. DraftID and
// Checkout are only set once the handoff completed.
type IdempotencyKeyRM struct {
	Key         uuid.UUID         `json:"key"`
	Endpoint    string            `json:"endpoint"`
	RequestHash string            `json:"request_hash"`
	Status      string            `json:"status"`
	DraftID     *uuid.UUID        `json:"draft_id,omitempty"`
	Checkout    *payment.Checkout `json:"checkout,omitempty"`
	ExpiresAt   time.Time         `json:"expires_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (rm *IdempotencyKeyRM) IsCompleted() bool {
	return rm.Status == IdempotencyCompleted && rm.DraftID != nil && rm.Checkout != nil
}
