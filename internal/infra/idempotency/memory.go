package idempotency

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu     sync.Mutex
	keys   map[uuid.UUID]readmodel.IdempotencyKeyRM
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewMemoryStore(ttl time.Duration, c clock.Clock, logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		keys:   make(map[uuid.UUID]readmodel.IdempotencyKeyRM),
		ttl:    ttl,
		clock:  c,
		logger: logger,
	}
}

// TryInsert claims rec.Key in processing state. It reports false when the key
// is already taken and not yet expired.
func (s *MemoryStore) TryInsert(_ context.Context, rec readmodel.IdempotencyKeyRM) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if existing, ok := s.keys[rec.Key]; ok && now.Before(existing.ExpiresAt) {
		return false, nil
	}

	rec.Status = readmodel.IdempotencyProcessing
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.ExpiresAt = now.Add(s.ttl)
	s.keys[rec.Key] = rec
	return true, nil
}

func (s *MemoryStore) Get(_ context.Context, key uuid.UUID) (*readmodel.IdempotencyKeyRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.keys[key]
	if !ok || !s.clock.Now().Before(rec.ExpiresAt) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "idempotency key "+key.String(), nil)
	}
	return &rec, nil
}

func (s *MemoryStore) Complete(_ context.Context, key, draftID uuid.UUID, checkout payment.Checkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.keys[key]
	if !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "idempotency key "+key.String(), nil)
	}
	rec.Status = readmodel.IdempotencyCompleted
	rec.DraftID = &draftID
	rec.Checkout = &checkout
	rec.UpdatedAt = s.clock.Now()
	s.keys[key] = rec
	return nil
}

// Release forgets a key whose request failed so the client can retry with it.
func (s *MemoryStore) Release(_ context.Context, key uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, key)
	return nil
}

func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for key, rec := range s.keys {
		if !now.Before(rec.ExpiresAt) {
			delete(s.keys, key)
			removed++
		}
	}
	return removed
}
