package draftstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/observability"
	"hotel-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

type memoryEntry struct {
	snapshot  reservation.Snapshot
	expiresAt time.Time
}

// MemoryStore keeps drafts in process. Entries expire ttl after their last save.
type MemoryStore struct {
	mu      sync.Mutex
	drafts  map[uuid.UUID]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewMemoryStore(ttl time.Duration, c clock.Clock, logger *slog.Logger, metrics *observability.Metrics) *MemoryStore {
	return &MemoryStore{
		drafts:  make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		clock:   c,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *MemoryStore) Save(_ context.Context, d *reservation.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[d.ID()] = memoryEntry{
		snapshot:  d.Snapshot(),
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	s.metrics.ObserveStore("memory", "set")
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (*reservation.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.drafts[id]
	if ok && s.ttl > 0 && !s.clock.Now().Before(entry.expiresAt) {
		delete(s.drafts, id)
		ok = false
	}
	if !ok {
		s.metrics.ObserveStore("memory", "miss")
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "draft "+id.String(), nil)
	}

	s.metrics.ObserveStore("memory", "hit")
	return reservation.ReconstructDraft(entry.snapshot), nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, id)
	s.metrics.ObserveStore("memory", "del")
	return nil
}

// Sweep drops expired drafts and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		return 0
	}

	now := s.clock.Now()
	removed := 0
	for id, entry := range s.drafts {
		if !now.Before(entry.expiresAt) {
			delete(s.drafts, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
