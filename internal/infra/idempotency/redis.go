package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reservation:idempotency:"

// RedisStore claims keys with SETNX so concurrent submits with the same key
// across instances see exactly one winner.
type RedisStore struct {
	c      *redis.Client
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewRedisStore(c *redis.Client, ttl time.Duration, clk clock.Clock, logger *slog.Logger) *RedisStore {
	return &RedisStore{c: c, ttl: ttl, clock: clk, logger: logger}
}

func (s *RedisStore) TryInsert(ctx context.Context, rec readmodel.IdempotencyKeyRM) (bool, error) {
	now := s.clock.Now()
	rec.Status = readmodel.IdempotencyProcessing
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.ExpiresAt = now.Add(s.ttl)

	b, err := json.Marshal(rec)
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindEncodeFailure, "encode idempotency key", err)
	}

	ok, err := s.c.SetNX(ctx, key(rec.Key), b, s.ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "claim idempotency key", err)
	}
	return ok, nil
}

func (s *RedisStore) Get(ctx context.Context, k uuid.UUID) (*readmodel.IdempotencyKeyRM, error) {
	v, err := s.c.Get(ctx, key(k)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "idempotency key "+k.String(), nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "load idempotency key", err)
	}

	var rec readmodel.IdempotencyKeyRM
	if err := json.Unmarshal(v, &rec); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindEncodeFailure, "decode idempotency key", err)
	}
	return &rec, nil
}

func (s *RedisStore) Complete(ctx context.Context, k, draftID uuid.UUID, checkout payment.Checkout) error {
	rec, err := s.Get(ctx, k)
	if err != nil {
		return err
	}
	rec.Status = readmodel.IdempotencyCompleted
	rec.DraftID = &draftID
	rec.Checkout = &checkout
	rec.UpdatedAt = s.clock.Now()

	b, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindEncodeFailure, "encode idempotency key", err)
	}
	if err := s.c.Set(ctx, key(k), b, redis.KeepTTL).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "complete idempotency key", err)
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, k uuid.UUID) error {
	if err := s.c.Del(ctx, key(k)).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "release idempotency key", err)
	}
	return nil
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}
