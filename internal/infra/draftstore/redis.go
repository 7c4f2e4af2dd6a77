package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reservation:draft:"

// RedisStore keeps drafts as JSON snapshots with a sliding TTL.
type RedisStore struct {
	c       *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

func NewRedisStore(c *redis.Client, ttl time.Duration, logger *slog.Logger, metrics *observability.Metrics) *RedisStore {
	return &RedisStore{c: c, ttl: ttl, logger: logger, metrics: metrics}
}

func (s *RedisStore) Save(ctx context.Context, d *reservation.Draft) error {
	b, err := json.Marshal(d.Snapshot())
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindEncodeFailure, "encode draft", err)
	}

	s.metrics.ObserveStore("redis", "set")
	if err := s.c.Set(ctx, key(d.ID()), b, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "save draft", err)
	}
	return nil
}

func (s *RedisStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Draft, error) {
	v, err := s.c.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		s.metrics.ObserveStore("redis", "miss")
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "draft "+id.String(), nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "load draft", err)
	}
	s.metrics.ObserveStore("redis", "hit")

	var snap reservation.Snapshot
	if err := json.Unmarshal(v, &snap); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindEncodeFailure, "decode draft", err)
	}
	return reservation.ReconstructDraft(snap), nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.metrics.ObserveStore("redis", "del")
	if err := s.c.Del(ctx, key(id)).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "delete draft", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.c.Ping(ctx).Err()
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}
