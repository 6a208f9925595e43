package directive

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"adcheck/internal/directive/metrics"
)

const cacheKeyPrefix = "directive:label:"

// CachedStore is a read-through cache in front of another Store. Directive
// documents change rarely and are read on every comparison, so a short TTL
// keeps the registry database out of the hot path. Cache failures degrade
// to the inner store rather than failing the request.
type CachedStore struct {
	inner   Store
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewCachedStore wraps inner with a Redis read-through cache.
func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration, m *metrics.Metrics) *CachedStore {
	return &CachedStore{inner: inner, client: client, ttl: ttl, metrics: m}
}

func (s *CachedStore) Save(ctx context.Context, record Record) error {
	if err := s.inner.Save(ctx, record); err != nil {
		return err
	}
	s.fill(ctx, record)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, label string) (*Record, error) {
	payload, err := s.client.Get(ctx, cacheKeyPrefix+label).Bytes()
	if err == nil {
		var record Record
		if decodeErr := json.Unmarshal(payload, &record); decodeErr == nil {
			s.metrics.RecordCacheHit()
			return &record, nil
		}
		// Corrupt entry: fall through to the inner store and rewrite it.
	} else if !errors.Is(err, redis.Nil) && !isConnectionError(err) {
		return nil, err
	}

	s.metrics.RecordCacheMiss()
	record, err := s.inner.Get(ctx, label)
	if err != nil {
		return nil, err
	}
	s.fill(ctx, *record)
	return record, nil
}

// List always goes to the inner store: it is the source of truth for the
// registry ordering.
func (s *CachedStore) List(ctx context.Context) ([]Record, error) {
	return s.inner.List(ctx)
}

func (s *CachedStore) Delete(ctx context.Context, label string) error {
	if err := s.inner.Delete(ctx, label); err != nil {
		return err
	}
	s.client.Del(ctx, cacheKeyPrefix+label)
	return nil
}

func (s *CachedStore) fill(ctx context.Context, record Record) {
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	s.client.Set(ctx, cacheKeyPrefix+record.Label, payload, s.ttl)
}

func isConnectionError(err error) bool {
	// go-redis wraps network errors; treat anything that is not a protocol
	// reply as a degraded cache, not a hard failure.
	var redisErr redis.Error
	return !errors.As(err, &redisErr)
}
