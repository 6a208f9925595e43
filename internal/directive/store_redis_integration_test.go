//go:build integration

package directive_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"adcheck/internal/directive"
	"adcheck/internal/domain"
	"adcheck/pkg/testutil/containers"
)

type CachedStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	inner *directive.InMemoryStore
	store *directive.CachedStore
}

func TestCachedStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CachedStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.Client.FlushAll(context.Background()).Err())
	s.inner = directive.NewInMemoryStore()
	s.store = directive.NewCachedStore(s.inner, s.redis.Client, time.Minute, nil)
}

func cachedRecord(label string) directive.Record {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return directive.Record{
		Label:     label,
		Directive: domain.Directive{ADNumber: label, Models: []string{"A320-211"}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *CachedStoreSuite) TestGetServedFromCacheAfterSave() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, cachedRecord("AD A")))

	// Remove from the inner store; the cache entry must still answer.
	s.Require().NoError(s.inner.Delete(ctx, "AD A"))

	got, err := s.store.Get(ctx, "AD A")
	s.Require().NoError(err)
	s.Equal("AD A", got.Directive.ADNumber)
}

func (s *CachedStoreSuite) TestMissFallsThroughAndFills() {
	ctx := context.Background()
	s.Require().NoError(s.inner.Save(ctx, cachedRecord("AD B")))

	got, err := s.store.Get(ctx, "AD B")
	s.Require().NoError(err)
	s.Equal("AD B", got.Label)

	exists, err := s.redis.Client.Exists(ctx, "directive:label:AD B").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)
}

func (s *CachedStoreSuite) TestDeleteInvalidatesCache() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, cachedRecord("AD C")))
	s.Require().NoError(s.store.Delete(ctx, "AD C"))

	exists, err := s.redis.Client.Exists(ctx, "directive:label:AD C").Result()
	s.Require().NoError(err)
	s.Equal(int64(0), exists)
}
