package orgdir

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/menengai/edge/pkg/cache"
	"github.com/menengai/edge/pkg/metrics"
)

// Store is the key/value backend of a Cached directory.
// *redis.Store satisfies it, as does the value returned by NewMemoryStore.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

const (
	memberKeyPrefix = "orgdir:member:"
	slugKeyPrefix   = "orgdir:slug:"
)

// Cached serves repeated lookups from a Store.
// Only successful results are cached; misses and failures always reach the
// underlying directory, so a newly created membership is visible immediately.
type Cached struct {
	dir   Directory
	store Store
	ttl   time.Duration
}

// NewCached wraps dir. Cache read and write errors are counted and otherwise
// ignored.
func NewCached(dir Directory, store Store, ttl time.Duration) *Cached {
	return &Cached{dir: dir, store: store, ttl: ttl}
}

func (c *Cached) OrganizationIDForUser(ctx context.Context, userID string) (uuid.UUID, error) {
	key := memberKeyPrefix + userID
	if v, ok := c.get(ctx, "membership", key); ok {
		if id, err := uuid.Parse(v); err == nil {
			return id, nil
		}
	}

	id, err := c.dir.OrganizationIDForUser(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	c.set(ctx, "membership", key, id.String())
	return id, nil
}

func (c *Cached) OrganizationSlug(ctx context.Context, orgID uuid.UUID) (string, error) {
	key := slugKeyPrefix + orgID.String()
	if v, ok := c.get(ctx, "organization", key); ok && v != "" {
		return v, nil
	}

	slug, err := c.dir.OrganizationSlug(ctx, orgID)
	if err != nil {
		return "", err
	}
	c.set(ctx, "organization", key, slug)
	return slug, nil
}

func (c *Cached) get(ctx context.Context, lookup, key string) (string, bool) {
	v, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		metrics.RecordCache(lookup, "error")
		return "", false
	case !ok:
		metrics.RecordCache(lookup, "miss")
		return "", false
	}
	metrics.RecordCache(lookup, "hit")
	return v, true
}

func (c *Cached) set(ctx context.Context, lookup, key, value string) {
	if err := c.store.Set(ctx, key, value, c.ttl); err != nil {
		metrics.RecordCache(lookup, "write_error")
	}
}

type memoryStore struct {
	lru *cache.LRU[string, string]
}

// NewMemoryStore returns a process-local Store holding at most size entries
// for ttl each. The ttl passed to Set is ignored.
func NewMemoryStore(size int, ttl time.Duration) Store {
	return memoryStore{lru: cache.NewLRU[string, string](max(size, 1), ttl)}
}

func (m memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m memoryStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.lru.Put(key, value)
	return nil
}
