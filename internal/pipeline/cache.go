package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// SnapshotCache stores the last good snapshot per team. Implementations
// replace entries wholesale; a stored snapshot is never mutated afterwards.
type SnapshotCache interface {
	Get(ctx context.Context, team string) (*domain.Snapshot, error)
	Set(ctx context.Context, team string, snapshot *domain.Snapshot) error
}

// MemoryCache is the in-process cache: a guarded map of snapshot references.
// Concurrent refreshes race benignly; last writer wins.
type MemoryCache struct {
	mu        sync.RWMutex
	snapshots map[string]*domain.Snapshot
}

// NewMemoryCache builds an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{snapshots: make(map[string]*domain.Snapshot)}
}

// Get returns the cached snapshot for a team, nil when absent.
func (c *MemoryCache) Get(_ context.Context, team string) (*domain.Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshots[team], nil
}

// Set replaces the cached snapshot reference for a team.
func (c *MemoryCache) Set(_ context.Context, team string, snapshot *domain.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[team] = snapshot
	return nil
}

const redisKeyPrefix = "dashboard:snapshot:"

// redisEnvelope carries snapshot metadata that json tags exclude from the
// dashboard payload.
type redisEnvelope struct {
	FetchedAt time.Time        `json:"fetchedAt"`
	Snapshot  *domain.Snapshot `json:"snapshot"`
}

// RedisCache keeps snapshots in Redis so they survive process restarts.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a Redis-backed snapshot cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get loads and decodes the cached snapshot for a team, nil when absent.
func (c *RedisCache) Get(ctx context.Context, team string) (*domain.Snapshot, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+team).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var envelope redisEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Snapshot != nil {
		envelope.Snapshot.FetchedAt = envelope.FetchedAt
	}
	return envelope.Snapshot, nil
}

// Set encodes and stores the snapshot for a team.
func (c *RedisCache) Set(ctx context.Context, team string, snapshot *domain.Snapshot) error {
	raw, err := json.Marshal(redisEnvelope{FetchedAt: snapshot.FetchedAt, Snapshot: snapshot})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisKeyPrefix+team, raw, c.ttl).Err()
}
