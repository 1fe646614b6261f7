package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/leomarzeuski/portfolio/internal/projects/domain"
	"github.com/redis/go-redis/v9"
)

const (
	projectsKey = "portfolio:projects:v1" // sanitized project list, JSON encoded

	// DefaultTTL matches the one hour freshness advertised to intermediaries.
	DefaultTTL = time.Hour
)

// ErrCacheMiss is returned by Get when no fresh list is stored.
var ErrCacheMiss = errors.New("projects cache miss")

// Cache stores the sanitized project list between upstream fetches.
type Cache interface {
	Get(ctx context.Context) ([]domain.Project, error)
	Set(ctx context.Context, projects []domain.Project) error
}

// RedisCache keeps the list under a single key with a TTL
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new RedisCache
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]domain.Project, error) {
	data, err := c.client.Get(ctx, projectsKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}
	return projects, nil
}

func (c *RedisCache) Set(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	if err := c.client.Set(ctx, projectsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store projects: %w", err)
	}
	return nil
}

// Nop never stores anything; every Get misses.
type Nop struct{}

func (Nop) Get(context.Context) ([]domain.Project, error) { return nil, ErrCacheMiss }

func (Nop) Set(context.Context, []domain.Project) error { return nil }
