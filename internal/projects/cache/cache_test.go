package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/leomarzeuski/portfolio/internal/projects/domain"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedisCache_GetMiss(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewRedisCache(client, time.Minute)

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	projects := []domain.Project{
		{ID: lo.ToPtr("p1"), Name: lo.ToPtr("one"), LatestDeployments: []domain.Deployment{}},
		{ID: lo.ToPtr("p2"), LatestDeployments: []domain.Deployment{{URL: lo.ToPtr("p2.vercel.app")}}},
	}
	require.NoError(t, c.Set(ctx, projects))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, projects, got)

	t.Run("expires after ttl", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		_, err := c.Get(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func TestRedisCache_DefaultTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisCache(client, 0)

	require.NoError(t, c.Set(context.Background(), []domain.Project{}))
	assert.Equal(t, DefaultTTL, mr.TTL(projectsKey))
}

func TestRedisCache_CorruptValue(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisCache(client, time.Minute)
	require.NoError(t, mr.Set(projectsKey, "not json"))

	_, err := c.Get(context.Background())
	assert.ErrorContains(t, err, "unmarshal")
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	assert.NoError(t, c.Set(context.Background(), nil))
	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
}
