package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fundflow/pkg/adapters/redis"
	"github.com/aretw0/fundflow/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	ports.RunResponseCacheContract(t, redis.NewFromClient(client))
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.New(mr.Addr(), redis.WithTTL(time.Second), redis.WithPrefix("test:"))
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "reply"))
	assert.True(t, mr.Exists("test:advisor:k"))

	mr.FastForward(2 * time.Second)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "reply should have expired")
}

func TestRedisCache_ConnectionError(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	cache := redis.New(mr.Addr())
	mr.Close()

	_, _, err = cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Ping(context.Background()))
}
