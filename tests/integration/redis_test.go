package integration

import (
	"context"
	"testing"
	"time"

	"github.com/repairshop/backend/internal/infrastructure/auth"
	"github.com/repairshop/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisTokenBlacklist(t *testing.T) {
	client := NewRedisClient(t)
	blacklist := auth.NewRedisTokenBlacklist(client)
	ctx := context.Background()

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))

	revoked, err = blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// the entry lives only as long as the token would have
	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-2", 200*time.Millisecond))
	assert.Eventually(t, func() bool {
		revoked, err := blacklist.IsBlacklisted(ctx, "jti-2")
		return err == nil && !revoked
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRedisIdempotencyStore(t *testing.T) {
	client := NewRedisClient(t)
	ctx := context.Background()

	store, err := cache.NewIdempotencyStoreFactory(client, cache.WithLogger(zap.NewNop())).CreateStore()
	require.NoError(t, err)
	require.IsType(t, &cache.RedisIdempotencyStore{}, store)

	claimed, err := store.Claim(ctx, "company-a:POST:/work-orders:key-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = store.Claim(ctx, "company-a:POST:/work-orders:key-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, claimed, "second claim of the same key must lose")

	claimed, err = store.Claim(ctx, "company-b:POST:/work-orders:key-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed, "keys of different companies are independent")

	require.NoError(t, store.Release(ctx, "company-a:POST:/work-orders:key-1"))
	claimed, err = store.Claim(ctx, "company-a:POST:/work-orders:key-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed, "a released key can be claimed again")
}

func TestRedisIdempotencyStore_ConcurrentClaims(t *testing.T) {
	client := NewRedisClient(t)
	store := cache.NewRedisIdempotencyStore(client, "test:")
	ctx := context.Background()

	const workers = 20
	results := make(chan bool, workers)
	for range workers {
		go func() {
			ok, err := store.Claim(ctx, "race", time.Minute)
			results <- err == nil && ok
		}()
	}

	winners := 0
	for range workers {
		if <-results {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}
