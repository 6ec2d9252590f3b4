package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestClaim_Once(t *testing.T) {
	_, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, time.Hour)
	ctx := context.Background()

	ok, err := adapter.Claim(ctx, "cart:submission:abc")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = adapter.Claim(ctx, "cart:submission:abc")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestClaim_ExpiresAfterTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, time.Minute)
	ctx := context.Background()

	ok, err := adapter.Claim(ctx, "cart:submission:ttl")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, time.Minute, mr.TTL("cart:submission:ttl"))

	mr.FastForward(2 * time.Minute)

	ok, err = adapter.Claim(ctx, "cart:submission:ttl")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestClaim_DefaultTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, 0)

	_, err := adapter.Claim(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, DefaultSubmissionTTL, mr.TTL("k"))
}

func TestClaim_Concurrent(t *testing.T) {
	_, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, time.Hour)
	ctx := context.Background()

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := adapter.Claim(ctx, "concurrent")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if ok {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), successCount.Load())
}

func TestClaim_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, time.Hour)
	mr.Close()

	_, err := adapter.Claim(context.Background(), "k")
	require.Error(t, err)
}

func TestNoopGuard(t *testing.T) {
	var guard NoopGuard
	for i := 0; i < 2; i++ {
		ok, err := guard.Claim(context.Background(), "k")
		require.NoError(t, err)
		require.True(t, ok)
	}
}
