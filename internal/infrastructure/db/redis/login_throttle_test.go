package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestThrottle(t *testing.T, max int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, max, window), mr
}

func TestLoginThrottle_BlocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	throttle, _ := newTestThrottle(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := throttle.Allowed(ctx, "a@studio.com")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
		require.NoError(t, throttle.RecordFailure(ctx, "a@studio.com"))
	}

	ok, err := throttle.Allowed(ctx, "a@studio.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = throttle.Allowed(ctx, "b@studio.com")
	require.NoError(t, err)
	assert.True(t, ok, "other emails are unaffected")
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	ctx := context.Background()
	throttle, mr := newTestThrottle(t, 1, time.Minute)

	require.NoError(t, throttle.RecordFailure(ctx, "a@studio.com"))
	assert.Equal(t, time.Minute, mr.TTL("login:failures:a@studio.com"))

	ok, err := throttle.Allowed(ctx, "a@studio.com")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(time.Minute + time.Second)

	ok, err = throttle.Allowed(ctx, "a@studio.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginThrottle_FailureExtendsWindow(t *testing.T) {
	ctx := context.Background()
	throttle, mr := newTestThrottle(t, 2, time.Minute)
	key := "login:failures:a@studio.com"

	require.NoError(t, throttle.RecordFailure(ctx, "a@studio.com"))
	mr.FastForward(40 * time.Second)
	require.NoError(t, throttle.RecordFailure(ctx, "a@studio.com"))
	assert.Equal(t, time.Minute, mr.TTL(key))

	// past the first failure's window, still inside the second's
	mr.FastForward(40 * time.Second)
	ok, err := throttle.Allowed(ctx, "a@studio.com")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(21 * time.Second)
	ok, err = throttle.Allowed(ctx, "a@studio.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginThrottle_Reset(t *testing.T) {
	ctx := context.Background()
	throttle, mr := newTestThrottle(t, 1, time.Minute)

	require.NoError(t, throttle.RecordFailure(ctx, "a@studio.com"))
	require.NoError(t, throttle.Reset(ctx, "a@studio.com"))
	assert.False(t, mr.Exists("login:failures:a@studio.com"))

	ok, err := throttle.Allowed(ctx, "a@studio.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginThrottle_Defaults(t *testing.T) {
	throttle := NewLoginThrottle(nil, 0, 0)
	assert.Equal(t, defaultMaxAttempts, throttle.maxAttempts)
	assert.Equal(t, defaultWindow, throttle.window)
}

func TestLoginThrottle_StoreDown(t *testing.T) {
	ctx := context.Background()
	throttle, mr := newTestThrottle(t, 3, time.Minute)
	mr.Close()

	_, err := throttle.Allowed(ctx, "a@studio.com")
	assert.Error(t, err)
	assert.Error(t, throttle.RecordFailure(ctx, "a@studio.com"))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := Connect(context.Background(), Config{Addr: addr})
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, Pinger{Client: client}.Ping(context.Background()))

	mr.Close()
	_, err = Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
