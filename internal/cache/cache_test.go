package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderify/oracle/internal/cache"
)

func TestStore_SetGet(t *testing.T) {
	s := cache.New(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`), time.Hour))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestStore_Miss(t *testing.T) {
	s := cache.New(time.Minute)

	got, ok, err := s.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_Expiry(t *testing.T) {
	s := cache.New(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ValuesAreCopied(t *testing.T) {
	s := cache.New(time.Minute)
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in, time.Hour))
	in[0] = 'x'

	out, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(out))

	out[1] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestStore_Delete(t *testing.T) {
	s := cache.New(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, cache.LeaderboardKey, []byte("[]"), time.Hour))
	require.NoError(t, s.Delete(ctx, cache.LeaderboardKey))
	require.NoError(t, s.Delete(ctx, "never-set"))

	_, ok, _ := s.Get(ctx, cache.LeaderboardKey)
	assert.False(t, ok)
}

func TestPoolBalanceKey(t *testing.T) {
	assert.Equal(t, "pool:balance:12", cache.PoolBalanceKey(12))
}
