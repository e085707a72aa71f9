// Package cache is the low-latency key/value cache in front of expensive
// aggregates. Values are opaque bytes with a per-entry expiry, the same
// contract a network cache would offer, so callers cache encoded payloads and
// a hit returns exactly the bytes that were stored.
package cache

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LeaderboardKey holds the encoded global leaderboard.
const LeaderboardKey = "leaderboard:global"

// PoolBalanceKey returns the key holding a destination's live pool balance.
func PoolBalanceKey(destinationID int64) string {
	return "pool:balance:" + strconv.FormatInt(destinationID, 10)
}

// Store is an in-process cache backed by go-cache.
type Store struct {
	c *gocache.Cache
}

// New returns an empty Store. Expired entries are evicted every
// cleanupInterval; they are never returned in between.
func New(cleanupInterval time.Duration) *Store {
	return &Store{c: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// Get returns a copy of the value stored at key.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		// Only Set writes to the underlying cache.
		s.c.Delete(key)
		return nil, false, nil
	}
	return clone(b), true, nil
}

// Set stores a copy of value under key for ttl. A ttl <= 0 stores without expiry.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	s.c.Set(key, clone(value), ttl)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
