// Package service contains the business logic of the commitment oracle.
// Services validate inputs, enforce the commitment lifecycle, and orchestrate
// repo, cache and signer calls. No SQL lives here: services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"time"

	"github.com/wanderify/oracle/internal/domain"
)

// Cache is the advisory key/value cache in front of expensive reads.
// A failing cache never fails a request; callers fall back to the store.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Signer issues attestations with the oracle key.
type Signer interface {
	Sign(commitmentID int64, userAddress string, destinationID int64) (domain.Attestation, error)
}

// Cache names used in metrics labels.
const (
	cacheLeaderboard = "leaderboard"
	cachePoolBalance = "pool_balance"
)
