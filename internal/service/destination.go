package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/wanderify/oracle/internal/cache"
	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/metrics"
	"github.com/wanderify/oracle/internal/repo"
)

// DestinationService serves read-only destination projections with the live
// pool balance taken from the cache when present.
type DestinationService struct {
	repo    repo.DestinationRepo
	cache   Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewDestinationService constructs a DestinationService.
func NewDestinationService(r repo.DestinationRepo, c Cache, poolBalanceTTL time.Duration, m *metrics.Metrics, log *slog.Logger) *DestinationService {
	return &DestinationService{repo: r, cache: c, ttl: poolBalanceTTL, metrics: m, log: log}
}

// List returns active destinations ordered by place value.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	dests, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range dests {
		dests[i].PoolBalance = s.poolBalance(ctx, dests[i])
	}
	return dests, nil
}

// Get returns one destination with its commitment and journey counts.
func (s *DestinationService) Get(ctx context.Context, id int64) (domain.Destination, error) {
	if id <= 0 {
		return domain.Destination{}, fmt.Errorf("%w: destination id must be a positive integer", domain.ErrValidation)
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, err
	}
	d.PoolBalance = s.poolBalance(ctx, d)
	return d, nil
}

// poolBalance prefers the cached balance and falls back to the stored one,
// seeding the cache with it. Pools only grow, so a cached value below the
// stored one is stale and is replaced.
func (s *DestinationService) poolBalance(ctx context.Context, d domain.Destination) *big.Int {
	key := cache.PoolBalanceKey(d.ID)
	stored := d.PoolBalance
	if stored == nil {
		stored = new(big.Int)
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "pool balance cache read failed", "destination_id", d.ID, "error", err)
	}
	if ok {
		v, err := domain.ParseAmount(string(raw))
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "discarding unreadable cached pool balance", "destination_id", d.ID)
		case v.Cmp(stored) >= 0:
			s.metrics.ObserveCache(cachePoolBalance, true)
			return v
		}
	}
	s.metrics.ObserveCache(cachePoolBalance, false)

	if err := s.cache.Set(ctx, key, []byte(stored.String()), s.ttl); err != nil {
		s.log.WarnContext(ctx, "pool balance cache write failed", "destination_id", d.ID, "error", err)
	}
	return stored
}
