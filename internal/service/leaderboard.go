package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/wanderify/oracle/internal/cache"
	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/metrics"
	"github.com/wanderify/oracle/internal/repo"
)

// LeaderboardService serves the global ranking cache-first. On a miss one
// recomputation scans the journey table; concurrent misses wait for it
// instead of scanning again.
type LeaderboardService struct {
	journeys repo.JourneyRepo
	cache    Cache
	ttl      time.Duration
	group    singleflight.Group
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewLeaderboardService constructs a LeaderboardService whose cached ranking
// lives for ttl.
func NewLeaderboardService(journeys repo.JourneyRepo, c Cache, ttl time.Duration, m *metrics.Metrics, log *slog.Logger) *LeaderboardService {
	return &LeaderboardService{journeys: journeys, cache: c, ttl: ttl, metrics: m, log: log}
}

// Get returns at most domain.LeaderboardLimit ranked entries. A cached
// ranking is returned exactly as stored; a stale one is acceptable until it
// expires or is invalidated.
func (s *LeaderboardService) Get(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	payload, ok, err := s.cache.Get(ctx, cache.LeaderboardKey)
	if err != nil {
		s.log.WarnContext(ctx, "leaderboard cache read failed", "error", err)
	}
	if ok {
		entries, err := decodeLeaderboard(payload)
		if err == nil {
			s.metrics.ObserveCache(cacheLeaderboard, true)
			return entries, nil
		}
		s.log.WarnContext(ctx, "discarding unreadable cached leaderboard", "error", err)
	}
	s.metrics.ObserveCache(cacheLeaderboard, false)

	// The shared computation must not die with whichever caller started it,
	// so it runs detached under its own deadline. Each waiter still gives up
	// when its own context ends.
	ch := s.group.DoChan(cacheLeaderboard, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recomputeTimeout)
		defer cancel()
		return s.recompute(rctx)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("service.LeaderboardService.Get: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return decodeLeaderboard(res.Val.([]byte))
	}
}

// recomputeTimeout bounds one shared leaderboard scan.
const recomputeTimeout = 30 * time.Second

// recompute rebuilds the ranking and writes it back to the cache. The
// encoded bytes are what both the cache and this call's waiters see.
//
// A scan that started before an Invalidate can still write its older ranking
// afterwards. That ranking lives at most one TTL, which the leaderboard's
// staleness bound already allows.
func (s *LeaderboardService) recompute(ctx context.Context) ([]byte, error) {
	start := time.Now()

	rewards, err := s.journeys.ListRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LeaderboardService.recompute: %w", err)
	}
	entries := domain.RankLeaderboard(rewards, domain.LeaderboardLimit)

	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("service.LeaderboardService.recompute: encode: %w", err)
	}
	if err := s.cache.Set(ctx, cache.LeaderboardKey, payload, s.ttl); err != nil {
		s.log.WarnContext(ctx, "leaderboard cache write failed", "error", err)
	}

	elapsed := time.Since(start)
	s.metrics.ObserveRecompute(elapsed)
	s.log.InfoContext(ctx, "leaderboard recomputed", "journeys", len(rewards), "entries", len(entries), "duration_ms", elapsed.Milliseconds())
	return payload, nil
}

// Invalidate drops the cached ranking so the next Get recomputes it.
func (s *LeaderboardService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, cache.LeaderboardKey)
}

func decodeLeaderboard(payload []byte) ([]domain.LeaderboardEntry, error) {
	entries := []domain.LeaderboardEntry{}
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("service.decodeLeaderboard: %w", err)
	}
	return entries, nil
}
