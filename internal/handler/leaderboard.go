package handler

import (
	"context"

	"github.com/wanderify/oracle/internal/handler/gen"
)

// GetLeaderboard handles GET /api/leaderboard.
func (s *Server) GetLeaderboard(ctx context.Context, _ gen.GetLeaderboardRequestObject) (gen.GetLeaderboardResponseObject, error) {
	entries, err := s.leaderboard.Get(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]gen.LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = gen.LeaderboardEntry{
			Rank:          e.Rank,
			WalletAddress: e.WalletAddress,
			JourneyCount:  e.JourneyCount,
			TotalRewards:  e.TotalRewards,
		}
	}
	return gen.GetLeaderboard200JSONResponse{Leaderboard: out}, nil
}
