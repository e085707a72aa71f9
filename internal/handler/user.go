package handler

import (
	"context"
	"errors"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/handler/gen"
)

// GetUser handles GET /api/users/{address}.
// An unknown but well-formed address creates the user.
func (s *Server) GetUser(ctx context.Context, req gen.GetUserRequestObject) (gen.GetUserResponseObject, error) {
	profile, err := s.users.Get(ctx, req.Address)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetUser400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(detail(err, domain.ErrValidation, "invalid wallet address")))}, nil
		}
		return nil, err
	}

	commitments := make([]gen.Commitment, len(profile.Commitments))
	for i, c := range profile.Commitments {
		commitments[i] = commitmentToResponse(c)
	}
	journeys := make([]gen.Journey, len(profile.Journeys))
	for i, j := range profile.Journeys {
		journeys[i] = gen.Journey{
			Id:            j.ID,
			CommitmentId:  j.CommitmentID,
			DestinationId: j.DestinationID,
			Reward:        domain.AmountString(j.Reward),
			CompletedAt:   j.CompletedAt,
		}
	}

	return gen.GetUser200JSONResponse{User: gen.User{
		Id:            profile.User.ID,
		WalletAddress: profile.User.WalletAddress,
		CreatedAt:     profile.User.CreatedAt,
		Stats: gen.UserStats{
			ActiveCommitments: profile.Stats.ActiveCommitments,
			CompletedJourneys: profile.Stats.CompletedJourneys,
			TotalStaked:       domain.AmountString(profile.Stats.TotalStaked),
			TotalRewards:      domain.AmountString(profile.Stats.TotalRewards),
		},
		Commitments: commitments,
		Journeys:    journeys,
	}}, nil
}
