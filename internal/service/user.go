package service

import (
	"context"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/repo"
)

// UserService serves user profiles.
type UserService struct {
	users       repo.UserRepo
	commitments repo.CommitmentRepo
	journeys    repo.JourneyRepo
}

// NewUserService constructs a UserService.
func NewUserService(users repo.UserRepo, commitments repo.CommitmentRepo, journeys repo.JourneyRepo) *UserService {
	return &UserService{users: users, commitments: commitments, journeys: journeys}
}

// Get returns the profile for address, creating the user on first access.
// Stats are derived on every read.
func (s *UserService) Get(ctx context.Context, address string) (domain.UserProfile, error) {
	wallet, err := domain.NormalizeAddress(address)
	if err != nil {
		return domain.UserProfile{}, err
	}

	user, err := s.users.GetOrCreate(ctx, wallet)
	if err != nil {
		return domain.UserProfile{}, err
	}
	commitments, err := s.commitments.ListByUser(ctx, wallet)
	if err != nil {
		return domain.UserProfile{}, err
	}
	journeys, err := s.journeys.ListByUser(ctx, wallet)
	if err != nil {
		return domain.UserProfile{}, err
	}

	return domain.UserProfile{
		User:        user,
		Stats:       domain.NewUserStats(commitments, journeys),
		Commitments: commitments,
		Journeys:    journeys,
	}, nil
}
