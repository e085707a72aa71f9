package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderify/oracle/internal/domain"
)

// JourneyRepo defines the persistence operations for Journeys.
// Journeys are insert-only.
type JourneyRepo interface {
	// Create inserts a journey. Returns domain.ErrStateConflict if the
	// commitment already has one.
	Create(ctx context.Context, j domain.Journey) (domain.Journey, error)

	// ListByUser returns a user's journeys, most recently completed first.
	ListByUser(ctx context.Context, walletAddress string) ([]domain.Journey, error)

	// ListRewards streams every journey's (wallet, reward) pair.
	ListRewards(ctx context.Context) ([]domain.JourneyReward, error)
}

// pgJourneyRepo is the Postgres implementation of JourneyRepo.
type pgJourneyRepo struct {
	db db
}

// NewJourneyRepo constructs a JourneyRepo backed by the provided db connection.
func NewJourneyRepo(db db) JourneyRepo {
	return &pgJourneyRepo{db: db}
}

const journeyColumns = `id, commitment_id, user_address, destination_id, reward_wei, completed_at`

func (r *pgJourneyRepo) Create(ctx context.Context, j domain.Journey) (domain.Journey, error) {
	const q = `
		INSERT INTO journeys (commitment_id, user_address, destination_id, reward_wei, completed_at)
		VALUES (@commitment_id, @user_address, @destination_id, @reward_wei, @completed_at)
		RETURNING ` + journeyColumns

	args := pgx.NamedArgs{
		"commitment_id":  j.CommitmentID,
		"user_address":   j.UserAddress,
		"destination_id": j.DestinationID,
		"reward_wei":     numeric(j.Reward),
		"completed_at":   j.CompletedAt,
	}

	result, err := scanJourney(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Journey{}, fmt.Errorf("repo.JourneyRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgJourneyRepo) ListByUser(ctx context.Context, walletAddress string) ([]domain.Journey, error) {
	const q = `
		SELECT ` + journeyColumns + `
		FROM journeys
		WHERE user_address = @user_address
		ORDER BY completed_at DESC, commitment_id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_address": walletAddress})
	if err != nil {
		return nil, fmt.Errorf("repo.JourneyRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	out := []domain.Journey{}
	for rows.Next() {
		j, err := scanJourney(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.JourneyRepo.ListByUser: scan: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.JourneyRepo.ListByUser: rows: %w", err)
	}
	return out, nil
}

// ListRewards reads amounts as NUMERIC; summing happens in Go with exact integers.
func (r *pgJourneyRepo) ListRewards(ctx context.Context) ([]domain.JourneyReward, error) {
	const q = `SELECT user_address, reward_wei FROM journeys`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.JourneyRepo.ListRewards: %w", err)
	}
	defer rows.Close()

	out := []domain.JourneyReward{}
	for rows.Next() {
		var (
			jr  domain.JourneyReward
			raw pgtype.Numeric
		)
		if err := rows.Scan(&jr.WalletAddress, &raw); err != nil {
			return nil, fmt.Errorf("repo.JourneyRepo.ListRewards: scan: %w", err)
		}
		if jr.Reward, err = bigFromNumeric(raw); err != nil {
			return nil, fmt.Errorf("repo.JourneyRepo.ListRewards: %w", err)
		}
		out = append(out, jr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.JourneyRepo.ListRewards: rows: %w", err)
	}
	return out, nil
}

func scanJourney(s scanner) (domain.Journey, error) {
	var (
		j      domain.Journey
		id     pgtype.UUID
		reward pgtype.Numeric
	)
	err := s.Scan(&id, &j.CommitmentID, &j.UserAddress, &j.DestinationID, &reward, &j.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Journey{}, domain.ErrNotFound
		}
		return domain.Journey{}, err
	}
	j.ID = uuid.UUID(id.Bytes)
	if j.Reward, err = bigFromNumeric(reward); err != nil {
		return domain.Journey{}, err
	}
	return j, nil
}
