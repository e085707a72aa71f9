package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderify/oracle/internal/domain"
)

// CommitmentRepo defines the persistence operations for Commitments.
type CommitmentRepo interface {
	// Create inserts a staked commitment. Returns domain.ErrStateConflict if a
	// commitment with the same ID exists, domain.ErrNotFound if the user or
	// destination does not exist.
	Create(ctx context.Context, c domain.Commitment) (domain.Commitment, error)

	// GetByID retrieves a commitment by ID without locking it.
	GetByID(ctx context.Context, id int64) (domain.Commitment, error)

	// GetForUpdate retrieves a commitment and holds a row lock on it until the
	// surrounding transaction ends. Only meaningful inside Transactor.InTx.
	GetForUpdate(ctx context.Context, id int64) (domain.Commitment, error)

	// ListByUser returns a user's commitments, newest first.
	ListByUser(ctx context.Context, walletAddress string) ([]domain.Commitment, error)

	// ListStakedBefore returns the IDs of staked commitments whose travel date
	// is before cutoff, oldest first, at most limit of them.
	ListStakedBefore(ctx context.Context, cutoff time.Time, limit int) ([]int64, error)

	// MarkVerified moves a staked commitment to verified and stores its
	// attestation. Returns domain.ErrStateConflict if it is no longer staked.
	MarkVerified(ctx context.Context, id int64, signature string, distanceM int, at time.Time) (domain.Commitment, error)

	// MarkSettled moves a commitment from state `from` to terminal state `to`.
	// Returns domain.ErrStateConflict if the commitment is not in `from`.
	MarkSettled(ctx context.Context, id int64, from, to domain.CommitmentState, txHash string, at time.Time) (domain.Commitment, error)
}

// pgCommitmentRepo is the Postgres implementation of CommitmentRepo.
type pgCommitmentRepo struct {
	db db
}

// NewCommitmentRepo constructs a CommitmentRepo backed by the provided db connection.
func NewCommitmentRepo(db db) CommitmentRepo {
	return &pgCommitmentRepo{db: db}
}

const commitmentColumns = `id, user_address, destination_id, amount_wei, travel_date, state,
	coalesce(signature, ''), verified_distance_m, verified_at, settled_at, tx_hash, created_at`

// Create inserts a new commitment in the staked state.
func (r *pgCommitmentRepo) Create(ctx context.Context, c domain.Commitment) (domain.Commitment, error) {
	const q = `
		INSERT INTO commitments (id, user_address, destination_id, amount_wei, travel_date, state, tx_hash)
		VALUES (@id, @user_address, @destination_id, @amount_wei, @travel_date, 'staked', @tx_hash)
		RETURNING ` + commitmentColumns

	args := pgx.NamedArgs{
		"id":             c.ID,
		"user_address":   c.UserAddress,
		"destination_id": c.DestinationID,
		"amount_wei":     numeric(c.Amount),
		"travel_date":    c.TravelDate,
		"tx_hash":        c.TxHash,
	}

	result, err := scanCommitment(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

// GetByID retrieves a commitment by primary key.
func (r *pgCommitmentRepo) GetByID(ctx context.Context, id int64) (domain.Commitment, error) {
	const q = `SELECT ` + commitmentColumns + ` FROM commitments WHERE id = @id`

	result, err := scanCommitment(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetForUpdate locks the row with FOR UPDATE. A second transaction asking
// for the same commitment blocks here until the first commits or rolls back,
// and then observes the first one's writes.
func (r *pgCommitmentRepo) GetForUpdate(ctx context.Context, id int64) (domain.Commitment, error) {
	const q = `SELECT ` + commitmentColumns + ` FROM commitments WHERE id = @id FOR UPDATE`

	result, err := scanCommitment(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.GetForUpdate: %w", err)
	}
	return result, nil
}

// ListByUser returns commitments for a wallet, newest first.
func (r *pgCommitmentRepo) ListByUser(ctx context.Context, walletAddress string) ([]domain.Commitment, error) {
	const q = `
		SELECT ` + commitmentColumns + `
		FROM commitments
		WHERE user_address = @user_address
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_address": walletAddress})
	if err != nil {
		return nil, fmt.Errorf("repo.CommitmentRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	out := []domain.Commitment{}
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CommitmentRepo.ListByUser: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CommitmentRepo.ListByUser: rows: %w", err)
	}
	return out, nil
}

// ListStakedBefore feeds the expiry sweep.
func (r *pgCommitmentRepo) ListStakedBefore(ctx context.Context, cutoff time.Time, limit int) ([]int64, error) {
	const q = `
		SELECT id
		FROM commitments
		WHERE state = 'staked' AND travel_date < @cutoff
		ORDER BY travel_date ASC, id ASC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"cutoff": cutoff, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.CommitmentRepo.ListStakedBefore: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("repo.CommitmentRepo.ListStakedBefore: %w", err)
	}
	return ids, nil
}

// MarkVerified guards the transition in SQL as well: the row must still be staked.
func (r *pgCommitmentRepo) MarkVerified(ctx context.Context, id int64, signature string, distanceM int, at time.Time) (domain.Commitment, error) {
	const q = `
		UPDATE commitments
		SET state               = 'verified',
		    signature           = @signature,
		    verified_distance_m = @distance,
		    verified_at         = @at
		WHERE id = @id AND state = 'staked'
		RETURNING ` + commitmentColumns

	args := pgx.NamedArgs{"id": id, "signature": signature, "distance": distanceM, "at": at}
	result, err := scanCommitment(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.MarkVerified: %w: commitment %d is not staked", domain.ErrStateConflict, id)
		}
		return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.MarkVerified: %w", mapPgError(err))
	}
	return result, nil
}

// MarkSettled records a terminal state. tx_hash is only overwritten when given.
func (r *pgCommitmentRepo) MarkSettled(ctx context.Context, id int64, from, to domain.CommitmentState, txHash string, at time.Time) (domain.Commitment, error) {
	if !from.CanTransition(to) || !to.Terminal() {
		return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.MarkSettled: %w: %s -> %s", domain.ErrStateConflict, from, to)
	}

	const q = `
		UPDATE commitments
		SET state      = @to,
		    settled_at = @at,
		    tx_hash    = CASE WHEN @tx_hash = '' THEN tx_hash ELSE @tx_hash END
		WHERE id = @id AND state = @from
		RETURNING ` + commitmentColumns

	args := pgx.NamedArgs{"id": id, "from": string(from), "to": string(to), "tx_hash": txHash, "at": at}
	result, err := scanCommitment(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.MarkSettled: %w: commitment %d is not %s", domain.ErrStateConflict, id, from)
		}
		return domain.Commitment{}, fmt.Errorf("repo.CommitmentRepo.MarkSettled: %w", mapPgError(err))
	}
	return result, nil
}

// scanCommitment maps a single database row into a domain.Commitment.
// The stored state is validated here so an unknown value never reaches the
// state machine.
func scanCommitment(s scanner) (domain.Commitment, error) {
	var (
		c          domain.Commitment
		amount     pgtype.Numeric
		state      string
		distance   pgtype.Int4
		verifiedAt pgtype.Timestamptz
		settledAt  pgtype.Timestamptz
	)

	err := s.Scan(&c.ID, &c.UserAddress, &c.DestinationID, &amount, &c.TravelDate, &state,
		&c.Signature, &distance, &verifiedAt, &settledAt, &c.TxHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Commitment{}, domain.ErrNotFound
		}
		return domain.Commitment{}, err
	}

	c.State = domain.CommitmentState(state)
	if !c.State.Valid() {
		return domain.Commitment{}, fmt.Errorf("commitment %d has unknown state %q", c.ID, state)
	}
	if c.Amount, err = bigFromNumeric(amount); err != nil {
		return domain.Commitment{}, err
	}
	if distance.Valid {
		d := int(distance.Int32)
		c.VerifiedDistanceM = &d
	}
	if verifiedAt.Valid {
		t := verifiedAt.Time
		c.VerifiedAt = &t
	}
	if settledAt.Valid {
		t := settledAt.Time
		c.SettledAt = &t
	}
	return c, nil
}
