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

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// GetOrCreate returns the user with the given (already normalized) wallet
	// address, inserting it first if needed. Safe under concurrent first access.
	GetOrCreate(ctx context.Context, walletAddress string) (domain.User, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// GetOrCreate upserts by wallet address.
// The DO UPDATE SET trick forces the RETURNING clause to fire even when
// the row already exists; DO NOTHING would return no row on conflict.
func (r *pgUserRepo) GetOrCreate(ctx context.Context, walletAddress string) (domain.User, error) {
	const q = `
		INSERT INTO users (wallet_address)
		VALUES (@wallet_address)
		ON CONFLICT (wallet_address) DO UPDATE SET wallet_address = EXCLUDED.wallet_address
		RETURNING id, wallet_address, created_at`

	var (
		u  domain.User
		id pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"wallet_address": walletAddress}).Scan(&id, &u.WalletAddress, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.GetOrCreate: %w", domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetOrCreate: %w", mapPgError(err))
	}
	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}
