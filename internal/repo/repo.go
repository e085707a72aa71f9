// Package repo contains all database access logic for the commitment oracle.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderify/oracle/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txDB is a db that can open a transaction. *pgxpool.Pool opens a real
// transaction; pgx.Tx opens a savepoint, which keeps tests rollback-isolated.
type txDB interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Tx groups the repos bound to one transaction.
type Tx struct {
	Destinations DestinationRepo
	Users        UserRepo
	Commitments  CommitmentRepo
	Journeys     JourneyRepo
}

// Transactor runs units of work atomically.
type Transactor interface {
	// InTx runs fn inside a transaction. The transaction commits only if fn
	// returns nil; any error, panic or context cancellation rolls it back.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type pgTransactor struct {
	db txDB
}

// NewTransactor constructs a Transactor on the provided connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewTransactor(db txDB) Transactor {
	return &pgTransactor{db: db}
}

// NewTx returns the repos bound to db.
func NewTx(db db) Tx {
	return Tx{
		Destinations: NewDestinationRepo(db),
		Users:        NewUserRepo(db),
		Commitments:  NewCommitmentRepo(db),
		Journeys:     NewJourneyRepo(db),
	}
}

func (t *pgTransactor) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.Transactor.InTx: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(ctx, NewTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.Transactor.InTx: commit: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// numeric converts an exact integer amount into a NUMERIC parameter.
func numeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		v = new(big.Int)
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Exp: 0, Valid: true}
}

// bigFromNumeric converts a scanned NUMERIC(78,0) into an exact integer.
// Postgres may return trailing zeros as a positive exponent.
func bigFromNumeric(n pgtype.Numeric) (*big.Int, error) {
	if !n.Valid || n.Int == nil {
		return new(big.Int), nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return nil, fmt.Errorf("numeric is not a finite number")
	}
	out := new(big.Int).Set(n.Int)
	if n.Exp == 0 {
		return out, nil
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(n.Exp))), nil)
	if n.Exp > 0 {
		return out.Mul(out, scale), nil
	}
	q, r := new(big.Int).QuoRem(out, scale, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("numeric %s has a fractional part", n.Int)
	}
	return q, nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// mapPgError translates constraint violations into domain sentinels.
// Other errors are returned unchanged.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrStateConflict, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
	}
	return err
}
