package repo

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderify/oracle/internal/domain"
)

// DestinationRepo defines the persistence operations for Destinations.
type DestinationRepo interface {
	// Create inserts a destination and returns the persisted record.
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// GetByID retrieves a destination with its commitment and journey counts.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Destination, error)

	// ListActive returns all active destinations ordered by place_value ascending.
	ListActive(ctx context.Context) ([]domain.Destination, error)

	// AddToPool adds delta to a destination's pool balance and returns the new
	// balance. Returns domain.ErrNotFound if the destination does not exist.
	AddToPool(ctx context.Context, id int64, delta *big.Int) (*big.Int, error)
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `id, name, country, latitude, longitude, radius_meters, place_value, pool_balance, is_active, created_at`

// Create inserts a new destination row and returns the full persisted record.
func (r *pgDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (name, country, latitude, longitude, radius_meters, place_value, pool_balance, is_active)
		VALUES (@name, @country, @latitude, @longitude, @radius_meters, @place_value, @pool_balance, @is_active)
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"name":          d.Name,
		"country":       d.Country,
		"latitude":      d.Latitude,
		"longitude":     d.Longitude,
		"radius_meters": d.RadiusMeters,
		"place_value":   d.PlaceValue,
		"pool_balance":  numeric(d.PoolBalance),
		"is_active":     d.Active,
	}

	result, err := scanDestination(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

// GetByID retrieves a destination by primary key, counting its commitments
// and journeys in the same statement.
func (r *pgDestinationRepo) GetByID(ctx context.Context, id int64) (domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `,
		       (SELECT count(*) FROM commitments c WHERE c.destination_id = d.id),
		       (SELECT count(*) FROM journeys j WHERE j.destination_id = d.id)
		FROM destinations d
		WHERE id = @id`

	var (
		commitments, journeys int64
		dest                  domain.Destination
	)
	err := scanDestinationInto(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}), &dest, &commitments, &journeys)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	dest.TotalCommitments = int(commitments)
	dest.TotalJourneys = int(journeys)
	return dest, nil
}

// ListActive returns active destinations ordered by place_value, then id.
func (r *pgDestinationRepo) ListActive(ctx context.Context) ([]domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE is_active
		ORDER BY place_value ASC, id ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListActive: %w", err)
	}
	defer rows.Close()

	dests := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.ListActive: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListActive: rows: %w", err)
	}
	return dests, nil
}

// AddToPool increments the pool balance atomically in SQL.
func (r *pgDestinationRepo) AddToPool(ctx context.Context, id int64, delta *big.Int) (*big.Int, error) {
	const q = `
		UPDATE destinations
		SET pool_balance = pool_balance + @delta
		WHERE id = @id
		RETURNING pool_balance`

	var raw pgtype.Numeric
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "delta": numeric(delta)}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.DestinationRepo.AddToPool: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.DestinationRepo.AddToPool: %w", mapPgError(err))
	}
	balance, err := bigFromNumeric(raw)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.AddToPool: %w", err)
	}
	return balance, nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var d domain.Destination
	if err := scanDestinationInto(s, &d); err != nil {
		return domain.Destination{}, err
	}
	return d, nil
}

// scanDestinationInto scans destinationColumns into d followed by any extra
// trailing columns.
func scanDestinationInto(s scanner, d *domain.Destination, extra ...any) error {
	var pool pgtype.Numeric

	dest := []any{&d.ID, &d.Name, &d.Country, &d.Latitude, &d.Longitude, &d.RadiusMeters, &d.PlaceValue, &pool, &d.Active, &d.CreatedAt}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	balance, err := bigFromNumeric(pool)
	if err != nil {
		return err
	}
	d.PoolBalance = balance
	return nil
}
