// Package domain contains the core data types for the commitment oracle.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"math/big"
	"time"
)

// Destination is a place a user can commit to visit.
// Coordinates and radius are fixed at creation; only PoolBalance and Active
// change, driven by settlement events.
type Destination struct {
	ID        int64
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
	// RadiusMeters is the geofence acceptance radius.
	RadiusMeters float64
	// PlaceValue orders destinations in listings.
	PlaceValue int
	// PoolBalance is the aggregate stake in wei. Never nil once loaded.
	PoolBalance *big.Int
	Active      bool
	CreatedAt   time.Time

	// Derived on single reads; zero in listings.
	TotalCommitments int
	TotalJourneys    int
}
