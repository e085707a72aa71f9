package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input is malformed or out of range
// (bad coordinates, missing fields, non-positive stake).
// Handlers should map this to HTTP 400. Nothing has been written when it is returned.
var ErrValidation = errors.New("validation error")

// ErrStateConflict is returned when an operation is attempted against a
// commitment whose lifecycle state does not allow it, e.g. verifying a
// commitment that already settled. Handlers should map this to HTTP 409.
var ErrStateConflict = errors.New("state conflict")

// ErrConfiguration is returned when the oracle signing key is missing or malformed.
// It is fatal for the request and must not be retried by the caller.
var ErrConfiguration = errors.New("configuration error")

// ErrGeofence is the sentinel matched by GeofenceViolation.
var ErrGeofence = errors.New("outside geofence")

// ErrOutsideWindow is returned for a presence claim made before the check-in
// window opens. It wraps ErrValidation so generic handlers treat it as a 4xx.
var ErrOutsideWindow = fmt.Errorf("%w: outside check-in window", ErrValidation)

// GeofenceViolation reports a presence claim that was well-formed but too far
// from the destination. The caller may move closer and retry.
type GeofenceViolation struct {
	// Distance is the measured great-circle distance in meters.
	Distance float64
	// Required is the destination's acceptance radius in meters.
	Required float64
}

func (e *GeofenceViolation) Error() string {
	return fmt.Sprintf("outside geofence: %.0fm from destination, radius %.0fm", e.Distance, e.Required)
}

// Is lets errors.Is(err, ErrGeofence) match a wrapped *GeofenceViolation.
func (e *GeofenceViolation) Is(target error) bool {
	return target == ErrGeofence
}
