// Package geofence checks presence claims against a destination's circular
// acceptance radius. Everything here is pure and safe for concurrent use.
package geofence

import (
	"fmt"
	"math"

	"github.com/wanderify/oracle/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6_371_000.0

// Point is a WGS 84 coordinate in signed decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Result is the outcome of a radius check.
type Result struct {
	Distance float64
	Required float64
	Within   bool
}

// RoundedDistance returns the distance rounded to whole meters.
func (r Result) RoundedDistance() int {
	return int(math.Round(r.Distance))
}

// ValidatePoint rejects coordinates outside lat [-90, 90] and lon [-180, 180].
// Out-of-range input is an error, it is never wrapped around.
func ValidatePoint(p Point) error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", domain.ErrValidation, p.Lat)
	}
	if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", domain.ErrValidation, p.Lon)
	}
	return nil
}

// DistanceMeters returns the haversine great-circle distance between a and b.
func DistanceMeters(a, b Point) (float64, error) {
	if err := ValidatePoint(a); err != nil {
		return 0, err
	}
	if err := ValidatePoint(b); err != nil {
		return 0, err
	}
	return haversine(a, b), nil
}

// WithinRadius measures the claim against dest's coordinates and radius.
func WithinRadius(claim Point, dest domain.Destination) (Result, error) {
	d, err := DistanceMeters(claim, Point{Lat: dest.Latitude, Lon: dest.Longitude})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Distance: d,
		Required: dest.RadiusMeters,
		Within:   d <= dest.RadiusMeters,
	}, nil
}

func haversine(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push h a hair past 1 for antipodal points.
	h = math.Min(1, h)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
