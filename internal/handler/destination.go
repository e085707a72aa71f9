package handler

import (
	"context"
	"errors"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/handler/gen"
)

// ListDestinations handles GET /api/destinations.
func (s *Server) ListDestinations(ctx context.Context, _ gen.ListDestinationsRequestObject) (gen.ListDestinationsResponseObject, error) {
	dests, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]gen.Destination, len(dests))
	for i, d := range dests {
		out[i] = destinationToResponse(d, false)
	}
	return gen.ListDestinations200JSONResponse{Destinations: out}, nil
}

// GetDestination handles GET /api/destinations/{id}.
func (s *Server) GetDestination(ctx context.Context, req gen.GetDestinationRequestObject) (gen.GetDestinationResponseObject, error) {
	d, err := s.destinations.Get(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetDestination400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(detail(err, domain.ErrValidation, "invalid destination id")))}, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetDestination404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody("Destination not found"))}, nil
		}
		return nil, err
	}
	return gen.GetDestination200JSONResponse{Destination: destinationToResponse(d, true)}, nil
}

// destinationToResponse converts a domain.Destination into the generated type.
// Counts are only loaded on the single-destination read.
func destinationToResponse(d domain.Destination, withCounts bool) gen.Destination {
	resp := gen.Destination{
		Id:           d.ID,
		Name:         d.Name,
		Country:      d.Country,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		RadiusMeters: d.RadiusMeters,
		PlaceValue:   d.PlaceValue,
		PoolBalance:  domain.AmountString(d.PoolBalance),
		IsActive:     d.Active,
		CreatedAt:    d.CreatedAt,
	}
	if withCounts {
		commitments, journeys := d.TotalCommitments, d.TotalJourneys
		resp.TotalCommitments = &commitments
		resp.TotalJourneys = &journeys
	}
	return resp
}
