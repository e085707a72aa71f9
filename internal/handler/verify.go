package handler

import (
	"context"
	"errors"
	"math"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/handler/gen"
)

// VerifyPresence handles POST /api/verify.
func (s *Server) VerifyPresence(ctx context.Context, req gen.VerifyPresenceRequestObject) (gen.VerifyPresenceResponseObject, error) {
	if req.Body == nil {
		return gen.VerifyPresence400JSONResponse{Error: "request body is required"}, nil
	}
	// An absent coordinate would decode as 0 and be measured from (0,0).
	if req.Body.Latitude == nil || req.Body.Longitude == nil {
		return gen.VerifyPresence400JSONResponse{Error: "latitude and longitude are required"}, nil
	}
	claim := domain.Claim{
		CommitmentID:  req.Body.CommitmentId,
		UserAddress:   req.Body.UserAddress,
		DestinationID: req.Body.DestinationId,
		Latitude:      *req.Body.Latitude,
		Longitude:     *req.Body.Longitude,
	}
	if req.Body.ZkProof != nil {
		claim.ZKProof = *req.Body.ZkProof
	}

	v, err := s.ledger.Verify(ctx, claim)
	if err != nil {
		return s.verifyError(ctx, claim, err)
	}

	return gen.VerifyPresence200JSONResponse{
		Verified:      true,
		Signature:     v.Signature,
		Distance:      v.DistanceMeters,
		CommitmentId:  v.CommitmentID,
		DestinationId: v.DestinationID,
	}, nil
}

func (s *Server) verifyError(ctx context.Context, claim domain.Claim, err error) (gen.VerifyPresenceResponseObject, error) {
	var gv *domain.GeofenceViolation
	switch {
	case errors.As(err, &gv):
		verified := false
		distance := int(math.Round(gv.Distance))
		required := gv.Required
		return gen.VerifyPresence400JSONResponse{
			Verified: &verified,
			Error:    msgTooFar,
			Distance: &distance,
			Required: &required,
		}, nil
	case errors.Is(err, domain.ErrValidation):
		return gen.VerifyPresence400JSONResponse{Error: detail(err, domain.ErrValidation, "invalid claim")}, nil
	case errors.Is(err, domain.ErrNotFound):
		return gen.VerifyPresence404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody(detail(err, domain.ErrNotFound, "Commitment or destination not found")))}, nil
	case errors.Is(err, domain.ErrStateConflict):
		return gen.VerifyPresence409JSONResponse{ConflictJSONResponse: gen.ConflictJSONResponse(errorBody(detail(err, domain.ErrStateConflict, "Commitment cannot be verified in its current state")))}, nil
	case errors.Is(err, domain.ErrConfiguration):
		s.log.ErrorContext(ctx, "attestation signer unavailable", "commitment_id", claim.CommitmentID, "error", err)
		return gen.VerifyPresence500JSONResponse{InternalErrorJSONResponse: gen.InternalErrorJSONResponse(errorBody(msgConfiguration))}, nil
	}
	return nil, err
}
