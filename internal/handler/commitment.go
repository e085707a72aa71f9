package handler

import (
	"context"
	"errors"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/handler/gen"
)

// CreateCommitment handles POST /api/commitments.
func (s *Server) CreateCommitment(ctx context.Context, req gen.CreateCommitmentRequestObject) (gen.CreateCommitmentResponseObject, error) {
	c, err := requestToCommitment(req.Body)
	if err != nil {
		return gen.CreateCommitment400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(detail(err, domain.ErrValidation, err.Error())))}, nil
	}

	created, err := s.ledger.Create(ctx, c)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateCommitment400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(detail(err, domain.ErrValidation, "invalid commitment")))}, nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.CreateCommitment404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody("Destination not found"))}, nil
		case errors.Is(err, domain.ErrStateConflict):
			return gen.CreateCommitment409JSONResponse{ConflictJSONResponse: gen.ConflictJSONResponse(errorBody(detail(err, domain.ErrStateConflict, "Commitment already exists")))}, nil
		}
		return nil, err
	}

	return gen.CreateCommitment201JSONResponse{Commitment: commitmentToResponse(created)}, nil
}

// GetCommitment handles GET /api/commitments/{id}.
func (s *Server) GetCommitment(ctx context.Context, req gen.GetCommitmentRequestObject) (gen.GetCommitmentResponseObject, error) {
	c, err := s.ledger.Get(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetCommitment400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(detail(err, domain.ErrValidation, "invalid commitment id")))}, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCommitment404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody("Commitment not found"))}, nil
		}
		return nil, err
	}
	return gen.GetCommitment200JSONResponse{Commitment: commitmentToResponse(c)}, nil
}

// SettleCommitment handles POST /api/commitments/{id}/settlement.
func (s *Server) SettleCommitment(ctx context.Context, req gen.SettleCommitmentRequestObject) (gen.SettleCommitmentResponseObject, error) {
	st, err := requestToSettlement(req.Id, req.Body)
	if err != nil {
		return gen.SettleCommitment400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(detail(err, domain.ErrValidation, err.Error())))}, nil
	}

	settled, err := s.ledger.Settle(ctx, st)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.SettleCommitment400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(detail(err, domain.ErrValidation, "invalid settlement")))}, nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.SettleCommitment404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody("Commitment not found"))}, nil
		case errors.Is(err, domain.ErrStateConflict):
			return gen.SettleCommitment409JSONResponse{ConflictJSONResponse: gen.ConflictJSONResponse(errorBody(detail(err, domain.ErrStateConflict, "Commitment cannot be settled in its current state")))}, nil
		}
		return nil, err
	}

	return gen.SettleCommitment200JSONResponse{Commitment: commitmentToResponse(settled)}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToCommitment converts a CreateCommitmentRequest body into a domain.Commitment.
func requestToCommitment(body *gen.CreateCommitmentRequest) (domain.Commitment, error) {
	if body == nil {
		return domain.Commitment{}, errors.New("request body is required")
	}
	amount, err := domain.ParseAmount(body.Amount)
	if err != nil {
		return domain.Commitment{}, err
	}
	c := domain.Commitment{
		ID:            body.Id,
		UserAddress:   body.UserAddress,
		DestinationID: body.DestinationId,
		Amount:        amount,
		TravelDate:    body.TravelDate,
	}
	if body.TxHash != nil {
		c.TxHash = *body.TxHash
	}
	return c, nil
}

// requestToSettlement builds a domain.Settlement, taking the ID from the path.
func requestToSettlement(id int64, body *gen.SettlementRequest) (domain.Settlement, error) {
	if body == nil {
		return domain.Settlement{}, errors.New("request body is required")
	}
	st := domain.Settlement{CommitmentID: id, Success: body.Success}
	if body.Reward != nil {
		reward, err := domain.ParseAmount(*body.Reward)
		if err != nil {
			return domain.Settlement{}, err
		}
		st.Reward = reward
	}
	if body.TxHash != nil {
		st.TxHash = *body.TxHash
	}
	if body.SettledAt != nil {
		st.At = *body.SettledAt
	}
	return st, nil
}

// commitmentToResponse converts a domain.Commitment into the generated type.
func commitmentToResponse(c domain.Commitment) gen.Commitment {
	resp := gen.Commitment{
		Id:               c.ID,
		UserAddress:      c.UserAddress,
		DestinationId:    c.DestinationID,
		Amount:           domain.AmountString(c.Amount),
		TravelDate:       c.TravelDate,
		State:            gen.CommitmentState(c.State),
		VerifiedDistance: c.VerifiedDistanceM,
		VerifiedAt:       c.VerifiedAt,
		SettledAt:        c.SettledAt,
		CreatedAt:        c.CreatedAt,
	}
	if c.Signature != "" {
		sig := c.Signature
		resp.Signature = &sig
	}
	if c.TxHash != "" {
		h := c.TxHash
		resp.TxHash = &h
	}
	return resp
}
