package handler

import (
	"context"

	"github.com/wanderify/oracle/internal/handler/gen"
)

const serviceName = "wanderify-api"

// GetIndex handles GET /.
// It reports the service identity and the oracle address, never the key.
func (s *Server) GetIndex(ctx context.Context, _ gen.GetIndexRequestObject) (gen.GetIndexResponseObject, error) {
	resp := gen.GetIndex200JSONResponse{
		Status:  "ok",
		Service: serviceName,
		Version: s.info.Version,
	}
	if s.info.OracleAddress != "" {
		addr := s.info.OracleAddress
		resp.OracleAddress = &addr
	}
	return resp, nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "healthy"}, nil
}
