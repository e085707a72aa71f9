// Package handler implements the HTTP handlers for the oracle API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (verify.go, destination.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/handler/gen"
)

// LedgerServicer defines the commitment lifecycle operations the handlers
// depend on. Defining the interface here, in the consumer package, lets
// handler tests inject a mock without touching the database.
type LedgerServicer interface {
	Verify(ctx context.Context, claim domain.Claim) (domain.Verification, error)
	Create(ctx context.Context, c domain.Commitment) (domain.Commitment, error)
	Settle(ctx context.Context, st domain.Settlement) (domain.Commitment, error)
	Get(ctx context.Context, id int64) (domain.Commitment, error)
}

// LeaderboardServicer serves the ranked leaderboard.
type LeaderboardServicer interface {
	Get(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// DestinationServicer serves destination projections.
type DestinationServicer interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Get(ctx context.Context, id int64) (domain.Destination, error)
}

// UserServicer serves user profiles.
type UserServicer interface {
	Get(ctx context.Context, address string) (domain.UserProfile, error)
}

// Info is the service identity reported by GET /.
type Info struct {
	Version string
	// OracleAddress is the signer's address; empty when no key is configured.
	OracleAddress string
}

// Server implements gen.StrictServerInterface for all API endpoints.
type Server struct {
	ledger       LedgerServicer
	leaderboard  LeaderboardServicer
	destinations DestinationServicer
	users        UserServicer
	info         Info
	log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(ledger LedgerServicer, leaderboard LeaderboardServicer, destinations DestinationServicer, users UserServicer, info Info, log *slog.Logger) *Server {
	return &Server{
		ledger:       ledger,
		leaderboard:  leaderboard,
		destinations: destinations,
		users:        users,
		info:         info,
		log:          log,
	}
}

// Routes returns the generated chi router bound to s. Malformed requests
// and unexpected errors are answered with JSON error bodies.
func (s *Server) Routes() http.Handler {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	base := chi.NewRouter()
	base.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("Not found"))
	})
	base.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("Method not allowed"))
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       base,
		ErrorHandlerFunc: s.requestError,
	})
}
