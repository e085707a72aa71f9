package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/handler"
)

// mockLedger is a test double for handler.LedgerServicer.
// Set only the method fields your test needs.
type mockLedger struct {
	verify func(ctx context.Context, claim domain.Claim) (domain.Verification, error)
	create func(ctx context.Context, c domain.Commitment) (domain.Commitment, error)
	settle func(ctx context.Context, st domain.Settlement) (domain.Commitment, error)
	get    func(ctx context.Context, id int64) (domain.Commitment, error)
}

func (m *mockLedger) Verify(ctx context.Context, claim domain.Claim) (domain.Verification, error) {
	return m.verify(ctx, claim)
}
func (m *mockLedger) Create(ctx context.Context, c domain.Commitment) (domain.Commitment, error) {
	return m.create(ctx, c)
}
func (m *mockLedger) Settle(ctx context.Context, st domain.Settlement) (domain.Commitment, error) {
	return m.settle(ctx, st)
}
func (m *mockLedger) Get(ctx context.Context, id int64) (domain.Commitment, error) {
	return m.get(ctx, id)
}

type mockLeaderboard struct {
	get func(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

func (m *mockLeaderboard) Get(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return m.get(ctx)
}

type mockDestinations struct {
	list func(ctx context.Context) ([]domain.Destination, error)
	get  func(ctx context.Context, id int64) (domain.Destination, error)
}

func (m *mockDestinations) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinations) Get(ctx context.Context, id int64) (domain.Destination, error) {
	return m.get(ctx, id)
}

type mockUsers struct {
	get func(ctx context.Context, address string) (domain.UserProfile, error)
}

func (m *mockUsers) Get(ctx context.Context, address string) (domain.UserProfile, error) {
	return m.get(ctx, address)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.LedgerServicer      = (*mockLedger)(nil)
	_ handler.LeaderboardServicer = (*mockLeaderboard)(nil)
	_ handler.DestinationServicer = (*mockDestinations)(nil)
	_ handler.UserServicer        = (*mockUsers)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps groups the mocks a test wires into the server. Nil fields become
// zero-value mocks whose methods panic if called.
type deps struct {
	ledger       *mockLedger
	leaderboard  *mockLeaderboard
	destinations *mockDestinations
	users        *mockUsers
	info         handler.Info
}

// newHTTPHandler wires a Server with the given mocks the same way main.go does.
func newHTTPHandler(d deps) http.Handler {
	if d.ledger == nil {
		d.ledger = &mockLedger{}
	}
	if d.leaderboard == nil {
		d.leaderboard = &mockLeaderboard{}
	}
	if d.destinations == nil {
		d.destinations = &mockDestinations{}
	}
	if d.users == nil {
		d.users = &mockUsers{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(d.ledger, d.leaderboard, d.destinations, d.users, d.info, log).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeMap decodes a response body into a generic map so tests can assert
// on which keys are present.
func decodeMap(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&m))
	return m
}

func wei(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad amount " + s)
	}
	return v
}
