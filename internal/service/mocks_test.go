package service_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/repo"
	"github.com/wanderify/oracle/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs.

type mockDestinationRepo struct {
	create     func(ctx context.Context, d domain.Destination) (domain.Destination, error)
	getByID    func(ctx context.Context, id int64) (domain.Destination, error)
	listActive func(ctx context.Context) ([]domain.Destination, error)
	addToPool  func(ctx context.Context, id int64, delta *big.Int) (*big.Int, error)
}

func (m *mockDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.create(ctx, d)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id int64) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepo) ListActive(ctx context.Context) ([]domain.Destination, error) {
	return m.listActive(ctx)
}
func (m *mockDestinationRepo) AddToPool(ctx context.Context, id int64, delta *big.Int) (*big.Int, error) {
	return m.addToPool(ctx, id, delta)
}

type mockUserRepo struct {
	getOrCreate func(ctx context.Context, wallet string) (domain.User, error)
}

func (m *mockUserRepo) GetOrCreate(ctx context.Context, wallet string) (domain.User, error) {
	return m.getOrCreate(ctx, wallet)
}

type mockCommitmentRepo struct {
	create           func(ctx context.Context, c domain.Commitment) (domain.Commitment, error)
	getByID          func(ctx context.Context, id int64) (domain.Commitment, error)
	getForUpdate     func(ctx context.Context, id int64) (domain.Commitment, error)
	listByUser       func(ctx context.Context, wallet string) ([]domain.Commitment, error)
	listStakedBefore func(ctx context.Context, cutoff time.Time, limit int) ([]int64, error)
	markVerified     func(ctx context.Context, id int64, sig string, distanceM int, at time.Time) (domain.Commitment, error)
	markSettled      func(ctx context.Context, id int64, from, to domain.CommitmentState, txHash string, at time.Time) (domain.Commitment, error)
}

func (m *mockCommitmentRepo) Create(ctx context.Context, c domain.Commitment) (domain.Commitment, error) {
	return m.create(ctx, c)
}
func (m *mockCommitmentRepo) GetByID(ctx context.Context, id int64) (domain.Commitment, error) {
	return m.getByID(ctx, id)
}
func (m *mockCommitmentRepo) GetForUpdate(ctx context.Context, id int64) (domain.Commitment, error) {
	return m.getForUpdate(ctx, id)
}
func (m *mockCommitmentRepo) ListByUser(ctx context.Context, wallet string) ([]domain.Commitment, error) {
	return m.listByUser(ctx, wallet)
}
func (m *mockCommitmentRepo) ListStakedBefore(ctx context.Context, cutoff time.Time, limit int) ([]int64, error) {
	return m.listStakedBefore(ctx, cutoff, limit)
}
func (m *mockCommitmentRepo) MarkVerified(ctx context.Context, id int64, sig string, distanceM int, at time.Time) (domain.Commitment, error) {
	return m.markVerified(ctx, id, sig, distanceM, at)
}
func (m *mockCommitmentRepo) MarkSettled(ctx context.Context, id int64, from, to domain.CommitmentState, txHash string, at time.Time) (domain.Commitment, error) {
	return m.markSettled(ctx, id, from, to, txHash, at)
}

type mockJourneyRepo struct {
	create      func(ctx context.Context, j domain.Journey) (domain.Journey, error)
	listByUser  func(ctx context.Context, wallet string) ([]domain.Journey, error)
	listRewards func(ctx context.Context) ([]domain.JourneyReward, error)
}

func (m *mockJourneyRepo) Create(ctx context.Context, j domain.Journey) (domain.Journey, error) {
	return m.create(ctx, j)
}
func (m *mockJourneyRepo) ListByUser(ctx context.Context, wallet string) ([]domain.Journey, error) {
	return m.listByUser(ctx, wallet)
}
func (m *mockJourneyRepo) ListRewards(ctx context.Context) ([]domain.JourneyReward, error) {
	return m.listRewards(ctx)
}

// mockTransactor serializes units of work behind one mutex, standing in for
// the row lock, and hands fn the configured repos.
type mockTransactor struct {
	mu    sync.Mutex
	repos repo.Tx
	calls int

	// begin and rollback let a fixture snapshot and restore its store.
	begin    func()
	rollback func()
	// commitErr makes the commit fail after fn succeeded.
	commitErr error
}

func (m *mockTransactor) InTx(ctx context.Context, fn func(ctx context.Context, tx repo.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.begin != nil {
		m.begin()
	}
	err := fn(ctx, m.repos)
	if err == nil {
		err = m.commitErr
	}
	if err != nil && m.rollback != nil {
		m.rollback()
	}
	return err
}

type mockSigner struct {
	sign func(commitmentID int64, user string, destinationID int64) (domain.Attestation, error)
}

func (m *mockSigner) Sign(commitmentID int64, user string, destinationID int64) (domain.Attestation, error) {
	return m.sign(commitmentID, user, destinationID)
}

// mapCache is a working in-memory Cache. getErr/setErr simulate an
// unavailable cache.
type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	deleted []string
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = append([]byte(nil), value...)
	c.ttls[key] = ttl
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

// compile-time checks: the doubles must satisfy the interfaces they replace.
var (
	_ repo.DestinationRepo = (*mockDestinationRepo)(nil)
	_ repo.UserRepo        = (*mockUserRepo)(nil)
	_ repo.CommitmentRepo  = (*mockCommitmentRepo)(nil)
	_ repo.JourneyRepo     = (*mockJourneyRepo)(nil)
	_ repo.Transactor      = (*mockTransactor)(nil)
	_ service.Signer       = (*mockSigner)(nil)
	_ service.Cache        = (*mapCache)(nil)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func wei(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad wei literal " + s)
	}
	return v
}
