package service_test

import (
	"context"
	"errors"
	"maps"
	"math/big"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderify/oracle/internal/attest"
	"github.com/wanderify/oracle/internal/cache"
	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/metrics"
	"github.com/wanderify/oracle/internal/repo"
	"github.com/wanderify/oracle/internal/service"
)

const (
	// Well-known development key; never holds funds.
	testKey    = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testWallet = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
)

var travelDate = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// ledgerFixture wires a LedgerService to an in-memory commitment store.
// The transactor mutex plays the role of the row lock.
type ledgerFixture struct {
	svc     *service.LedgerService
	tx      *mockTransactor
	cache   *mapCache
	metrics *metrics.Metrics
	signs   atomic.Int32
	signErr error
	now     time.Time

	mu          sync.Mutex
	dest        domain.Destination
	commitments map[int64]domain.Commitment
	journeys    []domain.Journey
	pool        *big.Int
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	f := &ledgerFixture{
		cache:   newMapCache(),
		metrics: metrics.New(prometheus.NewRegistry()),
		now:     travelDate,
		dest: domain.Destination{
			ID: 1, Name: "Paris", Latitude: 48.8566, Longitude: 2.3522,
			RadiusMeters: 50, PoolBalance: big.NewInt(0), Active: true,
		},
		commitments: map[int64]domain.Commitment{},
		pool:        big.NewInt(0),
	}
	f.put(domain.Commitment{
		ID: 7, UserAddress: testWallet, DestinationID: 1,
		Amount: wei("1000000000000000000"), TravelDate: travelDate, State: domain.StateStaked,
	})

	oracle := attest.Load(testKey)
	signer := &mockSigner{sign: func(cid int64, user string, did int64) (domain.Attestation, error) {
		f.signs.Add(1)
		if f.signErr != nil {
			return domain.Attestation{}, f.signErr
		}
		return oracle.Sign(cid, user, did)
	}}

	repos := repo.Tx{
		Destinations: f.destinationRepo(),
		Users: &mockUserRepo{getOrCreate: func(_ context.Context, w string) (domain.User, error) {
			return domain.User{WalletAddress: w}, nil
		}},
		Commitments: f.commitmentRepo(),
		Journeys: &mockJourneyRepo{create: func(_ context.Context, j domain.Journey) (domain.Journey, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, existing := range f.journeys {
				if existing.CommitmentID == j.CommitmentID {
					return domain.Journey{}, domain.ErrStateConflict
				}
			}
			f.journeys = append(f.journeys, j)
			return j, nil
		}},
	}
	var (
		snapCommitments map[int64]domain.Commitment
		snapJourneys    []domain.Journey
		snapPool        *big.Int
	)
	f.tx = &mockTransactor{
		repos: repos,
		begin: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			snapCommitments = maps.Clone(f.commitments)
			snapJourneys = slices.Clone(f.journeys)
			snapPool = new(big.Int).Set(f.pool)
		},
		rollback: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.commitments, f.journeys, f.pool = snapCommitments, snapJourneys, snapPool
		},
	}

	cfg := service.LedgerConfig{
		Window:         domain.CheckInWindow{OpensBefore: 24 * time.Hour, Grace: 24 * time.Hour},
		PoolBalanceTTL: 5 * time.Minute,
		Now:            func() time.Time { return f.now },
	}
	f.svc = service.NewLedgerService(f.tx, repos, signer, f.cache, cfg, f.metrics, discardLogger())
	return f
}

func (f *ledgerFixture) put(c domain.Commitment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commitments[c.ID] = c
}

func (f *ledgerFixture) get(id int64) domain.Commitment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commitments[id]
}

func (f *ledgerFixture) destinationRepo() *mockDestinationRepo {
	return &mockDestinationRepo{
		getByID: func(_ context.Context, id int64) (domain.Destination, error) {
			if id != f.dest.ID {
				return domain.Destination{}, domain.ErrNotFound
			}
			return f.dest, nil
		},
		addToPool: func(_ context.Context, id int64, delta *big.Int) (*big.Int, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.pool.Add(f.pool, delta)
			return new(big.Int).Set(f.pool), nil
		},
	}
}

func (f *ledgerFixture) commitmentRepo() *mockCommitmentRepo {
	load := func(_ context.Context, id int64) (domain.Commitment, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		c, ok := f.commitments[id]
		if !ok {
			return domain.Commitment{}, domain.ErrNotFound
		}
		return c, nil
	}
	return &mockCommitmentRepo{
		getByID:      load,
		getForUpdate: load,
		create: func(_ context.Context, c domain.Commitment) (domain.Commitment, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, ok := f.commitments[c.ID]; ok {
				return domain.Commitment{}, domain.ErrStateConflict
			}
			c.State = domain.StateStaked
			f.commitments[c.ID] = c
			return c, nil
		},
		listStakedBefore: func(_ context.Context, cutoff time.Time, limit int) ([]int64, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var ids []int64
			for id, c := range f.commitments {
				if c.State == domain.StateStaked && c.TravelDate.Before(cutoff) {
					ids = append(ids, id)
				}
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			return ids, nil
		},
		markVerified: func(_ context.Context, id int64, sig string, distanceM int, at time.Time) (domain.Commitment, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			c := f.commitments[id]
			if c.State != domain.StateStaked {
				return domain.Commitment{}, domain.ErrStateConflict
			}
			c.State, c.Signature, c.VerifiedDistanceM, c.VerifiedAt = domain.StateVerified, sig, &distanceM, &at
			f.commitments[id] = c
			return c, nil
		},
		markSettled: func(_ context.Context, id int64, from, to domain.CommitmentState, txHash string, at time.Time) (domain.Commitment, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			c := f.commitments[id]
			if c.State != from {
				return domain.Commitment{}, domain.ErrStateConflict
			}
			c.State, c.SettledAt = to, &at
			if txHash != "" {
				c.TxHash = txHash
			}
			f.commitments[id] = c
			return c, nil
		},
	}
}

func claimAt(lat, lon float64) domain.Claim {
	return domain.Claim{CommitmentID: 7, UserAddress: testWallet, DestinationID: 1, Latitude: lat, Longitude: lon}
}

// ---- Verify ----------------------------------------------------------------

func TestLedgerService_Verify_AtDestination(t *testing.T) {
	f := newLedgerFixture(t)

	got, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.CommitmentID)
	assert.Equal(t, int64(1), got.DestinationID)
	assert.Equal(t, 0, got.DistanceMeters)
	assert.False(t, got.Replayed)

	signer, err := attest.Recover(domain.Attestation{CommitmentID: 7, UserAddress: testWallet, DestinationID: 1, Signature: got.Signature})
	require.NoError(t, err)
	assert.Equal(t, attest.Load(testKey).Address(), signer, "signature must be bound to the triple")

	stored := f.get(7)
	assert.Equal(t, domain.StateVerified, stored.State)
	assert.Equal(t, got.Signature, stored.Signature)
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Verifications.WithLabelValues(metrics.OutcomeVerified)))
}

func TestLedgerService_Verify_InsideRadius(t *testing.T) {
	f := newLedgerFixture(t)

	got, err := f.svc.Verify(context.Background(), claimAt(48.8570, 2.3522))

	require.NoError(t, err)
	assert.Equal(t, 44, got.DistanceMeters)
}

func TestLedgerService_Verify_OutsideRadius(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.Verify(context.Background(), claimAt(48.9000, 2.3522))

	require.ErrorIs(t, err, domain.ErrGeofence)
	var gv *domain.GeofenceViolation
	require.ErrorAs(t, err, &gv)
	assert.InDelta(t, 4826, gv.Distance, 1)
	assert.Equal(t, 50.0, gv.Required)
	assert.Equal(t, domain.StateStaked, f.get(7).State, "rejected claim must not change state")
	assert.Zero(t, f.signs.Load(), "nothing is signed for a rejected claim")
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Verifications.WithLabelValues(metrics.OutcomeGeofence)))
}

func TestLedgerService_Verify_ReplayReturnsSameSignature(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	first, err := f.svc.Verify(ctx, claimAt(48.8566, 2.3522))
	require.NoError(t, err)
	// A retry from somewhere else inside the fence still gets the original attestation.
	second, err := f.svc.Verify(ctx, claimAt(48.8570, 2.3522))
	require.NoError(t, err)

	assert.Equal(t, first.Signature, second.Signature)
	assert.Equal(t, first.DistanceMeters, second.DistanceMeters)
	assert.True(t, second.Replayed)
	assert.Equal(t, int32(1), f.signs.Load())
}

func TestLedgerService_Verify_ConcurrentClaimsSignOnce(t *testing.T) {
	f := newLedgerFixture(t)

	const n = 20
	var wg sync.WaitGroup
	sigs := make([]string, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))
			sigs[i], errs[i] = v.Signature, err
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, sigs[0], sigs[i], "every caller must see the same attestation")
	}
	assert.Equal(t, int32(1), f.signs.Load(), "exactly one signature is ever issued")
}

func TestLedgerService_Verify_ExpiredCommitment(t *testing.T) {
	f := newLedgerFixture(t)
	f.now = travelDate.Add(25 * time.Hour)
	ctx := context.Background()

	_, err := f.svc.Verify(ctx, claimAt(48.8566, 2.3522))

	assert.ErrorIs(t, err, domain.ErrStateConflict)
	assert.Equal(t, domain.StateSettledFailure, f.get(7).State, "expiry is committed even though the claim is rejected")
	assert.Zero(t, f.signs.Load())

	_, err = f.svc.Verify(ctx, claimAt(48.8566, 2.3522))
	assert.ErrorIs(t, err, domain.ErrStateConflict, "a settled commitment stays rejected")
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Expirations))
}

func TestLedgerService_Verify_TooEarly(t *testing.T) {
	f := newLedgerFixture(t)
	f.now = travelDate.Add(-48 * time.Hour)

	_, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))

	assert.ErrorIs(t, err, domain.ErrOutsideWindow)
	assert.Equal(t, domain.StateStaked, f.get(7).State)
}

func TestLedgerService_Verify_SignerNotConfigured(t *testing.T) {
	f := newLedgerFixture(t)
	f.signErr = attest.Load("").Err()

	_, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))

	assert.ErrorIs(t, err, domain.ErrConfiguration)
	stored := f.get(7)
	assert.Equal(t, domain.StateStaked, stored.State, "no partial transition")
	assert.Empty(t, stored.Signature)
}

func TestLedgerService_Verify_SettledCommitment(t *testing.T) {
	f := newLedgerFixture(t)
	c := f.get(7)
	c.State = domain.StateSettledSuccess
	c.Signature = "0xsig"
	f.put(c)

	_, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))

	assert.ErrorIs(t, err, domain.ErrStateConflict)
	assert.Zero(t, f.signs.Load())
}

func TestLedgerService_Verify_Mismatches(t *testing.T) {
	tests := []struct {
		name  string
		claim func(c *domain.Claim)
		want  error
	}{
		{"other user", func(c *domain.Claim) { c.UserAddress = "0x0000000000000000000000000000000000000001" }, domain.ErrValidation},
		{"mixed-case owner is accepted", func(c *domain.Claim) { c.UserAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8" }, nil},
		{"unknown commitment", func(c *domain.Claim) { c.CommitmentID = 99 }, domain.ErrNotFound},
		{"unknown destination", func(c *domain.Claim) { c.DestinationID = 2 }, domain.ErrNotFound},
		{"zero commitment id", func(c *domain.Claim) { c.CommitmentID = 0 }, domain.ErrValidation},
		{"latitude out of range", func(c *domain.Claim) { c.Latitude = 91 }, domain.ErrValidation},
		{"longitude out of range", func(c *domain.Claim) { c.Longitude = -181 }, domain.ErrValidation},
		{"malformed address", func(c *domain.Claim) { c.UserAddress = "alice" }, domain.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newLedgerFixture(t)
			claim := claimAt(48.8566, 2.3522)
			tc.claim(&claim)

			_, err := f.svc.Verify(context.Background(), claim)

			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, domain.StateStaked, f.get(7).State)
		})
	}
}

func TestLedgerService_Verify_CommitmentForOtherDestination(t *testing.T) {
	f := newLedgerFixture(t)
	c := f.get(7)
	c.DestinationID = 2
	f.put(c)

	_, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedgerService_Verify_InactiveDestination(t *testing.T) {
	f := newLedgerFixture(t)
	f.dest.Active = false

	_, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.tx.calls, "no transaction for an unknown destination")
}

// ---- Create ----------------------------------------------------------------

func TestLedgerService_Create(t *testing.T) {
	f := newLedgerFixture(t)
	f.now = travelDate.Add(-72 * time.Hour)

	got, err := f.svc.Create(context.Background(), domain.Commitment{
		ID: 8, UserAddress: "0x70997970C51812DC3A010C7D01B50E0D17DC79C8", DestinationID: 1,
		Amount: wei("2500000000000000000"), TravelDate: travelDate,
	})

	require.NoError(t, err)
	assert.Equal(t, testWallet, got.UserAddress, "address is normalized")
	assert.Equal(t, domain.StateStaked, got.State)
	assert.Equal(t, "2500000000000000000", f.pool.String())
	_, ok, _ := f.cache.Get(context.Background(), cache.PoolBalanceKey(1))
	assert.False(t, ok, "pool balance cache dropped after a stake")
}

func TestLedgerService_Create_ConcurrentStakesNeverCacheLowerBalance(t *testing.T) {
	f := newLedgerFixture(t)
	f.now = travelDate.Add(-72 * time.Hour)
	require.NoError(t, f.cache.Set(context.Background(), cache.PoolBalanceKey(1), []byte("1"), time.Hour))

	var wg sync.WaitGroup
	for i := int64(0); i < 8; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := f.svc.Create(context.Background(), domain.Commitment{
				ID: id, UserAddress: testWallet, DestinationID: 1,
				Amount: big.NewInt(10), TravelDate: travelDate,
			})
			assert.NoError(t, err)
		}(100 + i)
	}
	wg.Wait()

	assert.Equal(t, "80", f.pool.String())
	_, ok, _ := f.cache.Get(context.Background(), cache.PoolBalanceKey(1))
	assert.False(t, ok, "no stake may leave its own, possibly older, balance cached")
}

func TestLedgerService_Create_Validation(t *testing.T) {
	valid := func() domain.Commitment {
		return domain.Commitment{ID: 8, UserAddress: testWallet, DestinationID: 1, Amount: big.NewInt(1), TravelDate: travelDate}
	}
	tests := []struct {
		name   string
		mutate func(c *domain.Commitment)
	}{
		{"zero amount", func(c *domain.Commitment) { c.Amount = big.NewInt(0) }},
		{"nil amount", func(c *domain.Commitment) { c.Amount = nil }},
		{"travel date not in future", func(c *domain.Commitment) { c.TravelDate = travelDate.Add(-72 * time.Hour) }},
		{"bad id", func(c *domain.Commitment) { c.ID = -1 }},
		{"bad address", func(c *domain.Commitment) { c.UserAddress = "0x123" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newLedgerFixture(t)
			f.now = travelDate.Add(-72 * time.Hour)
			c := valid()
			tc.mutate(&c)

			_, err := f.svc.Create(context.Background(), c)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestLedgerService_Create_Duplicate(t *testing.T) {
	f := newLedgerFixture(t)
	f.now = travelDate.Add(-72 * time.Hour)

	_, err := f.svc.Create(context.Background(), domain.Commitment{
		ID: 7, UserAddress: testWallet, DestinationID: 1, Amount: big.NewInt(1), TravelDate: travelDate,
	})

	assert.ErrorIs(t, err, domain.ErrStateConflict)
}

// ---- Settle ----------------------------------------------------------------

func TestLedgerService_Settle_Success(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	_, err := f.svc.Verify(ctx, claimAt(48.8566, 2.3522))
	require.NoError(t, err)
	require.NoError(t, f.cache.Set(ctx, cache.LeaderboardKey, []byte("[]"), time.Hour))

	got, err := f.svc.Settle(ctx, domain.Settlement{CommitmentID: 7, Success: true, Reward: wei("1200000000000000000"), TxHash: "0xfeed"})

	require.NoError(t, err)
	assert.Equal(t, domain.StateSettledSuccess, got.State)
	assert.Equal(t, "0xfeed", got.TxHash)
	require.Len(t, f.journeys, 1)
	assert.Equal(t, "1200000000000000000", f.journeys[0].Reward.String())
	assert.Equal(t, testWallet, f.journeys[0].UserAddress)
	_, cached, _ := f.cache.Get(ctx, cache.LeaderboardKey)
	assert.False(t, cached, "leaderboard must be invalidated")
}

func TestLedgerService_Settle_SuccessRequiresVerified(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.Settle(context.Background(), domain.Settlement{CommitmentID: 7, Success: true, Reward: big.NewInt(1)})

	assert.ErrorIs(t, err, domain.ErrStateConflict)
	assert.Empty(t, f.journeys)
	assert.Equal(t, domain.StateStaked, f.get(7).State)
}

func TestLedgerService_Settle_FailureFromStaked(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	got, err := f.svc.Settle(ctx, domain.Settlement{CommitmentID: 7})
	require.NoError(t, err)
	assert.Equal(t, domain.StateSettledFailure, got.State)
	assert.Empty(t, f.journeys)

	_, err = f.svc.Settle(ctx, domain.Settlement{CommitmentID: 7})
	assert.ErrorIs(t, err, domain.ErrStateConflict, "terminal states never move")
}

func TestLedgerService_Settle_Validation(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.Settle(context.Background(), domain.Settlement{CommitmentID: 7, Success: true})
	assert.ErrorIs(t, err, domain.ErrValidation, "reward required")

	_, err = f.svc.Settle(context.Background(), domain.Settlement{CommitmentID: 7, Success: true, Reward: big.NewInt(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation, "negative reward")
}

// ---- ExpireOverdue ---------------------------------------------------------

func TestLedgerService_ExpireOverdue(t *testing.T) {
	f := newLedgerFixture(t)
	f.put(domain.Commitment{ID: 8, UserAddress: testWallet, DestinationID: 1, Amount: big.NewInt(1),
		TravelDate: travelDate.Add(72 * time.Hour), State: domain.StateStaked})
	f.put(domain.Commitment{ID: 9, UserAddress: testWallet, DestinationID: 1, Amount: big.NewInt(1),
		TravelDate: travelDate.Add(-72 * time.Hour), State: domain.StateVerified, Signature: "0xsig"})
	f.now = travelDate.Add(48 * time.Hour)

	n, err := f.svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, domain.StateSettledFailure, f.get(7).State)
	assert.Equal(t, domain.StateStaked, f.get(8).State, "not yet due")
	assert.Equal(t, domain.StateVerified, f.get(9).State, "verified commitments await settlement")
}

func TestLedgerService_ExpireOverdue_ContinuesPastFailures(t *testing.T) {
	f := newLedgerFixture(t)
	f.put(domain.Commitment{ID: 8, UserAddress: testWallet, DestinationID: 1, Amount: big.NewInt(1),
		TravelDate: travelDate, State: domain.StateStaked})
	f.now = travelDate.Add(48 * time.Hour)

	boom := errors.New("db exploded")
	inner := f.tx.repos.Commitments.(*mockCommitmentRepo)
	settle := inner.markSettled
	inner.markSettled = func(ctx context.Context, id int64, from, to domain.CommitmentState, h string, at time.Time) (domain.Commitment, error) {
		if id == 7 {
			return domain.Commitment{}, boom
		}
		return settle(ctx, id, from, to, h, at)
	}

	n, err := f.svc.ExpireOverdue(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
	assert.Equal(t, domain.StateSettledFailure, f.get(8).State)
}

// ---- Get -------------------------------------------------------------------

func TestLedgerService_Get(t *testing.T) {
	f := newLedgerFixture(t)

	got, err := f.svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, testWallet, got.UserAddress)

	_, err = f.svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedgerService_Verify_CommitFailureReturnsNoSignature(t *testing.T) {
	f := newLedgerFixture(t)
	storeDown := errors.New("connection reset by peer")
	f.tx.commitErr = storeDown

	got, err := f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))

	require.ErrorIs(t, err, storeDown)
	assert.Equal(t, domain.Verification{}, got, "no signature leaves the oracle")
	assert.Equal(t, int32(1), f.signs.Load(), "the signature was produced before the commit failed")

	c := f.get(7)
	assert.Equal(t, domain.StateStaked, c.State, "commitment untouched")
	assert.Empty(t, c.Signature)
	assert.Nil(t, c.VerifiedAt)

	assert.Zero(t, promtest.ToFloat64(f.metrics.Verifications.WithLabelValues(metrics.OutcomeVerified)))
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Verifications.WithLabelValues(metrics.OutcomeError)))

	// Once the store recovers the same claim succeeds.
	f.tx.commitErr = nil
	got, err = f.svc.Verify(context.Background(), claimAt(48.8566, 2.3522))
	require.NoError(t, err)
	assert.NotEmpty(t, got.Signature)
	assert.Equal(t, domain.StateVerified, f.get(7).State)
}
