package repo_test

import (
	"context"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/repo"
	"github.com/wanderify/oracle/testutil"
)

// newTestTx opens a transaction that is rolled back when the test finishes,
// giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; TestMain applies the migrations.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// newTestRepos returns every repo bound to a rolled-back test transaction.
func newTestRepos(t *testing.T) repo.Tx {
	t.Helper()
	return repo.NewTx(newTestTx(t))
}

// commitmentIDs hands out commitment IDs unlikely to collide with data
// left behind by other packages sharing the test database.
var commitmentIDs atomic.Int64

func init() {
	commitmentIDs.Store(time.Now().UnixNano() / 1000)
}

func nextCommitmentID() int64 {
	return commitmentIDs.Add(1)
}

func destinationFixture() domain.Destination {
	return domain.Destination{
		Name:         "Eiffel Tower",
		Country:      "France",
		Latitude:     48.8584,
		Longitude:    2.2945,
		RadiusMeters: 50,
		PlaceValue:   1,
		PoolBalance:  big.NewInt(0),
		Active:       true,
	}
}

// seed creates a destination and a user and returns them.
func seed(t *testing.T, r repo.Tx, wallet string) (domain.Destination, domain.User) {
	t.Helper()
	ctx := context.Background()

	d, err := r.Destinations.Create(ctx, destinationFixture())
	require.NoError(t, err, "seed destination")
	u, err := r.Users.GetOrCreate(ctx, wallet)
	require.NoError(t, err, "seed user")
	return d, u
}

func commitmentFixture(d domain.Destination, u domain.User) domain.Commitment {
	amount, _ := new(big.Int).SetString("1000000000000000000", 10)
	return domain.Commitment{
		ID:            nextCommitmentID(),
		UserAddress:   u.WalletAddress,
		DestinationID: d.ID,
		Amount:        amount,
		TravelDate:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
