package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// User is keyed by wallet address. Commitments and journeys reference the
// user; the user never stores back-references to them.
type User struct {
	ID            uuid.UUID
	WalletAddress string
	CreatedAt     time.Time
}

// UserStats are derived from a user's commitments and journeys on read.
type UserStats struct {
	ActiveCommitments int
	CompletedJourneys int
	TotalStaked       *big.Int
	TotalRewards      *big.Int
}

// UserProfile is the read model returned by the users endpoint.
type UserProfile struct {
	User        User
	Stats       UserStats
	Commitments []Commitment
	Journeys    []Journey
}

// NewUserStats computes the derived statistics with exact integer sums.
// A commitment counts as active until it reaches a terminal state.
func NewUserStats(commitments []Commitment, journeys []Journey) UserStats {
	stats := UserStats{
		CompletedJourneys: len(journeys),
		TotalStaked:       new(big.Int),
		TotalRewards:      new(big.Int),
	}
	for _, c := range commitments {
		if !c.State.Terminal() {
			stats.ActiveCommitments++
		}
		if c.Amount != nil {
			stats.TotalStaked.Add(stats.TotalStaked, c.Amount)
		}
	}
	for _, j := range journeys {
		if j.Reward != nil {
			stats.TotalRewards.Add(stats.TotalRewards, j.Reward)
		}
	}
	return stats
}

// NormalizeAddress validates a 0x-prefixed 20-byte hex wallet address and
// returns it lowercased, which is the form used as the unique key.
func NormalizeAddress(s string) (string, error) {
	a := strings.TrimSpace(s)
	if !strings.HasPrefix(strings.ToLower(a), "0x") || !common.IsHexAddress(a) {
		return "", fmt.Errorf("%w: invalid wallet address %q", ErrValidation, s)
	}
	return strings.ToLower(a), nil
}
