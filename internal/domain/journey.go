package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Journey is the settled record of a commitment that reached SettledSuccess.
// It is written once, in the same transaction as that transition, and never updated.
type Journey struct {
	ID            uuid.UUID
	CommitmentID  int64
	UserAddress   string
	DestinationID int64
	// Reward is the payout in wei.
	Reward      *big.Int
	CompletedAt time.Time
}

// JourneyReward is the projection the leaderboard scan reads.
type JourneyReward struct {
	WalletAddress string
	Reward        *big.Int
}
