package domain

import (
	"fmt"
	"math/big"
	"time"
)

// CommitmentState is a commitment's position in its lifecycle.
// States only move forward:
//
//	staked -> verified -> settled_success
//	staked -> settled_failure            (expiry or rejection)
//	verified -> settled_failure          (settlement rejected the attestation)
type CommitmentState string

const (
	StateStaked         CommitmentState = "staked"
	StateVerified       CommitmentState = "verified"
	StateSettledSuccess CommitmentState = "settled_success"
	StateSettledFailure CommitmentState = "settled_failure"
)

// Valid reports whether s is one of the known states.
func (s CommitmentState) Valid() bool {
	switch s {
	case StateStaked, StateVerified, StateSettledSuccess, StateSettledFailure:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s CommitmentState) Terminal() bool {
	return s == StateSettledSuccess || s == StateSettledFailure
}

// CanTransition reports whether moving from s to next is a forward edge.
func (s CommitmentState) CanTransition(next CommitmentState) bool {
	switch s {
	case StateStaked:
		return next == StateVerified || next == StateSettledFailure
	case StateVerified:
		return next == StateSettledSuccess || next == StateSettledFailure
	}
	return false
}

// Commitment is a user's stake against visiting a destination by TravelDate.
type Commitment struct {
	ID            int64
	UserAddress   string
	DestinationID int64
	// Amount is the stake in wei; always > 0.
	Amount     *big.Int
	TravelDate time.Time
	State      CommitmentState
	// Signature is the attestation issued on verification, empty before.
	Signature         string
	VerifiedDistanceM *int
	VerifiedAt        *time.Time
	SettledAt         *time.Time
	// TxHash references the external settlement transaction when known.
	TxHash    string
	CreatedAt time.Time
}

// CheckInWindow bounds when a presence claim is accepted relative to the
// commitment's travel date.
type CheckInWindow struct {
	// OpensBefore is how long before TravelDate claims start being accepted.
	OpensBefore time.Duration
	// Grace is how long after TravelDate claims are still accepted. The
	// commitment expires once it has passed.
	Grace time.Duration
}

// Opens returns the earliest instant a claim is accepted for c.
func (w CheckInWindow) Opens(c Commitment) time.Time {
	return c.TravelDate.Add(-w.OpensBefore)
}

// Deadline returns the last instant a claim is accepted for c.
func (w CheckInWindow) Deadline(c Commitment) time.Time {
	return c.TravelDate.Add(w.Grace)
}

// Expired reports whether c can no longer be verified at now.
func (w CheckInWindow) Expired(c Commitment, now time.Time) bool {
	return now.After(w.Deadline(c))
}

// Check returns ErrOutsideWindow when now is before the window opens.
// Expiry is reported separately by Expired because it changes state.
func (w CheckInWindow) Check(c Commitment, now time.Time) error {
	if now.Before(w.Opens(c)) {
		return fmt.Errorf("%w: opens at %s", ErrOutsideWindow, w.Opens(c).UTC().Format(time.RFC3339))
	}
	return nil
}

// Claim is a presence claim for a commitment.
type Claim struct {
	CommitmentID  int64
	UserAddress   string
	DestinationID int64
	Latitude      float64
	Longitude     float64
	// ZKProof is accepted but carries no trust weight.
	ZKProof string
}

// Attestation is the oracle's signature over (commitment, user, destination).
type Attestation struct {
	CommitmentID  int64
	UserAddress   string
	DestinationID int64
	// Signature is the 0x-prefixed hex encoding of the 65-byte signature.
	Signature string
}

// Verification is the outcome of a successful presence claim.
type Verification struct {
	CommitmentID  int64
	DestinationID int64
	Signature     string
	// DistanceMeters is the rounded distance measured for the claim.
	DistanceMeters int
	// Replayed is true when the signature was issued by an earlier claim.
	Replayed bool
}

// Settlement is an outcome observed on the external settlement ledger.
type Settlement struct {
	CommitmentID int64
	Success      bool
	// Reward is required for successful settlements.
	Reward *big.Int
	TxHash string
	At     time.Time
}
