package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/wanderify/oracle/internal/cache"
	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/geofence"
	"github.com/wanderify/oracle/internal/metrics"
	"github.com/wanderify/oracle/internal/repo"
)

// expireBatch bounds how many overdue commitments one sweep handles.
const expireBatch = 500

// LedgerConfig holds the lifecycle policy of the ledger.
type LedgerConfig struct {
	Window         domain.CheckInWindow
	PoolBalanceTTL time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// LedgerService owns the commitment state machine. Every transition runs in
// its own transaction holding the commitment's row lock, so two requests for
// the same commitment are serialized and never both observe it staked.
type LedgerService struct {
	tx      repo.Transactor
	repos   repo.Tx
	signer  Signer
	cache   Cache
	cfg     LedgerConfig
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewLedgerService constructs a LedgerService. repos is used for reads that
// need no lock; writes go through tx.
func NewLedgerService(tx repo.Transactor, repos repo.Tx, signer Signer, c Cache, cfg LedgerConfig, m *metrics.Metrics, log *slog.Logger) *LedgerService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &LedgerService{tx: tx, repos: repos, signer: signer, cache: c, cfg: cfg, metrics: m, log: log}
}

// Verify checks a presence claim and, if it passes, moves the commitment to
// verified and returns the attestation. A claim against a commitment that is
// already verified returns the signature issued the first time.
//
// The signature is only returned after the transition has committed; on any
// error the commitment is left as it was, except that a staked commitment
// past its deadline is expired before ErrStateConflict is returned.
func (s *LedgerService) Verify(ctx context.Context, claim domain.Claim) (domain.Verification, error) {
	v, expired, err := s.verify(ctx, claim)

	switch {
	case expired:
		s.metrics.ObserveVerification(metrics.OutcomeExpired)
		s.metrics.ObserveExpired(1)
		s.log.InfoContext(ctx, "commitment expired", "commitment_id", claim.CommitmentID, "trigger", "late_claim")
	default:
		s.metrics.ObserveVerification(verifyOutcome(v, err))
	}
	if err != nil {
		return domain.Verification{}, err
	}

	if v.Replayed {
		s.log.InfoContext(ctx, "verification replayed", "commitment_id", v.CommitmentID)
	} else {
		s.log.InfoContext(ctx, "commitment verified",
			"commitment_id", v.CommitmentID,
			"destination_id", v.DestinationID,
			"distance_m", v.DistanceMeters,
			"zk_proof", claim.ZKProof != "",
		)
	}
	return v, nil
}

func (s *LedgerService) verify(ctx context.Context, claim domain.Claim) (domain.Verification, bool, error) {
	user, point, err := validateClaim(claim)
	if err != nil {
		return domain.Verification{}, false, err
	}

	dest, err := s.repos.Destinations.GetByID(ctx, claim.DestinationID)
	if err != nil {
		return domain.Verification{}, false, err
	}
	if !dest.Active {
		return domain.Verification{}, false, fmt.Errorf("%w: destination %d is not active", domain.ErrNotFound, dest.ID)
	}

	var (
		out     domain.Verification
		expired bool
	)
	err = s.tx.InTx(ctx, func(ctx context.Context, tx repo.Tx) error {
		c, err := tx.Commitments.GetForUpdate(ctx, claim.CommitmentID)
		if err != nil {
			return err
		}
		if c.UserAddress != user {
			return fmt.Errorf("%w: commitment %d does not belong to %s", domain.ErrValidation, c.ID, user)
		}
		if c.DestinationID != dest.ID {
			return fmt.Errorf("%w: commitment %d is not for destination %d", domain.ErrValidation, c.ID, dest.ID)
		}

		switch c.State {
		case domain.StateVerified:
			out = verificationOf(c, true)
			return nil
		case domain.StateSettledSuccess, domain.StateSettledFailure:
			return fmt.Errorf("%w: commitment %d is %s", domain.ErrStateConflict, c.ID, c.State)
		}

		now := s.cfg.Now()
		if s.cfg.Window.Expired(c, now) {
			if _, err := tx.Commitments.MarkSettled(ctx, c.ID, domain.StateStaked, domain.StateSettledFailure, "", now); err != nil {
				return err
			}
			expired = true
			return nil
		}
		if err := s.cfg.Window.Check(c, now); err != nil {
			return err
		}

		res, err := geofence.WithinRadius(point, dest)
		if err != nil {
			return err
		}
		if !res.Within {
			return &domain.GeofenceViolation{Distance: res.Distance, Required: res.Required}
		}

		att, err := s.signer.Sign(c.ID, c.UserAddress, c.DestinationID)
		if err != nil {
			return err
		}
		verified, err := tx.Commitments.MarkVerified(ctx, c.ID, att.Signature, res.RoundedDistance(), now)
		if err != nil {
			return err
		}
		out = verificationOf(verified, false)
		return nil
	})
	if err != nil {
		return domain.Verification{}, false, err
	}
	if expired {
		return domain.Verification{}, true, fmt.Errorf("%w: commitment %d expired", domain.ErrStateConflict, claim.CommitmentID)
	}
	return out, false, nil
}

func validateClaim(claim domain.Claim) (string, geofence.Point, error) {
	if claim.CommitmentID <= 0 {
		return "", geofence.Point{}, fmt.Errorf("%w: commitmentId must be a positive integer", domain.ErrValidation)
	}
	if claim.DestinationID <= 0 {
		return "", geofence.Point{}, fmt.Errorf("%w: destinationId must be a positive integer", domain.ErrValidation)
	}
	user, err := domain.NormalizeAddress(claim.UserAddress)
	if err != nil {
		return "", geofence.Point{}, err
	}
	point := geofence.Point{Lat: claim.Latitude, Lon: claim.Longitude}
	if err := geofence.ValidatePoint(point); err != nil {
		return "", geofence.Point{}, err
	}
	return user, point, nil
}

func verificationOf(c domain.Commitment, replayed bool) domain.Verification {
	v := domain.Verification{
		CommitmentID:  c.ID,
		DestinationID: c.DestinationID,
		Signature:     c.Signature,
		Replayed:      replayed,
	}
	if c.VerifiedDistanceM != nil {
		v.DistanceMeters = *c.VerifiedDistanceM
	}
	return v
}

func verifyOutcome(v domain.Verification, err error) string {
	switch {
	case err == nil && v.Replayed:
		return metrics.OutcomeReplayed
	case err == nil:
		return metrics.OutcomeVerified
	case errors.Is(err, domain.ErrGeofence):
		return metrics.OutcomeGeofence
	case errors.Is(err, domain.ErrOutsideWindow):
		return metrics.OutcomeWindow
	case errors.Is(err, domain.ErrStateConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrConfiguration):
		return metrics.OutcomeConfiguration
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}

// Create records a stake observed on the settlement ledger. The user is
// created on first sight and the destination pool grows by the stake.
func (s *LedgerService) Create(ctx context.Context, c domain.Commitment) (domain.Commitment, error) {
	if c.ID <= 0 {
		return domain.Commitment{}, fmt.Errorf("%w: id must be a positive integer", domain.ErrValidation)
	}
	if c.DestinationID <= 0 {
		return domain.Commitment{}, fmt.Errorf("%w: destinationId must be a positive integer", domain.ErrValidation)
	}
	user, err := domain.NormalizeAddress(c.UserAddress)
	if err != nil {
		return domain.Commitment{}, err
	}
	c.UserAddress = user
	if c.Amount == nil || c.Amount.Sign() <= 0 {
		return domain.Commitment{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if !c.TravelDate.After(s.cfg.Now()) {
		return domain.Commitment{}, fmt.Errorf("%w: travelDate must be in the future", domain.ErrValidation)
	}

	var (
		created domain.Commitment
		balance *big.Int
	)
	err = s.tx.InTx(ctx, func(ctx context.Context, tx repo.Tx) error {
		dest, err := tx.Destinations.GetByID(ctx, c.DestinationID)
		if err != nil {
			return err
		}
		if !dest.Active {
			return fmt.Errorf("%w: destination %d is not active", domain.ErrNotFound, dest.ID)
		}
		if _, err := tx.Users.GetOrCreate(ctx, c.UserAddress); err != nil {
			return err
		}
		created, err = tx.Commitments.Create(ctx, c)
		if err != nil {
			if errors.Is(err, domain.ErrStateConflict) {
				return fmt.Errorf("%w: commitment %d already exists", domain.ErrStateConflict, c.ID)
			}
			return err
		}
		balance, err = tx.Destinations.AddToPool(ctx, c.DestinationID, c.Amount)
		return err
	})
	if err != nil {
		return domain.Commitment{}, err
	}

	// Concurrent stakes commit in any order, so the cached balance is dropped
	// rather than overwritten; the next read seeds it from the store.
	if err := s.cache.Delete(ctx, cache.PoolBalanceKey(created.DestinationID)); err != nil {
		s.log.WarnContext(ctx, "pool balance cache invalidation failed", "destination_id", created.DestinationID, "error", err)
	}
	s.log.InfoContext(ctx, "commitment staked",
		"commitment_id", created.ID,
		"destination_id", created.DestinationID,
		"amount_wei", created.Amount.String(),
		"pool_wei", balance.String(),
	)
	return created, nil
}

// Settle records the settlement ledger's outcome for a commitment. A success
// requires a verified commitment and writes its Journey in the same
// transaction; a failure is accepted from staked or verified.
func (s *LedgerService) Settle(ctx context.Context, st domain.Settlement) (domain.Commitment, error) {
	if st.CommitmentID <= 0 {
		return domain.Commitment{}, fmt.Errorf("%w: commitment id must be a positive integer", domain.ErrValidation)
	}
	if st.Success && st.Reward == nil {
		return domain.Commitment{}, fmt.Errorf("%w: reward is required for a successful settlement", domain.ErrValidation)
	}
	if st.Reward != nil && st.Reward.Sign() < 0 {
		return domain.Commitment{}, fmt.Errorf("%w: reward must not be negative", domain.ErrValidation)
	}
	if st.At.IsZero() {
		st.At = s.cfg.Now()
	}

	target := domain.StateSettledFailure
	if st.Success {
		target = domain.StateSettledSuccess
	}

	var settled domain.Commitment
	err := s.tx.InTx(ctx, func(ctx context.Context, tx repo.Tx) error {
		c, err := tx.Commitments.GetForUpdate(ctx, st.CommitmentID)
		if err != nil {
			return err
		}
		if !c.State.CanTransition(target) {
			return fmt.Errorf("%w: commitment %d is %s, cannot become %s", domain.ErrStateConflict, c.ID, c.State, target)
		}
		settled, err = tx.Commitments.MarkSettled(ctx, c.ID, c.State, target, st.TxHash, st.At)
		if err != nil {
			return err
		}
		if !st.Success {
			return nil
		}
		_, err = tx.Journeys.Create(ctx, domain.Journey{
			CommitmentID:  c.ID,
			UserAddress:   c.UserAddress,
			DestinationID: c.DestinationID,
			Reward:        st.Reward,
			CompletedAt:   st.At,
		})
		return err
	})
	if err != nil {
		return domain.Commitment{}, err
	}

	if st.Success {
		if err := s.cache.Delete(ctx, cache.LeaderboardKey); err != nil {
			s.log.WarnContext(ctx, "leaderboard cache invalidation failed", "error", err)
		}
	}
	s.log.InfoContext(ctx, "commitment settled", "commitment_id", settled.ID, "state", string(settled.State))
	return settled, nil
}

// ExpireOverdue moves staked commitments whose check-in deadline has passed
// to settled_failure. It returns how many were expired; failures on single
// commitments are joined and do not stop the sweep.
func (s *LedgerService) ExpireOverdue(ctx context.Context) (int, error) {
	now := s.cfg.Now()
	ids, err := s.repos.Commitments.ListStakedBefore(ctx, now.Add(-s.cfg.Window.Grace), expireBatch)
	if err != nil {
		return 0, err
	}

	var (
		expired int
		errs    []error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		done := false
		err := s.tx.InTx(ctx, func(ctx context.Context, tx repo.Tx) error {
			c, err := tx.Commitments.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			// A claim may have won the lock since the list was read.
			if c.State != domain.StateStaked || !s.cfg.Window.Expired(c, now) {
				return nil
			}
			if _, err := tx.Commitments.MarkSettled(ctx, id, domain.StateStaked, domain.StateSettledFailure, "", now); err != nil {
				return err
			}
			done = true
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("expire commitment %d: %w", id, err))
			continue
		}
		if done {
			expired++
			s.log.InfoContext(ctx, "commitment expired", "commitment_id", id, "trigger", "sweep")
		}
	}

	s.metrics.ObserveExpired(expired)
	return expired, errors.Join(errs...)
}

// Get returns a commitment by ID.
func (s *LedgerService) Get(ctx context.Context, id int64) (domain.Commitment, error) {
	if id <= 0 {
		return domain.Commitment{}, fmt.Errorf("%w: commitment id must be a positive integer", domain.ErrValidation)
	}
	return s.repos.Commitments.GetByID(ctx, id)
}
