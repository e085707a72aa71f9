// Package attest issues the oracle's attestation: a signature over
// (commitment, user, destination) that the settlement contract recomputes and
// checks before releasing a stake.
//
// The encoding must match the contract byte for byte:
//
//	digest    = keccak256(abi.encodePacked(uint256 commitmentId, address user, uint256 destinationId))
//	signature = sign(keccak256("\x19Ethereum Signed Message:\n32" || digest))
//
// with v encoded as 27/28.
package attest

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/wanderify/oracle/internal/domain"
)

// packedLen is uint256 + address + uint256.
const packedLen = 32 + common.AddressLength + 32

// Signer holds the oracle key. It is loaded once at startup and only read
// afterwards, so one Signer is shared by all requests.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	err     error
}

// Load parses a hex secp256k1 private key (optional 0x prefix).
// It never fails: a missing or malformed key produces a Signer whose Sign
// reports domain.ErrConfiguration, so the service can still serve reads.
func Load(hexKey string) *Signer {
	k := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if k == "" {
		return &Signer{err: errors.New("signing key is not set")}
	}
	key, err := crypto.HexToECDSA(k)
	if err != nil {
		// The parse error can quote key characters, so it is dropped.
		return &Signer{err: errors.New("signing key is malformed")}
	}
	return &Signer{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}
}

// Err returns the configuration failure, or nil when the signer can sign.
func (s *Signer) Err() error {
	if s == nil {
		return fmt.Errorf("%w: signer not configured", domain.ErrConfiguration)
	}
	if s.err != nil {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, s.err)
	}
	return nil
}

// Address returns the lowercase oracle address the settlement contract
// trusts, or "" when the signer is not configured.
func (s *Signer) Address() string {
	if s.Err() != nil {
		return ""
	}
	return strings.ToLower(s.address.Hex())
}

// Sign returns the attestation for the triple. Identical inputs always give
// the identical signature (RFC 6979 nonces).
func (s *Signer) Sign(commitmentID int64, userAddress string, destinationID int64) (domain.Attestation, error) {
	if err := s.Err(); err != nil {
		return domain.Attestation{}, fmt.Errorf("attest.Signer.Sign: %w", err)
	}

	digest, err := Digest(commitmentID, userAddress, destinationID)
	if err != nil {
		return domain.Attestation{}, fmt.Errorf("attest.Signer.Sign: %w", err)
	}

	sig, err := crypto.Sign(accounts.TextHash(digest), s.key)
	if err != nil {
		return domain.Attestation{}, fmt.Errorf("attest.Signer.Sign: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return domain.Attestation{
		CommitmentID:  commitmentID,
		UserAddress:   strings.ToLower(userAddress),
		DestinationID: destinationID,
		Signature:     hexutil.Encode(sig),
	}, nil
}

// Pack returns abi.encodePacked(uint256, address, uint256) for the triple.
func Pack(commitmentID int64, userAddress string, destinationID int64) ([]byte, error) {
	if commitmentID <= 0 {
		return nil, fmt.Errorf("%w: commitment id must be positive", domain.ErrValidation)
	}
	if destinationID <= 0 {
		return nil, fmt.Errorf("%w: destination id must be positive", domain.ErrValidation)
	}
	if _, err := domain.NormalizeAddress(userAddress); err != nil {
		return nil, err
	}

	out := make([]byte, 0, packedLen)
	out = append(out, common.LeftPadBytes(big.NewInt(commitmentID).Bytes(), 32)...)
	out = append(out, common.HexToAddress(userAddress).Bytes()...)
	out = append(out, common.LeftPadBytes(big.NewInt(destinationID).Bytes(), 32)...)
	return out, nil
}

// Digest is keccak256 of Pack.
func Digest(commitmentID int64, userAddress string, destinationID int64) ([]byte, error) {
	packed, err := Pack(commitmentID, userAddress, destinationID)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(packed), nil
}

// Recover returns the lowercase address that produced att's signature over
// att's own triple. Settlement performs the same check on chain.
func Recover(att domain.Attestation) (string, error) {
	sig, err := hexutil.Decode(att.Signature)
	if err != nil {
		return "", fmt.Errorf("%w: signature is not hex", domain.ErrValidation)
	}
	if len(sig) != crypto.SignatureLength {
		return "", fmt.Errorf("%w: signature must be %d bytes", domain.ErrValidation, crypto.SignatureLength)
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	digest, err := Digest(att.CommitmentID, att.UserAddress, att.DestinationID)
	if err != nil {
		return "", err
	}
	pub, err := crypto.SigToPub(accounts.TextHash(digest), sig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()), nil
}
