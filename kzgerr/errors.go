// Package kzgerr defines the sentinel error kinds used across the module,
// grounded on the taxonomy of crypto/elgamal's one-var-per-kind style and on
// the KzgError enum it mirrors: BadArgs, InvalidBytesLength,
// InvalidHexFormat, InvalidTrustedSetup, InternalError.
package kzgerr

import "errors"

var (
	// ErrBadArgs covers malformed points (not on curve, wrong subgroup),
	// non-canonical scalars, and zero batch-inversion input.
	ErrBadArgs = errors.New("bad arguments")

	// ErrInvalidBytesLength covers slice-to-fixed-array conversions,
	// mismatched batch lengths, and transcript length mismatches.
	ErrInvalidBytesLength = errors.New("invalid byte length")

	// ErrInvalidHexFormat covers hex decoding failures during SRS text ingest.
	ErrInvalidHexFormat = errors.New("invalid hex format")

	// ErrInvalidTrustedSetup covers SRS pairing/monomial check failures and
	// a roots-of-unity expansion that does not close at 1.
	ErrInvalidTrustedSetup = errors.New("invalid trusted setup")

	// ErrInternal is reserved for invariant violations on paths a correct
	// caller cannot reach.
	ErrInternal = errors.New("internal error")
)
