// Package types defines the fixed-size canonical byte containers that cross
// the verification library's boundary: scalars, compressed curve points, and
// blobs. No curve arithmetic lives here; decoding into gnark-crypto types
// happens in the packages that consume these wrappers.
package types

import (
	"encoding/hex"
	"fmt"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

// Bytes32 is a fixed 32-byte buffer, used for scalar field elements (z, y)
// on the wire.
type Bytes32 [32]byte

// Bytes48 is a fixed 48-byte buffer, used for compressed G1 points
// (commitments and proofs) on the wire.
type Bytes48 [48]byte

// Bytes96 is a fixed 96-byte buffer, used for compressed G2 points.
type Bytes96 [96]byte

// NewBytes32 copies b into a Bytes32, failing if the length doesn't match.
func NewBytes32(b []byte) (Bytes32, error) {
	var out Bytes32
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: want %d bytes, got %d", kzgerr.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewBytes48 copies b into a Bytes48, failing if the length doesn't match.
func NewBytes48(b []byte) (Bytes48, error) {
	var out Bytes48
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: want %d bytes, got %d", kzgerr.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Bytes32FromHex decodes a hex string (optionally "0x"-prefixed) into a Bytes32.
func Bytes32FromHex(s string) (Bytes32, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Bytes32{}, err
	}
	return NewBytes32(b)
}

// Bytes48FromHex decodes a hex string (optionally "0x"-prefixed) into a Bytes48.
func Bytes48FromHex(s string) (Bytes48, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Bytes48{}, err
	}
	return NewBytes48(b)
}

func decodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kzgerr.ErrInvalidHexFormat, err)
	}
	return b, nil
}

func (b Bytes32) String() string { return "0x" + hex.EncodeToString(b[:]) }
func (b Bytes48) String() string { return "0x" + hex.EncodeToString(b[:]) }
func (b Bytes96) String() string { return "0x" + hex.EncodeToString(b[:]) }
