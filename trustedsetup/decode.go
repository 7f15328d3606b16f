package trustedsetup

import (
	"bytes"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// decodeUnchecked decompresses a G1 or G2 point without a subgroup check,
// grounded on crypto/blobs/kzg.go's initVerificationKey: SRS points come
// from a public ceremony and are certified as a whole by the monomial-form
// pairing check, not point-by-point.
func decodeUnchecked(buf []byte, point any) error {
	dec := bls12381.NewDecoder(bytes.NewReader(buf), bls12381.NoSubgroupChecks())
	return dec.Decode(point)
}

// DecodeUnchecked is decodeUnchecked exported for packages that parse SRS
// material outside this package (e.g. a binary cache with an alternate
// layout).
func DecodeUnchecked(buf []byte, point any) error { return decodeUnchecked(buf, point) }

// DecodeChecked decompresses a G1 or G2 point with the default subgroup
// check. Used for untrusted wire input (commitments and proofs) as
// opposed to SRS bytes, which are decoded unchecked above.
func DecodeChecked(buf []byte, point any) error {
	dec := bls12381.NewDecoder(bytes.NewReader(buf))
	return dec.Decode(point)
}
