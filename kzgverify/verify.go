package kzgverify

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
	"github.com/vocdoni/go-kzg4844/trustedsetup"
	"github.com/vocdoni/go-kzg4844/types"
)

// VerifyKZGProof checks that commitment opens to y at z, witnessed by proof,
// against the given trusted setup. A false, nil result means the proof was
// well-formed but rejected; only malformed input produces an error.
// Grounded on other_examples' go-kzg-4844 kzg_verify.go's Verify, rendered
// against the non-circuit SRS this module carries.
func VerifyKZGProof(setup *trustedsetup.Setup, commitment types.Bytes48, z, y types.Bytes32, proof types.Bytes48) (bool, error) {
	c, err := parseG1Checked(commitment)
	if err != nil {
		return false, fmt.Errorf("parsing commitment: %w", err)
	}
	pi, err := parseG1Checked(proof)
	if err != nil {
		return false, fmt.Errorf("parsing proof: %w", err)
	}
	zElem, err := safeScalarFromBytes(z)
	if err != nil {
		return false, fmt.Errorf("parsing z: %w", err)
	}
	yElem, err := safeScalarFromBytes(y)
	if err != nil {
		return false, fmt.Errorf("parsing y: %w", err)
	}

	return verifyPairing(setup, c, pi, zElem, yElem)
}

// verifyPairing checks e(C - [y]_1, G2) == e(pi, [tau]_2 - [z]_2), rendered
// as a single two-pair pairing check: e(C-[y]_1, G2) * e(-pi,
// [tau]_2-[z]_2) == 1.
func verifyPairing(setup *trustedsetup.Setup, commitment, proof bls12381.G1Affine, z, y fr.Element) (bool, error) {
	_, _, g1Gen, g2Gen := bls12381.Generators()

	var yBig big.Int
	y.BigInt(&yBig)
	var yG1 bls12381.G1Affine
	yG1.ScalarMultiplication(&g1Gen, &yBig)

	var cMinusY bls12381.G1Affine
	cMinusY.Sub(&commitment, &yG1)

	var zBig big.Int
	z.BigInt(&zBig)
	var zG2 bls12381.G2Affine
	zG2.ScalarMultiplication(&g2Gen, &zBig)

	tauMinusZ := setup.G2Points[1]
	tauMinusZ.Sub(&tauMinusZ, &zG2)

	var negProof bls12381.G1Affine
	negProof.Neg(&proof)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{cMinusY, negProof},
		[]bls12381.G2Affine{g2Gen, tauMinusZ},
	)
	if err != nil {
		return false, fmt.Errorf("%w: pairing check: %v", kzgerr.ErrInternal, err)
	}
	return ok, nil
}
