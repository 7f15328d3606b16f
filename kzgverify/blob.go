package kzgverify

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/fiatshamir"
	"github.com/vocdoni/go-kzg4844/polyeval"
	"github.com/vocdoni/go-kzg4844/trustedsetup"
	"github.com/vocdoni/go-kzg4844/types"
)

// VerifyBlobKZGProof checks that blob commits to commitment and opens
// correctly under the Fiat-Shamir-derived challenge, witnessed by proof.
// Grounded on original_source/src/kzg_proof.rs's verify_blob_kzg_proof.
func VerifyBlobKZGProof(setup *trustedsetup.Setup, blob types.Blob, commitment, proof types.Bytes48) (bool, error) {
	z, y, err := challengeAndEvaluate(setup, blob, commitment)
	if err != nil {
		return false, err
	}

	var zBytes, yBytes types.Bytes32
	zb := z.Bytes()
	yb := y.Bytes()
	copy(zBytes[:], zb[:])
	copy(yBytes[:], yb[:])

	return VerifyKZGProof(setup, commitment, zBytes, yBytes, proof)
}

// challengeAndEvaluate derives z via the Fiat-Shamir transcript and
// evaluates the blob's polynomial at z.
func challengeAndEvaluate(setup *trustedsetup.Setup, blob types.Blob, commitment types.Bytes48) (zOut, yOut fr.Element, err error) {
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return zOut, yOut, fmt.Errorf("blob is not a valid polynomial: %w", err)
	}

	z := fiatshamir.ComputeChallenge(blob, commitment)
	y, err := polyeval.Evaluate(poly, setup.RootsOfUnity[:], z)
	if err != nil {
		return zOut, yOut, fmt.Errorf("evaluating polynomial: %w", err)
	}
	return z, y, nil
}
