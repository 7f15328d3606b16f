// Package fiatshamir derives verifier challenges from domain-separated
// SHA-256 transcripts, grounded on original_source/src/kzg_proof.rs's
// compute_challenge/compute_r_powers and cross-checked against go-ethereum's
// HashToBLSField writer-based byte layout.
package fiatshamir

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
	"github.com/vocdoni/go-kzg4844/types"
)

const (
	// FiatShamirProtocolDomain separates single-blob challenge transcripts.
	FiatShamirProtocolDomain = "FSBLOBVERIFY_V1_"
	// RandomChallengeKZGBatchDomain separates batch-randomizer transcripts.
	RandomChallengeKZGBatchDomain = "RCKZGBATCH___V1_"

	domainLen = 16
)

// ComputeChallenge derives the evaluation point z for a single blob opening:
// domain(16) || 0x00*8 || BE64(FieldElementsPerBlob) || blob || commitment,
// SHA-256'd and reduced by ScalarFromBytesUnchecked.
func ComputeChallenge(blob types.Blob, commitment types.Bytes48) fr.Element {
	h := sha256.New()
	h.Write([]byte(FiatShamirProtocolDomain))
	var reserved [8]byte
	h.Write(reserved[:])
	var countBuf [8]byte
	binary.BigEndian.PutUint64(countBuf[:], types.FieldElementsPerBlob)
	h.Write(countBuf[:])
	h.Write(blob[:])
	h.Write(commitment[:])

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return ScalarFromBytesUnchecked(digest)
}

// ComputeRPowers derives the batch randomizer r from the entire batch
// transcript and returns its powers [r^0, ..., r^(n-1)]. Grounded on
// compute_r_powers: domain(16) || BE64(FieldElementsPerBlob) || BE64(n) ||
// for each i: commitment(48) || z(32) || y(32) || proof(48).
func ComputeRPowers(commitments, proofs []types.Bytes48, zs, ys []fr.Element) ([]fr.Element, error) {
	n := len(commitments)
	if len(proofs) != n || len(zs) != n || len(ys) != n {
		return nil, fmt.Errorf("%w: mismatched batch lengths (commitments=%d proofs=%d zs=%d ys=%d)",
			kzgerr.ErrInvalidBytesLength, n, len(proofs), len(zs), len(ys))
	}

	h := sha256.New()
	h.Write([]byte(RandomChallengeKZGBatchDomain))
	var countBuf [8]byte
	binary.BigEndian.PutUint64(countBuf[:], types.FieldElementsPerBlob)
	h.Write(countBuf[:])
	binary.BigEndian.PutUint64(countBuf[:], uint64(n))
	h.Write(countBuf[:])

	for i := 0; i < n; i++ {
		h.Write(commitments[i][:])
		zBytes := zs[i].Bytes()
		h.Write(zBytes[:])
		yBytes := ys[i].Bytes()
		h.Write(yBytes[:])
		h.Write(proofs[i][:])
	}

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	r := ScalarFromBytesUnchecked(digest)
	return ComputePowers(r, n), nil
}

// ComputePowers returns [x^0, x^1, ..., x^(n-1)].
func ComputePowers(x fr.Element, n int) []fr.Element {
	powers := make([]fr.Element, n)
	if n == 0 {
		return powers
	}
	powers[0].SetOne()
	for i := 1; i < n; i++ {
		powers[i].Mul(&powers[i-1], &x)
	}
	return powers
}
