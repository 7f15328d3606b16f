// Package msm implements variable-base multi-scalar multiplication. It
// carries a from-scratch windowed Pippenger implementation, grounded on
// original_source/src/msm.rs, for cross-checking; production verification
// paths use gnark-crypto's own MultiExp (see gnark.go), grounded on
// other_examples' go-kzg-4844 kzg_verify.go.
package msm

import (
	"fmt"
	"math/big"
	"math/bits"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

// scalarBits is the bit length of field elements used for window iteration;
// BLS12-381's Fr modulus is a 255-bit number.
const scalarBits = 255

// windowSize returns the Pippenger bucket window width, per
// original_source/src/msm.rs's ln_without_floats heuristic: 3 below 32
// scalars, else floor(0.69*log2(n))+2.
func windowSize(n int) int {
	if n < 32 {
		return 3
	}
	return (69*log2(n))/100 + 2
}

func log2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// PippengerVariableBase computes sum(scalars[i] * points[i]) via windowed
// bucket accumulation. points and scalars must have equal length; empty
// input yields the identity.
func PippengerVariableBase(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	var zero bls12381.G1Affine
	n := len(points)
	if n != len(scalars) {
		return zero, fmt.Errorf("%w: points length %d does not match scalars length %d",
			kzgerr.ErrInvalidBytesLength, n, len(scalars))
	}
	if n == 0 {
		return zero, nil
	}

	c := windowSize(n)
	numBuckets := (1 << uint(c)) - 1
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(c)), big.NewInt(1))

	ints := make([]*big.Int, n)
	for i := range scalars {
		bi := new(big.Int)
		scalars[i].BigInt(bi)
		ints[i] = bi
	}

	var windowSums []bls12381.G1Jac
	for w := 0; w < scalarBits; w += c {
		buckets := make([]bls12381.G1Jac, numBuckets)
		var direct bls12381.G1Jac

		for i := 0; i < n; i++ {
			bi := ints[i]
			if bi.Sign() == 0 {
				continue
			}
			if w == 0 && bi.Cmp(big.NewInt(1)) == 0 {
				direct.AddMixed(&points[i])
				continue
			}
			slice := new(big.Int).Rsh(bi, uint(w))
			slice.And(slice, mask)
			idx := slice.Uint64()
			if idx == 0 {
				continue
			}
			buckets[idx-1].AddMixed(&points[i])
		}

		var runningSum, windowSum bls12381.G1Jac
		for j := numBuckets - 1; j >= 0; j-- {
			runningSum.AddAssign(&buckets[j])
			windowSum.AddAssign(&runningSum)
		}
		windowSum.AddAssign(&direct)
		windowSums = append(windowSums, windowSum)
	}

	var result bls12381.G1Jac
	for i := len(windowSums) - 1; i >= 0; i-- {
		if i != len(windowSums)-1 {
			for k := 0; k < c; k++ {
				result.Double(&result)
			}
		}
		result.AddAssign(&windowSums[i])
	}

	var out bls12381.G1Affine
	out.FromJacobian(&result)
	return out, nil
}
