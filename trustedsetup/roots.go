package trustedsetup

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

// primitiveRootString is a primitive 2^32-th root of unity of the BLS12-381
// scalar field, the same decimal literal crypto/blobs/barycentric.go uses to
// generate its 4096-element evaluation domain. Every SCALE2_ROOT_OF_UNITY
// table entry the original source hardcodes is this same constant raised to
// 2^(32-scale); this module derives the one entry it needs (scale 12) from
// it directly instead of carrying the full 32-entry table.
const primitiveRootString = "10238227357739495823651030575849232062558860180284477541189508159991286009131"

// primitiveRootOrderLog2 is the order of primitiveRootString as a power of two.
const primitiveRootOrderLog2 = 32

// scale2RootOfUnity returns a primitive 2^scale-th root of unity, derived
// from primitiveRootString by exponentiation.
func scale2RootOfUnity(scale int) (fr.Element, error) {
	var zero fr.Element
	if scale < 0 || scale > primitiveRootOrderLog2 {
		return zero, fmt.Errorf("%w: scale %d out of range [0,%d]", kzgerr.ErrBadArgs, scale, primitiveRootOrderLog2)
	}
	var root fr.Element
	if _, err := root.SetString(primitiveRootString); err != nil {
		return zero, fmt.Errorf("%w: parsing primitive root constant: %v", kzgerr.ErrInternal, err)
	}
	exp := new(big.Int).Lsh(big.NewInt(1), uint(primitiveRootOrderLog2-scale))
	var out fr.Element
	out.Exp(root, exp)
	return out, nil
}

// expandRootOfUnity builds [1, root, root^2, ...] until the sequence closes
// back to 1, failing if it has not closed by width+1 entries. A sequence
// that closes earlier is returned as is; computeRootsOfUnity checks that
// the length is exactly width+1. Grounded on build.rs's expand_root_of_unity.
func expandRootOfUnity(root fr.Element, width int) ([]fr.Element, error) {
	if width < 2 {
		return nil, fmt.Errorf("%w: width must be >= 2", kzgerr.ErrBadArgs)
	}
	var one fr.Element
	one.SetOne()

	expanded := make([]fr.Element, 0, width+1)
	expanded = append(expanded, one, root)

	for i := 2; i <= width; i++ {
		var cur fr.Element
		cur.Mul(&expanded[len(expanded)-1], &root)
		expanded = append(expanded, cur)
		if cur.Equal(&one) {
			break
		}
	}

	if !expanded[len(expanded)-1].Equal(&one) {
		return nil, fmt.Errorf("%w: root of unity expansion did not close at 1", kzgerr.ErrInvalidTrustedSetup)
	}
	return expanded, nil
}

// computeRootsOfUnity derives the bit-reversal-permuted (1<<maxScale)th
// roots of unity, grounded on build.rs's compute_roots_of_unity: look up
// the scale's primitive root, expand it, drop the trailing closing 1, then
// brp the remainder.
func computeRootsOfUnity(maxScale int) ([]fr.Element, error) {
	root, err := scale2RootOfUnity(maxScale)
	if err != nil {
		return nil, err
	}
	width := 1 << uint(maxScale)
	expanded, err := expandRootOfUnity(root, width)
	if err != nil {
		return nil, err
	}
	if len(expanded) != width+1 {
		return nil, fmt.Errorf("%w: root of unity expansion has unexpected length %d, want %d",
			kzgerr.ErrInvalidTrustedSetup, len(expanded), width+1)
	}
	expanded = expanded[:len(expanded)-1] // drop the trailing closing 1

	return bitReversalPermutation(expanded)
}

// bitReversalPermutation returns a copy of arr reindexed so that position
// brp(i) holds arr[i], where brp reverses the low log2(len(arr)) bits of i.
//
// The original source computes brp via `i.reverse_bits() >> (unused_bit_len
// + 1)` over a full machine word; that is equivalent to, and implemented
// here as, reversing only the low log2n bits of i directly.
func bitReversalPermutation[T any](arr []T) ([]T, error) {
	n := len(arr)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: length %d is not a power of two", kzgerr.ErrBadArgs, n)
	}
	log2n := bits.Len(uint(n)) - 1

	out := make([]T, n)
	for i, v := range arr {
		out[bitReverse(i, log2n)] = v
	}
	return out, nil
}

func bitReverse(i, log2n int) int {
	return int(bits.Reverse64(uint64(i)) >> uint(64-log2n))
}
