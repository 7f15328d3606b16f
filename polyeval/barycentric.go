// Package polyeval evaluates a degree-4095 polynomial given in evaluation
// form (over the 4096th roots of unity) at an arbitrary point, via the
// barycentric formula with Montgomery batch inversion. Grounded on
// original_source/src/kzg_proof.rs's
// evaluate_polynomial_in_evaluation_form/batch_inversion, cross-checked
// against crypto/blobs/barycentric.go's EvaluateBarycentricNative.
package polyeval

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

// Evaluate computes f(z) for a polynomial p given in evaluation form over
// roots (p[i] = f(roots[i])), using the barycentric formula:
//
//	f(z) = ((z^N - 1) / N) * sum_i (p[i] * roots[i]) / (z - roots[i])
//
// If z equals some roots[i], that is a division by zero in the formula
// above and f(z) = p[i] is returned directly instead.
func Evaluate(p, roots []fr.Element, z fr.Element) (fr.Element, error) {
	var zero fr.Element
	n := len(roots)
	if len(p) != n {
		return zero, fmt.Errorf("%w: polynomial length %d does not match domain length %d",
			kzgerr.ErrInvalidBytesLength, len(p), n)
	}

	for i := range roots {
		if z.Equal(&roots[i]) {
			return p[i], nil
		}
	}

	denominators := make([]fr.Element, n)
	for i := range roots {
		denominators[i].Sub(&z, &roots[i])
	}

	inverses := make([]fr.Element, n)
	if err := BatchInvert(inverses, denominators); err != nil {
		return zero, err
	}

	var sum fr.Element
	for i := range roots {
		var term fr.Element
		term.Mul(&inverses[i], &roots[i])
		term.Mul(&term, &p[i])
		sum.Add(&sum, &term)
	}

	var nInv fr.Element
	nInv.SetUint64(uint64(n))
	nInv.Inverse(&nInv)
	sum.Mul(&sum, &nInv)

	var zN fr.Element
	zN.Exp(z, big.NewInt(int64(n)))
	var one fr.Element
	one.SetOne()
	zN.Sub(&zN, &one)

	sum.Mul(&sum, &zN)
	return sum, nil
}
