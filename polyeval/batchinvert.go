package polyeval

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

// BatchInvert fills dst with the multiplicative inverses of src, using one
// field inversion instead of len(src). Grounded on
// original_source/src/kzg_proof.rs's batch_inversion: a forward pass builds
// partial products, the accumulated product is inverted once, then a
// backward pass distributes it back out.
//
// dst and src must not alias: the original source rejects &dst[0]==&src[0]
// explicitly, and this rendering's backward pass reads the prefix products
// from a separate scratch slice and the factors from src, never from dst,
// to avoid the aliasing bug spec.md's DESIGN NOTES
// flags in one source variant (a backward pass that reads from the output
// buffer instead of the original input).
func BatchInvert(dst, src []fr.Element) error {
	n := len(src)
	if len(dst) != n {
		return fmt.Errorf("%w: dst length %d does not match src length %d", kzgerr.ErrInvalidBytesLength, len(dst), n)
	}
	if n > 0 && &dst[0] == &src[0] {
		return fmt.Errorf("%w: destination is the same as source", kzgerr.ErrBadArgs)
	}
	if n == 0 {
		return nil
	}

	partials := make([]fr.Element, n)
	var acc fr.Element
	acc.SetOne()
	for i := 0; i < n; i++ {
		partials[i] = acc
		acc.Mul(&acc, &src[i])
	}

	if acc.IsZero() {
		return fmt.Errorf("%w: zero input to batch inversion", kzgerr.ErrBadArgs)
	}
	acc.Inverse(&acc)

	for i := n - 1; i >= 0; i-- {
		dst[i].Mul(&partials[i], &acc)
		acc.Mul(&acc, &src[i])
	}
	return nil
}
