package trustedsetup

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

// checkMonomialForm verifies e(g1[1], g2[0]) == e(g1[0], g2[1]), certifying
// that the SRS came from a valid powers-of-tau ceremony. Grounded on
// build.rs's is_trusted_setup_in_lagrange_form/pairings_verify, but made
// fatal: the original discards this check's result (`let _ = ...`), which
// spec.md's REDESIGN FLAGS calls out as a defect this rendering fixes by
// propagating the error instead.
func checkMonomialForm(g1Points []bls12381.G1Affine, g2Points []bls12381.G2Affine) error {
	if len(g1Points) < 2 || len(g2Points) < 2 {
		return fmt.Errorf("%w: need at least 2 G1 and 2 G2 points for the monomial-form check", kzgerr.ErrBadArgs)
	}

	a1 := g1Points[1]
	a2 := g2Points[0]
	b1 := g1Points[0]
	b2 := g2Points[1]

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{a1, *new(bls12381.G1Affine).Neg(&b1)},
		[]bls12381.G2Affine{a2, b2},
	)
	if err != nil {
		return fmt.Errorf("%w: monomial-form pairing check: %v", kzgerr.ErrInvalidTrustedSetup, err)
	}
	if !ok {
		return fmt.Errorf("%w: SRS is not in monomial form", kzgerr.ErrInvalidTrustedSetup)
	}
	return nil
}
