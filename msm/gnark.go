package msm

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MultiExp delegates to gnark-crypto's own multi-scalar multiplication,
// grounded on other_examples' go-kzg-4844 kzg_verify.go
// (foldedQuotients.MultiExp(quotients, randomNumbers, ecc.MultiExpConfig{})).
// This is the production path; PippengerVariableBase exists alongside it for
// cross-checking in tests.
func MultiExp(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	var result bls12381.G1Affine
	if len(points) == 0 {
		return result, nil
	}
	if _, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return result, err
	}
	return result, nil
}
