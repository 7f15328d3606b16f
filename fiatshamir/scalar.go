package fiatshamir

import (
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// modulusLimbs are the BLS12-381 scalar field modulus r's 64-bit limbs,
// little-endian (limb[0] is the least significant word):
// r = 52435875175126190479447740508185965837690552500527637822603658699938581184513.
var modulusLimbs = [4]uint64{
	0xffffffff00000001,
	0x53bda402fffe5bfe,
	0x3339d80809a1d805,
	0x73eda753299d7d48,
}

// ScalarFromBytesUnchecked reduces a 32-byte big-endian buffer to a field
// element by the reference implementation's deliberately weak rule: split
// into 64-bit limbs, subtract the modulus once with borrow, and keep
// whichever result the borrow says is right — WITHOUT renormalizing to
// Montgomery form. This can leave the result slightly non-canonical; that
// is the point (see original_source/src/kzg_proof.rs's
// scalar_from_u64_array_unchecked and spec.md's DESIGN NOTES). Never use
// this for untrusted z/y input — only for internally hashed transcript
// output.
func ScalarFromBytesUnchecked(digest [32]byte) fr.Element {
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		// digest is big-endian; limbs[0] must hold the low 64 bits, i.e.
		// the last 8 bytes of digest.
		off := 32 - 8*(i+1)
		limbs[i] = beUint64(digest[off : off+8])
	}

	reduced, borrow := sbb4(limbs, modulusLimbs)
	var result [4]uint64
	if borrow == 0 {
		result = reduced
	} else {
		result = limbs
	}

	var e fr.Element
	e[0], e[1], e[2], e[3] = result[0], result[1], result[2], result[3]
	return e
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// sbb4 computes a - b over 4 limbs with a trailing borrow flag, mirroring
// the sbb (subtract with borrow) primitive original_source uses.
func sbb4(a, b [4]uint64) (out [4]uint64, borrow uint64) {
	for i := 0; i < 4; i++ {
		d, brw := bits.Sub64(a[i], b[i], borrow)
		out[i] = d
		borrow = brw
	}
	return out, borrow
}
