package fiatshamir

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBeUint64(t *testing.T) {
	c := qt.New(t)
	c.Assert(beUint64([]byte{0, 0, 0, 0, 0, 0, 0, 1}), qt.Equals, uint64(1))
	c.Assert(beUint64([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}), qt.Equals, uint64(1)<<56)
}

func TestSbb4(t *testing.T) {
	c := qt.New(t)

	c.Run("no borrow when a >= b", func(c *qt.C) {
		a := [4]uint64{5, 0, 0, 0}
		b := [4]uint64{3, 0, 0, 0}
		out, borrow := sbb4(a, b)
		c.Assert(borrow, qt.Equals, uint64(0))
		c.Assert(out, qt.Equals, [4]uint64{2, 0, 0, 0})
	})

	c.Run("borrow propagates across limbs", func(c *qt.C) {
		a := [4]uint64{0, 1, 0, 0}
		b := [4]uint64{1, 0, 0, 0}
		out, borrow := sbb4(a, b)
		c.Assert(borrow, qt.Equals, uint64(0))
		c.Assert(out, qt.Equals, [4]uint64{^uint64(0), 0, 0, 0})
	})

	c.Run("subtracting the modulus from itself yields zero, no borrow", func(c *qt.C) {
		out, borrow := sbb4(modulusLimbs, modulusLimbs)
		c.Assert(borrow, qt.Equals, uint64(0))
		c.Assert(out, qt.Equals, [4]uint64{0, 0, 0, 0})
	})

	c.Run("subtracting a larger modulus from a smaller value borrows", func(c *qt.C) {
		out, borrow := sbb4([4]uint64{0, 0, 0, 0}, modulusLimbs)
		c.Assert(borrow, qt.Equals, uint64(1))
		c.Assert(out, qt.Not(qt.Equals), [4]uint64{0, 0, 0, 0})
	})
}

func TestScalarFromBytesUnchecked(t *testing.T) {
	c := qt.New(t)

	c.Run("zero digest reduces to zero", func(c *qt.C) {
		var digest [32]byte
		got := ScalarFromBytesUnchecked(digest)
		c.Assert(got.IsZero(), qt.IsTrue)
	})

	c.Run("the field modulus itself reduces to zero", func(c *qt.C) {
		var digest [32]byte
		for i := 0; i < 4; i++ {
			off := 32 - 8*(i+1)
			for j := 0; j < 8; j++ {
				digest[off+j] = byte(modulusLimbs[i] >> (8 * (7 - j)))
			}
		}
		got := ScalarFromBytesUnchecked(digest)
		c.Assert(got.IsZero(), qt.IsTrue)
	})

	c.Run("deterministic for identical input", func(c *qt.C) {
		var digest [32]byte
		digest[31] = 0x2A
		a := ScalarFromBytesUnchecked(digest)
		b := ScalarFromBytesUnchecked(digest)
		c.Assert(a.Equal(&b), qt.IsTrue)
	})

	c.Run("distinct digests below the modulus differ", func(c *qt.C) {
		var d1, d2 [32]byte
		d1[31] = 0x01
		d2[31] = 0x02
		a := ScalarFromBytesUnchecked(d1)
		b := ScalarFromBytesUnchecked(d2)
		c.Assert(a.Equal(&b), qt.IsFalse)
	})
}
