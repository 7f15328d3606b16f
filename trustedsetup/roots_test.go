package trustedsetup

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	qt "github.com/frankban/quicktest"
)

func TestScale2RootOfUnity(t *testing.T) {
	c := qt.New(t)

	c.Run("rejects out-of-range scale", func(c *qt.C) {
		_, err := scale2RootOfUnity(-1)
		c.Assert(err, qt.ErrorMatches, ".*out of range.*")
		_, err = scale2RootOfUnity(primitiveRootOrderLog2 + 1)
		c.Assert(err, qt.ErrorMatches, ".*out of range.*")
	})

	c.Run("scale 0 is the trivial root (one)", func(c *qt.C) {
		root, err := scale2RootOfUnity(0)
		c.Assert(err, qt.IsNil)
		var one fr.Element
		one.SetOne()
		c.Assert(root.Equal(&one), qt.IsTrue)
	})

	c.Run("scale n squared is scale n-1's root", func(c *qt.C) {
		r4, err := scale2RootOfUnity(4)
		c.Assert(err, qt.IsNil)
		r3, err := scale2RootOfUnity(3)
		c.Assert(err, qt.IsNil)

		var squared fr.Element
		squared.Mul(&r4, &r4)
		c.Assert(squared.Equal(&r3), qt.IsTrue)
	})

	c.Run("scale 12 root raised to 4096 is one", func(c *qt.C) {
		root, err := scale2RootOfUnity(MaxScale)
		c.Assert(err, qt.IsNil)
		cur := root
		for i := 0; i < MaxScale; i++ {
			cur.Mul(&cur, &cur)
		}
		var one fr.Element
		one.SetOne()
		c.Assert(cur.Equal(&one), qt.IsTrue)
	})
}

func TestExpandRootOfUnity(t *testing.T) {
	c := qt.New(t)

	c.Run("rejects width below two", func(c *qt.C) {
		var root fr.Element
		root.SetOne()
		_, err := expandRootOfUnity(root, 1)
		c.Assert(err, qt.ErrorMatches, ".*width must be >= 2.*")
	})

	c.Run("rejects a root that never closes at one", func(c *qt.C) {
		var notARoot fr.Element
		notARoot.SetUint64(7)
		_, err := expandRootOfUnity(notARoot, 4)
		c.Assert(err, qt.ErrorMatches, ".*did not close at 1.*")
	})

	c.Run("expands a small root of unity and closes at one", func(c *qt.C) {
		root, err := scale2RootOfUnity(2) // 4th root of unity
		c.Assert(err, qt.IsNil)
		expanded, err := expandRootOfUnity(root, 4)
		c.Assert(err, qt.IsNil)
		c.Assert(expanded, qt.HasLen, 5)

		var one fr.Element
		one.SetOne()
		c.Assert(expanded[0].Equal(&one), qt.IsTrue)
		c.Assert(expanded[1].Equal(&root), qt.IsTrue)
		c.Assert(expanded[4].Equal(&one), qt.IsTrue)
	})
}

func TestComputeRootsOfUnity(t *testing.T) {
	c := qt.New(t)

	c.Run("produces the expected count, bit-reversed and distinct", func(c *qt.C) {
		const scale = 4
		width := 1 << scale
		roots, err := computeRootsOfUnity(scale)
		c.Assert(err, qt.IsNil)
		c.Assert(roots, qt.HasLen, width)

		var one fr.Element
		one.SetOne()
		c.Assert(roots[0].Equal(&one), qt.IsTrue) // brp(0) == 0

		// brp(width/2) == 1, so position 1 holds root^(width/2) == -1.
		var minusOne fr.Element
		minusOne.Neg(&one)
		c.Assert(roots[1].Equal(&minusOne), qt.IsTrue)

		seen := make(map[string]bool, width)
		for _, r := range roots {
			b := r.Bytes()
			seen[string(b[:])] = true
		}
		c.Assert(seen, qt.HasLen, width)
	})
}

func TestBitReversalPermutation(t *testing.T) {
	c := qt.New(t)

	c.Run("rejects non-power-of-two length", func(c *qt.C) {
		_, err := bitReversalPermutation([]int{1, 2, 3})
		c.Assert(err, qt.ErrorMatches, ".*not a power of two.*")
	})

	c.Run("permutes 8 elements by reversing 3 bits", func(c *qt.C) {
		in := []int{0, 1, 2, 3, 4, 5, 6, 7}
		out, err := bitReversalPermutation(in)
		c.Assert(err, qt.IsNil)
		// index i (3 bits) reversed: 0->0,1->4,2->2,3->6,4->1,5->5,6->3,7->7
		c.Assert(out, qt.DeepEquals, []int{0, 4, 2, 6, 1, 5, 3, 7})
	})

	c.Run("is its own inverse", func(c *qt.C) {
		in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
		once, err := bitReversalPermutation(in)
		c.Assert(err, qt.IsNil)
		twice, err := bitReversalPermutation(once)
		c.Assert(err, qt.IsNil)
		c.Assert(twice, qt.DeepEquals, in)
	})
}
