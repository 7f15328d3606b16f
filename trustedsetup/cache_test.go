package trustedsetup

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

// syntheticSetup builds a self-consistent Setup without any real ceremony
// data: a monomial-form (g1,g2) pair sharing one tau, with the G1 points
// bit-reversed as ParseTextSetup stores them, and the real scale-12
// bit-reversed roots of unity this module derives on its own.
func syntheticSetup(c *qt.C) *Setup {
	g1Points, g2Points := toMonomialSRS(424242, NumG1Points)
	roots, err := computeRootsOfUnity(MaxScale)
	c.Assert(err, qt.IsNil)
	g1Permuted, err := bitReversalPermutation(g1Points)
	c.Assert(err, qt.IsNil)

	var setup Setup
	copy(setup.RootsOfUnity[:], roots)
	copy(setup.G1Points[:], g1Permuted)
	copy(setup.G2Points[:], g2Points[:2])
	// Fill the remaining (unused beyond index 1) G2 slots with the generator
	// so decompression/encoding round-trips cleanly.
	for i := 2; i < NumG2Points; i++ {
		setup.G2Points[i] = g2Points[0]
	}
	return &setup
}

func TestWriteReadCache(t *testing.T) {
	c := qt.New(t)
	setup := syntheticSetup(c)

	var buf bytes.Buffer
	c.Assert(WriteCache(&buf, setup), qt.IsNil)

	got, err := ReadCache(&buf)
	c.Assert(err, qt.IsNil)

	for i := range setup.RootsOfUnity {
		c.Assert(got.RootsOfUnity[i].Equal(&setup.RootsOfUnity[i]), qt.IsTrue)
	}
	for i := range setup.G1Points {
		c.Assert(got.G1Points[i].Equal(&setup.G1Points[i]), qt.IsTrue)
	}
	for i := range setup.G2Points {
		c.Assert(got.G2Points[i].Equal(&setup.G2Points[i]), qt.IsTrue)
	}
}

func TestReadCacheRejectsBadHeader(t *testing.T) {
	c := qt.New(t)

	c.Run("too short", func(c *qt.C) {
		_, err := ReadCache(bytes.NewReader([]byte{1, 2, 3}))
		c.Assert(err, qt.ErrorMatches, ".*reading cache header.*")
	})

	c.Run("bad magic", func(c *qt.C) {
		buf := make([]byte, 8)
		_, err := ReadCache(bytes.NewReader(buf))
		c.Assert(err, qt.ErrorMatches, ".*bad cache magic.*")
	})

	c.Run("bad version", func(c *qt.C) {
		setup := syntheticSetup(c)
		var buf bytes.Buffer
		c.Assert(WriteCache(&buf, setup), qt.IsNil)
		corrupted := buf.Bytes()
		corrupted[7] = 0xFF // mangle the version word
		_, err := ReadCache(bytes.NewReader(corrupted))
		c.Assert(err, qt.ErrorMatches, ".*unsupported cache version.*")
	})
}
