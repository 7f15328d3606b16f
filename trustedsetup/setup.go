// Package trustedsetup loads and validates the KZG structured reference
// string (SRS): parsing the textual ceremony format, decompressing points,
// deriving the bit-reversal-permuted evaluation domain, and checking the
// SRS is in monomial form. Grounded on the original source's
// load_trusted_setup_file_brute and its roots-of-unity/brp helpers.
package trustedsetup

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

const (
	// NumG1Points is the number of Lagrange-basis G1 points in the SRS
	// (one per blob field element).
	NumG1Points = 4096
	// NumG2Points is the number of monomial-form G2 powers-of-tau; only
	// indices 0 (generator) and 1 ([tau]_2) are used by the verifier.
	NumG2Points = 65
	// MaxScale is ceil(log2(NumG1Points)).
	MaxScale = 12

	bytesPerG1Compressed = 48
	bytesPerG2Compressed = 96
)

// Setup is an immutable, process-shareable trusted setup: the bit-reversed
// 4096th roots of unity, the bit-reversed Lagrange-basis G1 points, and the
// monomial-form G2 points. Constructed once via ParseTextSetup, ReadCache,
// or Default, then shared read-only by every verification call.
type Setup struct {
	RootsOfUnity [NumG1Points]fr.Element
	G1Points     [NumG1Points]bls12381.G1Affine
	G2Points     [NumG2Points]bls12381.G2Affine
}

// ParseTextSetup parses a trusted-setup ceremony file of the form:
//
//	<num_g1 decimal>
//	<num_g2 decimal>
//	<num_g1 lines of hex-encoded 48-byte G1 compressed points>
//	<num_g2 lines of hex-encoded 96-byte G2 compressed points>
//
// Points are decompressed unchecked (no subgroup check): the ceremony is a
// public, already-vetted artifact, and the monomial-form pairing check below
// is what actually certifies it, not a per-point subgroup test.
func ParseTextSetup(r io.Reader) (*Setup, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make([]string, 0, NumG1Points+NumG2Points+2)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading trusted setup: %v", kzgerr.ErrInvalidTrustedSetup, err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: trusted setup file too short", kzgerr.ErrInvalidTrustedSetup)
	}

	numG1, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing num_g1: %v", kzgerr.ErrBadArgs, err)
	}
	numG2, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing num_g2: %v", kzgerr.ErrBadArgs, err)
	}
	if numG1 != NumG1Points || numG2 != NumG2Points {
		return nil, fmt.Errorf("%w: expected %d G1 and %d G2 points, got %d and %d",
			kzgerr.ErrBadArgs, NumG1Points, NumG2Points, numG1, numG2)
	}

	g1Start := 2
	g2Start := g1Start + numG1
	g2End := g2Start + numG2
	if len(lines) < g2End {
		return nil, fmt.Errorf("%w: trusted setup file missing point lines", kzgerr.ErrInvalidTrustedSetup)
	}

	var setup Setup
	g1Raw := make([]bls12381.G1Affine, numG1)
	for i := 0; i < numG1; i++ {
		buf, err := hexLineToBytes(lines[g1Start+i], bytesPerG1Compressed)
		if err != nil {
			return nil, err
		}
		if err := decodeUnchecked(buf, &g1Raw[i]); err != nil {
			return nil, fmt.Errorf("%w: decoding G1 point %d: %v", kzgerr.ErrInvalidTrustedSetup, i, err)
		}
	}
	for i := 0; i < numG2; i++ {
		buf, err := hexLineToBytes(lines[g2Start+i], bytesPerG2Compressed)
		if err != nil {
			return nil, err
		}
		if err := decodeUnchecked(buf, &setup.G2Points[i]); err != nil {
			return nil, fmt.Errorf("%w: decoding G2 point %d: %v", kzgerr.ErrInvalidTrustedSetup, i, err)
		}
	}

	if err := checkMonomialForm(g1Raw, setup.G2Points[:]); err != nil {
		return nil, err
	}

	roots, err := computeRootsOfUnity(MaxScale)
	if err != nil {
		return nil, err
	}
	copy(setup.RootsOfUnity[:], roots)

	permuted, err := bitReversalPermutation(g1Raw)
	if err != nil {
		return nil, err
	}
	copy(setup.G1Points[:], permuted)

	return &setup, nil
}

func hexLineToBytes(line string, wantLen int) ([]byte, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "0x")
	line = strings.TrimPrefix(line, "0X")
	b, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kzgerr.ErrInvalidHexFormat, err)
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", kzgerr.ErrInvalidBytesLength, wantLen, len(b))
	}
	return b, nil
}
