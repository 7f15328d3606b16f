package trustedsetup

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

// cacheMagic/cacheVersion identify the binary cache stream. Grounded on
// build.rs's main(), which dumps three raw transmuted arrays
// (roots_of_unity.bin, g1.bin, g2.bin); this rendering concatenates the
// equivalent data into one versioned stream instead of three raw files,
// since a from-scratch Go implementation has no reason to preserve Rust's
// in-memory transmute layout.
const (
	cacheMagic   uint32 = 0x4b5a4734 // "KZG4"
	cacheVersion uint32 = 1
)

// WriteCache serializes a Setup to its binary cache form: magic, version,
// then each roots-of-unity scalar (32 bytes canonical BE), each G1 point
// (48-byte compressed), each G2 point (96-byte compressed). Semantics are
// identical to a text-loaded Setup; only the encoding differs.
func WriteCache(w io.Writer, s *Setup) error {
	bw := bufio.NewWriter(w)
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], cacheMagic)
	binary.BigEndian.PutUint32(hdr[4:8], cacheVersion)
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}
	for _, r := range s.RootsOfUnity {
		b := r.Bytes()
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	for _, p := range s.G1Points {
		b := p.Bytes()
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	for _, p := range s.G2Points {
		b := p.Bytes()
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadCache deserializes a Setup previously produced by WriteCache. The
// bit-reversal permutation is not redone: it is encoded already, by
// construction, in the cached byte layout. The monomial-form pairing check
// is re-run on the first two G1 points in ceremony order and the G2 points,
// and every point must decode; the roots of unity and the remaining G1
// points are not otherwise re-verified.
func ReadCache(r io.Reader) (*Setup, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: reading cache header: %v", kzgerr.ErrInvalidBytesLength, err)
	}
	if binary.BigEndian.Uint32(hdr[0:4]) != cacheMagic {
		return nil, fmt.Errorf("%w: bad cache magic", kzgerr.ErrInvalidTrustedSetup)
	}
	if binary.BigEndian.Uint32(hdr[4:8]) != cacheVersion {
		return nil, fmt.Errorf("%w: unsupported cache version", kzgerr.ErrInvalidTrustedSetup)
	}

	var setup Setup
	var scalarBuf [32]byte
	for i := range setup.RootsOfUnity {
		if _, err := io.ReadFull(r, scalarBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: reading root of unity %d: %v", kzgerr.ErrInvalidBytesLength, i, err)
		}
		var e fr.Element
		e.SetBytes(scalarBuf[:])
		setup.RootsOfUnity[i] = e
	}

	var g1Buf [bytesPerG1Compressed]byte
	for i := range setup.G1Points {
		if _, err := io.ReadFull(r, g1Buf[:]); err != nil {
			return nil, fmt.Errorf("%w: reading G1 point %d: %v", kzgerr.ErrInvalidBytesLength, i, err)
		}
		if err := decodeUnchecked(g1Buf[:], &setup.G1Points[i]); err != nil {
			return nil, fmt.Errorf("%w: decoding cached G1 point %d: %v", kzgerr.ErrInvalidTrustedSetup, i, err)
		}
	}

	var g2Buf [bytesPerG2Compressed]byte
	for i := range setup.G2Points {
		if _, err := io.ReadFull(r, g2Buf[:]); err != nil {
			return nil, fmt.Errorf("%w: reading G2 point %d: %v", kzgerr.ErrInvalidBytesLength, i, err)
		}
		if err := decodeUnchecked(g2Buf[:], &setup.G2Points[i]); err != nil {
			return nil, fmt.Errorf("%w: decoding cached G2 point %d: %v", kzgerr.ErrInvalidTrustedSetup, i, err)
		}
	}

	// G1Points are stored bit-reversed; ceremony index 1 sits at brp(1).
	ceremonyHead := []bls12381.G1Affine{setup.G1Points[0], setup.G1Points[bitReverse(1, MaxScale)]}
	if err := checkMonomialForm(ceremonyHead, setup.G2Points[:]); err != nil {
		return nil, err
	}
	return &setup, nil
}
