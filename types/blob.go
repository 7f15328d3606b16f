package types

import (
	"fmt"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

const (
	// FieldElementsPerBlob is the number of scalar field elements packed
	// into one blob, in evaluation form over the 4096th roots of unity.
	FieldElementsPerBlob = 4096
	// BytesPerFieldElement is the canonical big-endian width of a scalar.
	BytesPerFieldElement = 32
	// BlobLength is the total byte size of a blob.
	BlobLength = FieldElementsPerBlob * BytesPerFieldElement
)

// Blob is a fixed-length byte sequence interpreted as FieldElementsPerBlob
// ordered 32-byte big-endian scalar field elements in evaluation form.
type Blob [BlobLength]byte

// NewBlobFromBytes copies b into a Blob, failing if the length doesn't match.
func NewBlobFromBytes(b []byte) (Blob, error) {
	var out Blob
	if len(b) != BlobLength {
		return out, fmt.Errorf("%w: blob must be %d bytes, got %d", kzgerr.ErrInvalidBytesLength, BlobLength, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// MustBlobFromBytes is like NewBlobFromBytes but panics on error. Intended
// for test fixtures and CLI argument parsing, never for untrusted input on
// a server path.
func MustBlobFromBytes(b []byte) Blob {
	blob, err := NewBlobFromBytes(b)
	if err != nil {
		panic(err)
	}
	return blob
}

// Bytes returns a copy of the blob's underlying bytes.
func (b Blob) Bytes() []byte {
	out := make([]byte, BlobLength)
	copy(out, b[:])
	return out
}

// Clone returns an independent copy of the blob.
func (b Blob) Clone() Blob {
	var out Blob
	copy(out[:], b[:])
	return out
}

// FieldElement returns the raw 32-byte big-endian chunk at index i, without
// validating that it is a canonical scalar; canonicality is checked by the
// caller that decodes it into a field element.
func (b Blob) FieldElement(i int) (out [BytesPerFieldElement]byte, err error) {
	if i < 0 || i >= FieldElementsPerBlob {
		return out, fmt.Errorf("%w: field element index %d out of range", kzgerr.ErrBadArgs, i)
	}
	copy(out[:], b[i*BytesPerFieldElement:(i+1)*BytesPerFieldElement])
	return out, nil
}
