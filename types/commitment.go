package types

// Commitment is a 48-byte compressed G1 point committing to a polynomial.
type Commitment Bytes48

func (c Commitment) String() string { return Bytes48(c).String() }

// Bytes48 returns the underlying compressed point bytes.
func (c Commitment) Bytes48() Bytes48 { return Bytes48(c) }

// Proof is a 48-byte compressed G1 opening proof (quotient commitment).
type Proof Bytes48

func (p Proof) String() string { return Bytes48(p).String() }

// Bytes48 returns the underlying compressed point bytes.
func (p Proof) Bytes48() Bytes48 { return Bytes48(p) }
