package w25519

import (
	"errors"
	"io"

	"filippo.io/edwards25519"
)

// Scalar is an integer modulo l, the prime order of Curve25519's main
// subgroup. It is the general-purpose scalar used by Scalar.Mul and the
// algebraic property tests (associativity, linearity); it is backed by
// filippo.io/edwards25519.Scalar, which is reduced mod the same l
// (edwards25519 and Curve25519 share the group order).
//
// Scalar is distinct from the clamped scalar used for Diffie-Hellman
// (dhscalar.go): a clamped X25519 scalar must NOT be reduced mod l, or
// the bridge to RFC 7748 would silently diverge.
type Scalar struct {
	s edwards25519.Scalar
}

// NewRandomScalar draws a uniformly random Scalar using rand as the source
// of 64 uniformly distributed bytes (wide reduction mod l, avoiding bias).
func NewRandomScalar(rand io.Reader) (Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rand, wide[:]); err != nil {
		return Scalar{}, err
	}
	var out Scalar
	if _, err := out.s.SetUniformBytes(wide[:]); err != nil {
		return Scalar{}, err
	}
	return out, nil
}

// ScalarFromCanonicalBytes decodes a 32-byte little-endian canonical (fully
// reduced) encoding of a scalar mod l.
func ScalarFromCanonicalBytes(b [32]byte) (Scalar, error) {
	var out Scalar
	if _, err := out.s.SetCanonicalBytes(b[:]); err != nil {
		return Scalar{}, errors.New("w25519: invalid scalar encoding")
	}
	return out, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], s.s.Bytes())
	return out
}

// Add returns a + b mod l.
func (a Scalar) Add(b Scalar) Scalar {
	var out Scalar
	out.s.Add(&a.s, &b.s)
	return out
}

// Multiply returns a * b mod l.
func (a Scalar) Multiply(b Scalar) Scalar {
	var out Scalar
	out.s.Multiply(&a.s, &b.s)
	return out
}

// bitsLSBFirst decomposes a 32-byte little-endian integer into a 256-entry
// array with bits[i] in {0, 1} and sum(bits[i] * 2^i) == the integer
// represented by b exactly (and therefore congruent mod any modulus,
// including l). Shared by Scalar.Mul (on a reduced scalar) and the clamped
// DH scalar path (on raw, unreduced clamped bytes) in dhscalar.go.
func bitsLSBFirst(b [32]byte) [256]byte {
	var out [256]byte
	for i := 0; i < 256; i++ {
		out[i] = (b[i/8] >> uint(i%8)) & 1
	}
	return out
}

// Mul returns s*p using the constant-time double-and-add scalar
// multiplication described by scalarMulBits.
func (s Scalar) Mul(p WeierstrassPoint) WeierstrassPoint {
	return scalarMulBits(bitsLSBFirst(s.Bytes()), p)
}

// scalarMulBits computes the sum over i in [0, 255) of bits[i] * 2^i * p,
// i.e. the integer whose binary expansion is bits, times p. Control flow
// depends only on the fixed loop bound of 255 -- never on any bits[i] value
// or on p -- so every call performs exactly 255 unified adds and 255
// doublings regardless of the scalar or point. Bit 255 is never consulted:
// for both a properly reduced scalar mod l and a properly clamped X25519
// scalar, bit 255 is always 0, so consulting it is unnecessary, but the
// loop still runs the uniform 255 iterations rather than skipping the
// final, unused doubling.
func scalarMulBits(bits [256]byte, p WeierstrassPoint) WeierstrassPoint {
	acc := Identity()
	cur := p
	for i := 0; i < 255; i++ {
		mask := int(bits[i])
		addend := pointConditionalSelect(Identity(), cur, mask)
		acc = Add(acc, addend)
		cur = Double(cur)
	}
	return acc
}
