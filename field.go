// Package w25519 implements Wei25519, the short-Weierstrass birational form
// of Curve25519, and an (x, y)-affine Diffie-Hellman protocol layered on top
// of it (W25519). Unlike RFC 7748's x-only Montgomery ladder, every
// operation here sees both affine coordinates, so the full group law
// (addition of distinct points, not just doubling) is available to callers,
// while staying bit-compatible with X25519 when projected onto the
// u-coordinate.
//
// Every exported operation that touches a secret scalar or a secret-derived
// point runs in constant time: its sequence of field operations does not
// depend on the secret's value, only on its byte length. The birational map
// and AddVar are the two documented exceptions, since they only ever see
// public data.
package w25519

import (
	"crypto/subtle"

	"filippo.io/edwards25519"
)

// fieldElement wraps filippo.io/edwards25519's FieldElement, the GF(2^255-19)
// engine this package treats as an external collaborator. It adds the two
// constant-time primitives the unified group law needs and that the
// underlying library does not expose directly: a choice-returning equality
// and a branch-free conditional select.
type fieldElement struct {
	fe edwards25519.FieldElement
}

// feFromBytes decodes 32 little-endian bytes, reducing mod p. Unreduced
// input is accepted; the decode always succeeds.
func feFromBytes(b *[32]byte) fieldElement {
	var f fieldElement
	// SetBytes never fails for a 32-byte input; it reduces non-canonical
	// encodings rather than rejecting them.
	if _, err := f.fe.SetBytes(b[:]); err != nil {
		panic("w25519: SetBytes on a 32-byte slice cannot fail")
	}
	return f
}

// bytes returns the canonical, reduced little-endian encoding.
func (a fieldElement) bytes() [32]byte {
	var out [32]byte
	copy(out[:], a.fe.Bytes())
	return out
}

func feZero() fieldElement {
	var f fieldElement
	f.fe.Zero()
	return f
}

func feOne() fieldElement {
	var f fieldElement
	f.fe.One()
	return f
}

func (a fieldElement) add(b fieldElement) fieldElement {
	var r fieldElement
	r.fe.Add(&a.fe, &b.fe)
	return r
}

func (a fieldElement) sub(b fieldElement) fieldElement {
	var r fieldElement
	r.fe.Subtract(&a.fe, &b.fe)
	return r
}

func (a fieldElement) mul(b fieldElement) fieldElement {
	var r fieldElement
	r.fe.Multiply(&a.fe, &b.fe)
	return r
}

func (a fieldElement) square() fieldElement {
	var r fieldElement
	r.fe.Square(&a.fe)
	return r
}

// invert returns a^-1, or 0 if a is 0 (Fermat-exponentiation convention).
// filippo.io/edwards25519.FieldElement.Invert already honors that
// convention, so this is a total, branch-free function of a's bytes.
func (a fieldElement) invert() fieldElement {
	var r fieldElement
	r.fe.Invert(&a.fe)
	return r
}

func (a fieldElement) isZero() bool {
	return a.ctEq(feZero()) == 1
}

// ctEq returns 1 if a == b, 0 otherwise, in constant time. The field element
// has no exported limbs to mask directly, so the comparison runs over the
// canonical byte encoding via crypto/subtle.ConstantTimeCompare.
func (a fieldElement) ctEq(b fieldElement) int {
	ab, bb := a.bytes(), b.bytes()
	return subtle.ConstantTimeCompare(ab[:], bb[:])
}

// feConditionalSelect returns b if choice == 1, a if choice == 0, in
// constant time. choice must be 0 or 1; any other value is undefined. Uses
// the usual cmov bitmask idiom (mask := -(choice&1); x ^= mask & (x ^ y)),
// applied at byte granularity since FieldElement's internal limbs are
// unexported.
func feConditionalSelect(a, b fieldElement, choice int) fieldElement {
	ab, bb := a.bytes(), b.bytes()
	var out [32]byte
	mask := byte(-(int8(choice) & 1))
	for i := range out {
		out[i] = ab[i] ^ (mask & (ab[i] ^ bb[i]))
	}
	return feFromBytes(&out)
}
