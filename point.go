package w25519

// WeierstrassPoint is an affine point (x, y) on Wei25519,
//
//	y^2 = x^3 + a*x + b   (mod 2^255-19)
//
// encoded as two 32-byte little-endian field elements. Two points are equal
// iff their decoded field elements agree; the byte arrays themselves need
// not be identical (a coordinate may be stored in non-canonical form).
//
// The point at infinity, O, is encoded as (0, 0). That encoding is
// unambiguous: (0, 0) does not satisfy Wei25519's curve equation for any b,
// so it is reserved as the sole identity sentinel. Every operation in this
// package preserves that invariant; none of them ever produce (0, 0) except
// as the identity.
type WeierstrassPoint struct {
	X [32]byte
	Y [32]byte
}

// Identity returns the point at infinity, O = (0, 0).
func Identity() WeierstrassPoint {
	return WeierstrassPoint{}
}

// AtInfinity reports, in constant time, whether p is the identity.
func (p WeierstrassPoint) AtInfinity() int {
	x := feFromBytes(&p.X)
	y := feFromBytes(&p.Y)
	return x.isZeroChoice() & y.isZeroChoice()
}

// isZeroChoice is isZero as a 0/1 choice rather than a bool, so callers can
// AND it with other choices without branching.
func (a fieldElement) isZeroChoice() int {
	return a.ctEq(feZero())
}

// Equal reports, in constant time, whether p and q decode to the same pair
// of field elements.
func (p WeierstrassPoint) Equal(q WeierstrassPoint) int {
	px, py := feFromBytes(&p.X), feFromBytes(&p.Y)
	qx, qy := feFromBytes(&q.X), feFromBytes(&q.Y)
	return px.ctEq(qx) & py.ctEq(qy)
}

// pointConditionalSelect returns b if choice == 1, a if choice == 0, with
// each coordinate selected independently and in constant time.
//
// An earlier draft of this package (mirrored in several intermediate
// original-source revisions) selected a.X into both the X and Y output
// coordinates — a bug. Coordinates must be selected independently.
func pointConditionalSelect(a, b WeierstrassPoint, choice int) WeierstrassPoint {
	ax, ay := feFromBytes(&a.X), feFromBytes(&a.Y)
	bx, by := feFromBytes(&b.X), feFromBytes(&b.Y)
	return WeierstrassPoint{
		X: feConditionalSelect(ax, bx, choice).bytes(),
		Y: feConditionalSelect(ay, by, choice).bytes(),
	}
}

// Bytes returns the 64-byte x||y encoding of p.
func (p WeierstrassPoint) Bytes() [64]byte {
	var out [64]byte
	copy(out[:32], p.X[:])
	copy(out[32:], p.Y[:])
	return out
}

// PointFromBytes splits a 64-byte x||y encoding into a WeierstrassPoint.
func PointFromBytes(b [64]byte) WeierstrassPoint {
	var p WeierstrassPoint
	copy(p.X[:], b[:32])
	copy(p.Y[:], b[32:])
	return p
}

// negateY returns (x, -y). Negation is never exposed as a standalone
// operation on WeierstrassPoint -- the group law realizes it implicitly,
// through vertical-line masking in Add -- but the property tests need it
// to build -P.
func negateY(p WeierstrassPoint) WeierstrassPoint {
	y := feFromBytes(&p.Y)
	negY := feZero().sub(y)
	return WeierstrassPoint{X: p.X, Y: negY.bytes()}
}
