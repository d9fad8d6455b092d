package w25519

// Wei25519 curve parameter a = 1 - A_M^2/3 as a field element, where
// A_M = 486662 is the Montgomery A of Curve25519. Its canonical byte
// encoding is fixed by construction; b is not needed anywhere in this
// package because the unified addition formula (group.go) never references
// it directly.
var curveA = feFromBytes(&curveABytes)

// delta = A_M/3, the constant the birational map shifts the x-coordinate by.
var delta = feFromBytes(&deltaBytes)

// X25519BasepointU is the canonical Curve25519 base u-coordinate, 9.
var X25519BasepointU = [32]byte{9}

// X25519BasepointV is the canonical Curve25519 base v-coordinate from
// RFC 7748 section 4.1.
var X25519BasepointV = basepointYBytes

// BasePoint is G_W = (delta + 9, V_B), the Wei25519 base point.
func BasePoint() WeierstrassPoint {
	return WeierstrassPoint{X: basepointXBytes, Y: basepointYBytes}
}

// FromMontgomery lifts a Montgomery-form (Curve25519) affine point (u, v) to
// its Wei25519 short-Weierstrass equivalent (x, y).
//
// The general birational map is (u, v) <-> (u + A_M/3, v). The u == 0 case
// is handled specially: the identity on the Montgomery curve is encoded
// (0, 0), and the general formula would instead produce (delta, v), which
// does not coincide with this package's (0, 0) Weierstrass identity
// sentinel. The piecewise definition below keeps O_M = (0,0) <-> O_W = (0,0)
// an exact round trip.
//
// This function operates on public data only (u is either the identity or a
// public base-point-style coordinate in every use in this package) and is
// not constant-time with respect to u == 0.
func FromMontgomery(u, v [32]byte) WeierstrassPoint {
	uf := feFromBytes(&u)
	if uf.isZero() {
		return WeierstrassPoint{X: [32]byte{}, Y: v}
	}
	x := uf.add(delta)
	return WeierstrassPoint{X: x.bytes(), Y: v}
}

// IntoMontgomery projects a Wei25519 point back to Montgomery (u, v) form.
// Like FromMontgomery, this is public-data-only and not constant-time.
func IntoMontgomery(p WeierstrassPoint) (u, v [32]byte) {
	xf := feFromBytes(&p.X)
	if xf.isZero() {
		return [32]byte{}, p.Y
	}
	uf := xf.sub(delta)
	return uf.bytes(), p.Y
}

// IntoMontgomeryCompressed projects p onto its Montgomery u-coordinate only,
// discarding v. This is the bridge to X25519's point compression: two
// Weierstrass points that differ only in the sign of y project to the same
// u, exactly as X25519's own (u, v) -> u compression collapses a point and
// its negation.
func IntoMontgomeryCompressed(p WeierstrassPoint) [32]byte {
	u, _ := IntoMontgomery(p)
	return u
}
