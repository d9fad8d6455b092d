package w25519

// Add computes p + q using the unified affine short-Weierstrass addition
// law: it produces the algebraically correct result for every pair of
// inputs — two distinct finite points, a point doubled with itself, either
// operand at infinity, or a point added to its negation — while executing
// exactly the same sequence of field operations regardless of which case
// applies. No branch in this function depends on p or q's values.
//
// Both the doubling slope and the chord slope are computed unconditionally;
// whichever one is undefined (division by zero under the invert(0) = 0
// convention) is simply never selected. Four conditional-select layers then
// patch in the degenerate results (left-infinity, right-infinity, vertical
// line, doubling a point with y == 0), in that order.
func Add(p, q WeierstrassPoint) WeierstrassPoint {
	x1, y1 := feFromBytes(&p.X), feFromBytes(&p.Y)
	x2, y2 := feFromBytes(&q.X), feFromBytes(&q.Y)

	// Doubling slope s = (3*x1^2 + a) / (2*y1).
	three := feOne().add(feOne()).add(feOne())
	num := three.mul(x1.square()).add(curveA)
	den := y1.add(y1)
	s := num.mul(den.invert())

	// Chord slope r = (y2 - y1) / (x2 - x1).
	r := y2.sub(y1).mul(x2.sub(x1).invert())

	xEq := x1.ctEq(x2)
	yEq := y1.ctEq(y2)
	u := feConditionalSelect(r, s, xEq&yEq)

	x3 := u.square().sub(x1).sub(x2)
	y3 := u.mul(x1.sub(x3)).sub(y1)
	result := WeierstrassPoint{X: x3.bytes(), Y: y3.bytes()}

	pInf := p.AtInfinity()
	qInf := q.AtInfinity()
	notPInf := 1 ^ pInf

	// Layer 1: left-infinity, p == O -> result = q.
	result = pointConditionalSelect(result, q, pInf)
	// Layer 2: right-infinity, q == O and p != O -> result = p.
	result = pointConditionalSelect(result, p, qInf&notPInf)
	// Layer 3: vertical line, q == -p (same x, different y, both finite)
	// -> result = O.
	vertical := xEq & (1 ^ yEq) & notPInf & (1 ^ qInf)
	result = pointConditionalSelect(result, Identity(), vertical)
	// Layer 4: p == q with y == 0 (a point of order 2), whose tangent is
	// vertical -> result = O.
	order2 := xEq & yEq & y1.isZeroChoice() & notPInf
	result = pointConditionalSelect(result, Identity(), order2)

	return result
}

// Double returns p + p. It is defined purely in terms of Add so that it is
// algebraically guaranteed to agree with it in every case, including
// Double(O) = O.
func Double(p WeierstrassPoint) WeierstrassPoint {
	return Add(p, p)
}

// AddVar is a non-constant-time addition for contexts where neither operand
// is secret (batch verification, test setup, public-parameter derivation).
// It branches directly on the degenerate cases instead of masking them,
// which is faster but leaks which case applied through timing. Callers MUST
// be able to justify that both p and q are public; this package's own
// scalar multiplication never calls it.
func AddVar(p, q WeierstrassPoint) WeierstrassPoint {
	if p.AtInfinity() == 1 {
		return q
	}
	if q.AtInfinity() == 1 {
		return p
	}
	x1, y1 := feFromBytes(&p.X), feFromBytes(&p.Y)
	x2, y2 := feFromBytes(&q.X), feFromBytes(&q.Y)

	if x1.ctEq(x2) == 1 {
		if y1.ctEq(y2) == 0 || y1.isZero() {
			return Identity()
		}
		three := feOne().add(feOne()).add(feOne())
		s := three.mul(x1.square()).add(curveA).mul(y1.add(y1).invert())
		x3 := s.square().sub(x1).sub(x2)
		y3 := s.mul(x1.sub(x3)).sub(y1)
		return WeierstrassPoint{X: x3.bytes(), Y: y3.bytes()}
	}

	r := y2.sub(y1).mul(x2.sub(x1).invert())
	x3 := r.square().sub(x1).sub(x2)
	y3 := r.mul(x1.sub(x3)).sub(y1)
	return WeierstrassPoint{X: x3.bytes(), Y: y3.bytes()}
}
