package w25519

import "testing"

func TestFieldElementZeroOne(t *testing.T) {
	z := feZero()
	if !z.isZero() {
		t.Error("feZero should be zero")
	}
	one := feOne()
	if one.isZero() {
		t.Error("feOne should not be zero")
	}
}

func TestFieldElementEqualityIgnoresEncoding(t *testing.T) {
	// Decoding masks bit 255 before reducing (standard Curve25519 field
	// decode), so an all-0xFF array represents 2^255-1, and
	// 2^255-1 = p+19-1 = p+18 = 18 (mod p).
	var canonical [32]byte
	canonical[0] = 18
	a := feFromBytes(&canonical)

	var unreduced [32]byte
	for i := range unreduced {
		unreduced[i] = 0xFF
	}
	b := feFromBytes(&unreduced)

	if a.ctEq(b) != 1 {
		t.Errorf("18 and an all-0xFF encoding should decode to the same field element")
	}
}

func TestFieldElementArithmetic(t *testing.T) {
	var two [32]byte
	two[0] = 2
	a := feFromBytes(&two)

	sum := a.add(a)
	var four [32]byte
	four[0] = 4
	if sum.ctEq(feFromBytes(&four)) != 1 {
		t.Error("2 + 2 should equal 4")
	}

	sq := a.square()
	if sq.ctEq(feFromBytes(&four)) != 1 {
		t.Error("2^2 should equal 4")
	}

	inv := a.invert()
	if a.mul(inv).ctEq(feOne()) != 1 {
		t.Error("a * a^-1 should equal 1")
	}
}

func TestFieldElementInvertZero(t *testing.T) {
	z := feZero()
	if z.invert().ctEq(feZero()) != 1 {
		t.Error("invert(0) should be 0 by the Fermat-exponentiation convention")
	}
}

func TestFieldConditionalSelect(t *testing.T) {
	a, b := feZero(), feOne()
	if feConditionalSelect(a, b, 0).ctEq(a) != 1 {
		t.Error("choice 0 should select a")
	}
	if feConditionalSelect(a, b, 1).ctEq(b) != 1 {
		t.Error("choice 1 should select b")
	}
}

func TestDeltaCorrectness(t *testing.T) {
	// delta = A_M/3 as a field element, computed against its fixed byte
	// encoding. A_M = 486662 = 0x076D06.
	am := [32]byte{0x06, 0x6D, 0x07}
	three := feOne().add(feOne()).add(feOne())
	computed := feFromBytes(&am).mul(three.invert())
	if computed.bytes() != deltaBytes {
		t.Errorf("A_M/3 encodes to %x, want %x", computed.bytes(), deltaBytes)
	}
}
