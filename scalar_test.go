package w25519

import (
	"crypto/rand"
	"testing"
)

func TestScalarLinearity(t *testing.T) {
	a, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("NewRandomScalar: %v", err)
	}
	b, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("NewRandomScalar: %v", err)
	}
	_, p := randomScalarPoint(t)

	lhs := a.Add(b).Mul(p)
	rhs := Add(a.Mul(p), b.Mul(p))
	if lhs.Equal(rhs) != 1 {
		t.Error("(a+b)*P should equal a*P + b*P")
	}
}

func TestScalarMultiplicationHomomorphism(t *testing.T) {
	a, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("NewRandomScalar: %v", err)
	}
	b, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("NewRandomScalar: %v", err)
	}
	_, p := randomScalarPoint(t)

	lhs := a.Mul(b.Mul(p))
	rhs := a.Multiply(b).Mul(p)
	if lhs.Equal(rhs) != 1 {
		t.Error("a*(b*P) should equal (a*b)*P")
	}
}

func TestScalarBytesRoundTrip(t *testing.T) {
	s, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("NewRandomScalar: %v", err)
	}
	b := s.Bytes()
	got, err := ScalarFromCanonicalBytes(b)
	if err != nil {
		t.Fatalf("ScalarFromCanonicalBytes: %v", err)
	}
	if got.Bytes() != b {
		t.Error("Bytes/ScalarFromCanonicalBytes should round-trip")
	}
}

func TestScalarZeroMulIsIdentity(t *testing.T) {
	var zero Scalar
	_, p := randomScalarPoint(t)
	if zero.Mul(p).AtInfinity() != 1 {
		t.Error("0*P should be the identity")
	}
}

func TestBitsLSBFirstDecode(t *testing.T) {
	var b [32]byte
	b[0] = 0b00000101
	b[31] = 0x80
	bits := bitsLSBFirst(b)
	if bits[0] != 1 || bits[1] != 0 || bits[2] != 1 {
		t.Error("low three bits of byte 0 decoded incorrectly")
	}
	if bits[255] != 1 {
		t.Error("bit 255 (top bit of byte 31) decoded incorrectly")
	}
}

func TestClampX25519Bits(t *testing.T) {
	var raw [32]byte
	for i := range raw {
		raw[i] = 0xFF
	}
	clamped := ClampX25519(raw)
	if clamped[0]&0b00000111 != 0 {
		t.Error("clamping should clear the low 3 bits of byte 0")
	}
	if clamped[31]&0x80 != 0 {
		t.Error("clamping should clear the high bit of byte 31")
	}
	if clamped[31]&0x40 == 0 {
		t.Error("clamping should set bit 254")
	}
}
