package w25519

import (
	"crypto/rand"
	"testing"
)

func randomScalarPoint(t *testing.T) (Scalar, WeierstrassPoint) {
	t.Helper()
	s, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("NewRandomScalar: %v", err)
	}
	return s, s.Mul(BasePoint())
}

func TestGroupCommutative(t *testing.T) {
	_, p := randomScalarPoint(t)
	_, q := randomScalarPoint(t)
	if Add(p, q).Equal(Add(q, p)) != 1 {
		t.Error("P + Q should equal Q + P")
	}
}

func TestGroupAssociative(t *testing.T) {
	_, p := randomScalarPoint(t)
	_, q := randomScalarPoint(t)
	_, r := randomScalarPoint(t)
	lhs := Add(Add(p, q), r)
	rhs := Add(p, Add(q, r))
	if lhs.Equal(rhs) != 1 {
		t.Error("(P + Q) + R should equal P + (Q + R)")
	}
}

func TestGroupIdentity(t *testing.T) {
	_, p := randomScalarPoint(t)
	if Add(p, Identity()).Equal(p) != 1 {
		t.Error("P + O should equal P")
	}
	if Add(Identity(), p).Equal(p) != 1 {
		t.Error("O + P should equal P")
	}
	if Add(Identity(), Identity()).AtInfinity() != 1 {
		t.Error("O + O should be O")
	}
}

func TestGroupInverse(t *testing.T) {
	_, p := randomScalarPoint(t)
	neg := negateY(p)
	if Add(p, neg).AtInfinity() != 1 {
		t.Error("P + (-P) should be O")
	}
}

func TestDoubleMatchesSelfAdd(t *testing.T) {
	_, p := randomScalarPoint(t)
	if Double(p).Equal(Add(p, p)) != 1 {
		t.Error("Double(P) should equal P + P")
	}
	if Double(Identity()).AtInfinity() != 1 {
		t.Error("Double(O) should be O")
	}
}

func TestAddVarAgreesWithAdd(t *testing.T) {
	_, p := randomScalarPoint(t)
	_, q := randomScalarPoint(t)

	if AddVar(p, q).Equal(Add(p, q)) != 1 {
		t.Error("AddVar should agree with Add on distinct points")
	}
	if AddVar(p, Identity()).Equal(p) != 1 {
		t.Error("AddVar(P, O) should equal P")
	}
	if AddVar(Identity(), p).Equal(p) != 1 {
		t.Error("AddVar(O, P) should equal P")
	}
	if AddVar(p, negateY(p)).AtInfinity() != 1 {
		t.Error("AddVar(P, -P) should be O")
	}
	if AddVar(p, p).Equal(Double(p)) != 1 {
		t.Error("AddVar(P, P) should equal Double(P)")
	}
}
