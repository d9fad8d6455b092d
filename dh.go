package w25519

import (
	"crypto/rand"
	"io"
	"runtime"
)

// PublicKey is a Wei25519 public key: a Weierstrass point, 64 bytes when
// serialized. Public keys carry no secret material and may be freely
// cloned, compared, and serialized.
type PublicKey struct {
	point WeierstrassPoint
}

// Bytes returns the 64-byte x||y encoding of the public key.
func (p PublicKey) Bytes() [64]byte { return p.point.Bytes() }

// PublicKeyFromBytes decodes a 64-byte x||y encoding into a PublicKey. No
// on-curve validation is performed: a malformed or off-curve point decodes
// without error and produces arithmetically-defined results downstream
// rather than raising one.
func PublicKeyFromBytes(b [64]byte) PublicKey {
	return PublicKey{point: PointFromBytes(b)}
}

// Equal reports whether p and q decode to the same point.
func (p PublicKey) Equal(q PublicKey) bool {
	return p.point.Equal(q.point) == 1
}

// SharedSecret is the output of a Diffie-Hellman exchange: a Weierstrass
// point, serialized the same way a PublicKey is (64 bytes, x||y). For
// X25519 interoperability, project it with IntoMontgomeryCompressed.
type SharedSecret struct {
	point WeierstrassPoint
}

// Bytes returns the 64-byte x||y encoding of the shared secret.
func (s SharedSecret) Bytes() [64]byte { return s.point.Bytes() }

// WasContributory reports whether both sides' public keys contributed to
// the shared secret, i.e. whether the result is not the identity. Some
// protocols require rejecting a non-contributory exchange; this package
// only reports the condition as a boolean -- enforcing a rejection policy
// on top of it is the caller's job.
func (s SharedSecret) WasContributory() bool {
	return s.point.AtInfinity() == 0
}

// Zeroize overwrites the shared secret's backing point with zeros. A
// zeroized SharedSecret reads back as the identity encoding (0, 0); callers
// that need to retain the 64-byte value should copy Bytes() before calling
// Zeroize.
func (s *SharedSecret) Zeroize() {
	zeroize32(&s.point.X)
	zeroize32(&s.point.Y)
}

// CSPRNG is the source of randomness secret construction draws from.
// crypto/rand.Reader satisfies it.
type CSPRNG = io.Reader

// dhSecret is the shared representation behind all three secret-key
// lifecycle variants: a clamped, unreduced X25519 scalar (dhscalar.go).
// dhSecret carries a plain [32]byte and is never parsed into a Scalar, even
// at the moment of use, so clamping stays a pure byte transform.
type dhSecret struct {
	clamped [32]byte
}

func newDHSecret(r CSPRNG) (dhSecret, error) {
	var raw [32]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return dhSecret{}, err
	}
	s := dhSecret{clamped: ClampX25519(raw)}
	zeroize32(&raw)
	return s, nil
}

func dhSecretFromBytes(b [32]byte) dhSecret {
	return dhSecret{clamped: ClampX25519(b)}
}

func (s *dhSecret) publicKey() PublicKey {
	return PublicKey{point: dhScalarMul(s.clamped, BasePoint())}
}

func (s *dhSecret) diffieHellman(their PublicKey) SharedSecret {
	return SharedSecret{point: dhScalarMul(s.clamped, their.point)}
}

func (s *dhSecret) zero() {
	zeroize32(&s.clamped)
}

// EphemeralSecret is a single-use Diffie-Hellman secret: drawing one from a
// CSPRNG and calling DiffieHellman on it is the only supported lifecycle.
// It cannot be serialized, and its backing scalar is zeroized both when
// DiffieHellman consumes it and, as a backstop if a caller never calls
// DiffieHellman at all, by a finalizer run at garbage collection.
//
// Go has no move-only types, so "consumed" is enforced at runtime rather
// than at compile time: after the first DiffieHellman call the backing
// scalar is zero, so any further call degenerates to multiplying by zero
// and returns the identity.
type EphemeralSecret struct {
	inner dhSecret
}

// NewEphemeralSecret draws a fresh secret from rand.
func NewEphemeralSecret(r CSPRNG) (*EphemeralSecret, error) {
	inner, err := newDHSecret(r)
	if err != nil {
		return nil, err
	}
	s := &EphemeralSecret{inner: inner}
	runtime.SetFinalizer(s, func(s *EphemeralSecret) { s.inner.zero() })
	return s, nil
}

// PublicKey computes the public key for this secret.
func (s *EphemeralSecret) PublicKey() PublicKey {
	return s.inner.publicKey()
}

// DiffieHellman consumes the secret, computing the shared point with their.
// After this call the secret's backing scalar is zero; the value must not
// be used for a second exchange.
func (s *EphemeralSecret) DiffieHellman(their PublicKey) SharedSecret {
	result := s.inner.diffieHellman(their)
	s.inner.zero()
	return result
}

// ReusableSecret is a Diffie-Hellman secret that may be used for more than
// one exchange but, unlike StaticSecret, cannot be serialized. Its backing
// scalar is zeroized by Zeroize or, as a backstop, by a finalizer at
// garbage collection.
type ReusableSecret struct {
	inner dhSecret
}

// NewReusableSecret draws a fresh secret from rand.
func NewReusableSecret(r CSPRNG) (*ReusableSecret, error) {
	inner, err := newDHSecret(r)
	if err != nil {
		return nil, err
	}
	s := &ReusableSecret{inner: inner}
	runtime.SetFinalizer(s, func(s *ReusableSecret) { s.inner.zero() })
	return s, nil
}

// PublicKey computes the public key for this secret.
func (s *ReusableSecret) PublicKey() PublicKey {
	return s.inner.publicKey()
}

// DiffieHellman computes the shared point with their. The secret remains
// usable afterwards.
func (s *ReusableSecret) DiffieHellman(their PublicKey) SharedSecret {
	return s.inner.diffieHellman(their)
}

// Zeroize overwrites the secret's backing scalar with zeros, ahead of
// garbage collection.
func (s *ReusableSecret) Zeroize() {
	s.inner.zero()
}

// StaticSecret is a Diffie-Hellman secret that is both reusable and
// serializable to 32 raw bytes -- the clamped scalar itself; constructing
// one from bytes clamps and stores, it does not validate. Its backing
// scalar is zeroized by Zeroize or, as a backstop, by a finalizer at
// garbage collection.
type StaticSecret struct {
	inner dhSecret
}

// NewStaticSecret draws a fresh secret from rand.
func NewStaticSecret(r CSPRNG) (*StaticSecret, error) {
	inner, err := newDHSecret(r)
	if err != nil {
		return nil, err
	}
	s := &StaticSecret{inner: inner}
	runtime.SetFinalizer(s, func(s *StaticSecret) { s.inner.zero() })
	return s, nil
}

// StaticSecretFromBytes clamps b and stores the result; b itself is not
// modified.
func StaticSecretFromBytes(b [32]byte) *StaticSecret {
	s := &StaticSecret{inner: dhSecretFromBytes(b)}
	runtime.SetFinalizer(s, func(s *StaticSecret) { s.inner.zero() })
	return s
}

// Bytes returns the 32-byte clamped scalar backing this secret.
func (s *StaticSecret) Bytes() [32]byte {
	return s.inner.clamped
}

// PublicKey computes the public key for this secret.
func (s *StaticSecret) PublicKey() PublicKey {
	return s.inner.publicKey()
}

// DiffieHellman computes the shared point with their. The secret remains
// usable afterwards.
func (s *StaticSecret) DiffieHellman(their PublicKey) SharedSecret {
	return s.inner.diffieHellman(their)
}

// Zeroize overwrites the secret's backing scalar with zeros, ahead of
// garbage collection.
func (s *StaticSecret) Zeroize() {
	s.inner.zero()
}

// DefaultCSPRNG is crypto/rand.Reader, the default randomness source for
// every New*Secret constructor's documentation and tests.
var DefaultCSPRNG CSPRNG = rand.Reader
