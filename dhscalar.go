package w25519

// ClampX25519 applies RFC 7748 clamping to a 32-byte little-endian integer:
// clear the low 3 bits of byte 0, clear the high bit of byte 31, set bit 254
// of byte 31. It returns the clamped bytes; the input is not modified.
//
// The clamped value is used directly as a scalar-multiplication multiplier
// -- it is NOT reduced modulo l. Reducing it (as Scalar's own construction
// from bytes would) changes which integer the double-and-add loop computes
// and would break bit-compatibility with RFC 7748 X25519, whose Montgomery
// ladder also consumes the raw clamped integer unreduced. This is why the
// DH path never routes through edwards25519.Scalar's clamp-then-reduce
// constructor (SetBytesWithClamping): that function's reduction step is
// exactly the divergence this function avoids.
func ClampX25519(b [32]byte) [32]byte {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
	return b
}

// dhScalarMul computes s*p where s is a 32-byte clamped scalar (see
// ClampX25519), using the same constant-time double-and-add loop as
// Scalar.Mul but operating on the raw clamped bytes instead of a reduced
// Scalar, so the result matches RFC 7748 X25519 bit-for-bit on the
// u-coordinate.
func dhScalarMul(clamped [32]byte, p WeierstrassPoint) WeierstrassPoint {
	return scalarMulBits(bitsLSBFirst(clamped), p)
}
