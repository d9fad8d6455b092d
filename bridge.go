package w25519

// W25519 is the bare, byte-oriented bridge function, interoperable with
// RFC 7748 X25519 through its u-coordinate: for every k and every on-curve
// u, W25519(k, u, v).u equals the standard X25519 Montgomery ladder's output
// on (k, u). It clamps k, lifts (u, v) to Wei25519 via FromMontgomery,
// scalar-multiplies with the constant-time double-and-add loop, and
// projects the result back with IntoMontgomery.
func W25519(k, u, v [32]byte) (uOut, vOut [32]byte) {
	clamped := ClampX25519(k)
	p := FromMontgomery(u, v)
	result := dhScalarMul(clamped, p)
	return IntoMontgomery(result)
}
