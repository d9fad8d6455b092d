package w25519

import "runtime"

// zeroize overwrites b with zeros and then calls runtime.KeepAlive on it, so
// the write cannot be proven dead and elided by the compiler. Section 5's
// shared-resource policy requires guarding against exactly that elimination
// when secret storage is released.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}

func zeroize32(b *[32]byte) {
	zeroize(b[:])
}
