package w25519

import (
	"crypto/hmac"
	"errors"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// ExpandHKDF derives len(out) bytes of key material from the shared secret
// using HKDF (RFC 5869) over SHA-256, writing the result into out. salt and
// info are the usual HKDF extract salt and expand context; either may be
// nil.
//
// This is optional convenience layered on top of the raw 64-byte shared
// secret; the DH surface itself is unchanged and complete without it.
func (s SharedSecret) ExpandHKDF(salt, info, out []byte) error {
	if len(out) == 0 {
		return errors.New("w25519: HKDF output length must be greater than 0")
	}
	newHash := func() hash.Hash { return sha256simd.New() }

	ikm := s.Bytes()
	if len(salt) == 0 {
		salt = make([]byte, 32)
	}
	extract := hmac.New(newHash, salt)
	extract.Write(ikm[:])
	prk := extract.Sum(nil)

	var t []byte
	written := 0
	for counter := byte(1); written < len(out); counter++ {
		expand := hmac.New(newHash, prk)
		expand.Write(t)
		expand.Write(info)
		expand.Write([]byte{counter})
		t = expand.Sum(nil)

		n := copy(out[written:], t)
		written += n
	}

	zeroize(prk)
	zeroize(ikm[:])
	return nil
}
