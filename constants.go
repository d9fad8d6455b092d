package w25519

// Fixed byte encodings for the Wei25519 domain parameters, little-endian,
// taken as given rather than recomputed at init time so every build sees
// the exact canonical constants regardless of the field library's internal
// reduction path.
var (
	// deltaBytes is the canonical encoding of delta = A_M/3, A_M = 486662.
	deltaBytes = [32]byte{
		0x51, 0x24, 0xAD, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0x2A,
	}

	// curveABytes is the canonical encoding of the Wei25519 curve parameter
	// a = 1 - A_M^2/3.
	curveABytes = [32]byte{
		0x44, 0xA1, 0x14, 0x49, 0x98, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0x2A,
	}

	// basepointXBytes is G_W.x = delta + 9, the same pattern as delta with
	// low byte 0x5A = 0x51 + 9.
	basepointXBytes = [32]byte{
		0x5A, 0x24, 0xAD, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0x2A,
	}

	// basepointYBytes is G_W.y, the RFC 7748 section 4.1 X25519 base
	// v-coordinate.
	basepointYBytes = [32]byte{
		0xD9, 0xD3, 0xCE, 0x7E, 0xA2, 0xC5, 0xE9, 0x29,
		0xB2, 0x61, 0x7C, 0x6D, 0x7E, 0x4D, 0x3D, 0x92,
		0x4C, 0xD1, 0x48, 0x77, 0x2C, 0xDD, 0x1E, 0xE0,
		0xB4, 0x86, 0xA0, 0xB8, 0xA1, 0x19, 0xAE, 0x20,
	}
)
