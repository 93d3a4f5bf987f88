package signature

import "encoding/binary"

// customIV is the non-standard eight-word initialization vector the XLD
// signature scheme substitutes for FIPS 180-4's standard SHA-256 IV. Every
// other part of the construction (message schedule, round function,
// padding, 64-bit big-endian length suffix) is stock SHA-256.
var customIV = [8]uint32{
	0x1D95E3A4, 0x06520EF5, 0x3A9CFB75, 0x6104BCAE,
	0x09CEDA82, 0xBA55E60B, 0xEAEC16C6, 0xEB19AF15,
}

// roundConstants are the standard SHA-256 round constants (first 32 bits of
// the fractional parts of the cube roots of the first 64 primes).
var roundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Sum256Custom hashes msg with the customIV-seeded SHA-256 variant and
// returns the 32-byte big-endian digest.
func Sum256Custom(msg []byte) [32]byte {
	state := customIV
	for _, block := range pad(msg) {
		compress(&state, block)
	}

	var out [32]byte
	for i, w := range state {
		binary.BigEndian.PutUint32(out[i*4:i*4+4], w)
	}
	return out
}

// Sum256Standard hashes msg with the unmodified FIPS 180-4 IV, used only to
// sanity-check this compression function against crypto/sha256 in tests.
func Sum256Standard(msg []byte) [32]byte {
	state := [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	for _, block := range pad(msg) {
		compress(&state, block)
	}

	var out [32]byte
	for i, w := range state {
		binary.BigEndian.PutUint32(out[i*4:i*4+4], w)
	}
	return out
}

// pad applies the standard Merkle–Damgård padding (0x80, zeros, 64-bit
// big-endian bit length) and splits the result into 64-byte blocks.
func pad(msg []byte) [][64]byte {
	bitLen := uint64(len(msg)) * 8

	padded := make([]byte, len(msg), len(msg)+72)
	copy(padded, msg)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}

	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], bitLen)
	padded = append(padded, lenBuf[:]...)

	blocks := make([][64]byte, len(padded)/64)
	for i := range blocks {
		copy(blocks[i][:], padded[i*64:(i+1)*64])
	}
	return blocks
}

func rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// compress runs one standard SHA-256 compression round over block, updating
// state in place.
func compress(state *[8]uint32, block [64]byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4 : i*4+4])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		s1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + roundConstants[i] + w[i]
		s0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h, g, f, e = g, f, e, d+temp1
		d, c, b, a = c, b, a, temp1+temp2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
