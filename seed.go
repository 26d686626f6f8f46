package xorshift

import "encoding/binary"

const goldenGamma = 0x9E3779B97F4A7C15

// splitMix64 is the stateless form of splitmix64: it adds the golden gamma to z and
// applies the finalizer. It is only used to expand seeds, never to generate output.
// splitMix64(0) is non-zero, so the expansion in seedState can never produce an all-zero state.
func splitMix64(z uint64) uint64 {
	z += goldenGamma
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// seedState expands a 64-bit seed into two decorrelated state words.
func seedState(seed uint64) [2]uint64 {
	s0 := splitMix64(seed)
	s1 := splitMix64(s0)
	if s0|s1 == 0 {
		panic(ErrDegenerateState)
	}
	return [2]uint64{s0, s1}
}

// foldSeeds combines several seed words into one. A single word is returned unchanged
// so that New(alg, mode, s) and NewXoroshiro128Plus(s) produce the same sequence.
func foldSeeds(seeds []uint64) uint64 {
	seed := seeds[0]
	for _, s := range seeds[1:] {
		seed = splitMix64(seed) ^ s
	}
	return seed
}

// SeedFromBytes reduces an arbitrary byte string to a 64-bit seed.
// The bytes are consumed in little-endian 8-byte words (the last one zero-padded) and
// folded with splitmix64; the length is mixed in so that trailing zero bytes matter.
// An empty or nil slice is a valid seed.
func SeedFromBytes(b []byte) uint64 {
	seed := splitMix64(uint64(len(b)))
	for len(b) >= 8 {
		seed = splitMix64(seed ^ binary.LittleEndian.Uint64(b))
		b = b[8:]
	}
	if len(b) > 0 {
		var tail [8]byte
		copy(tail[:], b)
		seed = splitMix64(seed ^ binary.LittleEndian.Uint64(tail[:]))
	}
	return seed
}
