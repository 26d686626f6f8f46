package xorshift

import "math/bits"

// bitSource is implemented by both engines. It is only used as a type constraint
// so that the samplers get instantiated per engine type.
type bitSource interface {
	*Xorshift128PlusEngine | *Xoroshiro128PlusEngine
	Uint64() uint64
}

// Xorshift128PlusEngine is the xorshift128+ generator by Sebastiano Vigna with the shift triple (23, 18, 5)
// (see https://arxiv.org/abs/1404.0390).
// This random number generator is deterministic in the sequence of numbers it generates. It has a period of 2^128-1.
// This random number generator is deterministic in its runtime (i.e. it has a constant runtime).
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// This random number generator has a very small memory footprint (16 bytes).
// The state must not be all zero. Use NewXorshift128Plus to get a properly seeded instance.
type Xorshift128PlusEngine struct {
	State [2]uint64
}

// NewXorshift128Plus returns an engine whose state is derived from seed via splitmix64.
func NewXorshift128Plus(seed uint64) *Xorshift128PlusEngine {
	x := &Xorshift128PlusEngine{}
	x.State = seedState(seed)
	return x
}

// Uint64 returns the next pseudo-random number in the sequence.
// It has a deterministic (i.e. constant) runtime and a high probability to be inlined by the compiler.
func (x *Xorshift128PlusEngine) Uint64() uint64 {
	s1 := x.State[0]
	s0 := x.State[1]
	x.State[0] = s0
	s1 ^= s1 << 23
	x.State[1] = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	return x.State[1] + s0
}

var xorshift128PlusJump = [2]uint64{0x8a5cd789635d2dff, 0x121fd2155c472f96}

// Jump advances the engine by 2^64 steps. Calling Jump on copies of the same state
// yields 2^64 non-overlapping subsequences.
func (x *Xorshift128PlusEngine) Jump() {
	var s0, s1 uint64
	for _, j := range xorshift128PlusJump {
		for b := range 64 {
			if j&(uint64(1)<<b) != 0 {
				s0 ^= x.State[0]
				s1 ^= x.State[1]
			}
			x.Uint64()
		}
	}
	x.State[0], x.State[1] = s0, s1
}

// Xoroshiro128PlusEngine is the xoroshiro128+ generator by David Blackman and Sebastiano Vigna
// with the original parameters (55, 14, 36) (see https://prng.di.unimi.it).
// Compared to xorshift128+ it uses rotations and has better diffusion; the lowest bits are weak,
// which is why the uniform conversion only uses the upper 53 bits.
// This random number generator is deterministic in the sequence of numbers it generates. It has a period of 2^128-1.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// The state must not be all zero.
type Xoroshiro128PlusEngine struct {
	State [2]uint64
}

// NewXoroshiro128Plus returns an engine whose state is derived from seed via splitmix64.
func NewXoroshiro128Plus(seed uint64) *Xoroshiro128PlusEngine {
	x := &Xoroshiro128PlusEngine{}
	x.State = seedState(seed)
	return x
}

// Uint64 returns the sum of the two state words and then advances the state.
func (x *Xoroshiro128PlusEngine) Uint64() uint64 {
	s0 := x.State[0]
	s1 := x.State[1]
	result := s0 + s1

	s1 ^= s0
	x.State[0] = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	x.State[1] = bits.RotateLeft64(s1, 36)
	return result
}

var xoroshiro128PlusJump = [2]uint64{0xbeac0467eba5facb, 0xd86b048b86aa9922}

// Jump advances the engine by 2^64 steps.
func (x *Xoroshiro128PlusEngine) Jump() {
	var s0, s1 uint64
	for _, j := range xoroshiro128PlusJump {
		for b := range 64 {
			if j&(uint64(1)<<b) != 0 {
				s0 ^= x.State[0]
				s1 ^= x.State[1]
			}
			x.Uint64()
		}
	}
	x.State[0], x.State[1] = s0, s1
}
