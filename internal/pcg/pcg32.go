// Package pcg implements a 32-bit permuted congruential generator
// (PCG XSH-RR), after Melissa O'Neill's PCG family (https://www.pcg-random.org).
// Generators are deterministic per seed, allocation-free and thread unsafe.
package pcg

import "math/bits"

const (
	multiplier = 0x5851F42D4C957F2D
	increment  = 0x14057B7EF767814F
)

// A PCG32 holds the 64-bit state of the generator. The zero value is a valid
// generator; use Seed or New for a seed-dependent stream.
type PCG32 struct {
	state uint64
}

func New(seed uint64) *PCG32 {
	p := &PCG32{}
	p.Seed(seed)
	return p
}

// Seed resets the generator to the stream identified by seed: the state is
// zeroed, advanced once, offset by the seed, then advanced again, so that
// every seed lands on a distinct internal state.
func (p *PCG32) Seed(seed uint64) {
	p.state = 0
	p.Uint32()
	p.state += seed
	p.Uint32()
}

// Uint32 returns the next uniformly distributed 32-bit value.
func (p *PCG32) Uint32() uint32 {
	state := p.state
	p.state = state*multiplier + increment

	// XSH-RR output permutation: xorshift the high bits down, then rotate by
	// the top 5 bits of the pre-advance state.
	value := uint32((state ^ (state >> 18)) >> 27)
	rot := int(state >> 59)
	return bits.RotateLeft32(value, -rot)
}

// Uint64 returns the next uniformly distributed 64-bit value, built from two
// 32-bit outputs (high word first).
func (p *PCG32) Uint64() uint64 {
	hi := uint64(p.Uint32())
	lo := uint64(p.Uint32())
	return hi<<32 | lo
}

// Bool returns the next random boolean.
func (p *PCG32) Bool() bool {
	return p.Uint32() < 1<<31
}

// Float32 returns the next random float32 on [0, 1), using 24 bits of randomness.
func (p *PCG32) Float32() float32 {
	return float32(p.Uint32()>>8) * (1.0 / (1 << 24))
}

// Float64 returns the next random float64 on [0, 1), using 53 bits of randomness.
func (p *PCG32) Float64() float64 {
	return float64(p.Uint64()>>11) * (1.0 / (1 << 53))
}

// Uint32Range returns a uniformly distributed value on [min, max). Modulo
// bias is removed by rejection sampling: outputs below -bounds % bounds are
// discarded. Returns min if max <= min.
func (p *PCG32) Uint32Range(min, max uint32) uint32 {
	if max <= min {
		return min
	}
	bounds := max - min
	threshold := -bounds % bounds
	for {
		r := p.Uint32()
		if r >= threshold {
			return min + r%bounds
		}
	}
}

// Int32Range returns a uniformly distributed value on [min, max).
// Returns min if max <= min.
func (p *PCG32) Int32Range(min, max int32) int32 {
	if max <= min {
		return min
	}
	span := uint32(int64(max) - int64(min))
	return min + int32(p.Uint32Range(0, span))
}

// Float32Range returns a random float32 on [min, max).
func (p *PCG32) Float32Range(min, max float32) float32 {
	return p.Float32()*(max-min) + min
}

// Float64Range returns a random float64 on [min, max).
func (p *PCG32) Float64Range(min, max float64) float64 {
	return p.Float64()*(max-min) + min
}

// Shuffle pseudo-randomizes the order of n elements using the Fisher-Yates
// algorithm; swap exchanges the elements at indexes i and j.
func (p *PCG32) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(p.Uint32Range(0, uint32(i+1)))
		swap(i, j)
	}
}

// Perm returns a pseudo-random permutation of the integers [0, n).
func (p *PCG32) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	p.Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}
