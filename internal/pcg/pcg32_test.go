package pcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCG32Determinism(t *testing.T) {
	t.Run("same seed, same stream", func(t *testing.T) {
		a := New(42)
		b := New(42)
		for i := 0; i < 1000; i++ {
			require.Equal(t, a.Uint32(), b.Uint32(), "i=%d", i)
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := New(1)
		b := New(2)

		same := true
		for i := 0; i < 16; i++ {
			if a.Uint32() != b.Uint32() {
				same = false
				break
			}
		}
		assert.False(t, same)
	})

	t.Run("reseeding restarts the stream", func(t *testing.T) {
		p := New(7)
		first := p.Uint32()
		p.Uint32()
		p.Uint32()

		p.Seed(7)
		assert.Equal(t, first, p.Uint32())
	})

	t.Run("stream is not constant", func(t *testing.T) {
		p := New(3)
		seen := map[uint32]bool{}
		for i := 0; i < 64; i++ {
			seen[p.Uint32()] = true
		}
		assert.Greater(t, len(seen), 60)
	})
}

func TestPCG32Ranges(t *testing.T) {
	t.Run("Uint32Range stays in bounds", func(t *testing.T) {
		p := New(5)
		for i := 0; i < 10_000; i++ {
			v := p.Uint32Range(10, 20)
			require.GreaterOrEqual(t, v, uint32(10))
			require.Less(t, v, uint32(20))
		}
	})

	t.Run("Uint32Range covers the whole interval", func(t *testing.T) {
		p := New(6)
		seen := map[uint32]bool{}
		for i := 0; i < 1000; i++ {
			seen[p.Uint32Range(0, 8)] = true
		}
		assert.Len(t, seen, 8)
	})

	t.Run("Uint32Range with an empty interval returns min", func(t *testing.T) {
		p := New(1)
		assert.Equal(t, uint32(9), p.Uint32Range(9, 9))
		assert.Equal(t, uint32(9), p.Uint32Range(9, 3))
	})

	t.Run("Int32Range stays in bounds, negative intervals included", func(t *testing.T) {
		p := New(8)
		for i := 0; i < 10_000; i++ {
			v := p.Int32Range(-5, 5)
			require.GreaterOrEqual(t, v, int32(-5))
			require.Less(t, v, int32(5))
		}
		assert.Equal(t, int32(-3), p.Int32Range(-3, -3))
	})

	t.Run("floats are on [0, 1)", func(t *testing.T) {
		p := New(9)
		for i := 0; i < 10_000; i++ {
			f32 := p.Float32()
			require.GreaterOrEqual(t, f32, float32(0))
			require.Less(t, f32, float32(1))

			f64 := p.Float64()
			require.GreaterOrEqual(t, f64, 0.0)
			require.Less(t, f64, 1.0)
		}
	})

	t.Run("float ranges", func(t *testing.T) {
		p := New(10)
		for i := 0; i < 1000; i++ {
			v := p.Float64Range(-2.5, 2.5)
			require.GreaterOrEqual(t, v, -2.5)
			require.Less(t, v, 2.5)
		}
	})

	t.Run("Bool yields both values", func(t *testing.T) {
		p := New(11)
		sawTrue, sawFalse := false, false
		for i := 0; i < 100; i++ {
			if p.Bool() {
				sawTrue = true
			} else {
				sawFalse = true
			}
		}
		assert.True(t, sawTrue)
		assert.True(t, sawFalse)
	})
}

func TestPCG32Shuffle(t *testing.T) {
	t.Run("Perm is a permutation", func(t *testing.T) {
		p := New(12)
		perm := p.Perm(100)

		seen := make([]bool, 100)
		for _, v := range perm {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 100)
			require.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	})

	t.Run("Shuffle is deterministic per seed", func(t *testing.T) {
		a := New(13)
		b := New(13)
		assert.Equal(t, a.Perm(32), b.Perm(32))
	})
}
