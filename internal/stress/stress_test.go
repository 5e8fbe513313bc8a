package stress

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRunFixedArray(t *testing.T) {
	t.Run("several seeds", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			config := RunConfig{
				Seed:       seed,
				Iterations: 2000,
				Capacity:   8,
			}
			assert.NoError(t, RunFixedArray(config, zerolog.Nop()), "seed %d", seed)
		}
	})

	t.Run("tiny capacity exercises the full/empty boundaries", func(t *testing.T) {
		config := RunConfig{
			Seed:       99,
			Iterations: 2000,
			Capacity:   1,
		}
		assert.NoError(t, RunFixedArray(config, zerolog.Nop()))
	})

	t.Run("no enabled operations is an error", func(t *testing.T) {
		config := RunConfig{
			Seed:    1,
			Weights: Weights{Replace: 1}, // no FixedArray op enabled
		}
		assert.Error(t, RunFixedArray(config, zerolog.Nop()))
	})
}

func TestRunFlatMap(t *testing.T) {
	t.Run("several seeds", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			config := RunConfig{
				Seed:       seed,
				Iterations: 2000,
				KeySpace:   16,
			}
			assert.NoError(t, RunFlatMap(config, zerolog.Nop()), "seed %d", seed)
		}
	})

	t.Run("no enabled operations is an error", func(t *testing.T) {
		config := RunConfig{
			Seed:    1,
			Weights: Weights{Push: 1}, // no FlatMap op enabled
		}
		assert.Error(t, RunFlatMap(config, zerolog.Nop()))
	})
}
