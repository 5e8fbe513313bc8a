// Package stress drives long randomized operation sequences against the
// memds structures, cross-checking every operation against a naive reference
// model (a plain slice, a Go map). Runs are deterministic per seed.
package stress

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Baedrick/dk-go/internal/memds"
	"github.com/Baedrick/dk-go/internal/pcg"
	"github.com/rs/zerolog"
)

var (
	ErrModelDivergence   = errors.New("structure diverged from the reference model")
	ErrContractViolation = errors.New("operation violated its error contract")
)

const DEFAULT_ITERATION_COUNT = 10_000

// Weights control the relative frequency of each operation kind in a run.
// A zero weight disables the operation.
type Weights struct {
	Push    int
	Pop     int
	Insert  int
	Erase   int
	Resize  int
	Clear   int
	Swap    int
	Replace int
	Delete  int
}

func DefaultWeights() Weights {
	return Weights{
		Push:    30,
		Pop:     20,
		Insert:  20,
		Erase:   15,
		Resize:  5,
		Clear:   1,
		Swap:    4,
		Replace: 10,
		Delete:  15,
	}
}

type RunConfig struct {
	Seed       uint64
	Iterations int // defaults to DEFAULT_ITERATION_COUNT
	Capacity   int // FixedArray capacity, defaults to 32

	// KeySpace bounds the keys used in FlatMap runs so that duplicate-key
	// paths are actually exercised; defaults to 64.
	KeySpace uint32

	Weights Weights
}

func (c *RunConfig) fillDefaults() {
	if c.Iterations <= 0 {
		c.Iterations = DEFAULT_ITERATION_COUNT
	}
	if c.Capacity <= 0 {
		c.Capacity = 32
	}
	if c.KeySpace == 0 {
		c.KeySpace = 64
	}
	if c.Weights == (Weights{}) {
		c.Weights = DefaultWeights()
	}
}

type divergence struct {
	iteration int
	op        string
	detail    string
}

func (d divergence) wrap(base error) error {
	return fmt.Errorf("iteration %d, op %s: %s: %w", d.iteration, d.op, d.detail, base)
}

// RunFixedArray performs a randomized soak of FixedArray, mirroring every
// operation onto a plain slice and comparing the full contents afterwards.
// It returns a non-nil error on the first divergence.
func RunFixedArray(config RunConfig, logger zerolog.Logger) error {
	config.fillDefaults()

	rng := pcg.New(config.Seed)
	array := memds.NewFixedArray[uint32](config.Capacity)
	partner := memds.NewFixedArray[uint32](config.Capacity)

	model := []uint32{}
	partnerModel := []uint32{}

	w := config.Weights
	total := w.Push + w.Pop + w.Insert + w.Erase + w.Resize + w.Clear + w.Swap
	if total <= 0 {
		return errors.New("no operations enabled for FixedArray run")
	}

	logger.Debug().
		Uint64("seed", config.Seed).
		Int("iterations", config.Iterations).
		Int("capacity", config.Capacity).
		Msg("starting FixedArray soak")

	for it := 0; it < config.Iterations; it++ {
		pick := int(rng.Uint32Range(0, uint32(total)))
		var opName string
		var opErr error

		switch {
		case pick < w.Push:
			opName = "push"
			v := rng.Uint32()
			err := array.Push(v)
			if len(model) == config.Capacity {
				if !errors.Is(err, memds.ErrFullFixedArray) {
					opErr = divergence{it, opName, "push into full array did not fail"}.wrap(ErrContractViolation)
				}
			} else if err != nil {
				opErr = divergence{it, opName, err.Error()}.wrap(ErrContractViolation)
			} else {
				model = append(model, v)
			}
		case pick < w.Push+w.Pop:
			opName = "pop"
			v, ok := array.Pop()
			if ok != (len(model) > 0) {
				opErr = divergence{it, opName, "pop presence flag disagrees with model"}.wrap(ErrContractViolation)
			} else if ok {
				last := model[len(model)-1]
				model = model[:len(model)-1]
				if v != last {
					opErr = divergence{it, opName, fmt.Sprintf("popped %d, model holds %d", v, last)}.wrap(ErrModelDivergence)
				}
			}
		case pick < w.Push+w.Pop+w.Insert:
			opName = "insert"
			i := int(rng.Uint32Range(0, uint32(len(model)+1)))
			v := rng.Uint32()
			err := array.Insert(i, v)
			if len(model) == config.Capacity {
				if !errors.Is(err, memds.ErrFullFixedArray) {
					opErr = divergence{it, opName, "insert into full array did not fail"}.wrap(ErrContractViolation)
				}
			} else if err != nil {
				opErr = divergence{it, opName, err.Error()}.wrap(ErrContractViolation)
			} else {
				model = slices.Insert(model, i, v)
			}
		case pick < w.Push+w.Pop+w.Insert+w.Erase:
			opName = "erase"
			if len(model) == 0 {
				if err := array.Erase(0); !errors.Is(err, memds.ErrIndexOutOfRange) {
					opErr = divergence{it, opName, "erase on empty array did not fail"}.wrap(ErrContractViolation)
				}
			} else {
				i := int(rng.Uint32Range(0, uint32(len(model))))
				if err := array.Erase(i); err != nil {
					opErr = divergence{it, opName, err.Error()}.wrap(ErrContractViolation)
				} else {
					model = slices.Delete(model, i, i+1)
				}
			}
		case pick < w.Push+w.Pop+w.Insert+w.Erase+w.Resize:
			opName = "resize"
			n := int(rng.Uint32Range(0, uint32(config.Capacity+1)))
			if err := array.Resize(n); err != nil {
				opErr = divergence{it, opName, err.Error()}.wrap(ErrContractViolation)
			} else {
				for len(model) < n {
					model = append(model, 0)
				}
				model = model[:n]
			}
		case pick < w.Push+w.Pop+w.Insert+w.Erase+w.Resize+w.Clear:
			opName = "clear"
			array.Clear()
			model = model[:0]
		default:
			opName = "swap"
			if err := array.Swap(partner); err != nil {
				opErr = divergence{it, opName, err.Error()}.wrap(ErrContractViolation)
			} else {
				model, partnerModel = partnerModel, model
			}
		}

		if opErr == nil {
			opErr = checkFixedArray(array, model, it, opName)
		}
		if opErr != nil {
			logger.Error().Err(opErr).Msg("FixedArray soak failed")
			return opErr
		}
	}

	logger.Info().
		Uint64("seed", config.Seed).
		Int("iterations", config.Iterations).
		Int("final-len", array.Len()).
		Msg("FixedArray soak passed")
	return nil
}

func checkFixedArray(array *memds.FixedArray[uint32], model []uint32, it int, op string) error {
	if array.Len() > array.Cap() {
		return divergence{it, op, "length exceeds capacity"}.wrap(ErrContractViolation)
	}
	if array.Len() != len(model) {
		detail := fmt.Sprintf("length %d, model length %d", array.Len(), len(model))
		return divergence{it, op, detail}.wrap(ErrModelDivergence)
	}
	if !slices.Equal(array.Values(), model) {
		return divergence{it, op, "contents differ from model"}.wrap(ErrModelDivergence)
	}
	return nil
}

// RunFlatMap performs a randomized soak of FlatMap against a Go map,
// additionally checking that the entries stay sorted by key and that the
// first-write-wins insertion contract holds.
func RunFlatMap(config RunConfig, logger zerolog.Logger) error {
	config.fillDefaults()

	rng := pcg.New(config.Seed)
	flatMap := memds.NewFlatMap[uint32, uint32]()
	model := map[uint32]uint32{}

	w := config.Weights
	total := w.Insert + w.Replace + w.Delete + w.Clear
	if total <= 0 {
		return errors.New("no operations enabled for FlatMap run")
	}

	logger.Debug().
		Uint64("seed", config.Seed).
		Int("iterations", config.Iterations).
		Uint32("key-space", config.KeySpace).
		Msg("starting FlatMap soak")

	for it := 0; it < config.Iterations; it++ {
		pick := int(rng.Uint32Range(0, uint32(total)))
		key := rng.Uint32Range(0, config.KeySpace)
		var opName string
		var opErr error

		switch {
		case pick < w.Insert:
			opName = "insert"
			v := rng.Uint32()
			_, present := model[key]
			inserted := flatMap.Insert(key, v)
			if inserted == present {
				opErr = divergence{it, opName, "first-write-wins flag disagrees with model"}.wrap(ErrContractViolation)
			} else if inserted {
				model[key] = v
			}
		case pick < w.Insert+w.Replace:
			opName = "replace"
			v := rng.Uint32()
			_, present := model[key]
			replaced := flatMap.Replace(key, v)
			if replaced != present {
				opErr = divergence{it, opName, "replace flag disagrees with model"}.wrap(ErrContractViolation)
			} else {
				model[key] = v
			}
		case pick < w.Insert+w.Replace+w.Delete:
			opName = "delete"
			_, present := model[key]
			deleted := flatMap.Delete(key)
			if deleted != present {
				opErr = divergence{it, opName, "delete flag disagrees with model"}.wrap(ErrContractViolation)
			} else {
				delete(model, key)
			}
		default:
			opName = "clear"
			flatMap.Clear()
			model = map[uint32]uint32{}
		}

		if opErr == nil {
			opErr = checkFlatMap(flatMap, model, it, opName)
		}
		if opErr != nil {
			logger.Error().Err(opErr).Msg("FlatMap soak failed")
			return opErr
		}
	}

	logger.Info().
		Uint64("seed", config.Seed).
		Int("iterations", config.Iterations).
		Int("final-len", flatMap.Len()).
		Msg("FlatMap soak passed")
	return nil
}

func checkFlatMap(flatMap *memds.FlatMap[uint32, uint32], model map[uint32]uint32, it int, op string) error {
	if flatMap.Len() != len(model) {
		detail := fmt.Sprintf("length %d, model length %d", flatMap.Len(), len(model))
		return divergence{it, op, detail}.wrap(ErrModelDivergence)
	}

	keys := flatMap.Keys()
	if !slices.IsSorted(keys) {
		return divergence{it, op, "keys are not sorted"}.wrap(ErrContractViolation)
	}

	for k, v := range model {
		got, found := flatMap.Get(k)
		if !found {
			return divergence{it, op, fmt.Sprintf("key %d missing", k)}.wrap(ErrModelDivergence)
		}
		if got != v {
			return divergence{it, op, fmt.Sprintf("key %d holds %d, model holds %d", k, got, v)}.wrap(ErrModelDivergence)
		}
	}
	return nil
}
