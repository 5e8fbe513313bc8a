package memds

import (
	"testing"

	"github.com/tidwall/btree"
)

// Baselines: tidwall/btree's ordered map and the built-in map. The flat map
// trades insertion cost for contiguous storage and cheap ordered iteration.

const benchEntryCount = 1024

func benchKeys() []uint32 {
	keys := make([]uint32, benchEntryCount)
	state := uint32(2463534242)
	for i := range keys {
		// xorshift32, just to avoid inserting in sorted order
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		keys[i] = state
	}
	return keys
}

func BenchmarkFlatMapInsert(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := NewFlatMap[uint32, uint32]()
		for _, k := range keys {
			m.Insert(k, k)
		}
	}
}

func BenchmarkBTreeMapInsert(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := btree.NewMap[uint32, uint32](32)
		for _, k := range keys {
			m.Set(k, k)
		}
	}
}

func BenchmarkGoMapInsert(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := make(map[uint32]uint32)
		for _, k := range keys {
			m[k] = k
		}
	}
}

func BenchmarkFlatMapGet(b *testing.B) {
	keys := benchKeys()
	m := NewFlatMap[uint32, uint32]()
	for _, k := range keys {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Get(keys[n%benchEntryCount])
	}
}

func BenchmarkBTreeMapGet(b *testing.B) {
	keys := benchKeys()
	m := btree.NewMap[uint32, uint32](32)
	for _, k := range keys {
		m.Set(k, k)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Get(keys[n%benchEntryCount])
	}
}

func BenchmarkGoMapGet(b *testing.B) {
	keys := benchKeys()
	m := make(map[uint32]uint32, benchEntryCount)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = m[keys[n%benchEntryCount]]
	}
}

func BenchmarkFlatMapOrderedIteration(b *testing.B) {
	keys := benchKeys()
	m := NewFlatMap[uint32, uint32]()
	for _, k := range keys {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		var sum uint32
		m.ForEachEntry(func(i int, e FlatMapEntry[uint32, uint32]) error {
			sum += e.Value
			return nil
		})
	}
}

func BenchmarkBTreeMapOrderedIteration(b *testing.B) {
	keys := benchKeys()
	m := btree.NewMap[uint32, uint32](32)
	for _, k := range keys {
		m.Set(k, k)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		var sum uint32
		m.Scan(func(key, value uint32) bool {
			sum += value
			return true
		})
	}
}
