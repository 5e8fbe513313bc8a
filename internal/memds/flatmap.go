package memds

import (
	"slices"

	"github.com/Baedrick/dk-go/internal/utils"
	"golang.org/x/exp/constraints"
)

// A FlatMapEntry is a key-value pair stored by a FlatMap.
type FlatMapEntry[K, V any] struct {
	Key   K
	Value V
}

// A FlatMap is a thread unsafe ordered map backed by a single slice of
// entries kept sorted by key. Lookups are binary searches; insertions and
// deletions shift the tail of the slice.
//
// Duplicate-key policy is first-write-wins: Insert and the bulk constructors
// never change the value of an already present key. Replace is the only
// operation that overwrites.
type FlatMap[K, V any] struct {
	cmp     func(a, b K) int
	entries []FlatMapEntry[K, V]
}

// NewFlatMap returns an empty FlatMap ordered by the natural order of K.
func NewFlatMap[K constraints.Ordered, V any]() *FlatMap[K, V] {
	return NewFlatMapFunc[K, V](orderedCompare[K])
}

// NewFlatMapFunc returns an empty FlatMap ordered by the passed comparison
// function; cmp must return a negative value if a sorts before b, zero if
// the keys are equal and a positive value otherwise.
func NewFlatMapFunc[K, V any](cmp func(a, b K) int) *FlatMap[K, V] {
	return &FlatMap[K, V]{cmp: cmp}
}

// NewFlatMapFromPairs returns a FlatMap holding the passed entries.
// On duplicate keys the first entry in pairs wins.
func NewFlatMapFromPairs[K constraints.Ordered, V any](pairs []FlatMapEntry[K, V]) *FlatMap[K, V] {
	m := NewFlatMap[K, V]()
	m.entries = make([]FlatMapEntry[K, V], len(pairs))
	copy(m.entries, pairs)

	slices.SortStableFunc(m.entries, func(a, b FlatMapEntry[K, V]) int {
		return m.cmp(a.Key, b.Key)
	})
	m.entries = slices.CompactFunc(m.entries, func(a, b FlatMapEntry[K, V]) bool {
		return m.cmp(a.Key, b.Key) == 0
	})
	return m
}

// NewFlatMapFromMap returns a FlatMap holding the entries of goMap.
func NewFlatMapFromMap[K constraints.Ordered, V any](goMap map[K]V) *FlatMap[K, V] {
	m := NewFlatMap[K, V]()
	m.entries = make([]FlatMapEntry[K, V], 0, len(goMap))
	for k, v := range goMap {
		m.entries = append(m.entries, FlatMapEntry[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(m.entries, func(a, b FlatMapEntry[K, V]) int {
		return m.cmp(a.Key, b.Key)
	})
	return m
}

func orderedCompare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (m *FlatMap[K, V]) getEntryIndex(key K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(entry FlatMapEntry[K, V], key K) int {
		return m.cmp(entry.Key, key)
	})
}

// Len returns the number of entries.
func (m *FlatMap[K, V]) Len() int {
	return len(m.entries)
}

// Empty returns true if the map contains no entries.
func (m *FlatMap[K, V]) Empty() bool {
	return len(m.entries) == 0
}

// Get returns the value stored for key.
// Second return parameter is true, unless the key is absent.
func (m *FlatMap[K, V]) Get(key K) (v V, found bool) {
	index, ok := m.getEntryIndex(key)
	if !ok {
		return
	}
	return m.entries[index].Value, true
}

func (m *FlatMap[K, V]) MustGet(key K) V {
	return utils.MustGet(m.Get(key))
}

// Contains returns true if key is present.
func (m *FlatMap[K, V]) Contains(key K) bool {
	_, ok := m.getEntryIndex(key)
	return ok
}

// Insert stores value for key if key is absent and returns true; if the key
// is already present the map is left unchanged and Insert returns false
// (first-write-wins).
func (m *FlatMap[K, V]) Insert(key K, value V) bool {
	index, ok := m.getEntryIndex(key)
	if ok {
		return false
	}
	m.entries = slices.Insert(m.entries, index, FlatMapEntry[K, V]{Key: key, Value: value})
	return true
}

// Replace stores value for key unconditionally, inserting the key if it is
// absent. It returns true if an existing value was overwritten.
func (m *FlatMap[K, V]) Replace(key K, value V) bool {
	index, ok := m.getEntryIndex(key)
	if ok {
		m.entries[index] = FlatMapEntry[K, V]{Key: key, Value: value}
		return true
	}
	m.entries = slices.Insert(m.entries, index, FlatMapEntry[K, V]{Key: key, Value: value})
	return false
}

// Delete removes the entry for key and returns true, or returns false if the
// key is absent.
func (m *FlatMap[K, V]) Delete(key K) bool {
	index, ok := m.getEntryIndex(key)
	if !ok {
		return false
	}
	m.entries = slices.Delete(m.entries, index, index+1)
	return true
}

// DeleteAt removes the entry at position i in key order.
func (m *FlatMap[K, V]) DeleteAt(i int) error {
	if i < 0 || i >= len(m.entries) {
		return ErrIndexOutOfRange
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return nil
}

// DeleteRange removes the entries at positions [first, last) in key order and
// returns the number of removed entries.
func (m *FlatMap[K, V]) DeleteRange(first, last int) (int, error) {
	if first < 0 || last < first || last > len(m.entries) {
		return 0, ErrBadRange
	}
	removed := last - first
	m.entries = slices.Delete(m.entries, first, last)
	return removed, nil
}

// EntryAt returns the entry at position i in key order.
func (m *FlatMap[K, V]) EntryAt(i int) (FlatMapEntry[K, V], error) {
	if i < 0 || i >= len(m.entries) {
		return FlatMapEntry[K, V]{}, ErrIndexOutOfRange
	}
	return m.entries[i], nil
}

// LowerBound returns the position of the first entry whose key does not sort
// before key; the result is len(m.entries) if there is no such entry.
func (m *FlatMap[K, V]) LowerBound(key K) int {
	index, _ := m.getEntryIndex(key)
	return index
}

// UpperBound returns the position of the first entry whose key sorts after key.
func (m *FlatMap[K, V]) UpperBound(key K) int {
	index, ok := m.getEntryIndex(key)
	if ok {
		return index + 1
	}
	return index
}

// EqualRange returns the half-open position range of the entries whose key
// equals key; the range is empty if the key is absent.
func (m *FlatMap[K, V]) EqualRange(key K) (lo, hi int) {
	lo = m.LowerBound(key)
	hi = m.UpperBound(key)
	return
}

// Keys returns the keys, in key order.
func (m *FlatMap[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, entry := range m.entries {
		keys[i] = entry.Key
	}
	return keys
}

// Values returns the values, in key order.
func (m *FlatMap[K, V]) Values() []V {
	values := make([]V, len(m.entries))
	for i, entry := range m.entries {
		values[i] = entry.Value
	}
	return values
}

// Entries returns a copy of the entries, in key order.
func (m *FlatMap[K, V]) Entries() []FlatMapEntry[K, V] {
	return slices.Clone(m.entries)
}

func (m *FlatMap[K, V]) ForEachEntry(fn func(i int, e FlatMapEntry[K, V]) error) error {
	for i, entry := range m.entries {
		err := fn(i, entry)
		if err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all entries, keeping the backing storage.
func (m *FlatMap[K, V]) Clear() {
	m.entries = m.entries[:0]
}

// Clone returns a deep copy sharing the comparison function.
func (m *FlatMap[K, V]) Clone() *FlatMap[K, V] {
	return &FlatMap[K, V]{
		cmp:     m.cmp,
		entries: slices.Clone(m.entries),
	}
}

// Swap exchanges the contents of two maps ordered by the same comparison.
func (m *FlatMap[K, V]) Swap(other *FlatMap[K, V]) {
	m.entries, other.entries = other.entries, m.entries
}
