package memds

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrFullFixedArray      = errors.New("FixedArray is full")
	ErrIndexOutOfRange     = errors.New("index is out of range")
	ErrBadRange            = errors.New("invalid range")
	ErrNegativeCapacity    = errors.New("capacity is negative")
	ErrSizeExceedsCapacity = errors.New("size exceeds capacity")
	ErrCapacityMismatch    = errors.New("FixedArrays have different capacities")
)

// A FixedArray is a thread unsafe sequence with a capacity fixed at construction.
// Its backing storage is allocated once and never grows; slots past the current
// size always hold the zero value of T so that dead slots never retain references.
type FixedArray[T any] struct {
	elements []T // len(elements) == capacity, never reallocated
	size     int
}

// NewFixedArray returns an empty FixedArray that can hold up to capacity elements.
func NewFixedArray[T any](capacity int) *FixedArray[T] {
	if capacity < 0 {
		panic(ErrNegativeCapacity)
	}
	return &FixedArray[T]{
		elements: make([]T, capacity),
	}
}

// NewFixedArrayWithSize returns a FixedArray holding size zero-value elements.
func NewFixedArrayWithSize[T any](capacity, size int) (*FixedArray[T], error) {
	if size < 0 || size > capacity {
		return nil, ErrSizeExceedsCapacity
	}
	a := NewFixedArray[T](capacity)
	a.size = size
	return a, nil
}

// NewFixedArrayFilled returns a FixedArray holding size copies of v.
func NewFixedArrayFilled[T any](capacity, size int, v T) (*FixedArray[T], error) {
	a, err := NewFixedArrayWithSize[T](capacity, size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		a.elements[i] = v
	}
	return a, nil
}

// NewFixedArrayOf returns a FixedArray holding the passed values, in order.
// The number of values is not allowed to exceed capacity; the constructor
// never truncates.
func NewFixedArrayOf[T any](capacity int, values ...T) (*FixedArray[T], error) {
	if len(values) > capacity {
		return nil, ErrSizeExceedsCapacity
	}
	a := NewFixedArray[T](capacity)
	copy(a.elements, values)
	a.size = len(values)
	return a, nil
}

// Clone returns a deep copy: same capacity, elements copied one by one.
func (a *FixedArray[T]) Clone() *FixedArray[T] {
	clone := NewFixedArray[T](len(a.elements))
	copy(clone.elements, a.elements[:a.size])
	clone.size = a.size
	return clone
}

// Len returns the number of live elements.
func (a *FixedArray[T]) Len() int {
	return a.size
}

// Cap returns the fixed capacity.
func (a *FixedArray[T]) Cap() int {
	return len(a.elements)
}

// Empty returns true if the array contains no elements.
func (a *FixedArray[T]) Empty() bool {
	return a.size == 0
}

// Full returns true if no more elements can be pushed.
func (a *FixedArray[T]) Full() bool {
	return a.size == len(a.elements)
}

// At returns the element at index i, or ErrIndexOutOfRange if i is not in [0, Len()).
func (a *FixedArray[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return a.elements[i], nil
}

// MustAt is the unchecked counterpart of At: it panics with ErrIndexOutOfRange
// on a bad index, in every build mode.
func (a *FixedArray[T]) MustAt(i int) T {
	if i < 0 || i >= a.size {
		panic(ErrIndexOutOfRange)
	}
	return a.elements[i]
}

// Set replaces the element at index i.
func (a *FixedArray[T]) Set(i int, v T) error {
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}
	a.elements[i] = v
	return nil
}

// Front returns the first element.
// Second return parameter is true, unless the array is empty.
func (a *FixedArray[T]) Front() (v T, ok bool) {
	if a.size == 0 {
		return
	}
	return a.elements[0], true
}

// Back returns the last element.
// Second return parameter is true, unless the array is empty.
func (a *FixedArray[T]) Back() (v T, ok bool) {
	if a.size == 0 {
		return
	}
	return a.elements[a.size-1], true
}

// Data returns the live range of the backing storage, without copying.
// Mutating the returned slice mutates the array; callers must not keep
// the slice across operations that change Len().
func (a *FixedArray[T]) Data() []T {
	return a.elements[:a.size]
}

// Values returns a copy of the live elements, in index order.
func (a *FixedArray[T]) Values() []T {
	values := make([]T, a.size)
	copy(values, a.elements[:a.size])
	return values
}

// Push appends v, or returns ErrFullFixedArray if the capacity is exhausted.
func (a *FixedArray[T]) Push(v T) error {
	if a.size == len(a.elements) {
		return ErrFullFixedArray
	}
	a.elements[a.size] = v
	a.size++
	return nil
}

// Pop removes the last element and returns it.
// Second return parameter is true, unless the array was empty and there was nothing to pop.
func (a *FixedArray[T]) Pop() (v T, ok bool) {
	if a.size == 0 {
		return
	}
	var zero T
	a.size--
	v = a.elements[a.size]
	a.elements[a.size] = zero
	return v, true
}

// Insert places v at index i (0 <= i <= Len()), shifting the elements at and
// after i one slot to the right. Inserting at Len() is equivalent to Push.
func (a *FixedArray[T]) Insert(i int, v T) error {
	if i < 0 || i > a.size {
		return ErrIndexOutOfRange
	}
	if a.size == len(a.elements) {
		return ErrFullFixedArray
	}
	copy(a.elements[i+1:a.size+1], a.elements[i:a.size])
	a.elements[i] = v
	a.size++
	return nil
}

// Erase removes the element at index i, shifting the following elements one
// slot to the left. The vacated slot is zeroed.
func (a *FixedArray[T]) Erase(i int) error {
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}
	var zero T
	copy(a.elements[i:a.size-1], a.elements[i+1:a.size])
	a.size--
	a.elements[a.size] = zero
	return nil
}

// EraseRange removes the elements in [first, last), moving the surviving tail
// down and zeroing the vacated slots. It returns the number of removed
// elements; an empty range is a no-op.
func (a *FixedArray[T]) EraseRange(first, last int) (int, error) {
	if first < 0 || last < first || last > a.size {
		return 0, ErrBadRange
	}
	removed := last - first
	if removed == 0 {
		return 0, nil
	}
	var zero T
	copy(a.elements[first:], a.elements[last:a.size])
	for i := a.size - removed; i < a.size; i++ {
		a.elements[i] = zero
	}
	a.size -= removed
	return removed, nil
}

// Resize sets the length to size. Shrinking zeroes the removed slots; growing
// exposes zero-value elements (free slots are already zeroed).
func (a *FixedArray[T]) Resize(size int) error {
	if size < 0 || size > len(a.elements) {
		return ErrSizeExceedsCapacity
	}
	var zero T
	for i := size; i < a.size; i++ {
		a.elements[i] = zero
	}
	a.size = size
	return nil
}

// ResizeFilled is Resize with new elements set to copies of v instead of the zero value.
func (a *FixedArray[T]) ResizeFilled(size int, v T) error {
	prevSize := a.size
	if err := a.Resize(size); err != nil {
		return err
	}
	for i := prevSize; i < size; i++ {
		a.elements[i] = v
	}
	return nil
}

// Clear removes all elements and zeroes the previously live slots.
func (a *FixedArray[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.elements[i] = zero
	}
	a.size = 0
}

// CopyFrom makes the receiver hold a copy of other's elements.
// Both arrays must have the same capacity.
func (a *FixedArray[T]) CopyFrom(other *FixedArray[T]) error {
	if len(a.elements) != len(other.elements) {
		return ErrCapacityMismatch
	}
	if a == other {
		return nil
	}
	var zero T
	copy(a.elements, other.elements[:other.size])
	for i := other.size; i < a.size; i++ {
		a.elements[i] = zero
	}
	a.size = other.size
	return nil
}

// MoveFrom transfers other's elements into the receiver and leaves other
// empty. Both arrays must have the same capacity.
func (a *FixedArray[T]) MoveFrom(other *FixedArray[T]) error {
	if err := a.CopyFrom(other); err != nil {
		return err
	}
	if a != other {
		other.Clear()
	}
	return nil
}

// Swap exchanges the contents of two same-capacity arrays that may have
// different lengths: the common prefix is swapped pairwise, the longer side's
// tail is moved into the shorter side (zeroing the vacated slots), then the
// sizes are exchanged.
func (a *FixedArray[T]) Swap(other *FixedArray[T]) error {
	if len(a.elements) != len(other.elements) {
		return ErrCapacityMismatch
	}
	if a == other {
		return nil
	}

	shorter, longer := a, other
	if shorter.size > longer.size {
		shorter, longer = longer, shorter
	}
	minSize := shorter.size

	for i := 0; i < minSize; i++ {
		a.elements[i], other.elements[i] = other.elements[i], a.elements[i]
	}

	var zero T
	for i := minSize; i < longer.size; i++ {
		shorter.elements[i] = longer.elements[i]
		longer.elements[i] = zero
	}

	a.size, other.size = other.size, a.size
	return nil
}

func (a *FixedArray[T]) ForEachElem(fn func(i int, e T) error) error {
	for i := 0; i < a.size; i++ {
		err := fn(i, a.elements[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// thread unsafe fixed array iterator
type FixedArrayIterator[T any] struct {
	index    int
	elements []T
}

func (a *FixedArray[T]) Iterator() *FixedArrayIterator[T] {
	return &FixedArrayIterator[T]{
		index:    -1,
		elements: a.Values(),
	}
}

func (it *FixedArrayIterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *FixedArrayIterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *FixedArrayIterator[T]) Index() int {
	return it.index
}

// FixedArraysEqual returns true if a and b have the same length and are
// element-wise equal in index order. Capacities are not compared.
func FixedArraysEqual[T comparable](a, b *FixedArray[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.elements[i] != b.elements[i] {
			return false
		}
	}
	return true
}

// FixedArraysEqualFunc is FixedArraysEqual with a custom element equality.
func FixedArraysEqualFunc[T any](a, b *FixedArray[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.elements[i], b.elements[i]) {
			return false
		}
	}
	return true
}

// CompareFixedArrays compares a and b lexicographically over their live
// elements, returning -1, 0 or +1. A prefix compares less than the longer
// sequence it prefixes.
func CompareFixedArrays[T constraints.Ordered](a, b *FixedArray[T]) int {
	return CompareFixedArraysFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})
}

// CompareFixedArraysFunc is CompareFixedArrays with a custom element comparison.
func CompareFixedArraysFunc[T any](a, b *FixedArray[T], cmp func(x, y T) int) int {
	minSize := a.size
	if b.size < minSize {
		minSize = b.size
	}
	for i := 0; i < minSize; i++ {
		if c := cmp(a.elements[i], b.elements[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return 1
	default:
		return 0
	}
}
