// Package boost is a booster shot for Go slices. [Array] is a named slice type whose
// methods are hand-written index loops (visit-each, reduce, filter, map, index-lookup).
// Converting a slice to an Array shares its memory, so indexing, len, range and
// serialization keep working exactly as on the plain slice.
//
// Plain slices that were never converted can still be used through [Prop] and [Call],
// and [BoostPrototype] makes every slice of the process report itself as boosted.
package boost

import (
	"github.com/inoxlang/boostarray/internal/utils"
	"github.com/inoxlang/boostarray/seq"
)

// An Array is a boosted slice.
type Array[T any] []T

// New returns a fresh boosted array holding a copy of elems; with no arguments
// the array is empty (but not nil).
func New[T any](elems ...T) Array[T] {
	return Array[T](utils.CopySlice(elems))
}

// Boost returns s as a boosted array. The result shares the memory of s: no element is copied.
// A nil slice is replaced by a new empty array. Boosting an Array returns the same array.
func Boost[S ~[]E, E any](s S) Array[E] {
	return Array[E](utils.EmptySliceIfNil([]E(s)))
}

// IsBoosted always returns true, it is the tag telling boosted arrays apart from plain slices.
func (a Array[T]) IsBoosted() bool {
	return true
}

func (a Array[T]) Len() int {
	return len(a)
}

// Slice returns the underlying plain slice.
func (a Array[T]) Slice() []T {
	return []T(a)
}

// Keys returns the indexes of the elements, the only enumerable keys of an array.
func (a Array[T]) Keys() []int {
	keys := make([]int, len(a))
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// ForEach calls visitor once per element, in order.
func (a Array[T]) ForEach(visitor func(T)) error {
	return seq.ForEach(a, visitor)
}

// Reduce folds the array from the left, starting with initial. Use seq.Reduce
// for an accumulator whose type differs from the element type.
func (a Array[T]) Reduce(combiner func(acc T, e T) T, initial T) (T, error) {
	return seq.Reduce(a, combiner, initial)
}

// Filter returns a new plain slice holding the elements satisfying predicate.
func (a Array[T]) Filter(predicate func(T) bool) ([]T, error) {
	return seq.Filter(a, predicate)
}

// Map returns a new plain slice of the same length. Use seq.Map to change the element type.
func (a Array[T]) Map(mapper func(T) T) ([]T, error) {
	return seq.Map(a, mapper)
}

// IndexOf returns the index of the first element strictly equal to v, or -1.
func (a Array[T]) IndexOf(v T) int {
	length := len(a)
	for i := 0; i < length; i++ {
		if utils.StrictEqual(a[i], v) {
			return i
		}
	}
	return -1
}
