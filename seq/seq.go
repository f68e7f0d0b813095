// Package seq implements the boosted iteration operations as free functions over
// any slice type. Every operation is a single ascending pass written as a plain
// index loop; none of them modifies the elements of the slice it is given.
package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required callback is missing.
	ErrInvalidArgument = errors.New("invalid argument")
)

func missingCallback(name string) error {
	return fmt.Errorf("%w: %s function is nil", ErrInvalidArgument, name)
}

// ForEach calls visitor once per element of s, in ascending index order.
func ForEach[S ~[]E, E any](s S, visitor func(E)) error {
	if visitor == nil {
		return missingCallback("visitor")
	}

	length := len(s)
	for i := 0; i < length; i++ {
		visitor(s[i])
	}
	return nil
}

// Reduce folds s from the left, starting with initial: acc = combiner(acc, s[i]).
// The initial value is mandatory, Reduce never seeds the accumulator with the first
// element. If s is empty initial is returned unchanged.
func Reduce[S ~[]E, E, A any](s S, combiner func(A, E) A, initial A) (A, error) {
	if combiner == nil {
		return initial, missingCallback("combiner")
	}

	acc := initial
	length := len(s)
	for i := 0; i < length; i++ {
		acc = combiner(acc, s[i])
	}
	return acc, nil
}

// Filter returns a new slice containing, in their original order, the elements of
// s that satisfy predicate. The result never shares memory with s and is never nil.
func Filter[S ~[]E, E any](s S, predicate func(E) bool) ([]E, error) {
	if predicate == nil {
		return nil, missingCallback("predicate")
	}

	result := make([]E, 0)
	length := len(s)
	for i := 0; i < length; i++ {
		e := s[i]
		if predicate(e) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Map returns a new slice of the same length as s where result[i] = mapper(s[i]).
func Map[S ~[]E, E, U any](s S, mapper func(E) U) ([]U, error) {
	if mapper == nil {
		return nil, missingCallback("mapper")
	}

	length := len(s)
	result := make([]U, length)
	for i := 0; i < length; i++ {
		result[i] = mapper(s[i])
	}
	return result, nil
}

// IndexOf returns the index of the first element of s equal to v, or -1.
func IndexOf[S ~[]E, E comparable](s S, v E) int {
	length := len(s)
	for i := 0; i < length; i++ {
		if s[i] == v {
			return i
		}
	}
	return -1
}

func Contains[S ~[]E, E comparable](s S, v E) bool {
	return IndexOf(s, v) >= 0
}
