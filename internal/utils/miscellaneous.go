package utils

import (
	"reflect"
)

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

func SamePointer(a, b interface{}) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// StrictEqual reports whether a and b have the same dynamic type and are equal, without any
// conversion between types. Slices and maps are compared by identity (same memory, and for
// slices, same length). Funcs are never equal to each other.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	typ := reflect.TypeOf(a)
	if typ != reflect.TypeOf(b) {
		return false
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	switch typ.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && SamePointer(a, b)
	case reflect.Map:
		return SamePointer(a, b)
	case reflect.Func:
		return false
	}

	//structs and arrays can hold non comparable values in interface fields.
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
