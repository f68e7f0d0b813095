package boost

import (
	"fmt"
	"reflect"

	"github.com/inoxlang/boostarray/internal/utils"
)

const (
	BOOSTED_PROPNAME  = "boosted"
	LENGTH_PROPNAME   = "length"
	FOR_EACH_PROPNAME = "forEach"
	REDUCE_PROPNAME   = "reduce"
	FILTER_PROPNAME   = "filter"
	MAP_PROPNAME      = "map"
	INDEX_OF_PROPNAME = "indexOf"
)

var PROPNAMES = []string{
	BOOSTED_PROPNAME, LENGTH_PROPNAME,
	FOR_EACH_PROPNAME, REDUCE_PROPNAME, FILTER_PROPNAME, MAP_PROPNAME, INDEX_OF_PROPNAME,
}

// A Method is an operation bound to a receiver array.
type Method func(args ...any) (any, error)

// Prop returns the value of the property name of receiver, which can be any slice or array,
// boosted or not. Operations are returned as a Method bound to the receiver. The callback
// passed to a method is checked, along with every element of the receiver, before the
// first call.
func Prop(receiver any, name string) (any, error) {
	if !IsArray(receiver) {
		return nil, fmtInvalidReceiver(receiver)
	}
	array := reflect.ValueOf(receiver)

	switch name {
	case BOOSTED_PROPNAME:
		return IsBoostedArray(receiver), nil
	case LENGTH_PROPNAME:
		return array.Len(), nil
	case FOR_EACH_PROPNAME:
		return Method(func(args ...any) (any, error) {
			return nil, forEach(array, args)
		}), nil
	case REDUCE_PROPNAME:
		return Method(func(args ...any) (any, error) {
			return reduce(array, args)
		}), nil
	case FILTER_PROPNAME:
		return Method(func(args ...any) (any, error) {
			return filter(array, args)
		}), nil
	case MAP_PROPNAME:
		return Method(func(args ...any) (any, error) {
			return mapArray(array, args)
		}), nil
	case INDEX_OF_PROPNAME:
		return Method(func(args ...any) (any, error) {
			return indexOf(array, args)
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
}

// Call calls the method name of receiver with args.
func Call(receiver any, name string, args ...any) (any, error) {
	prop, err := Prop(receiver, name)
	if err != nil {
		return nil, err
	}
	method, ok := prop.(Method)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotCallable, name)
	}
	return method(args...)
}

func forEach(array reflect.Value, args []any) error {
	visitor, err := getCallback(FOR_EACH_PROPNAME, args, 1, 1, -1)
	if err != nil {
		return err
	}
	elems, err := callbackArguments(FOR_EACH_PROPNAME, array, visitor.Type().In(0))
	if err != nil {
		return err
	}

	for _, e := range elems {
		visitor.Call([]reflect.Value{e})
	}
	return nil
}

func reduce(array reflect.Value, args []any) (any, error) {
	combiner, err := getCallback(REDUCE_PROPNAME, args, 2, 2, 1)
	if err != nil {
		return nil, err
	}
	combinerType := combiner.Type()
	accType := combinerType.In(0)

	if !combinerType.Out(0).AssignableTo(accType) {
		return nil, fmtInvalidArgument(REDUCE_PROPNAME, "the result (%s) of the combiner cannot be used as its first argument (%s)",
			combinerType.Out(0), accType)
	}

	if len(args) < 2 {
		return nil, fmtInvalidArgument(REDUCE_PROPNAME, "missing initial value")
	}
	acc, ok := convertArgument(reflect.ValueOf(&args[1]).Elem(), accType)
	if !ok {
		return nil, fmtInvalidArgument(REDUCE_PROPNAME, "initial value %#v cannot be used as a %s", args[1], accType)
	}

	elems, err := callbackArguments(REDUCE_PROPNAME, array, combinerType.In(1))
	if err != nil {
		return nil, err
	}

	for _, e := range elems {
		acc = combiner.Call([]reflect.Value{acc, e})[0]
	}
	return acc.Interface(), nil
}

func filter(array reflect.Value, args []any) (any, error) {
	predicate, err := getCallback(FILTER_PROPNAME, args, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	if predicate.Type().Out(0).Kind() != reflect.Bool {
		return nil, fmtInvalidArgument(FILTER_PROPNAME, "the predicate should return a boolean, not a %s", predicate.Type().Out(0))
	}

	elems, err := callbackArguments(FILTER_PROPNAME, array, predicate.Type().In(0))
	if err != nil {
		return nil, err
	}

	//the result is a plain slice even if the receiver is an Array.
	result := reflect.MakeSlice(reflect.SliceOf(array.Type().Elem()), 0, 0)

	for i, e := range elems {
		if predicate.Call([]reflect.Value{e})[0].Bool() {
			result = reflect.Append(result, array.Index(i))
		}
	}
	return result.Interface(), nil
}

func mapArray(array reflect.Value, args []any) (any, error) {
	mapper, err := getCallback(MAP_PROPNAME, args, 1, 1, 1)
	if err != nil {
		return nil, err
	}

	elems, err := callbackArguments(MAP_PROPNAME, array, mapper.Type().In(0))
	if err != nil {
		return nil, err
	}

	result := reflect.MakeSlice(reflect.SliceOf(mapper.Type().Out(0)), len(elems), len(elems))

	for i, e := range elems {
		result.Index(i).Set(mapper.Call([]reflect.Value{e})[0])
	}
	return result.Interface(), nil
}

func indexOf(array reflect.Value, args []any) (any, error) {
	if len(args) != 1 {
		return nil, fmtInvalidArgument(INDEX_OF_PROPNAME, "1 argument was expected, got %d", len(args))
	}
	searched := args[0]

	length := array.Len()
	for i := 0; i < length; i++ {
		if utils.StrictEqual(array.Index(i).Interface(), searched) {
			return i, nil
		}
	}
	return -1, nil
}

// getCallback checks that args[0] is a non-nil function with numIn parameters and numOut results,
// a negative numOut accepts any number of results.
func getCallback(method string, args []any, maxArgs int, numIn int, numOut int) (reflect.Value, error) {
	if len(args) == 0 || args[0] == nil {
		return reflect.Value{}, fmtInvalidArgument(method, "missing function")
	}
	if len(args) > maxArgs {
		return reflect.Value{}, fmtInvalidArgument(method, "too many arguments: %d, at most %d were expected", len(args), maxArgs)
	}

	fn := reflect.ValueOf(args[0])
	if fn.Kind() != reflect.Func {
		return reflect.Value{}, fmtInvalidArgument(method, "%T is not a function", args[0])
	}
	if fn.IsNil() {
		return reflect.Value{}, fmtInvalidArgument(method, "function is nil")
	}

	fnType := fn.Type()
	if fnType.IsVariadic() || fnType.NumIn() != numIn {
		return reflect.Value{}, fmtInvalidArgument(method, "the function should have %d parameter(s), it has %d", numIn, fnType.NumIn())
	}
	if numOut >= 0 && fnType.NumOut() != numOut {
		return reflect.Value{}, fmtInvalidArgument(method, "the function should have %d result(s), it has %d", numOut, fnType.NumOut())
	}
	return fn, nil
}

// callbackArguments converts every element of array to paramType.
func callbackArguments(method string, array reflect.Value, paramType reflect.Type) ([]reflect.Value, error) {
	length := array.Len()
	args := make([]reflect.Value, length)

	for i := 0; i < length; i++ {
		arg, ok := convertArgument(array.Index(i), paramType)
		if !ok {
			return nil, fmtInvalidArgument(method, "element at index %d cannot be passed as a %s", i, paramType)
		}
		args[i] = arg
	}
	return args, nil
}

// convertArgument returns v, or the value wrapped in v if v is an interface, if it is assignable to paramType.
// No conversion between types is performed.
func convertArgument(v reflect.Value, paramType reflect.Type) (reflect.Value, bool) {
	if v.Type().AssignableTo(paramType) {
		return v, true
	}
	if v.Kind() != reflect.Interface {
		return reflect.Value{}, false
	}
	if v.IsNil() {
		switch paramType.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(paramType), true
		}
		return reflect.Value{}, false
	}

	inner := v.Elem()
	if inner.Type().AssignableTo(paramType) {
		return inner, true
	}
	return reflect.Value{}, false
}
