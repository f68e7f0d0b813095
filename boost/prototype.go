package boost

import (
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	prototypeOnce    sync.Once
	prototypeBoosted atomic.Bool
)

type tagged interface {
	IsBoosted() bool
}

// BoostPrototype makes every slice of the process, including the ones already created,
// report itself as boosted (see IsBoostedArray). The switch cannot be turned off.
// BoostPrototype is safe for concurrent use, only the first call has an effect.
func BoostPrototype() {
	prototypeOnce.Do(func() {
		prototypeBoosted.Store(true)

		logger := getLogger()
		logger.Debug().Msg("array prototype boosted")
	})
}

func PrototypeBoosted() bool {
	return prototypeBoosted.Load()
}

// IsArray reports whether v is an ordered indexable container: a slice or an array.
// Strings, maps and channels are not arrays.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// IsBoostedArray reports whether v is an array carrying the boosted tag,
// always true for arrays once the prototype is boosted.
func IsBoostedArray(v any) bool {
	if !IsArray(v) {
		return false
	}
	if PrototypeBoosted() {
		return true
	}
	t, ok := v.(tagged)
	return ok && t.IsBoosted()
}
