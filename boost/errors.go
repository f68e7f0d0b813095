package boost

import (
	"errors"
	"fmt"

	"github.com/inoxlang/boostarray/seq"
)

var (
	ErrInvalidArgument = seq.ErrInvalidArgument
	ErrInvalidReceiver = errors.New("invalid receiver: not an array")
	ErrUnknownProperty = errors.New("unknown property")
	ErrNotCallable     = errors.New("property is not callable")
)

func fmtInvalidArgument(method string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, method, fmt.Sprintf(format, args...))
}

func fmtInvalidReceiver(receiver any) error {
	return fmt.Errorf("%w: %T", ErrInvalidReceiver, receiver)
}
