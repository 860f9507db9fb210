package confidential

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrDecode is the generic signal for a decode failure contained at the
// wrapper boundary. Use errors.Is() to check for it.
var ErrDecode = errors.New("confidential value could not be decoded")

// DecodeError replaces any failure produced while decoding a wrapped
// value. It names only the Go type of the inner value; the original
// failure is discarded because decoder errors can echo the malformed
// input back into their messages.
type DecodeError struct {
	Type string // Go type of the inner value
}

func (e *DecodeError) Error() string {
	if e.Type == "" {
		return ErrDecode.Error()
	}
	return fmt.Sprintf("%s (type %s)", ErrDecode.Error(), e.Type)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// newDecodeError builds the contained error for an inner type.
func newDecodeError[T any]() error {
	return &DecodeError{Type: reflect.TypeFor[T]().String()}
}
