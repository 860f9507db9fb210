package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	// Failures inside a confidential field surface as the wrapper's own
	// contained DecodeError; failures in ordinary fields keep the codec's
	// original detail.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrBareSensitive indicates WithAudit found a field tagged sensitive
	// that is not held in a confidential wrapper.
	ErrBareSensitive = errors.New("bare sensitive field")
)

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes both the sentinel and the cause, so errors.Is can match
// ErrUnmarshal and, when a confidential field contained its own failure,
// confidential.ErrDecode through the same chain.
func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
