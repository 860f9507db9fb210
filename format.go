package confidential

import (
	"fmt"
	"io"
	"log/slog"
)

// Redacted is the fixed placeholder printed in place of every wrapped
// value. Full replacement is the only offered behavior: partial masking,
// truncation, and length-preserving variants are themselves disclosure
// channels.
const Redacted = "..."

// String implements fmt.Stringer. It never touches the wrapped value.
func (Secret[T]) String() string {
	return Redacted
}

// GoString implements fmt.GoStringer, covering the %#v verb.
func (Secret[T]) GoString() string {
	return Redacted
}

// Format implements fmt.Formatter so that every verb, flag, and width
// combination produces the placeholder. Without this, verbs such as %d or
// %x would bypass String and print the wrapper's structure.
func (Secret[T]) Format(f fmt.State, _ rune) {
	io.WriteString(f, Redacted) //nolint:errcheck // fmt.State writes do not fail
}

// LogValue implements slog.LogValuer, so a Secret logged as an attribute
// value renders the placeholder.
func (Secret[T]) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}
