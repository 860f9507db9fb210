package confidential

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for wrapper events.
var (
	// SignalDecodeBlocked fires when an inner decode failure is contained
	// at the wrapper boundary. The event carries the content type and the
	// inner Go type name, never any fragment of the input.
	SignalDecodeBlocked = capitan.NewSignal("confidential.decode.blocked", "Inner decode failure contained at the wrapper boundary")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
)

// emitDecodeBlocked emits an event for a contained decode failure.
func emitDecodeBlocked(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalDecodeBlocked,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}
