// Package confidential provides a generic wrapper that suppresses a value
// from every human-readable representation while behaving identically to the
// wrapped value everywhere else.
//
// Wrapping a token, password, or key in a Secret makes accidental disclosure
// through logging, panics, and error messages structurally impossible: the
// fmt verbs (%v, %+v, %#v, %s, %q, ...), log/slog, and any other consumer of
// the fmt or slog abstractions see only the fixed placeholder "...". The
// redaction never inspects the wrapped value and never depends on the
// wrapped type's own formatting behavior.
//
// # Revealing
//
// The wrapped value is reachable only through operations whose name carries
// an explicit "Reveal" marker, so every point where a secret leaves its
// wrapper is greppable in calling code:
//
//	token := confidential.New("tok_123")
//	raw := token.Reveal()          // copy of the inner value
//	p := token.RevealPtr()         // pointer to the inner value
//	n := confidential.MapRevealed(confidential.New(21), func(x int) int { return x * 2 })
//
// # Drop-in structure
//
// Everything that does not render the value in readable form passes through
// to the wrapped type: a Secret[T] is comparable when T is, hashes like its
// inner value (Hash), orders like it when the caller opts in (package
// ordered), copies by assignment exactly as T does, and its zero value wraps
// T's zero value. The wrapper holds no state of its own, so it is safe to
// share across goroutines exactly when the wrapped value is.
//
// # Serialization
//
// A Secret serializes exactly as its inner value would for JSON, YAML, XML,
// and MessagePack; the wrapper contributes nothing to the encoded form. This
// is a deliberate, documented leak vector: encoding a Secret to a readable
// format discloses it. Decoding is the one place the wrapper intervenes: any
// failure while decoding the inner value is caught at the wrapper boundary
// and replaced with a generic DecodeError that carries no fragment of the
// offending input, because decoder errors routinely echo the malformed
// payload back into their messages.
//
// # Adapters
//
// Integration with external frameworks lives in subpackages so the core
// stays dependency-light at call sites:
//
//   - codec - content-type aware marshaling pipelines with audit and events
//   - audit - struct scanning that finds bare (unwrapped) sensitive fields
//   - digest - one-way digests of wrapped secrets (argon2, bcrypt, sha2)
//   - sqlcol - database/sql column adapter (driver.Valuer, sql.Scanner)
//   - webform - HTTP form decoding into structs holding Secret fields
//   - ordered - opt-in ordering of Secrets
//
// # What this package does not do
//
// Memory is not zeroed on garbage collection, pages are not locked, and
// comparisons are not constant-time. Reveal operations are always available
// to the holder. The wrapper prevents accidental textual disclosure, nothing
// more.
package confidential

// Cloner allows types to provide deep copy logic.
// Clone (the package function) requires it for the wrapped type.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices,
// or maps, ensure these are also copied to achieve true isolation.
//
// For simple value types, Clone can return the receiver:
//
//	func (k APIKey) Clone() APIKey { return k }
type Cloner[T any] interface {
	Clone() T
}
