// Package codec provides content-type aware marshaling for types that
// hold confidential values.
//
// A Codec is a plain marshal/unmarshal pair. A Pipeline wraps a Codec for
// one concrete type, adding construction-time auditing (see package audit)
// and per-operation events. The confidential wrappers themselves take care
// of pass-through encoding and decode-failure containment; the pipeline is
// the boundary where whole messages cross, not where redaction happens.
//
// Codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
package codec

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
