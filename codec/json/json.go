// Package json implements the JSON codec (application/json).
//
// Confidential fields pass through as their inner values via their own
// MarshalJSON/UnmarshalJSON; the codec needs no knowledge of them.
package json

import (
	"encoding/json"

	"github.com/zoobzio/confidential/codec"
)

type jsonCodec struct{}

// New returns a JSON codec.
func New() codec.Codec {
	return &jsonCodec{}
}

func (c *jsonCodec) ContentType() string {
	return "application/json"
}

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
