// Package yaml implements the YAML codec (application/yaml) on top of
// gopkg.in/yaml.v3. Decode failures inside confidential fields arrive
// already contained; yaml.v3's own type errors (which echo the offending
// scalar) surface only for ordinary fields.
package yaml

import (
	"github.com/zoobzio/confidential/codec"
	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

// New returns a YAML codec.
func New() codec.Codec {
	return &yamlCodec{}
}

func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
