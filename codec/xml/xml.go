// Package xml implements the XML codec (application/xml). Confidential
// fields encode through their MarshalXML/UnmarshalXML element handlers,
// so they appear in documents exactly as their inner values would.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/confidential/codec"
)

type xmlCodec struct{}

// New returns an XML codec.
func New() codec.Codec {
	return &xmlCodec{}
}

func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
