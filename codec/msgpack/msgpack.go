// Package msgpack implements the MessagePack codec
// (application/msgpack) on top of vmihailenco/msgpack/v5, which
// dispatches confidential fields to their EncodeMsgpack/DecodeMsgpack
// custom handlers.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/confidential/codec"
)

type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() codec.Codec {
	return &msgpackCodec{}
}

func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
