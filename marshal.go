package confidential

import (
	"context"
	"encoding"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Every encode path below serializes exactly as the inner value would; the
// wrapper contributes zero structural change to the encoded form. Encoding
// a Secret to a readable format therefore discloses it - see the package
// documentation.
//
// Every decode path applies the containment rule: the inner failure is
// discarded and replaced with a DecodeError that names only the inner Go
// type. There is intentionally no MarshalText: text output happens only
// through the explicit codec interfaces, never through the encoding.Text
// convention that fmt-adjacent code paths pick up implicitly.

// MarshalJSON encodes the wrapped value as the inner value would encode.
func (s Secret[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.inner)
}

// UnmarshalJSON decodes the inner value from data. Any inner failure is
// replaced with a DecodeError carrying no fragment of the input.
func (s *Secret[T]) UnmarshalJSON(data []byte) error {
	var inner T
	if err := json.Unmarshal(data, &inner); err != nil {
		emitDecodeBlocked(context.Background(), "application/json", reflect.TypeFor[T]().String())
		return newDecodeError[T]()
	}
	s.inner = inner
	return nil
}

// MarshalYAML encodes the wrapped value as the inner value would encode.
func (s Secret[T]) MarshalYAML() (any, error) {
	return s.inner, nil
}

// UnmarshalYAML decodes the inner value from node, containing any failure.
// yaml.v3 type errors echo the offending scalar, so containment matters
// here most of all.
func (s *Secret[T]) UnmarshalYAML(node *yaml.Node) error {
	var inner T
	if err := node.Decode(&inner); err != nil {
		emitDecodeBlocked(context.Background(), "application/yaml", reflect.TypeFor[T]().String())
		return newDecodeError[T]()
	}
	s.inner = inner
	return nil
}

// MarshalXML encodes the wrapped value as the inner value would encode.
func (s Secret[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(s.inner, start)
}

// UnmarshalXML decodes the inner value from the element, containing any
// failure.
func (s *Secret[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var inner T
	if err := d.DecodeElement(&inner, &start); err != nil {
		emitDecodeBlocked(context.Background(), "application/xml", reflect.TypeFor[T]().String())
		return newDecodeError[T]()
	}
	s.inner = inner
	return nil
}

// EncodeMsgpack encodes the wrapped value as the inner value would encode.
func (s Secret[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(s.inner)
}

// DecodeMsgpack decodes the inner value from the stream, containing any
// failure.
func (s *Secret[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var inner T
	if err := dec.Decode(&inner); err != nil {
		emitDecodeBlocked(context.Background(), "application/msgpack", reflect.TypeFor[T]().String())
		return newDecodeError[T]()
	}
	s.inner = inner
	return nil
}

// UnmarshalText decodes the inner value from a textual field, delegating
// to the inner type's own encoding.TextUnmarshaler when it has one. This
// is the entry point form decoders use (see package webform). Failures are
// contained like every other decode path.
func (s *Secret[T]) UnmarshalText(text []byte) error {
	var inner T
	if err := decodeText(&inner, text); err != nil {
		emitDecodeBlocked(context.Background(), "text/plain", reflect.TypeFor[T]().String())
		return newDecodeError[T]()
	}
	s.inner = inner
	return nil
}

// decodeText parses text into dst, which must be a non-nil pointer.
// Precedence: the type's own TextUnmarshaler, then string/[]byte, then the
// basic kinds via strconv.
func decodeText(dst any, text []byte) error {
	if tu, ok := dst.(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText(text)
	}

	switch p := dst.(type) {
	case *string:
		*p = string(text)
		return nil
	case *[]byte:
		*p = append([]byte(nil), text...)
		return nil
	}

	rv := reflect.ValueOf(dst).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(string(text))
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(string(text), 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(string(text), 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(string(text), rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("cannot decode text into %s", rv.Type())
	}

	return nil
}
