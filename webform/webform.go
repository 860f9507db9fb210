// Package webform decodes HTTP form input into structs by delegating each
// field to its own parsing capability.
//
// Fields opt in with a `form:"name"` struct tag. Basic kinds parse via
// strconv; any field whose pointer type implements encoding.TextUnmarshaler
// is delegated to - which is exactly how confidential.Secret fields decode,
// with their failures contained at the wrapper boundary. The decoder itself
// never special-cases secrets; the wrapper's own contract does the work.
//
//	type login struct {
//	    User     string              `form:"user"`
//	    Password confidential.String `form:"password"`
//	}
//
//	var in login
//	err := webform.DecodeRequest(r, &in)
package webform

import (
	"encoding"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"sync"
)

// ErrInvalidTarget indicates the decode destination is not a non-nil
// pointer to a struct.
var ErrInvalidTarget = errors.New("decode target must be a non-nil struct pointer")

// maxMultipartMemory bounds in-memory buffering of multipart bodies.
const maxMultipartMemory = 10 << 20

// fieldPlan describes how to populate a single struct field.
type fieldPlan struct {
	index []int  // reflect.Value.FieldByIndex access path
	key   string // form key from the tag
	name  string // field name for error messages
}

var (
	plansMu sync.RWMutex
	plans   = make(map[reflect.Type][]fieldPlan)
)

// DecodeRequest parses the request body (urlencoded or multipart) and
// decodes it into dst. Multipart bodies cover the streamed-field case;
// values beyond the in-memory bound spill to disk via net/http.
func DecodeRequest(r *http.Request, dst any) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return fmt.Errorf("parse multipart form: %w", err)
		}
		return Decode(url.Values(r.MultipartForm.Value), dst)
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	return Decode(r.PostForm, dst)
}

// Decode populates dst from form values. dst must be a non-nil pointer to
// a struct. Keys absent from values leave their fields untouched.
func Decode(values url.Values, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()

	for _, plan := range plansFor(rv.Type()) {
		vals, ok := values[plan.key]
		if !ok || len(vals) == 0 {
			continue
		}

		field := rv.FieldByIndex(plan.index)
		if err := setField(field, vals); err != nil {
			return fmt.Errorf("decode field %s: %w", plan.name, err)
		}
	}

	return nil
}

// plansFor returns cached field plans for a struct type.
func plansFor(rt reflect.Type) []fieldPlan {
	plansMu.RLock()
	if cached, ok := plans[rt]; ok {
		plansMu.RUnlock()
		return cached
	}
	plansMu.RUnlock()

	plansMu.Lock()
	defer plansMu.Unlock()
	if cached, ok := plans[rt]; ok {
		return cached
	}

	built := buildPlans(rt, nil, "")
	plans[rt] = built
	return built
}

// buildPlans recursively collects tagged fields, descending into untagged
// nested structs.
func buildPlans(rt reflect.Type, parentIndex []int, namePrefix string) []fieldPlan {
	var out []fieldPlan

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		index := append(append([]int{}, parentIndex...), i)
		name := sf.Name
		if namePrefix != "" {
			name = namePrefix + "." + sf.Name
		}

		tag, tagged := sf.Tag.Lookup("form")
		if tag == "-" {
			continue
		}

		if tagged {
			out = append(out, fieldPlan{index: index, key: tag, name: name})
			continue
		}

		// Untagged nested structs are flattened into the same namespace,
		// except types that decode as a unit (TextUnmarshaler).
		if sf.Type.Kind() == reflect.Struct && !implementsTextUnmarshaler(sf.Type) {
			out = append(out, buildPlans(sf.Type, index, name)...)
		}
	}

	return out
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

func implementsTextUnmarshaler(rt reflect.Type) bool {
	return rt.Implements(textUnmarshalerType) || reflect.PointerTo(rt).Implements(textUnmarshalerType)
}

// setField assigns form values to one field. Repeated keys populate
// slices; scalars take the first value.
func setField(field reflect.Value, vals []string) error {
	if field.Kind() == reflect.Slice && field.Type().Elem().Kind() != reflect.Uint8 {
		slice := reflect.MakeSlice(field.Type(), len(vals), len(vals))
		for i, v := range vals {
			if err := setScalar(slice.Index(i), v); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	return setScalar(field, vals[0])
}

// setScalar assigns one form value, delegating to the type's own
// TextUnmarshaler when it has one.
func setScalar(field reflect.Value, val string) error {
	if field.CanAddr() {
		if tu, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(val))
		}
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(val)
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(val, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(val, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Slice: // []byte
		field.SetBytes([]byte(val))
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}

	return nil
}
