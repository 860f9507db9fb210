// Package sqlcol makes confidential values usable as database/sql column
// values.
//
// Column[T] embeds a confidential.Secret[T], so it keeps every redaction
// and pass-through behavior of the wrapper, and adds the driver.Valuer and
// sql.Scanner contract. Encoding delegates to T's own driver.Valuer (or
// the default parameter converter); decoding delegates to T's sql.Scanner
// (or plain driver-type conversion). The column contributes no schema or
// type information of its own, and scan failures are contained the same
// way decode failures are.
package sqlcol

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/confidential"
)

// Column is a confidential value stored as a single database column.
type Column[T any] struct {
	confidential.Secret[T]
}

// New wraps v as a column value.
func New[T any](v T) Column[T] {
	return Column[T]{confidential.New(v)}
}

// Value implements driver.Valuer by delegating to the inner value.
func (c Column[T]) Value() (driver.Value, error) {
	inner := c.Reveal()
	if dv, ok := any(inner).(driver.Valuer); ok {
		return dv.Value()
	}
	return driver.DefaultParameterConverter.ConvertValue(inner)
}

// Scan implements sql.Scanner by delegating to the inner value. Any
// failure is replaced with the wrapper's generic DecodeError so malformed
// row data never echoes into error messages.
func (c *Column[T]) Scan(src any) error {
	dst := c.RevealPtr()

	if sc, ok := any(dst).(sql.Scanner); ok {
		if err := sc.Scan(src); err != nil {
			return &confidential.DecodeError{Type: reflect.TypeFor[T]().String()}
		}
		return nil
	}

	if err := convertAssign(dst, src); err != nil {
		return &confidential.DecodeError{Type: reflect.TypeFor[T]().String()}
	}
	return nil
}

// convertAssign moves a driver value into dst, covering the standard
// driver types (int64, float64, bool, []byte, string, time.Time, nil).
func convertAssign(dst, src any) error {
	switch d := dst.(type) {
	case *string:
		switch s := src.(type) {
		case string:
			*d = s
			return nil
		case []byte:
			*d = string(s)
			return nil
		case nil:
			*d = ""
			return nil
		}
	case *[]byte:
		switch s := src.(type) {
		case []byte:
			*d = append([]byte(nil), s...)
			return nil
		case string:
			*d = []byte(s)
			return nil
		case nil:
			*d = nil
			return nil
		}
	case *time.Time:
		if t, ok := src.(time.Time); ok {
			*d = t
			return nil
		}
	case *bool:
		switch s := src.(type) {
		case bool:
			*d = s
			return nil
		case int64:
			// SQLite stores booleans as integers
			*d = s != 0
			return nil
		}
	}

	rv := reflect.ValueOf(dst).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := src.(int64); ok && !rv.OverflowInt(n) {
			rv.SetInt(n)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := src.(int64); ok && n >= 0 && !rv.OverflowUint(uint64(n)) {
			rv.SetUint(uint64(n))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		switch s := src.(type) {
		case float64:
			rv.SetFloat(s)
			return nil
		case int64:
			rv.SetFloat(float64(s))
			return nil
		}
	case reflect.String:
		switch s := src.(type) {
		case string:
			rv.SetString(s)
			return nil
		case []byte:
			rv.SetString(string(s))
			return nil
		}
	}

	return fmt.Errorf("cannot scan %T into %s", src, rv.Type())
}
