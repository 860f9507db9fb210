// Package audit scans struct types for confidential hygiene.
//
// Inspect reports which fields of a type are held in a confidential
// wrapper and which fields are declared sensitive but stored bare. Tag a
// field `sensitive:"true"` to declare that it must be wrapped; a bare
// sensitive field is a lint finding, and codec.WithAudit turns it into a
// construction error.
package audit

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zoobzio/confidential"
	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the audit tag with sentinel
	sentinel.Tag("sensitive")
}

// ErrNotStruct indicates Inspect was invoked for a non-struct type.
var ErrNotStruct = errors.New("not a struct type")

// Field identifies one inspected struct field.
type Field struct {
	Name string // dotted path from the root type
	Type string // Go type of the field
}

// Report is the result of inspecting a type.
type Report struct {
	TypeName string
	Wrapped  []Field // fields held in a confidential wrapper
	Bare     []Field // fields tagged sensitive but stored unwrapped
}

// Clean reports whether the type has no bare sensitive fields.
func (r Report) Clean() bool {
	return len(r.Bare) == 0
}

var markerType = reflect.TypeOf((*confidential.Marker)(nil)).Elem()

// Inspect scans T and classifies its fields. Nested structs and pointers
// to structs are walked; wrapper-typed fields are not descended into.
func Inspect[T any]() (Report, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return Report{}, fmt.Errorf("%w: %s", ErrNotStruct, rt)
	}

	spec := sentinel.Scan[T]()
	report := Report{TypeName: spec.TypeName}
	inspectFields(&report, spec, "")
	return report, nil
}

// inspectFields recursively classifies fields and nested structs.
func inspectFields(report *Report, spec sentinel.Metadata, namePrefix string) {
	for _, field := range spec.Fields {
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		ft := field.ReflectType
		if isWrapped(ft) {
			report.Wrapped = append(report.Wrapped, Field{Name: fullName, Type: ft.String()})
			continue
		}

		if field.Tags["sensitive"] == "true" {
			report.Bare = append(report.Bare, Field{Name: fullName, Type: ft.String()})
			continue
		}

		// Descend into nested structs and pointers to structs
		switch {
		case ft.Kind() == reflect.Struct:
			if nested := scanNestedType(ft); nested != nil {
				inspectFields(report, *nested, fullName)
			}
		case ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.Struct:
			if nested := scanNestedType(ft.Elem()); nested != nil {
				inspectFields(report, *nested, fullName)
			}
		}
	}
}

// isWrapped reports whether ft (or its pointer type) is a confidential
// wrapper instantiation, detected through the Marker interface.
func isWrapped(ft reflect.Type) bool {
	if ft.Implements(markerType) {
		return true
	}
	return ft.Kind() != reflect.Pointer && reflect.PointerTo(ft).Implements(markerType)
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup("sensitive"); ok {
			fm.Tags["sensitive"] = val
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}
