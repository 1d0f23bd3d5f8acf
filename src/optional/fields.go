package optional

import (
	"reflect"
	"strings"
)

var specifierType = reflect.TypeFor[Specifier]()

// SpecifiedFields walks the exported fields of a struct (or pointer to one)
// and returns the JSON names of the Optional fields that are specified, in
// declaration order. Embedded structs are flattened the way encoding/json
// flattens them. Anything that is not a struct yields nil.
func SpecifiedFields(v any) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var names []string
	collect(rv, &names, false)
	return names
}

// UnspecifiedFields is the complement of SpecifiedFields over Optional fields.
func UnspecifiedFields(v any) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var names []string
	collect(rv, &names, true)
	return names
}

func collect(rv reflect.Value, names *[]string, unspecified bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, skip := jsonName(field)
		if skip {
			continue
		}

		fv := rv.Field(i)
		if field.Type.Implements(specifierType) {
			// A nil *Optional is not sent.
			specified := false
			if field.Type.Kind() != reflect.Pointer || !fv.IsNil() {
				specified = fv.Interface().(Specifier).IsSpecified()
			}
			if specified != unspecified {
				*names = append(*names, name)
			}
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get("json") == "" {
			collect(fv, names, unspecified)
		}
	}
}

func jsonName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, false
}
