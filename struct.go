package tagjson

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strings"
)

// defaultFields is the default encoded form of a registered type: a
// shallow copy of every exported field, named by its json tag when one
// is present.
func defaultFields(v any) (Fields, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	t := rv.Type()

	out := make(Fields, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, ok := fieldName(t.Field(i))
		if !ok {
			continue
		}
		if name == TagKey {
			return nil, ErrReservedField
		}
		out[name] = rv.Field(i).Interface()
	}
	return out, nil
}

func fieldName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() {
		return "", false
	}
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		return sf.Name, true
	}
	return name, true
}

// structDecoder builds the default decode function for T: fill a fresh
// *T from the keys matching the declared field list and drop the rest.
// An empty list declares every exported field.
func structDecoder[T any](declared []string) DecodeFunc {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic("tagjson: Register requires a struct type unless WithDecodeFunc is given")
	}

	accept := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, ok := fieldName(t.Field(i))
		if !ok {
			continue
		}
		if name == TagKey {
			panic(`tagjson: struct field encodes under the reserved key "` + TagKey + `"`)
		}
		if len(declared) > 0 && !contains(declared, name) {
			continue
		}
		accept[name] = i
	}

	return func(f Fields) (any, error) {
		out := new(T)
		rv := reflect.ValueOf(out).Elem()
		for name, i := range accept {
			raw, ok := f[name]
			if !ok || raw == nil {
				continue
			}
			if err := assign(rv.Field(i), raw); err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
		}
		return out, nil
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// assign stores a revived tree value into a struct field, converting
// between the generic JSON representation and the field's static type.
func assign(dst reflect.Value, src any) error {
	sv := reflect.ValueOf(src)
	if sv.Type().AssignableTo(dst.Type()) {
		dst.Set(sv)
		return nil
	}

	switch dst.Kind() {
	case reflect.Pointer:
		p := reflect.New(dst.Type().Elem())
		if err := assign(p.Elem(), src); err != nil {
			return err
		}
		dst.Set(p)
		return nil

	case reflect.Bool:
		if b, ok := src.(bool); ok {
			dst.SetBool(b)
			return nil
		}

	case reflect.String:
		if s, ok := src.(string); ok {
			dst.SetString(s)
			return nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f, ok := src.(float64); ok {
			dst.SetInt(int64(f))
			return nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f, ok := src.(float64); ok && f >= 0 {
			dst.SetUint(uint64(f))
			return nil
		}

	case reflect.Float32, reflect.Float64:
		if f, ok := src.(float64); ok {
			dst.SetFloat(f)
			return nil
		}

	case reflect.Slice:
		// encoding/json base64s []byte on the way out; mirror it on
		// the way back in.
		if s, ok := src.(string); ok && dst.Type() == reflect.TypeOf([]byte(nil)) {
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return err
			}
			dst.SetBytes(b)
			return nil
		}
		if list, ok := src.([]any); ok {
			out := reflect.MakeSlice(dst.Type(), len(list), len(list))
			for i, el := range list {
				if el == nil {
					continue
				}
				if err := assign(out.Index(i), el); err != nil {
					return err
				}
			}
			dst.Set(out)
			return nil
		}

	case reflect.Map:
		m, ok := src.(map[string]any)
		if ok && dst.Type().Key().Kind() == reflect.String {
			out := reflect.MakeMapWithSize(dst.Type(), len(m))
			for k, el := range m {
				ev := reflect.New(dst.Type().Elem()).Elem()
				if el != nil {
					if err := assign(ev, el); err != nil {
						return err
					}
				}
				out.SetMapIndex(reflect.ValueOf(k).Convert(dst.Type().Key()), ev)
			}
			dst.Set(out)
			return nil
		}

	case reflect.Struct:
		// Decoded tagged objects arrive as pointers; a value-typed
		// field takes the pointed-to value.
		if sv.Kind() == reflect.Pointer && !sv.IsNil() && sv.Type().Elem().AssignableTo(dst.Type()) {
			dst.Set(sv.Elem())
			return nil
		}
	}

	return fmt.Errorf("cannot assign %T to %s", src, dst.Type())
}
