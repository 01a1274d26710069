package tagjson

import (
	"encoding/json"
	"reflect"
)

// Marshal serializes one value, plain or tagged, to JSON text. Every
// value of a registered type in the tree is replaced by its tagged
// field set before the tree is handed to encoding/json.
func Marshal(v any) ([]byte, error) {
	tree, err := flatten(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// flatten converts v into a tree of JSON-native Go values.
func flatten(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	// Exact dynamic type first, so pointer-typed registrations (enum
	// member singletons in particular) are caught before indirection.
	if e, ok := typeEntry(rv.Type()); ok {
		return flattenTagged(e, v)
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	if e, ok := typeEntry(rv.Type()); ok {
		return flattenTagged(e, rv.Interface())
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.Interface(), nil

	case reflect.Slice, reflect.Array:
		if b, ok := rv.Interface().([]byte); ok {
			return b, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			fv, err := flatten(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = fv
		}
		return out, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedValueError{Value: v}
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fv, err := flatten(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = fv
		}
		return out, nil

	default:
		return nil, &UnsupportedValueError{Value: v}
	}
}

func flattenTagged(e *entry, v any) (any, error) {
	if e.isEnum() {
		name, ok := e.names[v]
		if !ok {
			return nil, &UnsupportedValueError{Value: v}
		}
		return map[string]any{TagKey: e.tag, "name": name}, nil
	}

	fields, err := toFields(e, v)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(fields)+1)
	for k, fv := range fields {
		if k == TagKey {
			continue
		}
		flat, err := flatten(fv)
		if err != nil {
			return nil, err
		}
		out[k] = flat
	}
	out[TagKey] = e.tag
	return out, nil
}

func toFields(e *entry, v any) (Fields, error) {
	if fm, ok := v.(FieldMapper); ok {
		return fm.ToFields()
	}

	// ToFields may be declared on the pointer type while v was passed
	// by value; retry through an addressable copy.
	if reflect.TypeOf(v) == e.typ {
		p := reflect.New(e.typ)
		p.Elem().Set(reflect.ValueOf(v))
		if fm, ok := p.Interface().(FieldMapper); ok {
			return fm.ToFields()
		}
	}

	return defaultFields(v)
}
