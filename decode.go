package tagjson

import (
	"encoding/json"
	"fmt"
)

// Unmarshal parses JSON text into a value tree, reconstructing every
// tagged object it contains through the registry. Untagged objects
// come back as map[string]any, arrays as []any, and primitives as
// their encoding/json defaults.
//
// A failure anywhere in the tree fails the whole call; no partially
// reconstructed tree is ever returned.
func Unmarshal(data []byte) (any, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return revive(tree)
}

// UnmarshalAs decodes JSON text whose top-level value is expected to
// be a tagged object of type T.
func UnmarshalAs[T any](data []byte) (*T, error) {
	v, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*T)
	if !ok {
		return nil, &Error{fmt.Sprintf("decoded %T, not %T", v, obj)}
	}
	return obj, nil
}

// revive walks the decoded tree bottom-up. Children of every JSON
// object are revived before the object itself, so a tagged object
// nested in another reaches the outer decode function as an already
// reconstructed instance.
func revive(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		out := make(Fields, len(v))
		for k, el := range v {
			rv, err := revive(el)
			if err != nil {
				return nil, err
			}
			out[k] = rv
		}

		// A reserved key holding a non-string is not a tag; the
		// mapping passes through like any other.
		tag, ok := out[TagKey].(string)
		if !ok {
			return map[string]any(out), nil
		}

		e, err := lookup(tag)
		if err != nil {
			return nil, err
		}
		obj, err := e.decode(out)
		if err != nil {
			return nil, decodeError(e, err)
		}
		return obj, nil

	case []any:
		out := make([]any, len(v))
		for i, el := range v {
			rv, err := revive(el)
			if err != nil {
				return nil, err
			}
			out[i] = rv
		}
		return out, nil

	default:
		return v, nil
	}
}

func decodeError(e *entry, err error) error {
	switch err.(type) {
	case *UnknownTypeError, *UnknownMemberError, *ConstructionError:
		return err
	}
	return &ConstructionError{Tag: e.tag, Err: err}
}
