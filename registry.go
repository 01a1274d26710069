package tagjson

import (
	"reflect"
	"sync"
)

// DecodeFunc reconstructs a concrete instance from its decoded field
// set. Nested tagged objects in the field set have already been
// reconstructed by the time the function runs.
type DecodeFunc func(Fields) (any, error)

// FieldMapper is implemented by types that customize their encoded
// field set. A type implementing FieldMapper should also register a
// matching decode function with WithDecodeFunc; customizing only one
// side leaves the decoder unable to read what the encoder wrote.
type FieldMapper interface {
	ToFields() (Fields, error)
}

type entry struct {
	tag    string
	typ    reflect.Type
	decode DecodeFunc

	// enumeration types only
	members map[string]any
	names   map[any]string
}

func (e *entry) isEnum() bool {
	return e.members != nil
}

// registry is the process-wide tag table. It is populated at program
// init and only grows; there is no unregister.
var registry = struct {
	sync.RWMutex
	byTag  map[string]*entry
	byType map[reflect.Type]*entry
}{
	byTag:  make(map[string]*entry),
	byType: make(map[reflect.Type]*entry),
}

type registerOptions struct {
	fields []string
	decode DecodeFunc
}

// RegisterOption customizes a type registration.
type RegisterOption func(*registerOptions)

// WithFields declares the field names the default decoder accepts.
// Keys outside the declared set are dropped silently during decode.
// Without this option every exported field is accepted.
func WithFields(names ...string) RegisterOption {
	return func(o *registerOptions) {
		o.fields = names
	}
}

// WithDecodeFunc replaces the default decoder for the type.
func WithDecodeFunc(fn DecodeFunc) RegisterOption {
	return func(o *registerOptions) {
		o.decode = fn
	}
}

// Register makes T known to the registry under its derived type tag,
// so that values of T (or *T) encode with the tag and decode back to a
// *T. Registration is idempotent: the first registration of a tag
// wins and later attempts are silently ignored.
//
// Call Register before any Unmarshal that may reference the type,
// typically from an init function in the package declaring T.
func Register[T any](opts ...RegisterOption) {
	var o registerOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	decode := o.decode
	if decode == nil {
		decode = structDecoder[T](o.fields)
	}

	e := &entry{tag: tagOf(t), typ: t, decode: decode}
	add(e, t, reflect.PointerTo(t))
}

// RegisterEnum makes an enumeration type known to the registry,
// keyed by its declared member singletons. Members encode by name
// only, and decode back to the identical value passed here.
func RegisterEnum[M comparable](members map[string]M) {
	t := reflect.TypeOf((*M)(nil)).Elem()
	e := &entry{
		tag:     tagOf(t),
		typ:     t,
		members: make(map[string]any, len(members)),
		names:   make(map[any]string, len(members)),
	}
	for name, m := range members {
		e.members[name] = m
		e.names[m] = name
	}
	e.decode = func(f Fields) (any, error) {
		name := f.String("name")
		m, ok := e.members[name]
		if !ok {
			return nil, &UnknownMemberError{Tag: e.tag, Name: name}
		}
		return m, nil
	}
	add(e, t)
}

// add inserts the entry unless the tag is already taken. First
// registration wins.
func add(e *entry, types ...reflect.Type) {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.byTag[e.tag]; ok {
		return
	}
	registry.byTag[e.tag] = e
	for _, t := range types {
		if _, ok := registry.byType[t]; !ok {
			registry.byType[t] = e
		}
	}
}

func lookup(tag string) (*entry, error) {
	registry.RLock()
	defer registry.RUnlock()

	e, ok := registry.byTag[tag]
	if !ok {
		return nil, &UnknownTypeError{Tag: tag}
	}
	return e, nil
}

func typeEntry(t reflect.Type) (*entry, bool) {
	registry.RLock()
	defer registry.RUnlock()

	e, ok := registry.byType[t]
	return e, ok
}
