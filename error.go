package tagjson

import "fmt"

var (
	// ErrReservedField indicates that a type declares a field whose
	// encoded name collides with the reserved tag key.
	ErrReservedField = &Error{`field name "` + TagKey + `" is reserved`}
)

// Error represents a generic error in the tagjson package.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// UnknownTypeError indicates that a decoded object carried a type tag
// that was never registered in this process.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type tag %q", e.Tag)
}

// UnknownMemberError indicates that an enumeration decode named a
// member the registered type does not declare.
type UnknownMemberError struct {
	Tag  string
	Name string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("enum %q has no member named %q", e.Tag, e.Name)
}

// ConstructionError indicates that a type's decode function rejected
// the decoded field set.
type ConstructionError struct {
	Tag string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing %q: %v", e.Tag, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// UnsupportedValueError indicates that a value with no registered type
// and no native JSON representation was passed to the encoder.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("cannot serialize value of type %T", e.Value)
}
