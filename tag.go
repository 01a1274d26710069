package tagjson

import "reflect"

const (
	// TagKey is the reserved wire-format key holding the type tag of a
	// serialized object. No registered type may declare a field that
	// encodes under this name.
	TagKey = "_type"

	// tagSeparator joins the import path and the type name. It is
	// distinct from the dots and slashes that occur inside import
	// paths, so tags cannot collide across packages.
	tagSeparator = "#"
)

// TagFor returns the type tag of v's type: the declaring package's
// import path and the type name, joined by "#". Pointer indirections
// are ignored, so a *T and a T share one tag.
func TagFor(v any) string {
	return tagOf(reflect.TypeOf(v))
}

func tagOf(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() + tagSeparator + t.Name()
}
