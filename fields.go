package tagjson

// Fields is the tree form of one tagged object: its serializable
// fields keyed by name, plus the reserved TagKey entry. Decode
// functions receive the already-revived tree, so nested tagged objects
// appear as their reconstructed concrete types, not raw maps.
type Fields map[string]any

// Has reports whether the field set contains the given key.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Get returns the raw value stored under key, or nil.
func (f Fields) Get(key string) any {
	return f[key]
}

// Tag returns the type tag carried in the reserved key, or "" if the
// field set is untagged.
func (f Fields) Tag() string {
	s, _ := f[TagKey].(string)
	return s
}

// String returns the named field as a string, or "" if absent or not a
// string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Bool returns the named field as a bool, or false if absent or not a
// bool.
func (f Fields) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}

// Float returns the named field as a float64. JSON numbers decode as
// float64, so this is the natural accessor for numeric fields.
func (f Fields) Float(key string) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Int returns the named field truncated to an int.
func (f Fields) Int(key string) int {
	return int(f.Float(key))
}

// Slice returns the named field as a []any, or nil.
func (f Fields) Slice(key string) []any {
	s, _ := f[key].([]any)
	return s
}

// Map returns the named field as a map[string]any, or nil.
func (f Fields) Map(key string) map[string]any {
	m, _ := f[key].(map[string]any)
	return m
}
