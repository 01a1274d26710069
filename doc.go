// Package tagjson serializes arbitrary registered Go types to and from
// JSON while preserving their concrete type identity, so that decoding
// reconstructs the original type without the caller naming it up front.
//
// Every encoded object carries a reserved key, [TagKey], holding a type
// tag derived from the type's import path and name. Decoding inspects
// each JSON object for the tag and dispatches construction through a
// process-wide registry:
//
//	type Greeting struct {
//		Text string `json:"text"`
//	}
//
//	func init() {
//		tagjson.Register[Greeting]()
//	}
//
//	data, _ := tagjson.Marshal(&Greeting{Text: "Hello"})
//	// {"_type":"example.com/hello#Greeting","text":"Hello"}
//
//	v, _ := tagjson.Unmarshal(data)
//	g := v.(*Greeting) // g.Text == "Hello"
//
// Types must be registered before any Unmarshal call that may reference
// them, typically from an init function in the package declaring them.
// Registration is idempotent; the first registration of a tag wins.
//
// By default a type is encoded as its exported fields and decoded by
// filling a fresh instance from the matching keys. Types that keep
// state outside that default can implement [FieldMapper] and register a
// decode function with [WithDecodeFunc]; the two overrides must be kept
// symmetric or decoding will not see what encoding produced.
//
// Enumeration-style types register their declared member singletons
// with [RegisterEnum]. Members are encoded by name, never by value, and
// decode back to the identical registered member.
package tagjson
