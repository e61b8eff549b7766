// Package arr provides the framework-agnostic helpers that the collections
// package delegates to when it has to look inside arbitrary values: field
// resolution, dotted-path column extraction and recursive flattening.
//
// # Field resolution
//
// [Field] reads a named field from any item. It tries, in order, a
// [FieldReader] implementation, a map keyed by strings (or integers when the
// name is numeric), an exported struct field (by Go name, then by json tag)
// and finally a slice index:
//
//	type User struct {
//	    Name string `json:"name"`
//	}
//	arr.Field(User{Name: "Alice"}, "Name")             // → "Alice", true
//	arr.Field(User{Name: "Alice"}, "name")             // → "Alice", true
//	arr.Field(map[string]any{"name": "Bob"}, "name")   // → "Bob", true
//
// # Dot-notation access
//
// [Get] and [Has] walk nested values using dot-separated paths, and [Fetch]
// plucks a nested column from a list of items:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city")          // → "London"
//	arr.Has(m, "user.name")                  // → true
//	arr.Fetch([]any{m, m}, "user.name")      // → ["Alice", "Alice"]
//
// # Flattening
//
// [Flatten] collapses arbitrarily nested slices, arrays, string-keyed maps and
// [Sequence] implementations into one flat []any.
package arr
