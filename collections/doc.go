// Package collections provides a generic, ordered associative container and
// a fluent API over it, modelled on Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][V]: an insertion-ordered map from [Key]
// (an integer or a string) to V.
//
//	names, _ := collections.New(
//	    map[string]any{"name": "Bob", "age": 31},
//	    map[string]any{"name": "Alice", "age": 27},
//	).
//	    SortBy(func(u map[string]any) any { return u["age"] }).
//	    Implode("name", ", ") // → "Alice, Bob"
//
// # Keys
//
// New produces a list: keys 0..n-1. Other keys come from [FromEntries],
// [Collection.Put] or decoding. A string key spelling a canonical decimal
// integer is an integer key ([StrKey]("3") == [IntKey](3)). [NoKey] asks for
// the next free integer key.
//
// # Mutating and transforming operations
//
// Sort, SortBy, SortByDesc, Values, Push, Pop, Shift, Put, Forget, Append
// and the Offset* methods change the receiver and return it. Map, Filter,
// Reject, Merge, Reverse, Slice, Take, Collapse, Flatten and Fetch leave the
// receiver untouched and return a new collection.
//
// # Type-transforming operations
//
// Go methods cannot introduce new type parameters, so operations that change
// the element type are package-level functions: [Map], [Reduce], [Pluck],
// [GroupBy], [KeyBy]. Operations over heterogeneous data (Collapse, Flatten,
// Lists, Fetch, [Make], [FromJSON], [FromYAML], [FromTOML]) produce a
// Collection[any].
//
// # Serialization
//
// A list encodes as a JSON array or YAML sequence; anything else encodes as
// an object or mapping in iteration order. Decoding keeps document order.
// See [Collection.ToJSON] for the encoder flags.
package collections
