package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// These functions walk nested values using dot-separated paths. Every segment
// is resolved with [Field], so maps, structs, slices and [FieldReader]
// implementations can be mixed freely along a path.
//
// Example value:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//
//	Get(m, "user.name")     → "Alice"
//	Get(m, "user.tags.1")   → "ops"
//	Has(m, "user.email")    → false
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from target using a dot-notation path.
// Returns def[0] (or nil) when any segment does not resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(target any, path string, def ...any) any {
	if v, ok := lookup(target, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether every segment of the dot-notation path resolves.
func Has(target any, path string) bool {
	_, ok := lookup(target, path)
	return ok
}

// HasAll reports whether all dot-notation paths exist in target.
func HasAll(target any, paths ...string) bool {
	for _, path := range paths {
		if !Has(target, path) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the dot-notation paths exist in target.
func HasAny(target any, paths ...string) bool {
	for _, path := range paths {
		if Has(target, path) {
			return true
		}
	}
	return false
}

func lookup(target any, path string) (any, bool) {
	current := target
	for _, seg := range strings.Split(path, ".") {
		v, ok := Field(current, seg)
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}

// Fetch extracts a nested column from every element of items.
//
// The path is consumed one segment at a time: each segment is resolved on
// every value produced by the previous one, values that do not resolve are
// dropped, and the survivors form the input of the next segment.
//
//	rows := []any{
//	    map[string]any{"user": map[string]any{"name": "Alice"}},
//	    map[string]any{"user": map[string]any{"name": "Bob"}},
//	    map[string]any{"team": "ops"},
//	}
//	Fetch(rows, "user.name") // → ["Alice", "Bob"]
func Fetch(items []any, path string) []any {
	current := items
	for _, seg := range strings.Split(path, ".") {
		next := make([]any, 0, len(current))
		for _, item := range current {
			if v, ok := Field(item, seg); ok {
				next = append(next, v)
			}
		}
		current = next
	}
	return current
}
