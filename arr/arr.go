package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Sequence is implemented by ordered containers that can hand out their
// values in iteration order. [Flatten] descends into any Sequence.
type Sequence interface {
	SequenceValues() []any
}

// Flatten recursively flattens items into a single []any, discarding keys.
//
// It descends into [Sequence] implementations, slices and arrays (except
// []byte, which is treated as a scalar) and maps, whose values are visited
// in ascending key order. Everything else is appended as-is.
//
//	Flatten([]any{1, []any{2, []any{3, 4}}, map[string]any{"b": 6, "a": 5}})
//	// → [1 2 3 4 5 6]
func Flatten(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case nil:
			out = append(out, nil)
			return
		case Sequence:
			for _, elem := range val.SequenceValues() {
				flatten(elem)
			}
			return
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
			return
		case []byte:
			out = append(out, val)
			return
		}

		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				flatten(rv.Index(i).Interface())
			}
		case reflect.Map:
			for _, k := range sortedMapKeys(rv) {
				flatten(rv.MapIndex(k).Interface())
			}
		default:
			out = append(out, v)
		}
	}
	flatten(items)
	return out
}

// sortedMapKeys returns the keys of a map value in a deterministic order:
// numerically for integer keys, lexically for everything else.
func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		}
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})
	return keys
}
