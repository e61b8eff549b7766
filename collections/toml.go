package collections

import (
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
)

// FromTOML decodes a TOML document into a Collection[any]. Tables become
// nested *Collection[any] values and arrays become lists.
//
// Keys follow document order wherever the decoder reports it. Keys it does
// not report individually (members of arrays of tables, some inline tables)
// are filled in afterwards in ascending order.
func FromTOML(data []byte) (*Collection[any], error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("collections: decode toml: %w", err)
	}

	root := Empty[any]()
	for _, path := range md.Keys() {
		if len(path) == 0 {
			continue
		}
		parent, ok := tomlParent(root, path[:len(path)-1])
		if !ok {
			continue
		}
		k := StrKey(path[len(path)-1])
		if parent.Has(k) {
			continue
		}
		value, found := tomlLookup(raw, path)
		if !found {
			continue
		}
		if _, isTable := value.(map[string]any); isTable {
			parent.put(k, Empty[any]())
			continue
		}
		parent.put(k, tomlValue(value))
	}
	tomlFill(root, raw)
	return root, nil
}

// tomlParent walks path through already inserted tables.
func tomlParent(root *Collection[any], path []string) (*Collection[any], bool) {
	current := root
	for _, seg := range path {
		next, ok := current.Get(StrKey(seg)).(*Collection[any])
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// tomlLookup resolves path through nested tables of the decoded document.
func tomlLookup(raw map[string]any, path []string) (any, bool) {
	var current any = raw
	for _, seg := range path {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = table[seg]; !ok {
			return nil, false
		}
	}
	return current, true
}

// tomlFill adds every key of raw missing from c, recursing into tables that
// were created empty by FromTOML.
func tomlFill(c *Collection[any], raw map[string]any) {
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		k := StrKey(name)
		existing, ok := c.Lookup(k)
		if !ok {
			c.put(k, tomlValue(raw[name]))
			continue
		}
		sub, isColl := existing.(*Collection[any])
		table, isTable := raw[name].(map[string]any)
		if isColl && isTable {
			tomlFill(sub, table)
		}
	}
}

// tomlValue converts decoded TOML values: tables to collections with sorted
// keys, arrays to lists. Scalars (including dates) pass through.
func tomlValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		c := Empty[any]()
		tomlFill(c, val)
		return c
	case []map[string]any:
		c := newSized[any](len(val))
		for _, table := range val {
			c.appendValue(tomlValue(table))
		}
		return c
	case []any:
		c := newSized[any](len(val))
		for _, item := range val {
			c.appendValue(tomlValue(item))
		}
		return c
	}
	return v
}
