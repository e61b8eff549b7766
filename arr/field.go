package arr

import (
	"reflect"
	"strconv"
	"strings"
)

// FieldReader is implemented by containers that know how to resolve their
// own named fields. It takes precedence over every reflection-based strategy
// in [Field].
type FieldReader interface {
	ReadField(name string) (any, bool)
}

// Field resolves name on item.
//
// Resolution order:
//  1. item implements [FieldReader];
//  2. item is a map (see [KeyedMap]);
//  3. item is a struct or a pointer to one (see [NamedFieldRecord]);
//  4. item is a slice or array and name is a decimal index.
//
// Returns nil and false when none of them succeeds.
func Field(item any, name string) (any, bool) {
	if item == nil {
		return nil, false
	}
	if r, ok := item.(FieldReader); ok {
		return r.ReadField(name)
	}
	if m, ok := item.(map[string]any); ok {
		v, found := m[name]
		return v, found
	}

	rv := indirect(reflect.ValueOf(item))
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		return KeyedMap{v: rv}.ReadField(name)
	case reflect.Struct:
		return NamedFieldRecord{v: rv}.ReadField(name)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// NamedFieldRecord adapts a struct value to [FieldReader].
//
// Fields are matched by exported Go name first, then by the name part of a
// `json` struct tag. Unexported fields are never read.
type NamedFieldRecord struct {
	v reflect.Value
}

// Record wraps v as a [NamedFieldRecord]. It reports false when v is not a
// struct or a non-nil pointer to one.
func Record(v any) (NamedFieldRecord, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return NamedFieldRecord{}, false
	}
	return NamedFieldRecord{v: rv}, true
}

// ReadField implements [FieldReader].
func (r NamedFieldRecord) ReadField(name string) (any, bool) {
	if !r.v.IsValid() || name == "" {
		return nil, false
	}
	t := r.v.Type()
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		if f, err := r.v.FieldByIndexErr(sf.Index); err == nil {
			return f.Interface(), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag == name {
			return r.v.Field(i).Interface(), true
		}
	}
	return nil, false
}

// KeyedMap adapts any map whose keys are strings or integers to
// [FieldReader].
type KeyedMap struct {
	v reflect.Value
}

// Keyed wraps v as a [KeyedMap]. It reports false when v is not a map (or a
// non-nil pointer to one).
func Keyed(v any) (KeyedMap, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return KeyedMap{}, false
	}
	return KeyedMap{v: rv}, true
}

// ReadField implements [FieldReader].
func (m KeyedMap) ReadField(name string) (any, bool) {
	if !m.v.IsValid() || m.v.IsNil() {
		return nil, false
	}
	kt := m.v.Type().Key()
	var key reflect.Value
	switch kt.Kind() {
	case reflect.String:
		key = reflect.ValueOf(name).Convert(kt)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(name, 10, kt.Bits())
		if err != nil {
			return nil, false
		}
		key = reflect.New(kt).Elem()
		key.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(name, 10, kt.Bits())
		if err != nil {
			return nil, false
		}
		key = reflect.New(kt).Elem()
		key.SetUint(n)
	case reflect.Interface:
		key = reflect.ValueOf(name)
	default:
		return nil, false
	}
	val := m.v.MapIndex(key)
	if !val.IsValid() {
		return nil, false
	}
	return val.Interface(), true
}

// indirect dereferences pointers and interfaces until it reaches a concrete
// value. A nil pointer yields the invalid Value.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
