package arr_test

import (
	"testing"

	"github.com/plainview/go-collections/arr"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
			"tags": []any{"admin", "ops"},
		},
		"score": 42,
	}
}

func TestGet(t *testing.T) {
	m := makeNested()
	if v := arr.Get(m, "user.name"); v != "Alice" {
		t.Fatalf("Get user.name = %v; want Alice", v)
	}
	if v := arr.Get(m, "user.address.city"); v != "London" {
		t.Fatalf("Get city = %v; want London", v)
	}
	if v := arr.Get(m, "score"); v != 42 {
		t.Fatalf("Get score = %v; want 42", v)
	}
	if v := arr.Get(m, "missing"); v != nil {
		t.Fatalf("Get missing = %v; want nil", v)
	}
	if v := arr.Get(m, "missing", "default"); v != "default" {
		t.Fatalf("Get missing default = %v; want default", v)
	}
}

func TestGetThroughSliceIndex(t *testing.T) {
	if v := arr.Get(makeNested(), "user.tags.1"); v != "ops" {
		t.Fatalf("Get user.tags.1 = %v; want ops", v)
	}
	if v := arr.Get(makeNested(), "user.tags.9", "none"); v != "none" {
		t.Fatalf("Get out of range = %v; want none", v)
	}
}

func TestGetThroughStruct(t *testing.T) {
	type address struct{ City string }
	type user struct {
		Name    string `json:"name"`
		Address *address
	}
	u := user{Name: "Bob", Address: &address{City: "Paris"}}
	if v := arr.Get(u, "Address.City"); v != "Paris" {
		t.Fatalf("Get Address.City = %v; want Paris", v)
	}
	if v := arr.Get(&u, "name"); v != "Bob" {
		t.Fatalf("Get name via json tag = %v; want Bob", v)
	}
}

func TestGetScalarTarget(t *testing.T) {
	if v := arr.Get(7, "anything"); v != nil {
		t.Fatalf("Get on scalar = %v; want nil", v)
	}
}

func TestHas(t *testing.T) {
	m := makeNested()
	if !arr.Has(m, "user.name") {
		t.Fatal("Has user.name should be true")
	}
	if !arr.Has(m, "user.address") {
		t.Fatal("Has user.address should be true")
	}
	if arr.Has(m, "user.age") {
		t.Fatal("Has user.age should be false")
	}
	if arr.Has(m, "score.nested") {
		t.Fatal("Has score.nested should be false (score is not a container)")
	}
}

func TestHasNilValue(t *testing.T) {
	m := map[string]any{"a": nil}
	if !arr.Has(m, "a") {
		t.Fatal("a key holding nil still exists")
	}
	if arr.Has(m, "a.b") {
		t.Fatal("cannot descend into nil")
	}
}

func TestHasAll(t *testing.T) {
	m := makeNested()
	if !arr.HasAll(m, "user.name", "score") {
		t.Fatal("HasAll should be true")
	}
	if arr.HasAll(m, "user.name", "missing") {
		t.Fatal("HasAll should be false when one key is missing")
	}
}

func TestHasAny(t *testing.T) {
	m := makeNested()
	if !arr.HasAny(m, "missing", "score") {
		t.Fatal("HasAny should be true")
	}
	if arr.HasAny(m, "x", "y") {
		t.Fatal("HasAny should be false")
	}
}

func TestFetch(t *testing.T) {
	rows := []any{
		map[string]any{"user": map[string]any{"name": "Alice"}},
		map[string]any{"team": "ops"},
		map[string]any{"user": map[string]any{"name": "Bob"}},
		map[string]any{"user": "not-a-container"},
	}
	got := arr.Fetch(rows, "user.name")
	if len(got) != 2 || got[0] != "Alice" || got[1] != "Bob" {
		t.Fatalf("Fetch user.name = %v; want [Alice Bob]", got)
	}
}

func TestFetchSingleSegment(t *testing.T) {
	rows := []any{
		map[string]any{"id": 1},
		map[string]any{"id": 2},
	}
	got := arr.Fetch(rows, "id")
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Fetch id = %v; want [1 2]", got)
	}
}

func TestFetchEmpty(t *testing.T) {
	if got := arr.Fetch(nil, "a.b"); len(got) != 0 {
		t.Fatalf("Fetch on nil = %v; want empty", got)
	}
}
