package listbox

import "testing"

func newTestRegistry(values ...string) *Registry {
	r := NewRegistry()
	for _, v := range values {
		r.Add(v, "")
	}
	return r
}

func TestRegistryOrderAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Add("apple", "Apple")
	r.Add("banana", "Banana")
	r.Add("cherry", "Cherry")

	if r.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", r.Len())
	}
	if idx := r.IndexOf("banana"); idx != 1 {
		t.Fatalf("expected banana at 1, got %d", idx)
	}
	if idx := r.IndexOf("missing"); idx != -1 {
		t.Fatalf("expected -1 for missing value, got %d", idx)
	}
	if idx := r.IndexOf(""); idx != -1 {
		t.Fatalf("expected -1 for empty value, got %d", idx)
	}
}

func TestRegistryRemoveKeepsRegistrationIndices(t *testing.T) {
	r := newTestRegistry("a", "b", "c")
	if !r.Remove("b") {
		t.Fatalf("expected removal of b")
	}
	if r.Remove("b") {
		t.Fatalf("expected second removal to fail")
	}
	if idx := r.IndexOf("c"); idx != 1 {
		t.Fatalf("expected live position 1 for c, got %d", idx)
	}
	item, ok := r.At(1)
	if !ok {
		t.Fatalf("expected item at live position 1")
	}
	if item.Index != 2 {
		t.Fatalf("expected registration index 2 preserved, got %d", item.Index)
	}
}

func TestRegistryDuplicateValueLookup(t *testing.T) {
	r := NewRegistry()
	r.Add("x", "First")
	r.Add("y", "Middle")
	r.Add("x", "Second")

	if r.Len() != 3 {
		t.Fatalf("expected both duplicates in the sequence, got %d items", r.Len())
	}
	if idx := r.IndexOf("x"); idx != 2 {
		t.Fatalf("expected lookup to resolve to the later registration, got %d", idx)
	}
	r.Remove("x")
	if idx := r.IndexOf("x"); idx != 0 {
		t.Fatalf("expected lookup to fall back to the earlier duplicate, got %d", idx)
	}
}

func TestItemLabelFallback(t *testing.T) {
	if got := (Item{Value: "v", TextValue: "Label"}).Label(); got != "Label" {
		t.Fatalf("expected TextValue, got %q", got)
	}
	if got := (Item{Value: "v"}).Label(); got != "v" {
		t.Fatalf("expected value fallback, got %q", got)
	}
}

func TestDisplayLabel(t *testing.T) {
	r := NewRegistry()
	r.Add("apple", "Apple")

	if got := DisplayLabel(r, "apple", "Override", "none"); got != "Override" {
		t.Fatalf("expected override to win, got %q", got)
	}
	if got := DisplayLabel(r, "apple", "", "none"); got != "Apple" {
		t.Fatalf("expected item label, got %q", got)
	}
	if got := DisplayLabel(r, "pear", "", "none"); got != "pear" {
		t.Fatalf("expected raw value for unregistered selection, got %q", got)
	}
	if got := DisplayLabel(r, "", "", "none"); got != "none" {
		t.Fatalf("expected placeholder with no selection, got %q", got)
	}
}
