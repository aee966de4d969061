package listbox

import (
	"testing"
	"time"
)

// fakeClock lets tests step through the idle window deterministically.
type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time {
	return c.at
}

func (c *fakeClock) advance(d time.Duration) {
	c.at = c.at.Add(d)
}

func newTestTypeahead() (*Typeahead, *fakeClock) {
	clock := &fakeClock{at: time.Unix(0, 0)}
	t := NewTypeahead()
	t.now = clock.now
	return t, clock
}

func fruitItems() []Item {
	return []Item{
		{Value: "apple", TextValue: "Apple"},
		{Value: "banana", TextValue: "Banana"},
		{Value: "avocado", TextValue: "Avocado"},
	}
}

func TestTypeaheadFirstMatchAfterCursor(t *testing.T) {
	ta, _ := newTestTypeahead()
	idx, ok := ta.Type('a', fruitItems(), -1)
	if !ok || idx != 0 {
		t.Fatalf("expected match at 0 (Apple), got %d ok=%v", idx, ok)
	}
}

func TestTypeaheadRepeatedLetterCycles(t *testing.T) {
	ta, clock := newTestTypeahead()
	items := fruitItems()
	idx, ok := ta.Type('a', items, -1)
	if !ok || idx != 0 {
		t.Fatalf("expected first press to land on Apple, got %d ok=%v", idx, ok)
	}
	clock.advance(100 * time.Millisecond)
	idx, ok = ta.Type('a', items, idx)
	if !ok || idx != 2 {
		t.Fatalf("expected second press to cycle to Avocado, got %d ok=%v", idx, ok)
	}
	clock.advance(100 * time.Millisecond)
	idx, ok = ta.Type('a', items, idx)
	if !ok || idx != 0 {
		t.Fatalf("expected third press to wrap back to Apple, got %d ok=%v", idx, ok)
	}
}

func TestTypeaheadBufferGrowsWithinIdleWindow(t *testing.T) {
	ta, clock := newTestTypeahead()
	items := fruitItems()
	if idx, ok := ta.Type('a', items, -1); !ok || idx != 0 {
		t.Fatalf("expected Apple, got %d ok=%v", idx, ok)
	}
	clock.advance(100 * time.Millisecond)
	idx, ok := ta.Type('v', items, 0)
	if !ok || idx != 2 {
		t.Fatalf("expected buffer \"av\" to land on Avocado, got %d ok=%v", idx, ok)
	}
	if ta.Buffer() != "av" {
		t.Fatalf("expected buffer \"av\", got %q", ta.Buffer())
	}
}

func TestTypeaheadIdleWindowResetsBuffer(t *testing.T) {
	ta, clock := newTestTypeahead()
	items := fruitItems()
	if _, ok := ta.Type('b', items, -1); !ok {
		t.Fatalf("expected match for b")
	}
	clock.advance(DefaultTypeaheadIdle + time.Millisecond)
	idx, ok := ta.Type('a', items, 1)
	if !ok || idx != 2 {
		t.Fatalf("expected fresh buffer to match Avocado after cursor 1, got %d ok=%v", idx, ok)
	}
	if ta.Buffer() != "a" {
		t.Fatalf("expected buffer reset to %q, got %q", "a", ta.Buffer())
	}
}

func TestTypeaheadFuzzyFallback(t *testing.T) {
	ta, _ := newTestTypeahead()
	items := []Item{
		{Value: "strawberry", TextValue: "Strawberry"},
		{Value: "blueberry", TextValue: "Blueberry"},
	}
	// No label starts with "u"; the fuzzy pass still finds Blueberry.
	idx, ok := ta.Type('u', items, -1)
	if !ok || idx != 1 {
		t.Fatalf("expected fuzzy fallback to find Blueberry, got %d ok=%v", idx, ok)
	}
}

func TestTypeaheadTotalMissMovesNothing(t *testing.T) {
	ta, _ := newTestTypeahead()
	idx, ok := ta.Type('z', fruitItems(), 1)
	if ok || idx != -1 {
		t.Fatalf("expected no match for z, got %d ok=%v", idx, ok)
	}
}

func TestTypeaheadEmptyItems(t *testing.T) {
	ta, _ := newTestTypeahead()
	if idx, ok := ta.Type('a', nil, -1); ok || idx != -1 {
		t.Fatalf("expected no match against empty items, got %d ok=%v", idx, ok)
	}
}

func TestTypeaheadUsesValueWhenNoTextValue(t *testing.T) {
	ta, _ := newTestTypeahead()
	items := []Item{{Value: "zebra"}, {Value: "yak"}}
	idx, ok := ta.Type('y', items, -1)
	if !ok || idx != 1 {
		t.Fatalf("expected value fallback match at 1, got %d ok=%v", idx, ok)
	}
}
