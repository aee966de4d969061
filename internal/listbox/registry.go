package listbox

// Item represents a selectable option.
type Item struct {
	// Value is the semantic selection key. Items with an empty value are not
	// selectable.
	Value string
	// TextValue is the human-readable label used for typeahead and display.
	TextValue string
	// Index is the position assigned at registration time. It is a hint only:
	// after removals it can drift from the live position, so navigation always
	// derives positions from the registry's current ordered sequence.
	Index int
}

// Label returns the display text, falling back to the value.
func (i Item) Label() string {
	if i.TextValue != "" {
		return i.TextValue
	}
	return i.Value
}

// Registry holds the ordered collection of registered items. Registration
// order is display order. Lookup is keyed by value; registering a duplicate
// value overwrites the lookup (the most recent registration wins) while both
// items remain in the ordered sequence.
type Registry struct {
	items []Item
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an item at the end of the display order and stamps its
// registration index.
func (r *Registry) Add(value, textValue string) Item {
	item := Item{Value: value, TextValue: textValue, Index: len(r.items)}
	r.items = append(r.items, item)
	return item
}

// Remove unregisters the item the value currently looks up to. Removal is
// keyed by value rather than index so it stays correct after earlier removals
// have shifted positions. Remaining items keep their registration indices.
func (r *Registry) Remove(value string) bool {
	i := r.IndexOf(value)
	if i < 0 {
		return false
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return true
}

// IndexOf returns the live position of the item with the given value, or -1
// when absent. With duplicate values the most recent registration wins.
func (r *Registry) IndexOf(value string) int {
	if value == "" {
		return -1
	}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].Value == value {
			return i
		}
	}
	return -1
}

// Items returns the registered items in display order. The slice is a copy so
// callers cannot hold a mutable alias; the engine re-reads the registry on
// every action instead of caching snapshots across event boundaries.
func (r *Registry) Items() []Item {
	dup := make([]Item, len(r.items))
	copy(dup, r.items)
	return dup
}

// At returns the item at the given live position.
func (r *Registry) At(i int) (Item, bool) {
	if i < 0 || i >= len(r.items) {
		return Item{}, false
	}
	return r.items[i], true
}

// Len reports the number of registered items.
func (r *Registry) Len() int {
	return len(r.items)
}

// DisplayLabel resolves the text shown for a selected value: an explicit
// override wins, then the matched item's label, then the raw value, then the
// placeholder when nothing is selected.
func DisplayLabel(r *Registry, value, override, placeholder string) string {
	if override != "" {
		return override
	}
	if value == "" {
		return placeholder
	}
	if idx := r.IndexOf(value); idx >= 0 {
		return r.items[idx].Label()
	}
	return value
}
