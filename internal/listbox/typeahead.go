package listbox

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultTypeaheadIdle is how long the query buffer survives between
// keystrokes before it resets.
const DefaultTypeaheadIdle = 500 * time.Millisecond

// Typeahead accumulates typed characters and resolves them to an item
// position. Comparison is case-insensitive against each item's label.
type Typeahead struct {
	buffer   string
	deadline time.Time
	idle     time.Duration
	now      func() time.Time
}

// NewTypeahead constructs a matcher with the default idle window.
func NewTypeahead() *Typeahead {
	return &Typeahead{idle: DefaultTypeaheadIdle, now: time.Now}
}

// Buffer returns the in-progress query.
func (t *Typeahead) Buffer() string {
	return t.buffer
}

// Reset clears the query buffer and its idle deadline.
func (t *Typeahead) Reset() {
	t.buffer = ""
	t.deadline = time.Time{}
}

// Type feeds one character into the buffer and resolves it against the items,
// starting just after the cursor and wrapping. When the grown buffer matches
// nothing the buffer collapses to the most recent character and the search
// runs again, so a fast re-press of one letter cycles through items sharing
// that initial. Returns the matched live position and whether a match was
// found; a total miss leaves the buffer collapsed but moves nothing.
func (t *Typeahead) Type(ch rune, items []Item, cursor int) (int, bool) {
	now := t.now()
	if !t.deadline.IsZero() && now.After(t.deadline) {
		t.buffer = ""
	}
	t.deadline = now.Add(t.idle)
	t.buffer += string(ch)

	if idx := matchPrefix(items, t.buffer, cursor); idx >= 0 {
		return idx, true
	}
	if len([]rune(t.buffer)) > 1 {
		t.buffer = string(ch)
		if idx := matchPrefix(items, t.buffer, cursor); idx >= 0 {
			return idx, true
		}
	}
	if idx := matchFuzzy(items, t.buffer); idx >= 0 {
		return idx, true
	}
	return -1, false
}

// matchPrefix finds the first item whose label starts with the query,
// scanning in display order from just after the cursor and wrapping.
func matchPrefix(items []Item, query string, cursor int) int {
	n := len(items)
	if n == 0 || query == "" {
		return -1
	}
	lower := strings.ToLower(query)
	start := cursor + 1
	if start < 0 || start > n {
		start = 0
	}
	for off := 0; off < n; off++ {
		i := (start + off) % n
		if strings.HasPrefix(strings.ToLower(items[i].Label()), lower) {
			return i
		}
	}
	return -1
}

// matchFuzzy is the last resort when no label has the query as a prefix: the
// best-ranked fuzzy candidate wins, ties going to the earliest item.
func matchFuzzy(items []Item, query string) int {
	if len(items) == 0 || query == "" {
		return -1
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label()
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return -1
	}
	return best.OriginalIndex
}
