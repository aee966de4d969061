package listbox

import "testing"

func TestResolveClosed(t *testing.T) {
	cases := []struct {
		key  string
		alt  bool
		want Action
	}{
		{"Enter", false, ActionOpen},
		{" ", false, ActionOpen},
		{"ArrowDown", false, ActionOpen},
		{"ArrowUp", true, ActionOpen},
		{"ArrowUp", false, ActionOpenFirst},
		{"Home", false, ActionOpenFirst},
		{"End", false, ActionOpenLast},
		{"a", false, ActionOpenTypeahead},
		{"Z", false, ActionOpenTypeahead},
		{"7", false, ActionOpenTypeahead},
		{"Escape", false, ActionNone},
		{"Tab", false, ActionNone},
		{"F5", false, ActionNone},
	}
	for _, tc := range cases {
		if got := Resolve(tc.key, false, tc.alt); got != tc.want {
			t.Fatalf("Resolve(%q, closed, alt=%v) = %v, want %v", tc.key, tc.alt, got, tc.want)
		}
	}
}

func TestResolveOpen(t *testing.T) {
	cases := []struct {
		key  string
		alt  bool
		want Action
	}{
		{"ArrowUp", true, ActionCloseSelect},
		{"ArrowUp", false, ActionPrevious},
		{"ArrowDown", false, ActionNext},
		{"Enter", false, ActionSelect},
		{" ", false, ActionSelect},
		{"Tab", false, ActionCloseSelect},
		{"Escape", false, ActionClose},
		{"PageDown", false, ActionPageDown},
		{"PageUp", false, ActionPageUp},
		{"Home", false, ActionFirst},
		{"End", false, ActionLast},
		{"b", false, ActionTypeahead},
		{"ArrowLeft", false, ActionNone},
	}
	for _, tc := range cases {
		if got := Resolve(tc.key, true, tc.alt); got != tc.want {
			t.Fatalf("Resolve(%q, open, alt=%v) = %v, want %v", tc.key, tc.alt, got, tc.want)
		}
	}
}

func TestResolveClosedNeverRequiresCursor(t *testing.T) {
	keys := []string{
		"Enter", " ", "ArrowDown", "ArrowUp", "Home", "End",
		"a", "q", "0", "Escape", "Tab", "PageUp", "PageDown", "F1",
	}
	cursorActions := map[Action]bool{
		ActionSelect:      true,
		ActionCloseSelect: true,
		ActionPrevious:    true,
		ActionNext:        true,
		ActionFirst:       true,
		ActionLast:        true,
		ActionPageUp:      true,
		ActionPageDown:    true,
		ActionTypeahead:   true,
		ActionClose:       true,
	}
	for _, key := range keys {
		for _, alt := range []bool{false, true} {
			if got := Resolve(key, false, alt); cursorActions[got] {
				t.Fatalf("Resolve(%q, closed, alt=%v) returned open-state action %v", key, alt, got)
			}
		}
	}
}

func TestIsPrintable(t *testing.T) {
	for _, key := range []string{"a", "Z", "5", " "} {
		if !isPrintable(key) {
			t.Fatalf("expected %q to be printable", key)
		}
	}
	for _, key := range []string{"", "ab", "Enter", "é", "€"} {
		if isPrintable(key) {
			t.Fatalf("expected %q to be non-printable", key)
		}
	}
}
