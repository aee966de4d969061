package listbox

// Action is the symbolic operation a key event resolves to.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionOpenFirst
	ActionOpenCurrent
	ActionOpenLast
	ActionSelect
	ActionPrevious
	ActionNext
	ActionFirst
	ActionLast
	ActionPageUp
	ActionPageDown
	ActionTypeahead
	ActionClose
	ActionCloseSelect
	ActionOpenTypeahead
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionOpen:          "open",
	ActionOpenFirst:     "open-first",
	ActionOpenCurrent:   "open-current",
	ActionOpenLast:      "open-last",
	ActionSelect:        "select",
	ActionPrevious:      "previous",
	ActionNext:          "next",
	ActionFirst:         "first",
	ActionLast:          "last",
	ActionPageUp:        "page-up",
	ActionPageDown:      "page-down",
	ActionTypeahead:     "typeahead",
	ActionClose:         "close",
	ActionCloseSelect:   "close-select",
	ActionOpenTypeahead: "open-typeahead",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Resolve maps a key name plus modifier state to a symbolic action. Key names
// follow the DOM convention ("ArrowDown", "Enter", "Escape", ...); single
// printable characters arrive as themselves. Resolve is pure and performs no
// state changes; any result other than ActionNone tells the caller to suppress
// the key event's default behaviour.
func Resolve(key string, isOpen bool, alt bool) Action {
	if isOpen {
		return resolveOpen(key, alt)
	}
	return resolveClosed(key, alt)
}

func resolveClosed(key string, alt bool) Action {
	switch key {
	case "Enter", " ", "ArrowDown":
		return ActionOpen
	case "ArrowUp":
		if alt {
			return ActionOpen
		}
		return ActionOpenFirst
	case "Home":
		return ActionOpenFirst
	case "End":
		return ActionOpenLast
	}
	if isPrintable(key) {
		return ActionOpenTypeahead
	}
	return ActionNone
}

func resolveOpen(key string, alt bool) Action {
	switch key {
	case "ArrowUp":
		if alt {
			return ActionCloseSelect
		}
		return ActionPrevious
	case "ArrowDown":
		return ActionNext
	case "Enter", " ":
		return ActionSelect
	case "Tab":
		return ActionCloseSelect
	case "Escape":
		return ActionClose
	case "PageDown":
		return ActionPageDown
	case "PageUp":
		return ActionPageUp
	case "Home":
		return ActionFirst
	case "End":
		return ActionLast
	}
	if isPrintable(key) {
		return ActionTypeahead
	}
	return ActionNone
}

// isPrintable reports whether key is a single character usable for typeahead.
func isPrintable(key string) bool {
	runes := []rune(key)
	if len(runes) != 1 {
		return false
	}
	r := runes[0]
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ':
		return true
	}
	return false
}
