package listbox

// State is the observable snapshot of a widget instance.
type State struct {
	// Open reports whether the option list is visible.
	Open bool
	// Value is the selected item's value; empty means no selection. The value
	// is not auto-cleared when its item is unregistered.
	Value string
	// Cursor is the live position of the highlighted item, -1 for none.
	Cursor int
	// Query is the in-progress typeahead buffer, empty when idle.
	Query string
}

// Binding delegates storage of a controllable value to whichever side owns
// it. The engine always computes the next value and hands it to Set; Get is
// consulted on every read so externally driven state is never cached.
type Binding[T any] struct {
	Get func() T
	Set func(T)
}

func fieldBinding[T any](field *T) Binding[T] {
	return Binding[T]{
		Get: func() T { return *field },
		Set: func(v T) { *field = v },
	}
}
