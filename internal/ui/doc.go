// Package ui contains the Bubble Tea program that hosts the select widget.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own input translation, rendering,
// and pointer handling.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function: key presses in input.go,
//     pointer events in mouse.go, resizes and auto-scroll ticks in model.go.
//   - Key handlers translate terminal keys to DOM-style key names and feed
//     them to the listbox engine, which owns all widget semantics. The UI
//     never moves the cursor or toggles the popover itself.
//
// State ownership:
//   - Selection, open state, cursor, and the typeahead buffer live in
//     internal/listbox.Engine. The model only keeps presentation state:
//     terminal geometry, the scroll window, and the blink cursor for the
//     typeahead prompt.
//   - The scroll window is a plain row viewport (viewport.go) satisfying
//     listbox.Viewport, so the engine's scroll controller can keep the
//     highlighted option visible and drive continuous scrolling.
//
// Continuous scrolling:
//   - Hovering a scroll affordance starts a controller task; the model then
//     schedules autoScrollTickMsg frames via tea.Tick. Each tick advances
//     the controller one step until the boundary is reached or the pointer
//     leaves the affordance. A sequence token discards frames queued by a
//     task that has since been replaced.
package ui
