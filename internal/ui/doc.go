// Package ui contains the Bubble Tea program that powers the glossary browser.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and overlays.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses are forwarded to the report form while its modal is open.
//     Everything else is routed through a typed handler registry so each
//     tea.Msg is handled by a focused function.
//   - Navigation helpers (navigation.go) handle category switching, list
//     movement, and the font picker and contact overlays. Search input
//     (input.go) keeps text entry isolated from the event loop.
//
// State ownership:
//   - List state lives in internal/ui/state.Browser, which tracks the query,
//     active category, rendered lines, cursor, and viewport.
//   - The term snapshot lives in internal/state and is written only by the
//     dispatcher when a backend event arrives.
//   - Report submissions run through the internal/ui/command bus and return as
//     reportResultMsg values.
//
// Backend interactions:
//   - A backend.Loader fetches the term list in the background. Update waits
//     for its events and hands them to applyBackendEvent, which refreshes the
//     store, the category bar, and the rendered list.
package ui
