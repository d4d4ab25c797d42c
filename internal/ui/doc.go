// Package ui provides the terminal interface for pulseboard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns presentation state only: the
// theme, window size, help overlay and the progress bar renderer. Every
// widget's state lives in board.Board. Key presses become board operations,
// and timer messages are forwarded to board.Handle untouched.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key dispatch, and the Run function
//   - keys.go: key bindings (bubbles/key) and the footer help map
//   - render.go: header, widget panels, message region, per-panel isolation
//   - help.go: full-screen keyboard shortcut overlay
//   - theme.go: color themes, tone and message-kind colors
//   - layout.go: width thresholds
//
// # Layout
//
//	┌ header: logo · clock state · live tasks · theme ┐
//	┌ Counter ───────────┐┌ Clock ─────────────┐
//	└────────────────────┘└────────────────────┘
//	┌ Colors ────────────┐┌ Progress ──────────┐
//	└────────────────────┘└────────────────────┘
//	┌ message region ────────────────────────────┐
//	  key footer
//
// Below LayoutCompactWidth columns the four panels stack vertically.
//
// # Accent
//
// Selecting a swatch sets the page accent. Every panel border, title and the
// progress fill render in that color until another swatch is picked. Before
// any selection the theme's own accent is used.
//
// # Fault Isolation
//
// Each region renders through safePanel. A panic in one renderer is logged
// and replaced by a placeholder; the other regions still render, and since
// timers run in Update rather than View, no timer loop is affected.
package ui
