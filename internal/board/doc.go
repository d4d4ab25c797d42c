// Package board is the application context for the dashboard.
//
// A Board owns the per-widget state objects (counter, clock, color picker,
// progress runner), the shared page, and the task registry. UI handlers call
// its operations and forward timer messages to Handle; nothing else mutates
// widget state. Every operation returns the Bubble Tea command that carries
// its deferred effects (the next tick, a pulse reset), so the board can be
// driven in tests by feeding messages back by hand.
//
// The widgets never talk to each other. They meet only in state.Page, where
// the message region and accent color are last-writer-wins.
package board
