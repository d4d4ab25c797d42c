// Package state holds the page resources shared by every widget.
//
// # Overview
//
// Widgets on the board are independent, but they all write to two shared
// resources: the message region the notifier fills, and the page-wide accent
// color the color picker sets. Page owns both.
//
// # Core Types
//
// Page:
//   - Container for the message region and accent color
//   - Uses sync.RWMutex so a snapshot taken off the event loop is never torn
//   - Zero value is ready to use
//
// Snapshot:
//   - Copy of the page at one instant
//   - Carries a Revision counter that increases on every write
//
// # Write Semantics
//
// Both resources are last-writer-wins. There is no contention resolution:
//
//	page.SetMessage(state.Info, "Loading...", now)   // pulse #1 starts
//	page.SetMessage(state.Success, "Done", now)       // pulse #2 replaces it
//	page.EndPulse(1)                                  // false, #2 keeps pulsing
//	page.EndPulse(2)                                  // true
//
// The pulse sequence lets a deferred reset from an older message arrive late
// without cutting a newer pulse short.
//
// # Testing Considerations
//
//	page := &state.Page{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot if nothing has been written.
package state
