// Package task models repeating timers as cancellable handles.
//
// Bubble Tea ticks cannot be withdrawn once issued, so a Slot tags every
// tick with the handle that scheduled it. Starting a slot always cancels its
// previous handle first, and Accept drops ticks whose handle is no longer
// live. A module therefore never runs two timers at once, and no tick is
// observed after Cancel returns.
//
// The Registry counts live handles across all slots. Tests use it to check
// that toggling, restarting, and shutting down leave nothing behind.
package task
