// Package app is the composition root for pulseboard.
//
// Run loads the TOML config and UI prefs, opens the optional log file,
// builds the board with its timers and random source, and hands it to the
// Bubble Tea program. It blocks until the user quits or the context is
// cancelled.
//
// Startup steps:
//
//  1. config.Load reads ~/.config/pulseboard/config.toml (missing file means defaults)
//  2. prefs.Load reads the theme; failures degrade to defaults
//  3. The log file is opened when configured; otherwise logs are discarded
//  4. board.New wires the counter, clock, palette and progress runner
//  5. ui.Run starts the TUI; the board's Init starts the clock
//
// A bad config is fatal. Everything after startup is logged, never returned.
package app
