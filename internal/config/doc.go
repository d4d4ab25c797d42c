// Package config handles loading the pulseboard configuration file.
//
// # Overview
//
// The dashboard runs with no configuration at all. A TOML file may tune the
// timer cadences, replace the color swatch set, and point logging at a file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pulseboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Clock interval: 1s
//   - Progress interval: 200ms
//   - Swatches: palette.Defaults()
//   - Log file: none (logging discarded) unless debug is on, then
//     ~/.local/state/pulseboard/pulseboard.log
//
// # TOML Format
//
//	clock_interval = "1s"
//	progress_interval = "200ms"
//	log_file = "~/pulseboard.log"
//	debug = false
//
//	[[swatch]]
//	name = "Cyan"
//	color = "#00d4ff"
//
// Intervals use time.ParseDuration syntax and must be positive. Swatch colors
// must be #rgb or #rrggbb; names must be unique. PULSEBOARD_DEBUG=1 turns on
// debug regardless of the file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and invalid values
//
// Missing config files are NOT an error.
package config
