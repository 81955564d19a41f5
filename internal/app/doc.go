// Package app provides the orchestration layer for the skim pager.
//
// # Overview
//
// This package wires user preferences and the initial set of sources
// into the UI. It is the composition root: everything else is either
// the engine (internal/pager, internal/source) or the Bubble Tea
// binding (internal/ui).
//
// # Startup
//
//  1. Load user preferences from ~/.config/skim/prefs.toml
//  2. Build the source registry from the command line: named files
//     become file sources; with no arguments, a non-terminal stdin
//     becomes a single streaming pipe source
//  3. Start the TUI and block until the user quits
//
// Individual files that fail to open do not abort startup as long as
// at least one source could be created; their errors surface as
// status messages inside the session.
package app
