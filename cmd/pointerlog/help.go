// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The pointerlog command shows the normalized pointer events of a terminal.

Usage:

	pointerlog [flags]

Mouse reports from the terminal are converted to pointer events the way a
web browser delivers them, and each normalized event is shown on screen.
Press Escape or q to quit.

The -config flag names a TOML file with the following keys:

	prevent_touch_scroll = false
	kinds = ["Enter", "Leave", "Press", "Release", "Move", "Cancel"]
	scale = 1.0
	trace = "session.db"

The -trace flag records the events to an SQLite database, overriding the
trace key of the configuration.

The -log flag appends a line per event to a file.
`
