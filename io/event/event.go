// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events delivered to
// applications.
type Event interface {
	ImplementsEvent()
}

// Sink receives events. Sinks run on the host's delivery turn and
// must return promptly.
type Sink func(e Event)
