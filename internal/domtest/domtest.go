// SPDX-License-Identifier: Unlicense OR MIT

// Package domtest implements a scriptable host for testing code that
// consumes dom events.
package domtest

import (
	"gioui.org/webinput/dom"
)

// Event is a scripted dom.PointerEvent.
type Event struct {
	Type      string
	ID        int32
	Untrusted bool

	Shift, Ctrl, Alt, Meta bool

	ButtonMask    uint16
	ChangedButton int16

	X, Y         float64
	MoveX, MoveY float64
	CX, CY       float64
	Force        float64

	Coalesced          []*Event
	SupportsCoalescing bool
	// Prevented counts the calls to PreventDefault.
	Prevented int
}

// Canvas is a dom.Canvas that delivers events on demand.
type Canvas struct {
	Rect       dom.Rect
	CaptureErr error

	// Captures records the pointers passed to SetPointerCapture.
	Captures           []int32
	FullscreenRequests int

	listeners map[string][]*listener
}

type listener struct {
	c    *Canvas
	name string
	f    func(e dom.PointerEvent)
}

// Mouse returns a trusted mouse event at the offset (x, y) with no
// changed button.
func Mouse(id int32, x, y float64) *Event {
	return &Event{Type: dom.TypeMouse, ID: id, ChangedButton: -1, X: x, Y: y, CX: x, CY: y}
}

// Touch returns a trusted touch event at the viewport position (x, y).
func Touch(id int32, x, y, pressure float64) *Event {
	return &Event{Type: dom.TypeTouch, ID: id, ChangedButton: -1, CX: x, CY: y, X: x, Y: y, Force: pressure}
}

// Batch sets the coalesced samples of e and marks coalescing as
// supported.
func (e *Event) Batch(samples ...*Event) *Event {
	e.SupportsCoalescing = true
	e.Coalesced = samples
	return e
}

func (e *Event) PointerType() string { return e.Type }
func (e *Event) PointerID() int32    { return e.ID }
func (e *Event) IsTrusted() bool     { return !e.Untrusted }
func (e *Event) ShiftKey() bool      { return e.Shift }
func (e *Event) CtrlKey() bool       { return e.Ctrl }
func (e *Event) AltKey() bool        { return e.Alt }
func (e *Event) MetaKey() bool       { return e.Meta }
func (e *Event) Buttons() uint16     { return e.ButtonMask }
func (e *Event) Button() int16       { return e.ChangedButton }
func (e *Event) OffsetX() float64    { return e.X }
func (e *Event) OffsetY() float64    { return e.Y }
func (e *Event) MovementX() float64  { return e.MoveX }
func (e *Event) MovementY() float64  { return e.MoveY }
func (e *Event) ClientX() float64    { return e.CX }
func (e *Event) ClientY() float64    { return e.CY }
func (e *Event) Pressure() float64   { return e.Force }
func (e *Event) PreventDefault()     { e.Prevented++ }

func (e *Event) CoalescedEvents() ([]dom.PointerEvent, bool) {
	if !e.SupportsCoalescing {
		return nil, false
	}
	evts := make([]dom.PointerEvent, len(e.Coalesced))
	for i, s := range e.Coalesced {
		evts[i] = s
	}
	return evts, true
}

func (c *Canvas) AddEventListener(name string, f func(e dom.PointerEvent)) dom.Listener {
	if c.listeners == nil {
		c.listeners = make(map[string][]*listener)
	}
	l := &listener{c: c, name: name, f: f}
	c.listeners[name] = append(c.listeners[name], l)
	return l
}

func (l *listener) Remove() {
	ls := l.c.listeners[l.name]
	for i, l2 := range ls {
		if l2 == l {
			l.c.listeners[l.name] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to the listeners attached to name.
func (c *Canvas) Dispatch(name string, e dom.PointerEvent) {
	for _, f := range c.Pending(name) {
		f(e)
	}
}

// Pending returns the listener functions currently attached to name.
// Calling them after the listener is removed simulates a delivery the
// host queued before the removal.
func (c *Canvas) Pending(name string) []func(e dom.PointerEvent) {
	var fs []func(e dom.PointerEvent)
	for _, l := range c.listeners[name] {
		fs = append(fs, l.f)
	}
	return fs
}

// Listeners returns the number of listeners attached to name.
func (c *Canvas) Listeners(name string) int {
	return len(c.listeners[name])
}

// Total returns the number of attached listeners.
func (c *Canvas) Total() int {
	n := 0
	for _, ls := range c.listeners {
		n += len(ls)
	}
	return n
}

func (c *Canvas) BoundingClientRect() dom.Rect { return c.Rect }

func (c *Canvas) SetPointerCapture(id int32) error {
	c.Captures = append(c.Captures, id)
	return c.CaptureErr
}

func (c *Canvas) RequestFullscreen() error {
	c.FullscreenRequests++
	return nil
}

// Platform is a fixed scale factor.
type Platform float64

func (p Platform) ScaleFactor() float64 { return float64(p) }
