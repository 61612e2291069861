// SPDX-License-Identifier: Unlicense OR MIT

/*
Package termhost adapts terminal mouse reports to dom pointer events.

Terminals report a single mouse as a stream of positions and button
masks. Host converts the stream into the events a browser would deliver
for the same input: pointerover on the first report, pointerdown for
the first pressed button, pointerup for the last released button,
pointermove for motion and for chorded button changes, and pointerout
when the terminal loses focus.

Motion is buffered until Flush, which delivers the buffered samples as
the coalesced events of a single pointermove.
*/
package termhost

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"gioui.org/webinput/dom"
)

// ID is the pointer id of the terminal mouse.
const ID = 1

// Host is a dom.Canvas covering a terminal screen. Cells are reported
// as logical pixels.
type Host struct {
	// Scale is the ratio of physical pixels to cells. Zero means 1.
	Scale float64

	width, height int

	listeners map[string][]*listener

	inside   bool
	buttons  uint16
	mods     tcell.ModMask
	x, y     int
	captured bool
	pending  []*Event
}

// Event is a pointer event synthesized from terminal input.
type Event struct {
	x, y      float64
	dx, dy    float64
	buttons   uint16
	button    int16
	mods      tcell.ModMask
	coalesced []*Event
	prevented bool
}

type listener struct {
	h    *Host
	name string
	f    func(e dom.PointerEvent)
}

var errInactive = errors.New("termhost: pointer has no pressed buttons")

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// New returns a host for a screen of the given size.
func New(width, height int) *Host {
	return &Host{width: width, height: height}
}

// HandleEvent converts ev into pointer events. It reports whether ev
// was consumed.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		// Wheel reports are not pointer input.
		if ev.Buttons()&wheelMask != 0 {
			return true
		}
		x, y := ev.Position()
		h.mouse(x, y, domButtons(ev.Buttons()), ev.Modifiers())
		return true
	case *tcell.EventFocus:
		if !ev.Focused {
			h.leave()
		}
		return true
	case *tcell.EventResize:
		h.width, h.height = ev.Size()
		return true
	}
	return false
}

// Flush delivers buffered motion.
func (h *Host) Flush() {
	n := len(h.pending)
	if n == 0 {
		return
	}
	root := *h.pending[n-1]
	root.coalesced = h.pending
	h.pending = nil
	h.dispatch(dom.EventPointerMove, &root)
}

// Captured reports whether the mouse is captured.
func (h *Host) Captured() bool {
	return h.captured
}

func (h *Host) mouse(x, y int, buttons uint16, mods tcell.ModMask) {
	h.mods = mods
	if !h.inside {
		h.inside = true
		h.x, h.y = x, y
		h.dispatch(dom.EventPointerOver, h.sample(x, y, -1))
	}
	changed := buttons ^ h.buttons
	if changed == 0 {
		h.pending = append(h.pending, h.sample(x, y, -1))
		return
	}
	h.Flush()
	for bit := uint16(1); bit <= changed; bit <<= 1 {
		if changed&bit == 0 {
			continue
		}
		prev := h.buttons
		h.buttons ^= bit
		e := h.sample(x, y, buttonIndex(bit))
		switch {
		case prev == 0:
			h.dispatch(dom.EventPointerDown, e)
		case h.buttons == 0:
			h.captured = false
			h.dispatch(dom.EventPointerUp, e)
		default:
			// Chorded changes are moves without motion samples.
			e.coalesced = []*Event{}
			h.dispatch(dom.EventPointerMove, e)
		}
	}
}

func (h *Host) leave() {
	h.Flush()
	if !h.inside {
		return
	}
	h.inside = false
	h.dispatch(dom.EventPointerOut, h.sample(h.x, h.y, -1))
}

// sample returns an event at (x, y) with the current button state and
// moves the pointer there.
func (h *Host) sample(x, y int, button int16) *Event {
	e := &Event{
		x:       float64(x),
		y:       float64(y),
		dx:      float64(x - h.x),
		dy:      float64(y - h.y),
		buttons: h.buttons,
		button:  button,
		mods:    h.mods,
	}
	h.x, h.y = x, y
	return e
}

func (h *Host) dispatch(name string, e *Event) {
	for _, l := range append([]*listener(nil), h.listeners[name]...) {
		l.f(e)
	}
}

// domButtons converts a tcell button mask to DOM button bits.
func domButtons(b tcell.ButtonMask) uint16 {
	var m uint16
	if b&tcell.Button1 != 0 {
		m |= 1
	}
	if b&tcell.Button2 != 0 {
		m |= 2
	}
	if b&tcell.Button3 != 0 {
		m |= 4
	}
	if b&tcell.Button4 != 0 {
		m |= 8
	}
	if b&tcell.Button5 != 0 {
		m |= 16
	}
	return m
}

// buttonIndex returns the DOM button index for a DOM button bit.
func buttonIndex(bit uint16) int16 {
	switch bit {
	case 1:
		return 0
	case 2:
		return 2
	case 4:
		return 1
	case 8:
		return 3
	default:
		return 4
	}
}

func (h *Host) AddEventListener(name string, f func(e dom.PointerEvent)) dom.Listener {
	if h.listeners == nil {
		h.listeners = make(map[string][]*listener)
	}
	l := &listener{h: h, name: name, f: f}
	h.listeners[name] = append(h.listeners[name], l)
	return l
}

func (l *listener) Remove() {
	ls := l.h.listeners[l.name]
	for i, l2 := range ls {
		if l2 == l {
			l.h.listeners[l.name] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

func (h *Host) BoundingClientRect() dom.Rect {
	return dom.Rect{Width: float64(h.width), Height: float64(h.height)}
}

func (h *Host) SetPointerCapture(id int32) error {
	if id != ID || h.buttons == 0 {
		return errInactive
	}
	h.captured = true
	return nil
}

// RequestFullscreen succeeds; the screen is already full.
func (h *Host) RequestFullscreen() error {
	return nil
}

func (h *Host) ScaleFactor() float64 {
	if h.Scale == 0 {
		return 1
	}
	return h.Scale
}

func (e *Event) PointerType() string { return dom.TypeMouse }
func (e *Event) PointerID() int32    { return ID }
func (e *Event) IsTrusted() bool     { return true }
func (e *Event) ShiftKey() bool      { return e.mods&tcell.ModShift != 0 }
func (e *Event) CtrlKey() bool       { return e.mods&tcell.ModCtrl != 0 }
func (e *Event) AltKey() bool        { return e.mods&tcell.ModAlt != 0 }
func (e *Event) MetaKey() bool       { return e.mods&tcell.ModMeta != 0 }
func (e *Event) Buttons() uint16     { return e.buttons }
func (e *Event) Button() int16       { return e.button }
func (e *Event) OffsetX() float64    { return e.x }
func (e *Event) OffsetY() float64    { return e.y }
func (e *Event) MovementX() float64  { return e.dx }
func (e *Event) MovementY() float64  { return e.dy }
func (e *Event) ClientX() float64    { return e.x }
func (e *Event) ClientY() float64    { return e.y }
func (e *Event) PreventDefault()     { e.prevented = true }

// Pressure follows the DOM convention for devices without pressure
// sensing.
func (e *Event) Pressure() float64 {
	if e.buttons != 0 {
		return 0.5
	}
	return 0
}

func (e *Event) CoalescedEvents() ([]dom.PointerEvent, bool) {
	evts := make([]dom.PointerEvent, len(e.coalesced))
	for i, s := range e.coalesced {
		evts[i] = s
	}
	return evts, true
}
