// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dom describes the raw pointer events of a host in terms of the
DOM PointerEvent interface, and derives normalized attributes from them.

A host implements PointerEvent for its events and Canvas for the
surface that receives them. Browsers are one such host; any source of
unified mouse and touch reports can be adapted.

The functions in this package are pure: they read an event and never
modify it.
*/
package dom

// Host event names.
const (
	EventPointerOver   = "pointerover"
	EventPointerOut    = "pointerout"
	EventPointerDown   = "pointerdown"
	EventPointerUp     = "pointerup"
	EventPointerMove   = "pointermove"
	EventPointerCancel = "pointercancel"
)

// Pointer type strings reported by PointerEvent.PointerType.
const (
	TypeMouse = "mouse"
	TypeTouch = "touch"
	TypePen   = "pen"
)

// PointerEvent is a raw host pointer event.
type PointerEvent interface {
	// PointerType is the device type, such as "mouse" or "touch".
	PointerType() string
	PointerID() int32
	// IsTrusted reports whether the event was generated by a user
	// action, as opposed to being synthesized by a script.
	IsTrusted() bool

	ShiftKey() bool
	CtrlKey() bool
	AltKey() bool
	MetaKey() bool

	// Buttons is the bitmask of pressed buttons.
	Buttons() uint16
	// Button is the index of the button whose state changed, or -1.
	Button() int16

	// OffsetX and OffsetY are the position relative to the
	// target, in logical pixels.
	OffsetX() float64
	OffsetY() float64
	// MovementX and MovementY are the movement since the previous
	// event of the same pointer.
	MovementX() float64
	MovementY() float64
	// ClientX and ClientY are the position relative to the
	// viewport.
	ClientX() float64
	ClientY() float64

	// Pressure is the normalized pressure of the pointer.
	Pressure() float64

	// PreventDefault cancels the host's default action for the
	// event, such as scrolling.
	PreventDefault()

	// CoalescedEvents returns the samples merged into this event. The
	// boolean result reports whether the host supports coalesced events
	// at all.
	CoalescedEvents() ([]PointerEvent, bool)
}

// Listener is an attached event listener.
type Listener interface {
	// Remove detaches the listener.
	Remove()
}

// Rect is a rectangle in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// EventTarget is a host object that delivers named events.
type EventTarget interface {
	// AddEventListener attaches f to the events named name. Host
	// deliveries run f synchronously.
	AddEventListener(name string, f func(e PointerEvent)) Listener
}

// Canvas is the surface pointer events are delivered to.
type Canvas interface {
	EventTarget
	// BoundingClientRect returns the surface bounds in viewport
	// coordinates.
	BoundingClientRect() Rect
	// SetPointerCapture routes further events of the pointer
	// to the canvas.
	SetPointerCapture(id int32) error
	// RequestFullscreen asks the host to make the canvas
	// fullscreen. Hosts only honour it during user-activated events.
	RequestFullscreen() error
}
