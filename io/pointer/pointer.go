// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements the normalized pointer events delivered to
applications.

A host reports mice and touch contacts through a single event stream.
Events in this package are already split by Source and carry only the
attributes that make sense for that source: mouse events report
buttons and modifiers, touch events report a Force.
*/
package pointer

import (
	"fmt"
	"math"
	"strings"

	"gioui.org/webinput/io/key"
	"gioui.org/webinput/unit"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel. Hosts reuse ids after a pointer
	// is released.
	PointerID ID
	// Position is the position of the event in physical pixels
	// relative to the surface. It is zero for mouse Enter, Leave
	// and Release events.
	Position unit.PhysicalPosition[float64]
	// Delta is the movement since the previous event of the
	// pointer, for mouse Move events.
	Delta unit.PhysicalPosition[float64]
	// Buttons are the set of pressed mouse buttons for this event.
	// Only mouse Move events report it.
	Buttons Buttons
	// Button is the mouse button whose state changed, or MouseNone.
	Button MouseButton
	// Modifiers is the set of active modifiers for mouse events.
	Modifiers key.Modifiers
	// Force is the pressure of a touch contact.
	Force Force
}

// ID is the identifier of a pointer.
type ID int32

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons
type Buttons uint8

// MouseButton identifies a single mouse button. The zero value
// represents no button.
type MouseButton uint16

// Force is the normalized pressure of a touch contact, in the
// range [0,1].
type Force float64

const (
	// A Cancel event is generated when the host aborts
	// a touch contact.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Mouse cursor enters the surface.
	Enter
	// Mouse cursor leaves the surface.
	Leave

	// AllKinds is the set of every Kind.
	AllKinds = Cancel | Press | Release | Move | Enter | Leave
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
	// Other is any other device, such as a pen. Events
	// from Other sources are not delivered.
	Other
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
	// ButtonQuaternary is the fourth button, usually used for browser
	// navigation (backward)
	ButtonQuaternary
	// ButtonQuinary is the fifth button, usually used for browser
	// navigation (forward)
	ButtonQuinary
)

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	mouseOther
)

// MouseOther returns the MouseButton for the button with the host
// index idx.
func MouseOther(idx uint16) MouseButton {
	return mouseOther + MouseButton(idx)
}

// Other returns the host index of an Other button.
func (b MouseButton) Other() (uint16, bool) {
	if b < mouseOther {
		return 0, false
	}
	return uint16(b - mouseOther), true
}

func (b MouseButton) String() string {
	switch b {
	case MouseNone:
		return "None"
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	}
	idx, _ := b.Other()
	return fmt.Sprintf("Other(%d)", idx)
}

// Normalized returns the Force for a pressure reading, clamped to
// [0,1].
func Normalized(pressure float64) Force {
	switch {
	case math.IsNaN(pressure) || pressure < 0:
		return 0
	case pressure > 1:
		return 1
	}
	return Force(pressure)
}

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt <= AllKinds; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	default:
		panic("unknown Type")
	}
}

// ParseKind returns the Kind named s, as formatted by Kind.String
// for a single kind.
func ParseKind(s string) (Kind, error) {
	for k := Kind(1); k <= AllKinds; k <<= 1 {
		if strings.EqualFold(k.string(), s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("pointer: unknown kind %q", s)
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	case Other:
		return "Other"
	default:
		panic("unknown source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	if b.Contain(ButtonQuaternary) {
		strs = append(strs, "ButtonQuaternary")
	}
	if b.Contain(ButtonQuinary) {
		strs = append(strs, "ButtonQuinary")
	}
	return strings.Join(strs, "|")
}

func (e Event) String() string {
	switch e.Source {
	case Touch:
		return fmt.Sprintf("%v %v id=%d pos=%v force=%.2f", e.Source, e.Kind, e.PointerID, e.Position, float64(e.Force))
	default:
		return fmt.Sprintf("%v %v id=%d pos=%v delta=%v buttons=%v button=%v mods=%v", e.Source, e.Kind, e.PointerID, e.Position, e.Delta, e.Buttons, e.Button, e.Modifiers)
	}
}

func (Event) ImplementsEvent() {}
