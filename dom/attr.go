// SPDX-License-Identifier: Unlicense OR MIT

package dom

import (
	"gioui.org/webinput/io/key"
	"gioui.org/webinput/io/pointer"
	"gioui.org/webinput/unit"
)

// Classify returns the device kind of e.
func Classify(e PointerEvent) pointer.Source {
	switch e.PointerType() {
	case TypeMouse:
		return pointer.Mouse
	case TypeTouch:
		return pointer.Touch
	default:
		return pointer.Other
	}
}

// PointerID returns the pointer identifier of e.
func PointerID(e PointerEvent) pointer.ID {
	return pointer.ID(e.PointerID())
}

// Modifiers returns the keyboard modifiers active during e.
func Modifiers(e PointerEvent) key.Modifiers {
	var m key.Modifiers
	if e.ShiftKey() {
		m |= key.ModShift
	}
	if e.CtrlKey() {
		m |= key.ModCtrl
	}
	if e.AltKey() {
		m |= key.ModAlt
	}
	if e.MetaKey() {
		m |= key.ModSuper
	}
	return m
}

// Buttons returns the mouse buttons held during e. The DOM bit layout
// matches pointer.Buttons.
func Buttons(e PointerEvent) pointer.Buttons {
	return pointer.Buttons(e.Buttons())
}

// Button returns the mouse button whose state changed in e. It returns
// false if no button changed.
func Button(e PointerEvent) (pointer.MouseButton, bool) {
	switch b := e.Button(); b {
	case -1:
		return pointer.MouseNone, false
	case 0:
		return pointer.MouseLeft, true
	case 1:
		return pointer.MouseMiddle, true
	case 2:
		return pointer.MouseRight, true
	default:
		if b < 0 {
			return pointer.MouseNone, false
		}
		return pointer.MouseOther(uint16(b)), true
	}
}

// Position returns the mouse position of e relative to its target.
func Position(e PointerEvent) unit.LogicalPosition[float64] {
	return unit.Logical(e.OffsetX(), e.OffsetY())
}

// Delta returns the mouse movement of e.
func Delta(e PointerEvent) unit.LogicalPosition[float64] {
	return unit.Logical(e.MovementX(), e.MovementY())
}

// TouchPosition returns the position of a touch contact relative to
// the surface bounds.
func TouchPosition(e PointerEvent, c Canvas) unit.LogicalPosition[float64] {
	r := c.BoundingClientRect()
	return unit.Logical(e.ClientX()-r.Left, e.ClientY()-r.Top)
}

// Pressure returns the force of a touch contact.
func Pressure(e PointerEvent) pointer.Force {
	return pointer.Normalized(e.Pressure())
}
