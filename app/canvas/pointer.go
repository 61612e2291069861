// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"gioui.org/webinput/dom"
	"gioui.org/webinput/io/key"
	"gioui.org/webinput/io/pointer"
	"gioui.org/webinput/unit"
)

// ModifiersFunc receives mouse cursor enter and leave events.
type ModifiersFunc func(id pointer.ID, mods key.Modifiers)

// MousePressFunc receives mouse button presses.
type MousePressFunc func(id pointer.ID, pos unit.PhysicalPosition[float64], b pointer.MouseButton, mods key.Modifiers)

// MouseReleaseFunc receives mouse button releases.
type MouseReleaseFunc func(id pointer.ID, b pointer.MouseButton, mods key.Modifiers)

// MouseMoveFunc receives mouse motion. The button is the one whose
// state changed during the motion, or pointer.MouseNone.
type MouseMoveFunc func(id pointer.ID, pos, delta unit.PhysicalPosition[float64], mods key.Modifiers, buttons pointer.Buttons, b pointer.MouseButton)

// TouchFunc receives touch contact events.
type TouchFunc func(id pointer.ID, pos unit.PhysicalPosition[float64], force pointer.Force)

// PointerHandler dispatches the pointer events of a canvas. The zero
// value has no listeners.
type PointerHandler struct {
	listeners registry
}

type routine uint8

const (
	cursorEnter routine = iota
	cursorLeave
	cursorMove
	pointerPress
	pointerRelease
	touchCancel

	routineCount
)

type registry [routineCount]*Listener

// install replaces the listener for r. The previous listener is removed
// before attach runs.
func (reg *registry) install(r routine, attach func() *Listener) {
	reg[r].Remove()
	reg[r] = nil
	reg[r] = attach()
}

func (reg *registry) teardown() {
	for i := range reg {
		reg[i].Remove()
		reg[i] = nil
	}
}

// OnCursorEnter calls f when a mouse cursor enters the canvas.
func (h *PointerHandler) OnCursorEnter(c *Common, f ModifiersFunc) {
	h.listeners.install(cursorEnter, func() *Listener {
		return c.AddEvent(dom.EventPointerOver, func(e dom.PointerEvent) {
			// Touch contacts are reported by press and release;
			// reporting them here would duplicate them.
			if dom.Classify(e) != pointer.Mouse {
				return
			}
			f(dom.PointerID(e), dom.Modifiers(e))
		})
	})
}

// OnCursorLeave calls f when a mouse cursor leaves the canvas.
func (h *PointerHandler) OnCursorLeave(c *Common, f ModifiersFunc) {
	h.listeners.install(cursorLeave, func() *Listener {
		return c.AddEvent(dom.EventPointerOut, func(e dom.PointerEvent) {
			if dom.Classify(e) != pointer.Mouse {
				return
			}
			f(dom.PointerID(e), dom.Modifiers(e))
		})
	})
}

// OnMousePress calls mouse for mouse button presses and touch for new
// touch contacts. The canvas captures a pressed mouse pointer.
func (h *PointerHandler) OnMousePress(c *Common, mouse MousePressFunc, touch TouchFunc) {
	h.listeners.install(pointerPress, func() *Listener {
		return c.AddUserEvent(dom.EventPointerDown, func(e dom.PointerEvent) {
			id := dom.PointerID(e)
			switch dom.Classify(e) {
			case pointer.Touch:
				touch(id, dom.TouchPosition(e, c.raw).ToPhysical(c.ScaleFactor()), dom.Pressure(e))
			case pointer.Mouse:
				b, ok := dom.Button(e)
				if !ok {
					panic("no mouse button pressed")
				}
				mouse(id, dom.Position(e).ToPhysical(c.ScaleFactor()), b, dom.Modifiers(e))
				c.setPointerCapture(id)
			}
		})
	})
}

// OnMouseRelease calls mouse for mouse button releases and touch for
// lifted touch contacts.
func (h *PointerHandler) OnMouseRelease(c *Common, mouse MouseReleaseFunc, touch TouchFunc) {
	h.listeners.install(pointerRelease, func() *Listener {
		return c.AddUserEvent(dom.EventPointerUp, func(e dom.PointerEvent) {
			id := dom.PointerID(e)
			switch dom.Classify(e) {
			case pointer.Touch:
				touch(id, dom.TouchPosition(e, c.raw).ToPhysical(c.ScaleFactor()), dom.Pressure(e))
			case pointer.Mouse:
				b, ok := dom.Button(e)
				if !ok {
					panic("no mouse button released")
				}
				mouse(id, b, dom.Modifiers(e))
			}
		})
	})
}

// OnCursorMove calls mouse or touch for every motion sample of a
// pointermove delivery, in host order. If preventDefault is set, the
// host's default handling of touch motion, such as scrolling, is
// cancelled.
func (h *PointerHandler) OnCursorMove(c *Common, mouse MouseMoveFunc, touch TouchFunc, preventDefault bool) {
	h.listeners.install(cursorMove, func() *Listener {
		return c.AddEvent(dom.EventPointerMove, func(e dom.PointerEvent) {
			src := dom.Classify(e)
			switch src {
			case pointer.Touch:
				if preventDefault {
					e.PreventDefault()
				}
			case pointer.Mouse:
			default:
				return
			}
			id := dom.PointerID(e)
			// Samples carry no button transition; it belongs to
			// the delivery.
			b, _ := dom.Button(e)
			for _, s := range expand(e) {
				if debugChecks {
					if err := checkCoalesced(e, s); err != nil {
						panic(err)
					}
				}
				scale := c.ScaleFactor()
				if src == pointer.Mouse {
					mouse(
						id,
						dom.Position(s).ToPhysical(scale),
						dom.Delta(s).ToPhysical(scale),
						dom.Modifiers(s),
						dom.Buttons(s),
						b,
					)
				} else {
					touch(id, dom.TouchPosition(s, c.raw).ToPhysical(scale), dom.Pressure(s))
				}
			}
		})
	})
}

// OnTouchCancel calls f when the host aborts a touch contact.
func (h *PointerHandler) OnTouchCancel(c *Common, f TouchFunc) {
	h.listeners.install(touchCancel, func() *Listener {
		return c.AddEvent(dom.EventPointerCancel, func(e dom.PointerEvent) {
			if dom.Classify(e) != pointer.Touch {
				return
			}
			f(dom.PointerID(e), dom.TouchPosition(e, c.raw).ToPhysical(c.ScaleFactor()), dom.Pressure(e))
		})
	})
}

// RemoveListeners detaches every listener. It is safe to call
// repeatedly.
func (h *PointerHandler) RemoveListeners() {
	h.listeners.teardown()
}

// Active reports whether any listener is attached.
func (h *PointerHandler) Active() bool {
	for _, l := range h.listeners {
		if l != nil {
			return true
		}
	}
	return false
}
