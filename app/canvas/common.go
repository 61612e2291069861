// SPDX-License-Identifier: Unlicense OR MIT

/*
Package canvas translates the raw pointer events of a dom.Canvas into
device specific callbacks.

A PointerHandler holds at most one listener per interaction. Installing
a handler for an interaction replaces the previous one, and
RemoveListeners detaches all of them. Callbacks run synchronously on the
host's delivery turn and must return promptly.
*/
package canvas

import (
	"gioui.org/webinput/dom"
	"gioui.org/webinput/io/pointer"
)

// Platform provides the display properties of the host.
type Platform interface {
	// ScaleFactor returns the ratio of physical to logical pixels.
	ScaleFactor() float64
}

// Common is the attachment of pointer handlers to a host canvas.
type Common struct {
	raw      dom.Canvas
	platform Platform

	wantsFullscreen bool
	captureErr      func(id pointer.ID, err error)
}

// Listener is a revocable subscription to a host event. After Remove
// returns, the subscribed function is never called again, even for
// deliveries the host queued before the removal.
type Listener struct {
	l       dom.Listener
	removed bool
}

func NewCommon(raw dom.Canvas, p Platform) *Common {
	return &Common{raw: raw, platform: p}
}

func (c *Common) ScaleFactor() float64 {
	return c.platform.ScaleFactor()
}

// AddEvent subscribes f to the host events named name.
func (c *Common) AddEvent(name string, f func(e dom.PointerEvent)) *Listener {
	l := new(Listener)
	l.l = c.raw.AddEventListener(name, func(e dom.PointerEvent) {
		if l.removed {
			return
		}
		f(e)
	})
	return l
}

// AddUserEvent is like AddEvent, but f only runs for events generated
// by the user. A fullscreen request made before or during f is
// performed after f returns, while the host still considers the page
// activated by the user.
func (c *Common) AddUserEvent(name string, f func(e dom.PointerEvent)) *Listener {
	return c.AddEvent(name, func(e dom.PointerEvent) {
		if !e.IsTrusted() {
			return
		}
		f(e)
		if c.wantsFullscreen {
			c.wantsFullscreen = false
			// Denied requests are not retried.
			_ = c.raw.RequestFullscreen()
		}
	})
}

// RequestFullscreen makes the canvas fullscreen during the next user
// event.
func (c *Common) RequestFullscreen() {
	c.wantsFullscreen = true
}

// IsFullscreenRequested reports whether a fullscreen request is
// pending.
func (c *Common) IsFullscreenRequested() bool {
	return c.wantsFullscreen
}

// OnCaptureError sets the function that receives pointer capture
// failures. By default, failures are ignored.
func (c *Common) OnCaptureError(f func(id pointer.ID, err error)) {
	c.captureErr = f
}

func (c *Common) setPointerCapture(id pointer.ID) {
	// Capture fails routinely, for example while the cursor is grabbed.
	if err := c.raw.SetPointerCapture(int32(id)); err != nil && c.captureErr != nil {
		c.captureErr(id, err)
	}
}

// Remove detaches the listener. It is a no-op for a nil or already
// removed Listener.
func (l *Listener) Remove() {
	if l == nil || l.removed {
		return
	}
	l.removed = true
	l.l.Remove()
}
