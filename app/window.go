// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"gioui.org/webinput/app/canvas"
	"gioui.org/webinput/dom"
	"gioui.org/webinput/io/event"
	"gioui.org/webinput/io/key"
	"gioui.org/webinput/io/pointer"
	"gioui.org/webinput/unit"
)

// Option configures a window.
type Option func(cnf *Config)

// Config describes the pointer input a Window opts into.
type Config struct {
	// Kinds is the set of interactions to report.
	Kinds pointer.Kind
	// PreventTouchScroll disables the host's default handling
	// of touch motion, such as scrolling the page.
	PreventTouchScroll bool
}

// Window reports the pointer input of a canvas as pointer.Events.
type Window struct {
	common  *canvas.Common
	handler canvas.PointerHandler
	sink    event.Sink
	closed  bool
}

// Kinds sets the interactions the window reports. By default, every
// pointer.Kind is reported.
func Kinds(k pointer.Kind) Option {
	if k&^pointer.AllKinds != 0 {
		panic("unknown pointer kinds")
	}
	return func(cnf *Config) {
		cnf.Kinds = k
	}
}

// PreventTouchScroll sets whether touch motion is prevented from
// scrolling the host page.
func PreventTouchScroll(prevent bool) Option {
	return func(cnf *Config) {
		cnf.PreventTouchScroll = prevent
	}
}

// NewWindow attaches to raw and delivers its pointer events to sink.
func NewWindow(raw dom.Canvas, p canvas.Platform, sink event.Sink, options ...Option) *Window {
	cnf := Config{Kinds: pointer.AllKinds}
	for _, o := range options {
		o(&cnf)
	}
	w := &Window{
		common: canvas.NewCommon(raw, p),
		sink:   sink,
	}
	w.Configure(cnf)
	return w
}

// Configure replaces the interactions the window reports.
func (w *Window) Configure(cnf Config) {
	if w.closed {
		return
	}
	w.handler.RemoveListeners()
	c, h := w.common, &w.handler
	if cnf.Kinds&pointer.Enter != 0 {
		h.OnCursorEnter(c, w.mouseCrossing(pointer.Enter))
	}
	if cnf.Kinds&pointer.Leave != 0 {
		h.OnCursorLeave(c, w.mouseCrossing(pointer.Leave))
	}
	if cnf.Kinds&pointer.Press != 0 {
		h.OnMousePress(c, w.mousePress, w.touch(pointer.Press))
	}
	if cnf.Kinds&pointer.Release != 0 {
		h.OnMouseRelease(c, w.mouseRelease, w.touch(pointer.Release))
	}
	if cnf.Kinds&pointer.Move != 0 {
		h.OnCursorMove(c, w.mouseMove, w.touch(pointer.Move), cnf.PreventTouchScroll)
	}
	if cnf.Kinds&pointer.Cancel != 0 {
		h.OnTouchCancel(c, w.touch(pointer.Cancel))
	}
}

// RequestFullscreen makes the canvas fullscreen during the next press
// or release.
func (w *Window) RequestFullscreen() {
	w.common.RequestFullscreen()
}

// OnCaptureError reports pointer capture failures to f.
func (w *Window) OnCaptureError(f func(id pointer.ID, err error)) {
	w.common.OnCaptureError(f)
}

// Close detaches the window from its canvas. No events are delivered
// after Close returns.
func (w *Window) Close() {
	w.closed = true
	w.handler.RemoveListeners()
}

func (w *Window) mouseCrossing(k pointer.Kind) canvas.ModifiersFunc {
	return func(id pointer.ID, mods key.Modifiers) {
		w.sink(pointer.Event{
			Kind:      k,
			Source:    pointer.Mouse,
			PointerID: id,
			Modifiers: mods,
		})
	}
}

func (w *Window) mousePress(id pointer.ID, pos unit.PhysicalPosition[float64], b pointer.MouseButton, mods key.Modifiers) {
	w.sink(pointer.Event{
		Kind:      pointer.Press,
		Source:    pointer.Mouse,
		PointerID: id,
		Position:  pos,
		Button:    b,
		Modifiers: mods,
	})
}

func (w *Window) mouseRelease(id pointer.ID, b pointer.MouseButton, mods key.Modifiers) {
	w.sink(pointer.Event{
		Kind:      pointer.Release,
		Source:    pointer.Mouse,
		PointerID: id,
		Button:    b,
		Modifiers: mods,
	})
}

func (w *Window) mouseMove(id pointer.ID, pos, delta unit.PhysicalPosition[float64], mods key.Modifiers, buttons pointer.Buttons, b pointer.MouseButton) {
	w.sink(pointer.Event{
		Kind:      pointer.Move,
		Source:    pointer.Mouse,
		PointerID: id,
		Position:  pos,
		Delta:     delta,
		Buttons:   buttons,
		Button:    b,
		Modifiers: mods,
	})
}

func (w *Window) touch(k pointer.Kind) canvas.TouchFunc {
	return func(id pointer.ID, pos unit.PhysicalPosition[float64], force pointer.Force) {
		w.sink(pointer.Event{
			Kind:      k,
			Source:    pointer.Touch,
			PointerID: id,
			Position:  pos,
			Force:     force,
		})
	}
}
