// SPDX-License-Identifier: Unlicense OR MIT

//go:build js && wasm

// Package jsdom implements package dom for web browsers.
package jsdom

import (
	"syscall/js"

	"gioui.org/webinput/dom"
)

// Event wraps a browser PointerEvent.
type Event struct {
	v js.Value
}

// Canvas wraps a browser element.
type Canvas struct {
	cnv js.Value
}

type listener struct {
	target js.Value
	name   string
	f      js.Func
}

// DevicePixelRatio reports the scale factor of the browser window.
type DevicePixelRatio struct{}

func New(cnv js.Value) *Canvas {
	return &Canvas{cnv: cnv}
}

// CreateCanvas appends a canvas covering the element with id
// containerID, or the document body.
func CreateCanvas(containerID string) *Canvas {
	doc := js.Global().Get("document")
	cont := doc.Call("getElementById", containerID)
	if cont.IsNull() {
		cont = doc.Call("createElement", "DIV")
		doc.Get("body").Call("appendChild", cont)
	}
	cnv := doc.Call("createElement", "canvas")
	style := cnv.Get("style")
	style.Set("position", "fixed")
	style.Set("width", "100%")
	style.Set("height", "100%")
	cont.Call("appendChild", cnv)
	return New(cnv)
}

func (DevicePixelRatio) ScaleFactor() float64 {
	return js.Global().Get("window").Get("devicePixelRatio").Float()
}

func (c *Canvas) AddEventListener(name string, f func(e dom.PointerEvent)) dom.Listener {
	jsf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f(Event{v: args[0]})
		return nil
	})
	c.cnv.Call("addEventListener", name, jsf)
	return &listener{target: c.cnv, name: name, f: jsf}
}

func (l *listener) Remove() {
	l.target.Call("removeEventListener", l.name, l.f)
	l.f.Release()
}

func (c *Canvas) BoundingClientRect() dom.Rect {
	rect := c.cnv.Call("getBoundingClientRect")
	return dom.Rect{
		Left:   rect.Get("left").Float(),
		Top:    rect.Get("top").Float(),
		Width:  rect.Get("width").Float(),
		Height: rect.Get("height").Float(),
	}
}

func (c *Canvas) SetPointerCapture(id int32) error {
	return call(c.cnv, "setPointerCapture", id)
}

func (c *Canvas) RequestFullscreen() error {
	return call(c.cnv, "requestFullscreen")
}

// call invokes a method that may throw.
func call(v js.Value, method string, args ...interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			jerr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			err = jerr
		}
	}()
	v.Call(method, args...)
	return nil
}

func (e Event) PointerType() string { return e.v.Get("pointerType").String() }
func (e Event) PointerID() int32    { return int32(e.v.Get("pointerId").Int()) }
func (e Event) IsTrusted() bool     { return e.v.Get("isTrusted").Bool() }
func (e Event) ShiftKey() bool      { return e.v.Get("shiftKey").Bool() }
func (e Event) CtrlKey() bool       { return e.v.Get("ctrlKey").Bool() }
func (e Event) AltKey() bool        { return e.v.Get("altKey").Bool() }
func (e Event) MetaKey() bool       { return e.v.Get("metaKey").Bool() }
func (e Event) Buttons() uint16     { return uint16(e.v.Get("buttons").Int()) }
func (e Event) Button() int16       { return int16(e.v.Get("button").Int()) }
func (e Event) OffsetX() float64    { return e.v.Get("offsetX").Float() }
func (e Event) OffsetY() float64    { return e.v.Get("offsetY").Float() }
func (e Event) MovementX() float64  { return e.v.Get("movementX").Float() }
func (e Event) MovementY() float64  { return e.v.Get("movementY").Float() }
func (e Event) ClientX() float64    { return e.v.Get("clientX").Float() }
func (e Event) ClientY() float64    { return e.v.Get("clientY").Float() }
func (e Event) Pressure() float64   { return e.v.Get("pressure").Float() }
func (e Event) PreventDefault()     { e.v.Call("preventDefault") }

func (e Event) CoalescedEvents() ([]dom.PointerEvent, bool) {
	// Not every browser implements getCoalescedEvents.
	if e.v.Get("getCoalescedEvents").Type() != js.TypeFunction {
		return nil, false
	}
	list := e.v.Call("getCoalescedEvents")
	n := list.Length()
	evts := make([]dom.PointerEvent, n)
	for i := 0; i < n; i++ {
		evts[i] = Event{v: list.Index(i)}
	}
	return evts, true
}
