// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"reflect"
	"testing"

	"gioui.org/webinput/dom"
	"gioui.org/webinput/internal/domtest"
	"gioui.org/webinput/io/event"
	"gioui.org/webinput/io/key"
	"gioui.org/webinput/io/pointer"
	"gioui.org/webinput/unit"
)

type eventLog []pointer.Event

func (l *eventLog) sink(e event.Event) {
	*l = append(*l, e.(pointer.Event))
}

func TestWindowEvents(t *testing.T) {
	cnv := new(domtest.Canvas)
	var evts eventLog
	w := NewWindow(cnv, domtest.Platform(2), evts.sink)
	defer w.Close()

	over := domtest.Mouse(1, 0, 0)
	over.Shift = true
	cnv.Dispatch(dom.EventPointerOver, over)
	down := domtest.Mouse(1, 10, 20)
	down.ChangedButton = 0
	down.ButtonMask = 1
	cnv.Dispatch(dom.EventPointerDown, down)
	move := domtest.Mouse(1, 11, 21)
	move.MoveX, move.MoveY = 1, 1
	move.ButtonMask = 1
	cnv.Dispatch(dom.EventPointerMove, move)
	up := domtest.Mouse(1, 11, 21)
	up.ChangedButton = 0
	cnv.Dispatch(dom.EventPointerUp, up)
	cnv.Dispatch(dom.EventPointerDown, domtest.Touch(9, 3, 4, 0.5))
	cnv.Dispatch(dom.EventPointerCancel, domtest.Touch(9, 3, 4, 0.25))
	cnv.Dispatch(dom.EventPointerOut, domtest.Mouse(1, 0, 0))

	want := eventLog{
		{Kind: pointer.Enter, Source: pointer.Mouse, PointerID: 1, Modifiers: key.ModShift},
		{Kind: pointer.Press, Source: pointer.Mouse, PointerID: 1, Position: unit.Physical(20.0, 40.0), Button: pointer.MouseLeft},
		{Kind: pointer.Move, Source: pointer.Mouse, PointerID: 1, Position: unit.Physical(22.0, 42.0), Delta: unit.Physical(2.0, 2.0), Buttons: pointer.ButtonPrimary},
		{Kind: pointer.Release, Source: pointer.Mouse, PointerID: 1, Button: pointer.MouseLeft},
		{Kind: pointer.Press, Source: pointer.Touch, PointerID: 9, Position: unit.Physical(6.0, 8.0), Force: 0.5},
		{Kind: pointer.Cancel, Source: pointer.Touch, PointerID: 9, Position: unit.Physical(6.0, 8.0), Force: 0.25},
		{Kind: pointer.Leave, Source: pointer.Mouse, PointerID: 1},
	}
	if !reflect.DeepEqual(evts, want) {
		t.Errorf("got\n%v\nwant\n%v", evts, want)
	}
	if !reflect.DeepEqual(cnv.Captures, []int32{1}) {
		t.Errorf("captures: got %v; want [1]", cnv.Captures)
	}
}

func TestWindowKinds(t *testing.T) {
	cnv := new(domtest.Canvas)
	var evts eventLog
	w := NewWindow(cnv, domtest.Platform(1), evts.sink, Kinds(pointer.Move|pointer.Cancel))
	if got := cnv.Total(); got != 2 {
		t.Errorf("got %d listeners; want 2", got)
	}
	for _, name := range []string{dom.EventPointerMove, dom.EventPointerCancel} {
		if cnv.Listeners(name) != 1 {
			t.Errorf("no listener for %s", name)
		}
	}
	w.Configure(Config{Kinds: pointer.Press})
	if cnv.Total() != 1 || cnv.Listeners(dom.EventPointerDown) != 1 {
		t.Errorf("reconfigure: got %d listeners; want pointerdown only", cnv.Total())
	}
}

func TestWindowPreventTouchScroll(t *testing.T) {
	cnv := new(domtest.Canvas)
	var evts eventLog
	NewWindow(cnv, domtest.Platform(1), evts.sink, PreventTouchScroll(true))
	e := domtest.Touch(2, 0, 0, 0.5)
	cnv.Dispatch(dom.EventPointerMove, e)
	if e.Prevented != 1 {
		t.Errorf("PreventDefault called %d times; want 1", e.Prevented)
	}
	if len(evts) != 1 || evts[0].Kind != pointer.Move || evts[0].Source != pointer.Touch {
		t.Errorf("got %v; want one touch move", evts)
	}
}

func TestWindowClose(t *testing.T) {
	cnv := new(domtest.Canvas)
	var evts eventLog
	w := NewWindow(cnv, domtest.Platform(1), evts.sink)
	pending := cnv.Pending(dom.EventPointerMove)
	w.Close()
	w.Close()
	if cnv.Total() != 0 {
		t.Errorf("%d listeners after Close", cnv.Total())
	}
	for _, f := range pending {
		f(domtest.Mouse(1, 0, 0))
	}
	w.Configure(Config{Kinds: pointer.AllKinds})
	if cnv.Total() != 0 {
		t.Error("Configure attached listeners to closed window")
	}
	if len(evts) > 0 {
		t.Errorf("events after Close: %v", evts)
	}
}

func TestInvalidKinds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for unknown kinds")
		}
	}()
	Kinds(1 << 10)
}
