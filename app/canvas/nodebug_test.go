// SPDX-License-Identifier: Unlicense OR MIT

//go:build !pointerdebug

package canvas

import (
	"testing"

	"gioui.org/webinput/dom"
	"gioui.org/webinput/io/key"
	"gioui.org/webinput/io/pointer"
	"gioui.org/webinput/unit"
)

func TestMismatchedBatchUsesSampleAttributes(t *testing.T) {
	cnv, _, _, r := newTestHandler(1)
	cnv.Dispatch(dom.EventPointerMove, mismatchedMouseBatch())
	want := []call{
		{routine: "mouse_move", id: 1, pos: unit.Physical(1.0, 1.0), mods: key.ModCtrl, buttons: pointer.ButtonSecondary, button: pointer.MouseLeft},
		{routine: "mouse_move", id: 1, pos: unit.Physical(2.0, 2.0), mods: key.ModAlt, button: pointer.MouseLeft},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("got %d calls; want %d", len(r.calls), len(want))
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d: got %+v; want %+v", i, r.calls[i], want[i])
		}
	}
}
