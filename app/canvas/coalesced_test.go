// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"testing"

	"gioui.org/webinput/dom"
	"gioui.org/webinput/internal/domtest"
)

func TestExpand(t *testing.T) {
	root := domtest.Mouse(1, 0, 0)
	if got := expand(root); len(got) != 1 || got[0] != dom.PointerEvent(root) {
		t.Errorf("unsupported coalescing: got %v; want root only", got)
	}
	root.Batch()
	if got := expand(root); len(got) != 1 || got[0] != dom.PointerEvent(root) {
		t.Errorf("empty batch: got %v; want root only", got)
	}
	a, b := domtest.Mouse(1, 1, 1), domtest.Mouse(1, 2, 2)
	root.Batch(a, b)
	got := expand(root)
	if len(got) != 2 || got[0] != dom.PointerEvent(a) || got[1] != dom.PointerEvent(b) {
		t.Errorf("got %v; want [a b]", got)
	}
}

func TestCheckCoalesced(t *testing.T) {
	root := domtest.Mouse(1, 0, 0)
	root.ButtonMask = 1
	root.Shift = true
	same := domtest.Mouse(1, 5, 5)
	same.ButtonMask = 1
	same.Shift = true
	if err := checkCoalesced(root, same); err != nil {
		t.Errorf("consistent sample rejected: %v", err)
	}

	for name, mutate := range map[string]func(e *domtest.Event){
		"id":        func(e *domtest.Event) { e.ID = 2 },
		"source":    func(e *domtest.Event) { e.Type = dom.TypeTouch },
		"modifiers": func(e *domtest.Event) { e.Ctrl = true },
		"buttons":   func(e *domtest.Event) { e.ButtonMask = 3 },
	} {
		s := *same
		mutate(&s)
		if err := checkCoalesced(root, &s); err == nil {
			t.Errorf("%s mismatch accepted", name)
		}
	}

	troot := domtest.Touch(7, 0, 0, 0.5)
	ts := domtest.Touch(7, 1, 1, 0.9)
	ts.Shift = true
	if err := checkCoalesced(troot, ts); err != nil {
		t.Errorf("touch sample with different modifiers rejected: %v", err)
	}
}

// mismatchedMouseBatch returns a mouse move whose samples disagree with
// it on modifiers and buttons.
func mismatchedMouseBatch() *domtest.Event {
	s1 := domtest.Mouse(1, 1, 1)
	s1.Ctrl = true
	s1.ButtonMask = 2
	s2 := domtest.Mouse(1, 2, 2)
	s2.Alt = true
	root := domtest.Mouse(1, 10, 10).Batch(s1, s2)
	root.Shift = true
	root.ButtonMask = 1
	root.ChangedButton = 0
	return root
}
