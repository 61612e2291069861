// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"fmt"

	"gioui.org/webinput/dom"
	"gioui.org/webinput/io/pointer"
)

// expand returns the samples a move delivery represents, in host order.
// The result is never empty.
func expand(e dom.PointerEvent) []dom.PointerEvent {
	evts, ok := e.CoalescedEvents()
	// Some hosts lack coalescing, and an empty batch is sent for
	// chorded button changes. Both stand for the root event only.
	if !ok || len(evts) == 0 {
		return []dom.PointerEvent{e}
	}
	return evts
}

// checkCoalesced verifies that a coalesced sample has the same source
// as its root, and for mice the same modifiers and buttons.
func checkCoalesced(root, sample dom.PointerEvent) error {
	if r, s := root.PointerID(), sample.PointerID(); r != s {
		return fmt.Errorf("canvas: coalesced pointer id %d, root %d", s, r)
	}
	src := dom.Classify(root)
	if s := dom.Classify(sample); s != src {
		return fmt.Errorf("canvas: coalesced source %v, root %v", s, src)
	}
	if src != pointer.Mouse {
		return nil
	}
	if r, s := dom.Modifiers(root), dom.Modifiers(sample); r != s {
		return fmt.Errorf("canvas: coalesced modifiers %v, root %v", s, r)
	}
	if r, s := dom.Buttons(root), dom.Buttons(sample); r != s {
		return fmt.Errorf("canvas: coalesced buttons %v, root %v", s, r)
	}
	return nil
}
