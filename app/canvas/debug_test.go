// SPDX-License-Identifier: Unlicense OR MIT

//go:build pointerdebug

package canvas

import (
	"testing"

	"gioui.org/webinput/dom"
	"gioui.org/webinput/internal/domtest"
)

func TestMismatchedBatchPanics(t *testing.T) {
	for name, root := range map[string]*domtest.Event{
		"attributes": mismatchedMouseBatch(),
		"pointer id": domtest.Mouse(1, 0, 0).Batch(domtest.Mouse(2, 1, 1)),
		"source":     domtest.Touch(1, 0, 0, 0.5).Batch(domtest.Mouse(1, 1, 1)),
	} {
		t.Run(name, func(t *testing.T) {
			cnv, _, _, r := newTestHandler(1)
			defer func() {
				if recover() == nil {
					t.Error("inconsistent batch accepted")
				}
				if len(r.calls) > 0 {
					t.Errorf("got calls %+v; want none", r.calls)
				}
			}()
			cnv.Dispatch(dom.EventPointerMove, root)
		})
	}
}
