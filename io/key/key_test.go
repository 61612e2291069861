// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"testing"
)

func TestModifiersString(t *testing.T) {
	for _, tc := range []struct {
		mods Modifiers
		res  string
	}{
		{0, ""},
		{ModShift, "Shift"},
		{ModCtrl | ModShift, "Ctrl-Shift"},
		{ModAlt | ModSuper | ModCtrl | ModShift, "Ctrl-Shift-Alt-Super"},
	} {
		if got := tc.mods.String(); got != tc.res {
			t.Errorf("got %q; want %q", got, tc.res)
		}
	}
}

func TestModifiersContain(t *testing.T) {
	m := ModCtrl | ModAlt
	if !m.Contain(ModCtrl) {
		t.Error("Ctrl-Alt doesn't contain Ctrl")
	}
	if m.Contain(ModCtrl | ModShift) {
		t.Error("Ctrl-Alt contains Ctrl-Shift")
	}
}
