// SPDX-License-Identifier: Unlicense OR MIT

/*
Package key implements the keyboard modifier state reported with
pointer events.

The state is a snapshot taken by the host when it generated the event;
it is not tracked across events.
*/
package key

import (
	"strings"
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo or the command
	// key on Apple keyboards.
	ModSuper
)

// Name is the identifier for a modifier key.
type Name string

const (
	NameCtrl  Name = "Ctrl"
	NameShift Name = "Shift"
	NameAlt   Name = "Alt"
	NameSuper Name = "Super"
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}
