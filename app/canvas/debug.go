// SPDX-License-Identifier: Unlicense OR MIT

//go:build pointerdebug

package canvas

// debugChecks enables consistency checks of coalesced events.
const debugChecks = true
