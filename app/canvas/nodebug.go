// SPDX-License-Identifier: Unlicense OR MIT

//go:build !pointerdebug

package canvas

const debugChecks = false
