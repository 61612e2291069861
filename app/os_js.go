// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"gioui.org/webinput/internal/jsdom"
	"gioui.org/webinput/io/event"
)

// NewBrowserWindow creates a canvas filling the element with id
// containerID, or the document body if no such element exists, and
// reports its pointer input to sink.
func NewBrowserWindow(containerID string, sink event.Sink, options ...Option) *Window {
	cnv := jsdom.CreateCanvas(containerID)
	return NewWindow(cnv, jsdom.DevicePixelRatio{}, sink, options...)
}
