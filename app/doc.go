// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app reports the pointer input of a host canvas to applications.

A Window attaches to a canvas and converts the host's raw pointer events
into pointer.Event values, one per mouse or touch interaction:

	w := app.NewWindow(cnv, platform, func(e event.Event) {
		if e, ok := e.(pointer.Event); ok {
			// Handle e.
		}
	})
	defer w.Close()

Options select the interactions a Window reports. Events from devices
other than mice and touch screens are not reported.

On WebAssembly, NewBrowserWindow creates a canvas in the current page.
*/
package app
