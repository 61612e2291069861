// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"gioui.org/webinput/app"
	"gioui.org/webinput/internal/termhost"
	"gioui.org/webinput/internal/trace"
	"gioui.org/webinput/io/event"
	"gioui.org/webinput/io/pointer"
)

var (
	configPath = flag.String("config", "", "read configuration from the TOML `file`.")
	tracePath  = flag.String("trace", "", "record events to the SQLite database `file`.")
	logPath    = flag.String("log", "", "append a line per event to `file`.")
)

// history is the number of events shown.
const history = 200

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "pointerlog: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("standard output is not a terminal")
	}
	conf, err := readConfig(*configPath)
	if err != nil {
		return err
	}
	opts, err := conf.options()
	if err != nil {
		return err
	}
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if *tracePath != "" {
		conf.Trace = *tracePath
	}
	var rec *trace.Recorder
	if conf.Trace != "" {
		rec, err = trace.Open(conf.Trace)
		if err != nil {
			return err
		}
		defer rec.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	width, height := screen.Size()
	host := termhost.New(width, height)
	host.Scale = conf.Scale
	var lines []string
	w := app.NewWindow(host, host, func(e event.Event) {
		pe, ok := e.(pointer.Event)
		if !ok {
			return
		}
		log.Println(pe)
		if rec != nil {
			if err := rec.Record(pe); err != nil {
				log.Println(err)
			}
		}
		lines = append(lines, pe.String())
		if len(lines) > history {
			lines = lines[len(lines)-history:]
		}
	}, opts...)
	defer w.Close()
	w.OnCaptureError(func(id pointer.ID, err error) {
		log.Printf("capture pointer %d: %v", id, err)
	})

	draw(screen, lines)
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		host.HandleEvent(ev)
		// Motion is delivered once the terminal's queue drains, so
		// that bursts of reports arrive as coalesced events.
		if !screen.HasPendingEvent() {
			host.Flush()
			draw(screen, lines)
		}
	}
}

// draw shows the most recent lines that fit the screen.
func draw(screen tcell.Screen, lines []string) {
	screen.Clear()
	_, height := screen.Size()
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for y, line := range lines {
		x := 0
		for _, r := range line {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	screen.Show()
}
