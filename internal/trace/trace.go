// SPDX-License-Identifier: Unlicense OR MIT

// Package trace records normalized pointer events to an SQLite
// database, for inspecting input sessions.
package trace

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"gioui.org/webinput/io/key"
	"gioui.org/webinput/io/pointer"
	"gioui.org/webinput/unit"
)

// Recorder appends events to a trace database.
type Recorder struct {
	db     *sql.DB
	insert *sql.Stmt
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	kind       INTEGER NOT NULL,
	source     INTEGER NOT NULL,
	pointer_id INTEGER NOT NULL,
	x          REAL NOT NULL,
	y          REAL NOT NULL,
	dx         REAL NOT NULL,
	dy         REAL NOT NULL,
	buttons    INTEGER NOT NULL,
	button     INTEGER NOT NULL,
	modifiers  INTEGER NOT NULL,
	force      REAL NOT NULL
)`

// Open opens or creates the trace database at path.
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	// A single connection keeps in-memory databases shared.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("trace: create schema: %w", err)
	}
	insert, err := db.Prepare(`INSERT INTO events
		(kind, source, pointer_id, x, y, dx, dy, buttons, button, modifiers, force)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("trace: %w", err)
	}
	return &Recorder{db: db, insert: insert}, nil
}

// Record appends e.
func (r *Recorder) Record(e pointer.Event) error {
	_, err := r.insert.Exec(
		int64(e.Kind), int64(e.Source), int64(e.PointerID),
		e.Position.X, e.Position.Y, e.Delta.X, e.Delta.Y,
		int64(e.Buttons), int64(e.Button), int64(e.Modifiers), float64(e.Force),
	)
	if err != nil {
		return fmt.Errorf("trace: record: %w", err)
	}
	return nil
}

// Events returns the recorded events in recording order.
func (r *Recorder) Events() ([]pointer.Event, error) {
	rows, err := r.db.Query(`SELECT kind, source, pointer_id, x, y, dx, dy, buttons, button, modifiers, force
		FROM events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	defer rows.Close()
	var evts []pointer.Event
	for rows.Next() {
		var (
			kind, source, buttons, button, mods int64
			id                                  int32
			x, y, dx, dy, force                 float64
		)
		if err := rows.Scan(&kind, &source, &id, &x, &y, &dx, &dy, &buttons, &button, &mods, &force); err != nil {
			return nil, fmt.Errorf("trace: %w", err)
		}
		evts = append(evts, pointer.Event{
			Kind:      pointer.Kind(kind),
			Source:    pointer.Source(source),
			PointerID: pointer.ID(id),
			Position:  unit.Physical(x, y),
			Delta:     unit.Physical(dx, dy),
			Buttons:   pointer.Buttons(buttons),
			Button:    pointer.MouseButton(button),
			Modifiers: key.Modifiers(mods),
			Force:     pointer.Force(force),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	return evts, nil
}

func (r *Recorder) Close() error {
	r.insert.Close()
	return r.db.Close()
}
