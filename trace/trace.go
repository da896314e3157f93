// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: trace/trace.go
// Summary: SQLite-backed recorder of dispatched layout events, for
// debugging layout churn across frames.
// Usage: Subscribe a Recorder to the engine's event bus; query offline or
// from tooling.

package trace

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/framegrace/layline/core"
	"github.com/framegrace/layline/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS layout_events (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	frame  INTEGER NOT NULL,
	widget INTEGER NOT NULL,
	x      INTEGER NOT NULL,
	y      INTEGER NOT NULL,
	z      INTEGER NOT NULL,
	w      INTEGER NOT NULL,
	h      INTEGER NOT NULL,
	mask   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_layout_events_widget ON layout_events(widget);
CREATE INDEX IF NOT EXISTS idx_layout_events_frame ON layout_events(frame);
`

// Record is one persisted layout notification.
type Record struct {
	Frame    uint64
	Widget   core.WidgetID
	Geometry core.Geometry
	Mask     core.ChangeMask
}

// Recorder persists every layout event broadcast on the engine bus.
type Recorder struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates (or reopens) a trace database at path.
func Open(path string) (*Recorder, error) {
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to trace database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create trace schema: %w", err)
	}
	return &Recorder{db: db}, nil
}

// OnEvent implements engine.Listener. Only layout dispatch events are
// persisted; other bus traffic is ignored.
func (r *Recorder) OnEvent(ev engine.Event) {
	if ev.Type != engine.EventLayoutDispatched {
		return
	}
	p, ok := ev.Payload.(engine.LayoutPayload)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	g := p.Event.Geometry
	_, err := r.db.Exec(
		`INSERT INTO layout_events (frame, widget, x, y, z, w, h, mask)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Frame, int64(p.Event.Target), g.X, g.Y, g.Z, g.W, g.H, uint8(p.Event.Mask),
	)
	if err != nil {
		// Tracing is diagnostics; a failed insert must not take the
		// render loop down.
		log.Printf("Trace: Insert failed: %v", err)
	}
}

// EventsForWidget returns all recorded events for one widget, oldest
// first.
func (r *Recorder) EventsForWidget(id core.WidgetID) ([]Record, error) {
	return r.query(
		`SELECT frame, widget, x, y, z, w, h, mask FROM layout_events
		 WHERE widget = ? ORDER BY id`, int64(id))
}

// EventsForFrame returns all events dispatched in one frame, in dispatch
// order.
func (r *Recorder) EventsForFrame(frame uint64) ([]Record, error) {
	return r.query(
		`SELECT frame, widget, x, y, z, w, h, mask FROM layout_events
		 WHERE frame = ? ORDER BY id`, frame)
}

// Count returns the total number of recorded events.
func (r *Recorder) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM layout_events`).Scan(&n)
	return n, err
}

// Close flushes and closes the database.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Close()
}

func (r *Recorder) query(q string, arg interface{}) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(q, arg)
	if err != nil {
		return nil, fmt.Errorf("trace query failed: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var widget int64
		var mask uint8
		if err := rows.Scan(&rec.Frame, &widget,
			&rec.Geometry.X, &rec.Geometry.Y, &rec.Geometry.Z,
			&rec.Geometry.W, &rec.Geometry.H, &mask); err != nil {
			return nil, fmt.Errorf("trace scan failed: %w", err)
		}
		rec.Widget = core.WidgetID(widget)
		rec.Mask = core.ChangeMask(mask)
		out = append(out, rec)
	}
	return out, rows.Err()
}
