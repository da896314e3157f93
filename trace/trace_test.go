// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: trace/trace_test.go
// Summary: Exercises layout event persistence and querying.

package trace

import (
	"path/filepath"
	"testing"

	"github.com/framegrace/layline/core"
	"github.com/framegrace/layline/engine"
)

func openTemp(t *testing.T) *Recorder {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "trace.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func layoutEvent(frame uint64, id core.WidgetID, g core.Geometry, m core.ChangeMask) engine.Event {
	return engine.Event{
		Type: engine.EventLayoutDispatched,
		Payload: engine.LayoutPayload{
			Frame: frame,
			Event: core.LayoutEvent{Target: id, Geometry: g, Mask: m},
		},
	}
}

func TestRecorderPersistsLayoutEvents(t *testing.T) {
	r := openTemp(t)

	r.OnEvent(layoutEvent(1, 4, core.Geometry{X: 1, Y: 2, Z: 3, W: 4, H: 5}, core.MaskWidth))
	r.OnEvent(layoutEvent(1, 7, core.Geometry{W: 9, H: 9}, core.MaskAll))
	r.OnEvent(layoutEvent(2, 4, core.Geometry{X: 1, Y: 2, Z: 3, W: 8, H: 5}, core.MaskWidth))

	n, err := r.Count()
	if err != nil || n != 3 {
		t.Fatalf("Count = %d, %v; want 3", n, err)
	}

	recs, err := r.EventsForWidget(4)
	if err != nil {
		t.Fatalf("EventsForWidget: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("widget 4 has %d records, want 2", len(recs))
	}
	if recs[0].Frame != 1 || recs[1].Frame != 2 {
		t.Fatalf("records out of order: %v", recs)
	}
	if recs[1].Geometry.W != 8 || recs[1].Mask != core.MaskWidth {
		t.Fatalf("record fields lost: %+v", recs[1])
	}

	frame1, err := r.EventsForFrame(1)
	if err != nil || len(frame1) != 2 {
		t.Fatalf("frame 1 has %d records, want 2 (%v)", len(frame1), err)
	}
}

func TestRecorderIgnoresOtherBusTraffic(t *testing.T) {
	r := openTemp(t)

	r.OnEvent(engine.Event{Type: engine.EventTreeChanged})
	r.OnEvent(engine.Event{Type: engine.EventFrameComplete,
		Payload: engine.FramePayload{Frame: 3}})

	if n, _ := r.Count(); n != 0 {
		t.Fatalf("non-layout events must not be recorded, got %d", n)
	}
}

func TestRecorderOnEngineBus(t *testing.T) {
	r := openTemp(t)

	e := engine.NewEngine(nil)
	e.Events().Subscribe(r)
	e.Resize(40, 12)
	e.SetRoot(&noopWidget{}, engine.LayoutSpec{})

	e.RunFrame() // first layout dispatches one event
	e.RunFrame() // steady frame dispatches none

	if n, _ := r.Count(); n != 1 {
		t.Fatalf("want 1 recorded event, got %d", n)
	}
}

type noopWidget struct {
	core.BaseWidget
}
