// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/layout_events.go
// Summary: Layout event dispatch pass: drains the dirty-render queue,
// diffs geometry, resolves notification parents and delivers callbacks.
// Usage: Run exactly once per frame by Engine.RunFrame, after the solver
// and before the frame is considered complete.
// Notes: Ordering contract — dirty widgets in drain order first, then
// their parents in first-recorded order; at most one event per widget.

package engine

import (
	"fmt"
	"log"

	"github.com/framegrace/layline/core"
)

// DispatchLayoutEvents runs one dispatch pass. The queue lock is held only
// for the drain itself; callbacks run lock-free, so they may mark widgets
// dirty again (for the next frame) or mutate application state without
// deadlocking.
//
// A widget with no previous geometry is on its first layout and reports
// every field changed. A widget notified only because a descendant changed
// receives the union of its notified children's masks.
func (e *Engine) DispatchLayoutEvents() {
	if e.inDispatch {
		panic("layline: re-entrant layout dispatch; a callback must not run the render cycle")
	}
	e.inDispatch = true
	defer func() { e.inDispatch = false }()

	drained := e.queue.Drain()
	if len(drained) == 0 {
		return
	}

	dispatched := make(map[core.WidgetID]struct{}, len(drained))
	parents := newOrderedIDSet()
	parentMask := make(map[core.WidgetID]core.ChangeMask)

	for _, id := range drained {
		cur, ok := e.store.Geometry(id)
		if !ok {
			// Removed (or never laid out) this frame. Expected, not an error.
			continue
		}

		mask := core.MaskAll // first layout: everything counts as changed
		if prev, ok := e.store.PreviousGeometry(id); ok {
			mask = core.Diff(prev, cur)
		}
		if mask == core.MaskNone {
			continue
		}

		// Parents with layout get pinged after all changed widgets, once,
		// no matter how many of their children moved.
		if pid, ok := e.tree.Parent(id); ok {
			if _, hasGeom := e.store.Geometry(pid); hasGeom {
				parents.add(pid)
				parentMask[pid] |= mask
			}
		}

		e.deliver(core.LayoutEvent{Target: id, Geometry: cur, Mask: mask})
		dispatched[id] = struct{}{}
	}

	for _, pid := range parents.items() {
		if _, done := dispatched[pid]; done {
			// Already notified as a changed widget; one event per frame.
			continue
		}
		g, ok := e.store.Geometry(pid)
		if !ok {
			// A callback earlier in this pass detached it.
			continue
		}
		e.deliver(core.LayoutEvent{Target: pid, Geometry: g, Mask: parentMask[pid]})
		dispatched[pid] = struct{}{}
	}

	e.dispatchedLast = len(dispatched)
}

// deliver invokes the target's layout callback, if it has one. The widget
// is relocated out of the store for the duration of the call so the
// callback holds its widget and the engine context without aliasing; a
// panicking callback still restores the widget before unwinding.
func (e *Engine) deliver(ev core.LayoutEvent) {
	w, ok := e.store.Widget(ev.Target)
	if !ok {
		// The slot exists (geometry was just read) but the widget is out:
		// only re-entrant dispatch gets here.
		panic(fmt.Sprintf("layline: widget %d unavailable for dispatch", ev.Target))
	}

	if la, ok := w.(core.LayoutAware); ok {
		taken := e.store.RelocateOut(ev.Target)
		func() {
			defer e.store.RelocateIn(ev.Target, taken)
			la.OnLayout(e, ev)
		}()
	}

	log.Printf("LayoutEvents: frame %d widget %d %s mask=%s",
		e.frame, ev.Target, ev.Geometry, ev.Mask)
	e.bus.Broadcast(Event{
		Type:    EventLayoutDispatched,
		Payload: LayoutPayload{Frame: e.frame, Event: ev},
	})
}
