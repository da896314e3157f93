// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/engine.go
// Summary: Render cycle owner: widget attachment, dirty marking, solve,
// paint and layout event dispatch.
// Usage: Created once per screen; the demo loop calls Resize and RunFrame.

package engine

import (
	"fmt"
	"log"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/layline/core"
	"github.com/framegrace/layline/driver"
)

// Engine owns the widget store, the hierarchy index, the dirty-render
// queue and the event bus, and drives the per-frame cycle:
// solve → paint → dispatch layout events. It is also the core.Context
// handed to layout callbacks.
type Engine struct {
	store  *Store
	tree   *Tree
	queue  *DirtyQueue
	bus    *EventDispatcher
	screen driver.ScreenDriver // nil when running headless

	root core.WidgetID
	w, h int

	frame          uint64
	inDispatch     bool
	dispatchedLast int

	bgStyle tcell.Style
	buf     [][]core.Cell
}

// NewEngine creates an engine. The screen driver may be nil for headless
// use (tests, layout-only consumers); painting is skipped in that case.
func NewEngine(screen driver.ScreenDriver) *Engine {
	e := &Engine{
		store:   NewStore(),
		tree:    NewTree(),
		queue:   NewDirtyQueue(),
		bus:     NewEventDispatcher(),
		screen:  screen,
		root:    core.NoWidget,
		bgStyle: tcell.StyleDefault,
	}
	if screen != nil {
		e.w, e.h = screen.Size()
	}
	return e
}

// Events returns the framework event bus.
func (e *Engine) Events() *EventDispatcher {
	return e.bus
}

// SetBackgroundStyle sets the style used to clear the frame.
func (e *Engine) SetBackgroundStyle(style tcell.Style) {
	e.bgStyle = style
}

// SetRoot attaches w as the root widget, replacing any previous root.
func (e *Engine) SetRoot(w core.Widget, spec LayoutSpec) core.WidgetID {
	if e.root != core.NoWidget {
		if err := e.Detach(e.root); err != nil {
			log.Printf("Engine: Failed to detach old root: %v", err)
		}
	}
	id := e.store.Add(w, spec)
	e.tree.Attach(id, core.NoWidget)
	e.root = id
	e.MarkSubtreeDirty(id)
	e.bus.Broadcast(Event{Type: EventTreeChanged})
	return id
}

// Root returns the root widget identity, or core.NoWidget.
func (e *Engine) Root() core.WidgetID {
	return e.root
}

// Attach adds w under parent. The parent's whole subtree is marked dirty:
// a new sibling changes how the container's space is shared, so every
// widget under it is a layout-change candidate this frame.
func (e *Engine) Attach(w core.Widget, parent core.WidgetID, spec LayoutSpec) (core.WidgetID, error) {
	if _, ok := e.store.Widget(parent); !ok {
		return core.NoWidget, fmt.Errorf("attach: parent %d not in store", parent)
	}
	id := e.store.Add(w, spec)
	e.tree.Attach(id, parent)
	e.MarkSubtreeDirty(parent)
	e.bus.Broadcast(Event{Type: EventTreeChanged})
	return id, nil
}

// Detach removes a widget and its subtree. The former parent's remaining
// children reflow, so its subtree is marked dirty.
func (e *Engine) Detach(id core.WidgetID) error {
	if _, ok := e.store.Widget(id); !ok {
		return fmt.Errorf("detach: widget %d not in store", id)
	}
	parent, hasParent := e.tree.Parent(id)

	removed := e.tree.Detach(id)
	for _, rid := range removed {
		e.store.Remove(rid)
	}
	if id == e.root {
		e.root = core.NoWidget
	}
	if hasParent {
		e.MarkSubtreeDirty(parent)
	}
	e.bus.Broadcast(Event{Type: EventTreeChanged})
	return nil
}

// SetLayoutSpec replaces a widget's layout parameters and reflows the
// parent's subtree (weight changes move siblings too).
func (e *Engine) SetLayoutSpec(id core.WidgetID, spec LayoutSpec) {
	e.store.SetLayoutSpec(id, spec)
	if parent, ok := e.tree.Parent(id); ok {
		e.MarkSubtreeDirty(parent)
		return
	}
	e.MarkSubtreeDirty(id)
}

// MarkDirty queues one widget for layout-change detection.
func (e *Engine) MarkDirty(id core.WidgetID) {
	e.queue.Mark(id)
}

// MarkSubtreeDirty queues a widget and all its descendants, children
// before parents so notification order follows the dispatch contract.
func (e *Engine) MarkSubtreeDirty(id core.WidgetID) {
	if id == core.NoWidget {
		return
	}
	e.tree.WalkPost(id, func(n core.WidgetID) {
		e.queue.Mark(n)
	})
}

// Resize records a new screen size and reflows everything.
func (e *Engine) Resize(w, h int) {
	if w == e.w && h == e.h {
		return
	}
	log.Printf("Engine: Resize to %dx%d", w, h)
	e.w, e.h = w, h
	e.buf = nil
	e.MarkSubtreeDirty(e.root)
}

// Frame returns the number of completed frames.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// RunFrame runs one full render cycle: solve layout, paint, then dispatch
// layout events exactly once. Callbacks marking widgets dirty feed the
// next frame, not this one.
func (e *Engine) RunFrame() {
	if e.root != core.NoWidget && e.w > 0 && e.h > 0 {
		e.solve(e.root, core.Rect{X: 0, Y: 0, W: e.w, H: e.h})
	}
	if e.screen != nil {
		e.paint()
	}
	e.DispatchLayoutEvents()
	e.frame++
	e.bus.Broadcast(Event{
		Type:    EventFrameComplete,
		Payload: FramePayload{Frame: e.frame, Dispatched: e.dispatchedLast},
	})
	e.dispatchedLast = 0
}

// paint composes all widgets into the cell buffer in depth order and blits
// it to the screen.
func (e *Engine) paint() {
	e.ensureBuffer()

	full := core.Rect{X: 0, Y: 0, W: e.w, H: e.h}
	core.NewPainter(e.buf, full).Fill(full, ' ', e.bgStyle)

	type paintEntry struct {
		id core.WidgetID
		g  core.Geometry
	}
	var entries []paintEntry
	if e.root != core.NoWidget {
		e.tree.Walk(e.root, func(id core.WidgetID) {
			if g, ok := e.store.Geometry(id); ok {
				entries = append(entries, paintEntry{id: id, g: g})
			}
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].g.Z < entries[j].g.Z
	})

	for _, en := range entries {
		w, ok := e.store.Widget(en.id)
		if !ok {
			continue
		}
		clip := en.g.Rect().Intersect(full)
		if clip.Empty() {
			continue
		}
		w.Draw(core.NewPainter(e.buf, clip))
	}

	for y := 0; y < e.h && y < len(e.buf); y++ {
		for x := 0; x < e.w && x < len(e.buf[y]); x++ {
			c := e.buf[y][x]
			e.screen.SetContent(x, y, c.Ch, nil, c.Style)
		}
	}
	e.screen.Show()
}

func (e *Engine) ensureBuffer() {
	if len(e.buf) == e.h && (e.h == 0 || len(e.buf[0]) == e.w) {
		return
	}
	e.buf = make([][]core.Cell, e.h)
	for y := 0; y < e.h; y++ {
		row := make([]core.Cell, e.w)
		for x := range row {
			row[x] = core.Cell{Ch: ' ', Style: e.bgStyle}
		}
		e.buf[y] = row
	}
}

// --- core.Context implementation (the callback-facing handle) ---

// Geometry returns the current frame's resolved geometry for id.
func (e *Engine) Geometry(id core.WidgetID) (core.Geometry, bool) {
	return e.store.Geometry(id)
}

// PreviousGeometry returns the prior frame's geometry for id.
func (e *Engine) PreviousGeometry(id core.WidgetID) (core.Geometry, bool) {
	return e.store.PreviousGeometry(id)
}

// Parent returns id's parent in the widget tree.
func (e *Engine) Parent(id core.WidgetID) (core.WidgetID, bool) {
	return e.tree.Parent(id)
}

// Children returns id's children in attach order.
func (e *Engine) Children(id core.WidgetID) []core.WidgetID {
	return e.tree.Children(id)
}

var _ core.Context = (*Engine)(nil)
