// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/widget.go
// Summary: Widget contract, base implementation and optional capability
// interfaces discovered by type assertion.

package core

// WidgetID is a stable arena index identifying a widget in the engine's
// store for the current frame. It is a lookup key, not a reference; copying
// it carries no ownership.
type WidgetID int32

// NoWidget is the identity returned where no widget applies (e.g. the
// parent of the root).
const NoWidget WidgetID = -1

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	Draw(p *Painter)
}

// Context is the scoped handle to shared framework state handed to layout
// callbacks. The engine implements it. Callbacks may mark widgets dirty
// (feeding the next frame's queue) and read layout state; they run with
// their own widget relocated out of the store, so the two accesses never
// alias.
type Context interface {
	// MarkDirty queues a widget for layout-change detection next frame.
	MarkDirty(id WidgetID)
	// Geometry returns the current frame's resolved geometry, if any.
	Geometry(id WidgetID) (Geometry, bool)
	// PreviousGeometry returns the prior frame's geometry, if any.
	PreviousGeometry(id WidgetID) (Geometry, bool)
	// Parent returns the parent identity, or NoWidget and false for roots.
	Parent(id WidgetID) (WidgetID, bool)
	// Children returns the child identities in attach order.
	Children(id WidgetID) []WidgetID
}

// LayoutAware widgets receive a LayoutEvent after any layout pass that
// changed their geometry or a child's. Widgets that don't implement it are
// simply never notified; absence is a no-op, not an error.
type LayoutAware interface {
	OnLayout(ctx Context, ev LayoutEvent)
}

// ContentSizer widgets report the natural size of their content, which may
// exceed their assigned geometry (e.g. scrollable text).
type ContentSizer interface {
	ContentSize() (w, h int)
}

// BaseWidget provides common fields/behaviour for widgets.
type BaseWidget struct {
	Rect      Rect
	focused   bool
	focusable bool
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }

func (b *BaseWidget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Rect.W, b.Rect.H = w, h
}

func (b *BaseWidget) Size() (int, int)     { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) Focusable() bool      { return b.focusable }
func (b *BaseWidget) SetFocusable(f bool)  { b.focusable = f }
func (b *BaseWidget) IsFocused() bool      { return b.focused }
func (b *BaseWidget) Blur()                { b.focused = false }
func (b *BaseWidget) HitTest(x, y int) bool { return b.Rect.Contains(x, y) }

func (b *BaseWidget) Focus() {
	if b.focusable {
		b.focused = true
	}
}

func (b *BaseWidget) Draw(p *Painter) {}
