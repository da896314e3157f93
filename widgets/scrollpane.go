// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/scrollpane.go
// Summary: Scroll container that tracks its scrollable content extent
// through layout events instead of polling.
// Notes: The canonical LayoutAware widget — when its geometry (or a
// child's) changes, it recomputes the content extent and clamps the
// scroll offset in the same frame.

package widgets

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/layline/core"
)

// ScrollPane is a container widget that scrolls its child when content
// exceeds the viewport. The child is composed directly by the pane and
// drawn shifted by the scroll offset, clipped to the pane's rect.
type ScrollPane struct {
	core.BaseWidget
	Style          tcell.Style
	IndicatorStyle tcell.Style
	child          core.Widget
	contentHeight  int
	offset         int
	showIndicators bool
}

// NewScrollPane creates an empty scroll pane.
func NewScrollPane(style tcell.Style) *ScrollPane {
	sp := &ScrollPane{
		Style:          style,
		IndicatorStyle: style,
		showIndicators: true,
	}
	sp.SetFocusable(true)
	return sp
}

// SetChild sets the child widget to be scrolled.
func (sp *ScrollPane) SetChild(child core.Widget) {
	sp.child = child
	sp.refreshContentExtent()
}

// Child returns the child widget.
func (sp *ScrollPane) Child() core.Widget {
	return sp.child
}

// ContentHeight returns the last computed scrollable extent.
func (sp *ScrollPane) ContentHeight() int {
	return sp.contentHeight
}

// Offset returns the current scroll offset in rows.
func (sp *ScrollPane) Offset() int {
	return sp.offset
}

// ScrollBy moves the viewport by delta rows, clamped to the content.
func (sp *ScrollPane) ScrollBy(delta int) {
	sp.ScrollTo(sp.offset + delta)
}

// ScrollTo moves the viewport to an absolute row offset, clamped.
func (sp *ScrollPane) ScrollTo(offset int) {
	maxOff := sp.maxOffset()
	if offset > maxOff {
		offset = maxOff
	}
	if offset < 0 {
		offset = 0
	}
	sp.offset = offset
}

// OnLayout reacts to the pane's layout notifications. Both cases matter:
// the pane's own geometry changed (viewport height differs) or a child in
// its subtree changed (content extent differs). Either way the extent is
// recomputed from current state and the offset re-clamped, so the pane
// converges in the same frame without multi-frame polling.
func (sp *ScrollPane) OnLayout(ctx core.Context, ev core.LayoutEvent) {
	before := sp.contentHeight
	sp.refreshContentExtent()
	sp.ScrollTo(sp.offset)
	if sp.contentHeight != before {
		log.Printf("ScrollPane: content extent %d -> %d (mask=%s)",
			before, sp.contentHeight, ev.Mask)
	}
}

func (sp *ScrollPane) refreshContentExtent() {
	if sp.child == nil {
		sp.contentHeight = 0
		return
	}
	if cs, ok := sp.child.(core.ContentSizer); ok {
		_, h := cs.ContentSize()
		sp.contentHeight = h
		return
	}
	_, h := sp.child.Size()
	sp.contentHeight = h
}

func (sp *ScrollPane) maxOffset() int {
	m := sp.contentHeight - sp.Rect.H
	if m < 0 {
		return 0
	}
	return m
}

// Draw renders the child shifted by the scroll offset, then the overflow
// indicators.
func (sp *ScrollPane) Draw(p *core.Painter) {
	p.Fill(sp.Rect, ' ', sp.Style)
	if sp.child != nil {
		sp.child.SetPosition(sp.Rect.X, sp.Rect.Y-sp.offset)
		sp.child.Resize(sp.Rect.W, max(sp.contentHeight, sp.Rect.H))
		sp.child.Draw(p)
	}
	if !sp.showIndicators || sp.Rect.W == 0 {
		return
	}
	x := sp.Rect.X + sp.Rect.W - 1
	if sp.offset > 0 {
		p.SetCell(x, sp.Rect.Y, '▲', sp.IndicatorStyle)
	}
	if sp.offset < sp.maxOffset() {
		p.SetCell(x, sp.Rect.Y+sp.Rect.H-1, '▼', sp.IndicatorStyle)
	}
}
