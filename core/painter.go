// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/painter.go
// Summary: Clipped cell painter widgets draw through during composition.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell of the composed frame.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Painter draws into a shared cell buffer, clipped to a rectangle. Widgets
// draw in absolute coordinates; anything outside the clip is dropped.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter wraps a buffer with a clip region. The clip is further bounded
// by the buffer's own dimensions at draw time.
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// Size returns the dimensions of the underlying buffer.
func (p *Painter) Size() (int, int) {
	if len(p.buf) == 0 {
		return 0, 0
	}
	return len(p.buf[0]), len(p.buf)
}

// SetCell writes a single cell if it falls inside the clip region.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Fill floods a rectangle with one rune and style.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	area := r.Intersect(p.clip)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText draws a string starting at (x, y), advancing by display width so
// wide runes occupy two columns.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) {
	cx := x
	for _, ch := range text {
		p.SetCell(cx, y, ch, style)
		cx += runewidth.RuneWidth(ch)
	}
}
