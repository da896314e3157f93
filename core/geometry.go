// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry.go
// Summary: Resolved widget geometry and the per-field change differ.
// Usage: The layout solver writes Geometry records; the layout event
// dispatcher diffs them to decide who gets notified.

package core

import "fmt"

// Geometry is a widget's resolved layout rectangle for one frame, plus its
// paint-order depth. Coordinates are terminal cells, so values are exact
// solver outputs and field comparison uses plain equality.
type Geometry struct {
	X, Y int
	Z    int // paint order: higher draws on top
	W, H int
}

// Rect defines a plain rectangle without depth. Widgets and the painter
// work in Rects; the layout store works in Geometry.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of two rectangles, or a zero-sized Rect
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Rect drops the depth component of a Geometry. The four spatial fields
// survive the round trip unchanged.
func (g Geometry) Rect() Rect {
	return Rect{X: g.X, Y: g.Y, W: g.W, H: g.H}
}

// Geometry lifts a Rect into a Geometry. Depth is not representable in a
// Rect, so Z defaults to zero.
func (r Rect) Geometry() Geometry {
	return Geometry{X: r.X, Y: r.Y, Z: 0, W: r.W, H: r.H}
}

func (g Geometry) String() string {
	return fmt.Sprintf("(%d,%d z%d %dx%d)", g.X, g.Y, g.Z, g.W, g.H)
}

// Diff compares two Geometry records field by field and returns the mask
// of fields that differ. A zero mask means the records are identical.
func Diff(prev, cur Geometry) ChangeMask {
	var m ChangeMask
	if prev.X != cur.X {
		m |= MaskX
	}
	if prev.Y != cur.Y {
		m |= MaskY
	}
	if prev.Z != cur.Z {
		m |= MaskZ
	}
	if prev.W != cur.W {
		m |= MaskWidth
	}
	if prev.H != cur.H {
		m |= MaskHeight
	}
	return m
}
