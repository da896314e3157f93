// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/solver.go
// Summary: Split-tree layout solver assigning geometry to every attached
// widget once per frame.
// Usage: Run by Engine.RunFrame before painting and layout event dispatch.
// Notes: Containers divide their rect among children by weight along the
// split axis; fixed sizes are reserved first.

package engine

import (
	"github.com/framegrace/layline/core"
)

// SplitType selects the axis along which a container divides space.
type SplitType int

const (
	// Horizontal places children side by side, splitting the width.
	Horizontal SplitType = iota
	// Vertical stacks children, splitting the height.
	Vertical
)

// LayoutSpec carries a widget's layout parameters. Weight is its share of
// the flexible space in the parent's split axis (default 1); FixedW/FixedH
// reserve an exact size on that axis instead, with 0 meaning flexible.
type LayoutSpec struct {
	Split  SplitType
	Weight float64
	FixedW int
	FixedH int
}

// solve lays out the subtree under root into the given rect and writes the
// results to the store. Depth becomes the Z component so descendants paint
// over their ancestors.
func (e *Engine) solve(root core.WidgetID, area core.Rect) {
	e.solveNode(root, area, 0)
}

func (e *Engine) solveNode(id core.WidgetID, area core.Rect, depth int) {
	g := core.Geometry{X: area.X, Y: area.Y, Z: depth, W: area.W, H: area.H}
	e.store.SetGeometry(id, g)

	// Keep the widget's own rect in sync so Draw sees the solved values.
	if w, ok := e.store.Widget(id); ok {
		w.SetPosition(area.X, area.Y)
		w.Resize(area.W, area.H)
	}

	kids := e.tree.Children(id)
	if len(kids) == 0 {
		return
	}

	spec, _ := e.store.LayoutSpecFor(id)
	horizontal := spec.Split == Horizontal

	axisTotal := area.H
	if horizontal {
		axisTotal = area.W
	}

	// Reserve fixed sizes, then share what is left by weight.
	flexible := axisTotal
	var weightSum float64
	fixed := make([]int, len(kids))
	weights := make([]float64, len(kids))
	for i, kid := range kids {
		ks, _ := e.store.LayoutSpecFor(kid)
		f := ks.FixedH
		if horizontal {
			f = ks.FixedW
		}
		if f > 0 {
			if f > flexible {
				f = flexible
			}
			fixed[i] = f
			flexible -= f
			continue
		}
		weights[i] = ks.Weight
		weightSum += ks.Weight
	}

	// Assign spans in attach order; the last flexible child absorbs the
	// rounding remainder so the spans always tile the container exactly.
	spans := make([]int, len(kids))
	remaining := flexible
	lastFlex := -1
	for i := range kids {
		if fixed[i] > 0 {
			spans[i] = fixed[i]
			continue
		}
		span := 0
		if weightSum > 0 {
			span = int(float64(flexible) * weights[i] / weightSum)
		}
		if span > remaining {
			span = remaining
		}
		spans[i] = span
		remaining -= span
		lastFlex = i
	}
	if lastFlex >= 0 && remaining > 0 {
		spans[lastFlex] += remaining
	}

	offset := 0
	for i, kid := range kids {
		var kr core.Rect
		if horizontal {
			kr = core.Rect{X: area.X + offset, Y: area.Y, W: spans[i], H: area.H}
		} else {
			kr = core.Rect{X: area.X, Y: area.Y + offset, W: area.W, H: spans[i]}
		}
		offset += spans[i]
		e.solveNode(kid, kr, depth+1)
	}
}
