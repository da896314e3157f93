// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/solver_test.go
// Summary: Exercises the split-tree solver: weights, fixed sizes, rounding
// and depth assignment.

package engine

import (
	"testing"

	"github.com/framegrace/layline/core"
)

func solveFixture() (*Engine, core.WidgetID) {
	e := NewEngine(nil)
	e.Resize(100, 40)
	root := e.SetRoot(&mute{}, LayoutSpec{Split: Horizontal})
	return e, root
}

func TestSolverSplitsByWeight(t *testing.T) {
	e, root := solveFixture()
	c1, _ := e.Attach(&mute{}, root, LayoutSpec{Weight: 1})
	c2, _ := e.Attach(&mute{}, root, LayoutSpec{Weight: 3})

	e.RunFrame()

	g1, _ := e.Geometry(c1)
	g2, _ := e.Geometry(c2)
	if g1.W != 25 || g2.W != 75 {
		t.Fatalf("weights 1:3 over 100 cols should give 25/75, got %d/%d", g1.W, g2.W)
	}
	if g2.X != 25 {
		t.Fatalf("second child must start where the first ends, got x=%d", g2.X)
	}
	if g1.H != 40 || g2.H != 40 {
		t.Fatalf("horizontal split children keep full height")
	}
}

func TestSolverReservesFixedSizes(t *testing.T) {
	e, root := solveFixture()
	sidebar, _ := e.Attach(&mute{}, root, LayoutSpec{FixedW: 20})
	body, _ := e.Attach(&mute{}, root, LayoutSpec{Weight: 1})

	e.RunFrame()

	gs, _ := e.Geometry(sidebar)
	gb, _ := e.Geometry(body)
	if gs.W != 20 {
		t.Fatalf("fixed width not honored: %v", gs)
	}
	if gb.X != 20 || gb.W != 80 {
		t.Fatalf("flexible child should take the remainder, got %v", gb)
	}
}

func TestSolverRoundingTilesExactly(t *testing.T) {
	e, root := solveFixture()
	var kids []core.WidgetID
	for i := 0; i < 3; i++ {
		id, _ := e.Attach(&mute{}, root, LayoutSpec{Weight: 1})
		kids = append(kids, id)
	}

	e.RunFrame()

	total := 0
	for _, id := range kids {
		g, _ := e.Geometry(id)
		total += g.W
	}
	// 100/3 does not divide evenly; the last flexible child absorbs the
	// remainder so the children tile the container exactly.
	if total != 100 {
		t.Fatalf("children cover %d of 100 columns", total)
	}
	last, _ := e.Geometry(kids[2])
	if last.X+last.W != 100 {
		t.Fatalf("last child must end at the container edge, got %v", last)
	}
}

func TestSolverAssignsDepth(t *testing.T) {
	e, root := solveFixture()
	mid, _ := e.Attach(&mute{}, root, LayoutSpec{Split: Vertical, Weight: 1})
	leaf, _ := e.Attach(&mute{}, mid, LayoutSpec{Weight: 1})

	e.RunFrame()

	gr, _ := e.Geometry(root)
	gm, _ := e.Geometry(mid)
	gl, _ := e.Geometry(leaf)
	if gr.Z != 0 || gm.Z != 1 || gl.Z != 2 {
		t.Fatalf("depth must grow with nesting: %d %d %d", gr.Z, gm.Z, gl.Z)
	}
}

func TestSolverSyncsWidgetRects(t *testing.T) {
	e, root := solveFixture()
	w := &mute{}
	id, _ := e.Attach(w, root, LayoutSpec{Weight: 1})

	e.RunFrame()

	g, _ := e.Geometry(id)
	x, y := w.Position()
	ww, wh := w.Size()
	if x != g.X || y != g.Y || ww != g.W || wh != g.H {
		t.Fatalf("widget rect out of sync with solved geometry: %v vs %d,%d %dx%d",
			g, x, y, ww, wh)
	}
}
