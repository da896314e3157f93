// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry_test.go
// Summary: Exercises the geometry differ and Rect conversions.
// Usage: Executed during `go test` to guard against regressions.

package core

import "testing"

func TestDiffDetectsEachField(t *testing.T) {
	base := Geometry{X: 1, Y: 2, Z: 3, W: 4, H: 5}

	cases := []struct {
		name string
		cur  Geometry
		want ChangeMask
	}{
		{"identical", base, MaskNone},
		{"x", Geometry{X: 9, Y: 2, Z: 3, W: 4, H: 5}, MaskX},
		{"y", Geometry{X: 1, Y: 9, Z: 3, W: 4, H: 5}, MaskY},
		{"z", Geometry{X: 1, Y: 2, Z: 9, W: 4, H: 5}, MaskZ},
		{"width", Geometry{X: 1, Y: 2, Z: 3, W: 9, H: 5}, MaskWidth},
		{"height", Geometry{X: 1, Y: 2, Z: 3, W: 4, H: 9}, MaskHeight},
		{"move", Geometry{X: 9, Y: 9, Z: 3, W: 4, H: 5}, MaskPosition},
		{"everything", Geometry{X: 9, Y: 8, Z: 7, W: 6, H: 1}, MaskAll},
	}

	for _, tc := range cases {
		if got := Diff(base, tc.cur); got != tc.want {
			t.Fatalf("%s: Diff = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectGeometryRoundTrip(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 20, H: 10}
	g := r.Geometry()
	if g.Z != 0 {
		t.Fatalf("Rect has no depth; expected Z=0, got %d", g.Z)
	}
	if g.Rect() != r {
		t.Fatalf("round trip lost spatial fields: %v != %v", g.Rect(), r)
	}

	// Depth is the only field allowed to be lossy in the other direction.
	g2 := Geometry{X: 1, Y: 2, Z: 7, W: 3, H: 4}
	if g2.Rect().Geometry().Rect() != g2.Rect() {
		t.Fatalf("spatial fields must survive conversion both ways")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if got != want {
		t.Fatalf("Intersect = %v, want %v", got, want)
	}

	if !a.Intersect(Rect{X: 20, Y: 20, W: 5, H: 5}).Empty() {
		t.Fatalf("disjoint rects should intersect to an empty rect")
	}
}
