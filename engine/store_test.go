// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/store_test.go
// Summary: Exercises arena slots, geometry rotation and the relocation
// ownership protocol.

package engine

import (
	"testing"

	"github.com/framegrace/layline/core"
)

func TestStoreGeometryRotation(t *testing.T) {
	s := NewStore()
	id := s.Add(&mute{}, LayoutSpec{})

	if _, ok := s.Geometry(id); ok {
		t.Fatalf("fresh widget must have no geometry")
	}

	s.SetGeometry(id, core.Geometry{W: 10, H: 5})
	if _, ok := s.PreviousGeometry(id); ok {
		t.Fatalf("first layout must leave no previous record")
	}

	s.SetGeometry(id, core.Geometry{W: 20, H: 5})
	prev, ok := s.PreviousGeometry(id)
	if !ok || prev.W != 10 {
		t.Fatalf("previous record should hold the rotated geometry, got %v %v", prev, ok)
	}
	cur, _ := s.Geometry(id)
	if cur.W != 20 {
		t.Fatalf("current record wrong: %v", cur)
	}
}

func TestStoreSlotReuse(t *testing.T) {
	s := NewStore()
	a := s.Add(&mute{}, LayoutSpec{})
	s.SetGeometry(a, core.Geometry{W: 1, H: 1})
	s.Remove(a)

	b := s.Add(&mute{}, LayoutSpec{})
	if b != a {
		t.Fatalf("freed slot should be reused, got %d want %d", b, a)
	}
	// The reused slot must not leak the old occupant's records.
	if _, ok := s.Geometry(b); ok {
		t.Fatalf("reused slot leaked geometry")
	}
	if _, ok := s.PreviousGeometry(b); ok {
		t.Fatalf("reused slot leaked previous geometry")
	}
}

func TestRelocateRoundTrip(t *testing.T) {
	s := NewStore()
	w := &mute{}
	id := s.Add(w, LayoutSpec{})

	taken := s.RelocateOut(id)
	if taken != w {
		t.Fatalf("relocation must return the stored widget")
	}
	if _, ok := s.Widget(id); ok {
		t.Fatalf("a relocated widget must not be readable from the store")
	}

	s.RelocateIn(id, taken)
	if got, ok := s.Widget(id); !ok || got != w {
		t.Fatalf("widget not restored")
	}
}

func TestDoubleRelocateIsFatal(t *testing.T) {
	s := NewStore()
	id := s.Add(&mute{}, LayoutSpec{})
	s.RelocateOut(id)

	defer func() {
		if recover() == nil {
			t.Fatalf("second relocation must panic")
		}
	}()
	s.RelocateOut(id)
}

func TestRelocateInWithoutOutIsFatal(t *testing.T) {
	s := NewStore()
	id := s.Add(&mute{}, LayoutSpec{})

	defer func() {
		if recover() == nil {
			t.Fatalf("restoring a never-relocated slot must panic")
		}
	}()
	s.RelocateIn(id, &mute{})
}

func TestRemoveWhileRelocatedIsFatal(t *testing.T) {
	s := NewStore()
	id := s.Add(&mute{}, LayoutSpec{})
	s.RelocateOut(id)

	defer func() {
		if recover() == nil {
			t.Fatalf("removing a relocated widget must panic")
		}
	}()
	s.Remove(id)
}

func TestDefaultWeight(t *testing.T) {
	s := NewStore()
	id := s.Add(&mute{}, LayoutSpec{})
	spec, ok := s.LayoutSpecFor(id)
	if !ok || spec.Weight != 1 {
		t.Fatalf("zero weight must default to 1, got %v", spec)
	}
}
