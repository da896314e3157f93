// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/store.go
// Summary: Arena-backed widget store holding each widget plus its current
// and previous-frame geometry.
// Usage: Owned by the Engine; the solver writes geometry records and the
// layout event dispatcher relocates widgets out for callback invocation.

package engine

import (
	"fmt"
	"sync"

	"github.com/framegrace/layline/core"
)

// slot is one arena entry. A widget is "relocated" while its layout
// callback runs: the slot keeps the geometry records but the widget value
// itself is out on loan, so nothing else can alias it.
type slot struct {
	widget    core.Widget
	spec      LayoutSpec
	inUse     bool
	relocated bool
	hasCur    bool
	hasPrev   bool
	cur       core.Geometry
	prev      core.Geometry
}

// Store is the authoritative widget arena. Slots are addressed by
// core.WidgetID and reused through a free list, so identities stay small
// and cheap to copy. All access is mutex-guarded; the lock is never held
// across a callback invocation.
type Store struct {
	mu    sync.Mutex
	slots []slot
	free  []core.WidgetID
}

// NewStore creates an empty widget store.
func NewStore() *Store {
	return &Store{}
}

// Add places a widget into the arena and returns its identity.
func (s *Store) Add(w core.Widget, spec LayoutSpec) core.WidgetID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if spec.Weight <= 0 {
		spec.Weight = 1
	}

	var id core.WidgetID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		id = core.WidgetID(len(s.slots) - 1)
	}
	s.slots[id] = slot{widget: w, spec: spec, inUse: true}
	return id
}

// Remove frees a slot. Removing a widget whose callback is currently
// running would corrupt the arena, so that is a fatal consistency error.
func (s *Store) Remove(id core.WidgetID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil {
		return
	}
	if sl.relocated {
		panic(fmt.Sprintf("layline: removing widget %d while it is relocated for a callback", id))
	}
	*sl = slot{}
	s.free = append(s.free, id)
}

// Widget returns the stored widget, if present and not relocated.
func (s *Store) Widget(id core.WidgetID) (core.Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil || sl.relocated {
		return nil, false
	}
	return sl.widget, true
}

// RelocateOut hands the caller exclusive ownership of the widget for the
// duration of a callback, leaving a sentinel in the slot. A second
// relocation of the same widget means re-entrant dispatch and is fatal.
func (s *Store) RelocateOut(id core.WidgetID) core.Widget {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil {
		panic(fmt.Sprintf("layline: relocating missing widget %d; dispatcher bug", id))
	}
	if sl.relocated {
		panic(fmt.Sprintf("layline: widget %d already relocated; re-entrant dispatch", id))
	}
	w := sl.widget
	sl.widget = nil
	sl.relocated = true
	return w
}

// RelocateIn returns a widget taken with RelocateOut. Restoring into a
// slot that was never relocated (or was freed meanwhile) indicates storage
// corruption and is fatal.
func (s *Store) RelocateIn(id core.WidgetID, w core.Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil || !sl.relocated {
		panic(fmt.Sprintf("layline: cannot restore widget %d; slot not relocated", id))
	}
	sl.widget = w
	sl.relocated = false
}

// SetGeometry records this frame's resolved geometry, rotating the
// previous record. The solver calls this exactly once per widget per
// frame, so at any time there is one current and at most one previous
// record.
func (s *Store) SetGeometry(id core.WidgetID, g core.Geometry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil {
		return
	}
	if sl.hasCur {
		sl.prev = sl.cur
		sl.hasPrev = true
	}
	sl.cur = g
	sl.hasCur = true
}

// Geometry returns the current frame's geometry, if the widget has one.
func (s *Store) Geometry(id core.WidgetID) (core.Geometry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil || !sl.hasCur {
		return core.Geometry{}, false
	}
	return sl.cur, true
}

// PreviousGeometry returns the prior frame's geometry, if any. A widget
// seen for the first time has none.
func (s *Store) PreviousGeometry(id core.WidgetID) (core.Geometry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil || !sl.hasPrev {
		return core.Geometry{}, false
	}
	return sl.prev, true
}

// SetLayoutSpec replaces a widget's layout parameters.
func (s *Store) SetLayoutSpec(id core.WidgetID, spec LayoutSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil {
		return
	}
	if spec.Weight <= 0 {
		spec.Weight = 1
	}
	sl.spec = spec
}

// LayoutSpecFor returns a widget's layout parameters.
func (s *Store) LayoutSpecFor(id core.WidgetID) (LayoutSpec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slotFor(id)
	if sl == nil {
		return LayoutSpec{}, false
	}
	return sl.spec, true
}

// slotFor resolves an id to its live slot; callers hold s.mu.
func (s *Store) slotFor(id core.WidgetID) *slot {
	if id < 0 || int(id) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[id]
	if !sl.inUse {
		return nil
	}
	return sl
}
