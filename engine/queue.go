// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/queue.go
// Summary: Frame-scoped dirty-render queue with ordered, deduplicated
// insertion and a single atomic drain per dispatch pass.

package engine

import (
	"sync"

	"github.com/framegrace/layline/core"
)

// orderedIDSet keeps insertion order and silently ignores duplicates.
// Dispatch order is an observable contract, so plain maps are not enough.
type orderedIDSet struct {
	ids  []core.WidgetID
	seen map[core.WidgetID]struct{}
}

func newOrderedIDSet() *orderedIDSet {
	return &orderedIDSet{seen: make(map[core.WidgetID]struct{})}
}

// add inserts id unless already present. Reports whether it was inserted.
func (s *orderedIDSet) add(id core.WidgetID) bool {
	if _, dup := s.seen[id]; dup {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *orderedIDSet) items() []core.WidgetID {
	return s.ids
}

// DirtyQueue collects the widgets touched by the render pass. The render
// side marks, the dispatcher drains exactly once per frame. The lock is
// held only for the mark/drain itself, never while callbacks run, since a
// callback may mark the queue again for the next frame.
type DirtyQueue struct {
	mu  sync.Mutex
	set *orderedIDSet
}

// NewDirtyQueue creates an empty queue.
func NewDirtyQueue() *DirtyQueue {
	return &DirtyQueue{set: newOrderedIDSet()}
}

// Mark queues a widget for layout-change detection. Duplicate marks within
// one frame are ignored; the first position wins.
func (q *DirtyQueue) Mark(id core.WidgetID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.set.add(id)
}

// Drain empties the queue and returns the marked identities in insertion
// order. The queue is immediately ready to accumulate next frame's marks.
func (q *DirtyQueue) Drain() []core.WidgetID {
	q.mu.Lock()
	defer q.mu.Unlock()

	drained := q.set.items()
	q.set = newOrderedIDSet()
	return drained
}

// Len returns the number of queued identities.
func (q *DirtyQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.set.ids)
}
