// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/tree.go
// Summary: Parent/child index over widget identities.
// Usage: Maintained by Engine attach/detach; read-only for the layout
// event dispatcher, which resolves parents through it.

package engine

import (
	"sync"

	"github.com/framegrace/layline/core"
)

// Tree tracks the widget hierarchy by identity. It carries no widget
// values and no geometry; it is purely the adjacency the dispatcher and
// solver navigate.
type Tree struct {
	mu       sync.RWMutex
	parent   map[core.WidgetID]core.WidgetID
	children map[core.WidgetID][]core.WidgetID
}

// NewTree creates an empty hierarchy index.
func NewTree() *Tree {
	return &Tree{
		parent:   make(map[core.WidgetID]core.WidgetID),
		children: make(map[core.WidgetID][]core.WidgetID),
	}
}

// Attach links child under parent. Pass core.NoWidget for a root. Children
// keep attach order; the solver assigns space in that order.
func (t *Tree) Attach(child, parent core.WidgetID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.parent[child] = parent
	if parent != core.NoWidget {
		t.children[parent] = append(t.children[parent], child)
	}
}

// Detach unlinks a widget and its whole subtree, returning every removed
// identity (the detached widget first, descendants in DFS order).
func (t *Tree) Detach(id core.WidgetID) []core.WidgetID {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, known := t.parent[id]; !known {
		return nil
	}

	if p := t.parent[id]; p != core.NoWidget {
		kids := t.children[p]
		for i, c := range kids {
			if c == id {
				t.children[p] = append(kids[:i], kids[i+1:]...)
				break
			}
		}
	}

	var removed []core.WidgetID
	var drop func(core.WidgetID)
	drop = func(n core.WidgetID) {
		removed = append(removed, n)
		for _, c := range t.children[n] {
			drop(c)
		}
		delete(t.children, n)
		delete(t.parent, n)
	}
	drop(id)
	return removed
}

// Parent returns the parent identity. The second result is false for
// roots and for identities the tree does not know.
func (t *Tree) Parent(id core.WidgetID) (core.WidgetID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, known := t.parent[id]
	if !known || p == core.NoWidget {
		return core.NoWidget, false
	}
	return p, true
}

// Children returns a copy of the child list in attach order.
func (t *Tree) Children(id core.WidgetID) []core.WidgetID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	kids := t.children[id]
	if len(kids) == 0 {
		return nil
	}
	out := make([]core.WidgetID, len(kids))
	copy(out, kids)
	return out
}

// Walk visits id and its descendants in DFS preorder.
func (t *Tree) Walk(id core.WidgetID, fn func(core.WidgetID)) {
	fn(id)
	for _, c := range t.Children(id) {
		t.Walk(c, fn)
	}
}

// WalkPost visits id and its descendants in DFS postorder, children before
// their parent. Dirty marking uses this order so parents are never queued
// ahead of their changed children.
func (t *Tree) WalkPost(id core.WidgetID, fn func(core.WidgetID)) {
	for _, c := range t.Children(id) {
		t.WalkPost(c, fn)
	}
	fn(id)
}
