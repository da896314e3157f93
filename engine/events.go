// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/events.go
// Summary: Framework event bus broadcasting engine-level events to
// subscribed components (trace recorder, status displays).
// Notes: Layout callbacks themselves are delivered directly by the layout
// event dispatcher, not through this bus; the bus mirrors them for
// observers.

package engine

import (
	"sync"

	"github.com/framegrace/layline/core"
)

// EventType defines the type of an event.
type EventType int

const (
	// EventTreeChanged fires after attach/detach operations.
	EventTreeChanged EventType = iota
	// EventLayoutDispatched mirrors each delivered layout notification.
	EventLayoutDispatched
	// EventFrameComplete fires at the end of every RunFrame.
	EventFrameComplete
)

// Event represents a message passed through the system. It has a type and
// can carry an arbitrary data payload.
type Event struct {
	Type    EventType
	Payload interface{}
}

// LayoutPayload accompanies EventLayoutDispatched.
type LayoutPayload struct {
	Frame uint64
	Event core.LayoutEvent
}

// FramePayload accompanies EventFrameComplete.
type FramePayload struct {
	Frame      uint64
	Dispatched int
}

// Listener is an interface that any component can implement to receive
// events.
type Listener interface {
	OnEvent(event Event)
}

// EventDispatcher manages a list of listeners and broadcasts events to
// them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{listeners: make([]Listener, 0)}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.RUnlock()

	for _, l := range listeners {
		l.OnEvent(event)
	}
}
