// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/event.go
// Summary: One-shot layout notification value delivered to widget callbacks.

package core

// LayoutEvent tells a widget what its geometry looks like after a layout
// pass and which fields moved. Events are built immediately before the
// callback runs and are not retained afterwards; a widget receives at most
// one per dispatch pass.
//
// When the target is notified because a descendant changed rather than
// because its own geometry did, Mask carries the union of the masks of the
// children notified this pass and Geometry is still the target's own.
type LayoutEvent struct {
	Target   WidgetID
	Geometry Geometry
	Mask     ChangeMask
}
