// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/mask.go
// Summary: Bitmask describing which Geometry fields changed between frames.

package core

import "strings"

// ChangeMask is a bitset with one bit per Geometry field. Masks are derived
// fresh each frame by Diff and combine with bitwise OR; they are never
// stored across frames.
type ChangeMask uint8

const (
	MaskX ChangeMask = 1 << iota
	MaskY
	MaskZ
	MaskWidth
	MaskHeight

	MaskNone ChangeMask = 0
	MaskAll  ChangeMask = MaskX | MaskY | MaskZ | MaskWidth | MaskHeight

	// MaskPosition and MaskSize are common composites.
	MaskPosition ChangeMask = MaskX | MaskY
	MaskSize     ChangeMask = MaskWidth | MaskHeight
)

// Has reports whether every bit of m2 is set in m.
func (m ChangeMask) Has(m2 ChangeMask) bool {
	return m&m2 == m2
}

// Any reports whether at least one bit of m2 is set in m.
func (m ChangeMask) Any(m2 ChangeMask) bool {
	return m&m2 != 0
}

// Only reports whether m consists of exactly the bits in m2, no others.
func (m ChangeMask) Only(m2 ChangeMask) bool {
	return m == m2 && m != 0
}

func (m ChangeMask) String() string {
	if m == MaskNone {
		return "none"
	}
	names := []struct {
		bit  ChangeMask
		name string
	}{
		{MaskX, "x"},
		{MaskY, "y"},
		{MaskZ, "z"},
		{MaskWidth, "width"},
		{MaskHeight, "height"},
	}
	var parts []string
	for _, n := range names {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
