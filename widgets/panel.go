// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/panel.go
// Summary: Plain container widget filling its rect with a background.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/layline/core"
)

// Panel is a background container. It draws nothing but its fill; children
// attached beneath it in the engine tree paint on top by depth order.
type Panel struct {
	core.BaseWidget
	Style tcell.Style
}

// NewPanel creates a panel with the given background style.
func NewPanel(style tcell.Style) *Panel {
	return &Panel{Style: style}
}

// Draw fills the panel's rect.
func (p *Panel) Draw(painter *core.Painter) {
	painter.Fill(p.Rect, ' ', p.Style)
}
