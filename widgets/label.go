// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/label.go
// Summary: Single-line text widget.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/layline/core"
)

// Label displays one line of text, truncated by the painter's clip when
// the assigned geometry is narrower than the text.
type Label struct {
	core.BaseWidget
	Text  string
	Style tcell.Style
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	return &Label{Text: text, Style: tcell.StyleDefault}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.Text = text
}

// ContentSize reports the display width of the text and a height of one
// line. Wide runes count as two columns.
func (l *Label) ContentSize() (int, int) {
	return runewidth.StringWidth(l.Text), 1
}

// Draw renders the label into its assigned rect.
func (l *Label) Draw(p *core.Painter) {
	p.Fill(l.Rect, ' ', l.Style)
	p.DrawText(l.Rect.X, l.Rect.Y, l.Text, l.Style)
}
