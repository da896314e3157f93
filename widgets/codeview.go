// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/codeview.go
// Summary: Syntax-highlighted source viewer. Language detection via enry,
// tokenization and styling via chroma.

package widgets

import (
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/layline/core"
)

const defaultStyleName = "catppuccin-mocha"

// CodeView renders a block of source code with syntax highlighting. Lines
// are tokenized once when the source is set; drawing just blits the styled
// cells. Typically placed inside a ScrollPane, whose content extent then
// follows this widget's line count.
type CodeView struct {
	core.BaseWidget
	Style tcell.Style

	lines    [][]core.Cell
	maxWidth int
}

// NewCodeView creates a viewer for the given file content. The filename is
// only used for language detection and may name a file that does not
// exist on disk.
func NewCodeView(filename, source string, base tcell.Style) *CodeView {
	cv := &CodeView{Style: base}
	cv.SetSource(filename, source)
	return cv
}

// SetSource replaces the displayed code and re-tokenizes it.
func (cv *CodeView) SetSource(filename, source string) {
	cv.lines = highlight(filename, source, cv.Style)
	cv.maxWidth = 0
	for _, line := range cv.lines {
		w := 0
		for _, c := range line {
			w += runewidth.RuneWidth(c.Ch)
		}
		if w > cv.maxWidth {
			cv.maxWidth = w
		}
	}
}

// ContentSize reports the widest line and the line count.
func (cv *CodeView) ContentSize() (int, int) {
	return cv.maxWidth, len(cv.lines)
}

// Draw blits the styled lines at the widget's position. The painter's clip
// discards lines scrolled out of view.
func (cv *CodeView) Draw(p *core.Painter) {
	p.Fill(cv.Rect, ' ', cv.Style)
	for i, line := range cv.lines {
		x := cv.Rect.X
		for _, c := range line {
			p.SetCell(x, cv.Rect.Y+i, c.Ch, c.Style)
			x += runewidth.RuneWidth(c.Ch)
		}
	}
}

// highlight tokenizes source and produces one styled cell row per line.
// Any tokenization failure degrades to unstyled text rather than erroring:
// a viewer that cannot colorize should still show the code.
func highlight(filename, source string, base tcell.Style) [][]core.Cell {
	lexer := pickLexer(filename, source)
	style := styles.Get(defaultStyleName)
	if style == nil {
		style = styles.Fallback
	}

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, source)
	if err != nil {
		log.Printf("CodeView: Tokenise failed: %v", err)
		return plainLines(source, base)
	}

	var lines [][]core.Cell
	row := []core.Cell{}
	for _, tok := range tokens {
		ts := tokenStyle(style.Get(tok.Type), base)
		for _, ch := range tok.Value {
			if ch == '\n' {
				lines = append(lines, row)
				row = []core.Cell{}
				continue
			}
			row = append(row, core.Cell{Ch: ch, Style: ts})
		}
	}
	if len(row) > 0 {
		lines = append(lines, row)
	}
	return lines
}

// pickLexer resolves a lexer by detected language, falling back to
// filename matching and finally the catch-all lexer.
func pickLexer(filename, source string) chroma.Lexer {
	if lang := lexers.Get(detectLanguage(filename, source)); lang != nil {
		return lang
	}
	if byName := lexers.Match(filename); byName != nil {
		return byName
	}
	return lexers.Fallback
}

// tokenStyle maps a chroma style entry onto the base tcell style.
func tokenStyle(entry chroma.StyleEntry, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	return st
}

// detectLanguage asks enry, which combines filename and content signals.
func detectLanguage(filename, source string) string {
	return enry.GetLanguage(filename, []byte(source))
}

func plainLines(source string, base tcell.Style) [][]core.Cell {
	var lines [][]core.Cell
	for _, text := range strings.Split(strings.TrimSuffix(source, "\n"), "\n") {
		var row []core.Cell
		for _, ch := range text {
			row = append(row, core.Cell{Ch: ch, Style: base})
		}
		lines = append(lines, row)
	}
	return lines
}
