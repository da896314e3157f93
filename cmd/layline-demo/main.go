// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/layline-demo/main.go
// Summary: Interactive demo: a highlighted code viewer inside a scroll
// pane, driven by the layout event pipeline.
// Usage: layline-demo [-config path] [-trace path]; Esc or Ctrl-C quits,
// Up/Down and PgUp/PgDn scroll.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/layline/config"
	"github.com/framegrace/layline/driver"
	"github.com/framegrace/layline/engine"
	"github.com/framegrace/layline/trace"
	"github.com/framegrace/layline/widgets"
)

const sampleSource = `package main

import "fmt"

// fib returns the n-th Fibonacci number.
func fib(n int) int {
	if n < 2 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

func main() {
	for n := 0; n < 30; n++ {
		fmt.Printf("fib(%d) = %d\n", n, fib(n))
	}
}
`

func main() {
	configPath := flag.String("config", "", "path to a layline JSON config file")
	tracePath := flag.String("trace", "", "record layout events to a sqlite database")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "layline-demo must run on a terminal")
		os.Exit(1)
	}

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("layline-demo: %v", err)
		}
	}

	logFile, err := os.CreateTemp("", "layline-demo-*.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	if err := run(*tracePath); err != nil {
		log.Fatalf("layline-demo: %v", err)
	}
}

func run(tracePath string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	d := driver.NewTcellScreenDriver(screen)
	if err := d.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer d.Fini()
	d.HideCursor()

	e := engine.NewEngine(d)
	e.SetBackgroundStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))

	traceCfg := config.GetSection("trace")
	if tracePath == "" && traceCfg.GetBool("enabled", false) {
		tracePath = traceCfg.GetString("path", "")
	}
	if tracePath != "" {
		rec, err := trace.Open(tracePath)
		if err != nil {
			return fmt.Errorf("failed to open trace: %w", err)
		}
		defer rec.Close()
		e.Events().Subscribe(rec)
		log.Printf("Demo: Recording layout events to %s", tracePath)
	}

	header := widgets.NewLabel(" layline demo — Up/Down scroll, Esc quits")
	header.Style = tcell.StyleDefault.
		Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	status := widgets.NewLabel("")
	status.Style = tcell.StyleDefault.
		Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)

	codeStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	pane := widgets.NewScrollPane(codeStyle)
	pane.SetChild(widgets.NewCodeView("sample.go", sampleSource, codeStyle))

	root := e.SetRoot(widgets.NewPanel(tcell.StyleDefault),
		engine.LayoutSpec{Split: engine.Vertical})
	if _, err := e.Attach(header, root, engine.LayoutSpec{FixedH: 1}); err != nil {
		return err
	}
	paneID, _ := e.Attach(pane, root, engine.LayoutSpec{Weight: 1})
	statusID, _ := e.Attach(status, root, engine.LayoutSpec{FixedH: 1})

	scrollStep := config.GetSection("ui").GetInt("scroll_step", 1)

	e.RunFrame()
	for {
		ev := d.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			w, h := tev.Size()
			e.Resize(w, h)
		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				pane.ScrollBy(-scrollStep)
				e.MarkDirty(paneID)
			case tcell.KeyDown:
				pane.ScrollBy(scrollStep)
				e.MarkDirty(paneID)
			case tcell.KeyPgUp:
				pane.ScrollBy(-10)
				e.MarkDirty(paneID)
			case tcell.KeyPgDn:
				pane.ScrollBy(10)
				e.MarkDirty(paneID)
			}
		}

		g, _ := e.Geometry(paneID)
		status.SetText(fmt.Sprintf(" frame %d | pane %s | content %d rows | offset %d",
			e.Frame(), g, pane.ContentHeight(), pane.Offset()))
		e.MarkDirty(statusID)
		e.RunFrame()
	}
}
