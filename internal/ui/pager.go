package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// Pager shows long text in ov while the program gives up the terminal
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager; it needs SetProgram before Show works
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *Pager) Available() bool {
	return p.program != nil
}

// Show runs ov on content under a title header and blocks until it exits
func (p *Pager) Show(title, content string) error {
	if p.program == nil {
		return errNoProgram
	}

	root, err := oviewer.NewRoot(strings.NewReader(PagerContent(title, content)))
	if err != nil {
		return fmt.Errorf("failed to start pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return root.Run()
}

// PagerContent puts an underlined title above the text
func PagerContent(title, content string) string {
	if title == "" {
		return content
	}
	rule := strings.Repeat("─", max(runewidth.StringWidth(title), 1))
	return title + "\n" + rule + "\n\n" + content
}
