package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bundlepick/bundlepick/internal/stats"
)

// StatusBar renders the bottom row with selection stats and key hints.
// Transient flash messages temporarily replace the stats segment.
type StatusBar struct {
	agg      stats.Aggregate
	selected int
	counter  string
	flash    string
	width    int
}

// NewStatusBar creates a status bar labeled with the active tokenizer.
func NewStatusBar(counterName string) StatusBar {
	return StatusBar{counter: counterName}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetStats refreshes the aggregate numbers shown on the left.
func (s *StatusBar) SetStats(agg stats.Aggregate, selected int) {
	s.agg = agg
	s.selected = selected
}

// Flash shows a transient message in place of the stats segment.
func (s *StatusBar) Flash(msg string) {
	s.flash = msg
}

// ClearFlash removes the transient message.
func (s *StatusBar) ClearFlash() {
	s.flash = ""
}

// View renders the status bar.
func (s StatusBar) View() string {
	var leftPart string
	if s.flash != "" {
		leftPart = StatusFlashStyle.Render(s.flash)
	} else {
		leftPart = fmt.Sprintf("%d selected · %d lines · %d tokens (%s) · %d chars",
			s.selected, s.agg.Lines, s.agg.Tokens, s.counter, s.agg.Chars)
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("space") + ": select",
		StatusBarKeyStyle.Render("f") + ": bundle",
		StatusBarKeyStyle.Render("c") + ": copy",
		StatusBarKeyStyle.Render("?") + ": help",
	}
	rightPart := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart

	return StatusBarStyle.Width(s.width).Render(content)
}
