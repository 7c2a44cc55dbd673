// Package ui provides styled terminal status output for mdpipe.
// Styles are lipgloss-based so they degrade cleanly on dumb terminals,
// and everything writes to an injected writer to keep commands testable.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	stepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	headStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// Status writes styled progress lines to a single destination.
type Status struct {
	W io.Writer
}

// New creates a Status writing to w.
func New(w io.Writer) *Status {
	return &Status{W: w}
}

// Ok reports a completed step.
func (s *Status) Ok(format string, args ...any) { s.line(okStyle, "✓", format, args...) }

// Warn reports a recoverable problem; processing continues.
func (s *Status) Warn(format string, args ...any) { s.line(warnStyle, "!", format, args...) }

// Err reports a failed step.
func (s *Status) Err(format string, args ...any) { s.line(errStyle, "✗", format, args...) }

// Info reports neutral progress details.
func (s *Status) Info(format string, args ...any) { s.line(infoStyle, "·", format, args...) }

// Step reports the start of an action.
func (s *Status) Step(format string, args ...any) { s.line(stepStyle, "→", format, args...) }

// Head prints a section heading.
func (s *Status) Head(format string, args ...any) {
	fmt.Fprintf(s.W, "\n%s\n", headStyle.Render(fmt.Sprintf(format, args...)))
}

// Dim returns text in the de-emphasized style for inline use.
func (s *Status) Dim(text string) string {
	return dimStyle.Render(text)
}

func (s *Status) line(style lipgloss.Style, mark, format string, args ...any) {
	fmt.Fprintf(s.W, "%s %s\n", style.Render(mark), fmt.Sprintf(format, args...))
}
