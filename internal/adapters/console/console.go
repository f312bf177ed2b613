// Package console writes the user-facing lines of a shredding run.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Adapter writes progress to stdout and failures to stderr. Styling is
// dropped automatically when the writer is not a terminal.
type Adapter struct {
	stdout io.Writer
	stderr io.Writer

	infoStyle    lipgloss.Style
	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewAdapter creates a console adapter for the given streams.
func NewAdapter(stdout, stderr io.Writer) *Adapter {
	outRenderer := lipgloss.NewRenderer(stdout)
	errRenderer := lipgloss.NewRenderer(stderr)

	return &Adapter{
		stdout:       stdout,
		stderr:       stderr,
		infoStyle:    outRenderer.NewStyle().Bold(true),
		successStyle: outRenderer.NewStyle().Foreground(lipgloss.Color("78")),  // Green
		warnStyle:    outRenderer.NewStyle().Foreground(lipgloss.Color("214")), // Amber
		errorStyle:   errRenderer.NewStyle().Foreground(lipgloss.Color("197")), // Red
	}
}

// Info prints a progress line.
func (a *Adapter) Info(format string, args ...any) {
	fmt.Fprintln(a.stdout, a.infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a completed step.
func (a *Adapter) Success(format string, args ...any) {
	fmt.Fprintln(a.stdout, a.successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a skipped or declined step.
func (a *Adapter) Warn(format string, args ...any) {
	fmt.Fprintln(a.stdout, a.warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints a failure to the error stream.
func (a *Adapter) Error(format string, args ...any) {
	fmt.Fprintln(a.stderr, a.errorStyle.Render(fmt.Sprintf(format, args...)))
}
