package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors for command output.
var colors = struct {
	Success lipgloss.Color
	Warning lipgloss.Color
	Muted   lipgloss.Color
	Key     lipgloss.Color
}{
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
	Muted:   lipgloss.Color("#636E72"), // Gray
	Key:     lipgloss.Color("#74B9FF"), // Light blue
}

// printer writes lines to w, styled only when w is a terminal.
type printer struct {
	w        io.Writer
	colorize bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, colorize: shouldColorize(w)}
}

func (p *printer) success(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(colors.Success).Bold(true), format, args...)
}

func (p *printer) warning(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(colors.Warning), format, args...)
}

func (p *printer) muted(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(colors.Muted), format, args...)
}

func (p *printer) line(style lipgloss.Style, format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.render(style, fmt.Sprintf(format, args...)))
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.colorize {
		return s
	}
	return style.Render(s)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
