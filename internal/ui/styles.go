package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("#2DA44E") // Green
	errorColor  = lipgloss.Color("#CF222E") // Red
	dimColor    = lipgloss.Color("#6E7681") // Gray

	SuccessStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

// Printer печатает строки состояния CLI.
// Стили применяются только при styled == true, т.е. когда вывод идет в терминал.
type Printer struct {
	w      io.Writer
	styled bool
}

func NewPrinter(w io.Writer, styled bool) *Printer {
	return &Printer{w: w, styled: styled}
}

// Reading печатает URL, который сейчас читается.
func (p *Printer) Reading(url string) {
	fmt.Fprintln(p.w, p.render(DimStyle, fmt.Sprintf("Reading %q", url)))
}

// Status печатает "OK." или "Error: <сообщение>".
func (p *Printer) Status(err error) {
	if err == nil {
		fmt.Fprintln(p.w, p.render(SuccessStyle, "OK."))
		return
	}
	fmt.Fprintln(p.w, p.render(ErrorStyle, "Error: "+err.Error()))
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}
