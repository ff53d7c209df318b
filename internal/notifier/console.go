package notifier

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var severityStyles = map[Severity]lipgloss.Style{
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

var descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

// Console prints notifications as a single styled line.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(title, description string, severity Severity) error {
	_, err := fmt.Fprintln(c.w, Render(title, description, severity))
	return err
}

// Render formats a notification the way Console and the TUI toast show it.
func Render(title, description string, severity Severity) string {
	style, ok := severityStyles[severity]
	if !ok {
		style = severityStyles[Info]
	}
	if description == "" {
		return style.Render(title)
	}
	return style.Render(title) + " " + descriptionStyle.Render(description)
}
