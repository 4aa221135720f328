package styles

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var defaultStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4"))

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F45E6E"))

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6ef4a1ff"))

var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6EC4F4"))

var warnStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F4C96E"))

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

func render(style string, text string) string {
	switch style {
	case "error":
		return errorStyle.Render(text)
	case "success":
		return successStyle.Render(text)
	case "info":
		return infoStyle.Render(text)
	case "warn":
		return warnStyle.Render(text)
	case "title":
		return titleStyle.Render(text)
	default:
		return defaultStyle.Render(text)
	}
}

func SprintfS(style string, format string, a ...interface{}) string {
	return render(style, fmt.Sprintf(format, a...))
}

// FprintFS escribe una línea con estilo en w.
func FprintFS(w io.Writer, style string, format string, a ...interface{}) {
	fmt.Fprintln(w, SprintfS(style, format, a...))
}

func PrintFS(style string, format string, a ...interface{}) {
	FprintFS(os.Stdout, style, format, a...)
}

// EprintFS es para diagnósticos: siempre a stderr.
func EprintFS(style string, format string, a ...interface{}) {
	FprintFS(os.Stderr, style, format, a...)
}
