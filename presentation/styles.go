package presentation

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#06B6D4")
	ColorAccent  = lipgloss.Color("#F59E0B")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorError   = lipgloss.Color("#EF4444")
)

// Styles used by the Console. They are bound to the renderer of the output writer so
// colors are dropped when the output is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
}

func NewStyles(renderer *lipgloss.Renderer) Styles {
	return Styles{
		Title:   renderer.NewStyle().Bold(true).Foreground(ColorPrimary).MarginTop(1),
		Label:   renderer.NewStyle().Foreground(ColorMuted),
		Value:   renderer.NewStyle().Bold(true).Foreground(ColorAccent),
		Muted:   renderer.NewStyle().Foreground(ColorMuted).Italic(true),
		Warning: renderer.NewStyle().Bold(true).Foreground(ColorError),
	}
}
