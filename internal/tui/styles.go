package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"

	defaultAccent lipgloss.Color = "#2874A6"
)

type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	label     lipgloss.Style
	row       lipgloss.Style
	cursorRow lipgloss.Style
	muted     lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	alert     lipgloss.Style
	alertText lipgloss.Style
}

func newStyles(accent string) styles {
	a := defaultAccent
	if accent != "" {
		a = lipgloss.Color(accent)
	}
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(a),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(a).MarginTop(1),
		label:     lipgloss.NewStyle().Foreground(colorText).Width(17),
		row:       lipgloss.NewStyle().Foreground(colorText),
		cursorRow: lipgloss.NewStyle().Foreground(colorLavender).Background(colorSurface1).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(colorOverlay1),
		status:    lipgloss.NewStyle().Foreground(colorGreen),
		statusErr: lipgloss.NewStyle().Foreground(colorRed),
		alert:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorYellow).Padding(0, 1),
		alertText: lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
	}
}
