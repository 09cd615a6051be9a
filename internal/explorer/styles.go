package explorer

import (
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header            lipgloss.Style
	panelTitle        lipgloss.Style
	panelTitleFocused lipgloss.Style
	panelBorder       lipgloss.Style
	highlight         lipgloss.Style
	cursor            lipgloss.Style
	cursorHighlight   lipgloss.Style
	statusOK          lipgloss.Style
	statusErr         lipgloss.Style
	footer            lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		panelTitle:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		panelTitleFocused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		panelBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		highlight:       lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("15")),
		cursor:          lipgloss.NewStyle().Reverse(true),
		cursorHighlight: lipgloss.NewStyle().Reverse(true).Bold(true),
		statusOK:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		statusErr:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		footer:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
