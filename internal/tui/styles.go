package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasklane/internal/config/colors"
)

// boardStyles are the board styles for one color scheme
type boardStyles struct {
	Header       lipgloss.Style
	Column       lipgloss.Style
	ColumnTitle  lipgloss.Style
	Task         lipgloss.Style
	SelectedTask lipgloss.Style
	Empty        lipgloss.Style
	Subtle       lipgloss.Style
	Error        lipgloss.Style
	Celebrate    lipgloss.Style
	Dialog       lipgloss.Style
}

func newBoardStyles(scheme colors.ColorScheme) boardStyles {
	return boardStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
			Padding(0, 1),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
		Task: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(scheme.TaskBorder)).
			Foreground(lipgloss.Color(scheme.Normal)),
		SelectedTask: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(scheme.SelectedBorder)).
			Foreground(lipgloss.Color(scheme.Normal)).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Italic(true),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.ErrorFg)),
		Celebrate: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Celebrate)),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Accent)).
			Padding(1, 2),
	}
}
