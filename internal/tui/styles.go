package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/janken/internal/janken"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LoseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	DrawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FAFAFA")).
			Padding(0, 2)

	OpponentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Width(16).
			Align(lipgloss.Center).
			Padding(1, 0)

	ResultsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 2)
)

// handColors matches each hand button to its color
var handColors = map[janken.Hand]lipgloss.Color{
	janken.Rock:     lipgloss.Color("#FF6B6B"),
	janken.Scissors: lipgloss.Color("#04B575"),
	janken.Paper:    lipgloss.Color("#4A90E2"),
}

func buttonStyle(h janken.Hand, selected, disabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(handColors[h]).
		Foreground(handColors[h]).
		Width(12).
		Align(lipgloss.Center)

	switch {
	case selected:
		style = style.
			Border(lipgloss.ThickBorder()).
			Bold(true)
	case disabled:
		style = style.
			BorderForeground(lipgloss.Color("#626262")).
			Foreground(lipgloss.Color("#626262"))
	}
	return style
}

func outcomeStyle(o janken.Outcome) lipgloss.Style {
	switch o {
	case janken.Win:
		return WinStyle
	case janken.Lose:
		return LoseStyle
	default:
		return DrawStyle
	}
}
