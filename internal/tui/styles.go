package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	expiredStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	tokenStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
