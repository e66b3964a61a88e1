package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sectionStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, true, false)
	tabStyle        = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
