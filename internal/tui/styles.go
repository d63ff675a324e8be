package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	badgeStyle      = lipgloss.NewStyle().Bold(true).Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	tagStyle        = lipgloss.NewStyle().Faint(true)
)

var moodColors = map[string]lipgloss.Color{
	"happy":    lipgloss.Color("10"),
	"excited":  lipgloss.Color("11"),
	"calm":     lipgloss.Color("14"),
	"sad":      lipgloss.Color("12"),
	"angry":    lipgloss.Color("9"),
	"stressed": lipgloss.Color("13"),
}

func moodStyle(mood string) lipgloss.Style {
	if c, ok := moodColors[strings.ToLower(mood)]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Faint(true)
}
