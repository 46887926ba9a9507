package tui

import (
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Dialog    lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Moods     map[models.Mood]lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true).Padding(0, 2),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(1, 2),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Moods: map[models.Mood]lipgloss.Style{
			models.MoodDepressed: lipgloss.NewStyle().Foreground(lipgloss.Color("61")),
			models.MoodSad:       lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			models.MoodAngry:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			models.MoodScared:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			models.MoodModerate:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			models.MoodHappy:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		},
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true).Padding(0, 2),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(1, 2),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Moods: map[models.Mood]lipgloss.Style{
			models.MoodDepressed: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			models.MoodSad:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			models.MoodAngry:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
			models.MoodScared:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
			models.MoodModerate:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
			models.MoodHappy:     lipgloss.NewStyle().Foreground(lipgloss.Color("84")),
		},
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}

func moodStyle(m models.Mood) lipgloss.Style {
	if s, ok := CurrentTheme.Moods[m]; ok {
		return s
	}
	return CurrentTheme.Row
}
