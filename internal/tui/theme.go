package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Base    lipgloss.Style
	Border  lipgloss.Color
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Vacant  lipgloss.Style
	Present lipgloss.Style
	Absent  lipgloss.Style
	Input   lipgloss.Style
	Alert   lipgloss.Style
	Focused lipgloss.Style
	Dim     lipgloss.Style
	Busy    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("63"),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Cell:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Vacant:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Present: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Absent:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Alert:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 3).Bold(true),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Busy:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	},
	"dracula": {
		Name:    "Dracula",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("62"),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Cell:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Vacant:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true),
		Present: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Absent:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Alert:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(1, 3).Bold(true),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Busy:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
	},
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
