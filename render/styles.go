package render

import "github.com/charmbracelet/lipgloss"

// Metro palette.
var (
	ColorLine    = lipgloss.Color("#2CD7C7") // network, success
	ColorAccent  = lipgloss.Color("#20B9B4") // headings
	ColorBorder  = lipgloss.Color("#16858E")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorWarning = lipgloss.Color("#F4D03F") // bribe accepted
	ColorError   = lipgloss.Color("#E74C3C") // cost of corruption
)

// Styles used by Summary.
var Styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Good    lipgloss.Style
	Warning lipgloss.Style
	Bad     lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Label:   lipgloss.NewStyle().Foreground(ColorMuted).Width(26),
	Value:   lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Good:    lipgloss.NewStyle().Foreground(ColorLine),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
	Bad:     lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
}
