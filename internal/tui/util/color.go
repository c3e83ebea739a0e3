package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary   lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#3D6DFF"),
		Success:   lipgloss.Color("#2AA876"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#5A5A5A"),
	}
}

// Styles are the shared text styles. With noColor every style is plain.
type Styles struct {
	Title  lipgloss.Style
	Faint  lipgloss.Style
	Fresh  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Match  lipgloss.Style
}

func NewStyles(p Palette, noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain.Bold(true), Faint: plain, Fresh: plain, Accent: plain, Error: plain, Match: plain.Reverse(true)}
	}
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Faint:  lipgloss.NewStyle().Faint(true),
		Fresh:  lipgloss.NewStyle().Foreground(p.Success),
		Accent: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(p.Danger),
		Match:  lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "228", Dark: "94"}).Foreground(lipgloss.Color("0")),
	}
}
