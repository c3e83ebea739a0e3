package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pullrefresh/internal/tui/state"
	"pullrefresh/internal/tui/util"
)

// View renders edge tags in order using colored chips when possible and
// ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.DISABLED:
		return t.Edge.String() + " off"
	case state.RESTING:
		return t.Edge.String()
	case state.ELASTIC:
		return fmt.Sprintf("%s %d%%", t.Edge, t.Value)
	case state.ARMED:
		return t.Edge.String() + " release"
	case state.STUCK:
		return t.Edge.String() + " stuck"
	case state.REFRESHING:
		return t.Edge.String() + " refreshing"
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	switch t.Kind {
	case state.DISABLED:
		return base.Background(p.MutedDark)
	case state.RESTING:
		return base.Background(p.Muted)
	case state.ELASTIC:
		return base.Background(p.Primary)
	case state.ARMED:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.STUCK:
		return base.Background(p.Success)
	case state.REFRESHING:
		return base.Background(p.Success)
	default:
		return base
	}
}
