// Package indicator renders the rows of a pull-to-refresh accessory.
package indicator

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pullrefresh/internal/session"
	"pullrefresh/pkg/pullrefresh"
)

const barWidth = 20

type Indicator struct {
	spin    spinner.Model
	bar     progress.Model
	noColor bool
	faint   lipgloss.Style
}

func New(noColor bool) Indicator {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage())
	faint := lipgloss.NewStyle().Faint(true)
	if noColor {
		sp = spinner.New(spinner.WithSpinner(spinner.Line))
		faint = lipgloss.NewStyle()
	}
	return Indicator{spin: sp, bar: bar, noColor: noColor, faint: faint}
}

// Tick starts the spinner animation.
func (i Indicator) Tick() tea.Msg { return i.spin.Tick() }

// Update advances the spinner.
func (i Indicator) Update(msg tea.Msg) (Indicator, tea.Cmd) {
	var cmd tea.Cmd
	i.spin, cmd = i.spin.Update(msg)
	return i, cmd
}

// View returns ind.Rows lines, each at most width cells wide. The message
// sits on the row nearest the content.
func (i Indicator) View(ind session.Indicator, st pullrefresh.EdgeState, width int) []string {
	if ind.Rows <= 0 {
		return nil
	}
	rows := make([]string, ind.Rows)
	msg := i.message(ind, st)
	at := ind.Rows - 1
	if ind.Edge == pullrefresh.Bottom {
		at = 0
	}
	rows[at] = lipgloss.PlaceHorizontal(width, lipgloss.Center, msg)
	if ind.Rows > 1 {
		rule := i.faint.Render(strings.Repeat("·", max(width, 0)))
		if ind.Edge == pullrefresh.Bottom {
			rows[ind.Rows-1] = rule
		} else {
			rows[0] = rule
		}
	}
	return rows
}

func (i Indicator) message(ind session.Indicator, st pullrefresh.EdgeState) string {
	verb, arrow := "Pull down to refresh", "↓"
	if ind.Edge == pullrefresh.Bottom {
		verb, arrow = "Pull up to load more", "↑"
	}
	switch {
	case ind.Refreshing || st == pullrefresh.Stuck:
		return i.spin.View() + " Refreshing…"
	case ind.Armed || st == pullrefresh.Overpulled:
		return arrow + " Release to refresh"
	case st == pullrefresh.Elastic:
		return i.progressBar(ind.Percent/100) + " " + verb
	default:
		return i.faint.Render(verb)
	}
}

func (i Indicator) progressBar(frac float64) string {
	if i.noColor {
		n := int(frac*barWidth + 0.5)
		n = min(max(n, 0), barWidth)
		return "[" + strings.Repeat("#", n) + strings.Repeat(".", barWidth-n) + "]"
	}
	return i.bar.ViewAs(frac)
}
