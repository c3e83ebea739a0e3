package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"pullrefresh/internal/tui/state"
)

// Section is a titled group of key bindings.
type Section struct {
	Title string
	Keys  []key.Binding
}

type HelpOverlay struct {
	Sections []Section
}

func NewHelpOverlay(sections ...Section) HelpOverlay { return HelpOverlay{Sections: sections} }

// View returns grouped keys help with the current toggles indicated.
func (h HelpOverlay) View(s state.UIState) string {
	sound := "off"
	if s.Sound {
		sound = "on"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Sound: %s)\n", sound)
	for _, sec := range h.Sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Keys {
			if !k.Enabled() {
				continue
			}
			fmt.Fprintf(&b, "  %s: %s\n", k.Help().Key, k.Help().Desc)
		}
	}
	b.WriteString("\nMouse wheel pulls past either end; release (stop scrolling) to refresh.\n")
	return b.String()
}
