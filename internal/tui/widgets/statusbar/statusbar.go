package statusbar

import (
	"fmt"
	"strings"

	"pullrefresh/internal/tui/state"
	chips "pullrefresh/internal/tui/widgets/tagchips"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState) string {
	sound := "Sound: Off"
	if s.Sound {
		sound = "Sound: On"
	}
	pos := fmt.Sprintf("Y:%.2f", s.Offset)
	lines := fmt.Sprintf("L:%d", s.Lines)

	parts := []string{}
	if c := chips.View(s.Tags, s.NoColor); c != "" {
		parts = append(parts, c)
	}
	parts = append(parts, pos, lines, sound, "?: help")
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
