// Package diff renders content rows with a gutter marking the lines a
// refresh added.
package diff

import (
	"strings"

	"pullrefresh/internal/tui/util"
)

type DiffView struct {
	styles util.Styles
}

func NewDiffView(styles util.Styles) DiffView { return DiffView{styles: styles} }

// Line renders text clipped to width. Fresh lines get a "+" gutter in the
// fresh style; others a blank gutter.
func (d DiffView) Line(text string, fresh bool, width int) string {
	body := clip(text, width-2, 0)
	if fresh {
		return d.styles.Fresh.Render("+ " + body)
	}
	return "  " + body
}

func clip(s string, width int, start int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if start >= len(runes) {
		return ""
	}
	end := start + width
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

// Pad right-pads s with spaces to width runes.
func Pad(s string, width int) string {
	if w := len([]rune(s)); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
