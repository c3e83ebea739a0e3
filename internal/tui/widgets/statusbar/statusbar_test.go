package statusbar

import (
	"strings"
	"testing"

	"pullrefresh/internal/tui/state"
	"pullrefresh/pkg/pullrefresh"
)

func TestStatusLine(t *testing.T) {
	s := state.UIState{
		NoColor: true,
		Offset:  -1.5,
		Lines:   40,
		Tags:    []state.Tag{{Kind: state.STUCK, Edge: pullrefresh.Top}},
		Notice:  "Copied",
	}
	out := NewStatusBar().View(s)
	for _, want := range []string{"[top stuck]", "Y:-1.50", "L:40", "Sound: Off", "Copied"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
