package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pullrefresh/internal/session"
	"pullrefresh/internal/tui/state"
	"pullrefresh/internal/tui/util"
)

// noticePanel shows the notification history in a bordered viewport with
// incremental search.
type noticePanel struct {
	vp     viewport.Model
	styles util.Styles
	lines  []string

	// search state
	searching  bool
	searchBuf  string
	searchIdxs []int
	searchPos  int
}

func newNoticePanel(styles util.Styles) noticePanel {
	return noticePanel{vp: viewport.New(0, state.NoticeRows-2), styles: styles}
}

// setWidth sizes the viewport inside the border and padding.
func (p *noticePanel) setWidth(width int) {
	p.vp.Width = max(width-4, 10)
	p.vp.Height = state.NoticeRows - 2
}

// refresh reloads the history, following the tail unless the user has
// scrolled away from it.
func (p *noticePanel) refresh(notices []session.Notice) {
	follow := p.vp.AtBottom() || len(p.lines) == 0
	p.lines = p.lines[:0]
	for _, n := range notices {
		p.lines = append(p.lines, n.String())
	}
	if p.searchBuf != "" && !p.searching {
		p.computeSearch()
	}
	rendered := make([]string, len(p.lines))
	for i, ln := range p.lines {
		rendered[i] = p.highlight(ln, i)
	}
	p.vp.SetContent(strings.Join(rendered, "\n"))
	if follow {
		p.vp.GotoBottom()
	}
}

func (p *noticePanel) scroll(delta int) {
	p.vp.SetYOffset(p.vp.YOffset + delta)
}

// searchKey edits the search prompt. It reports whether the search ended.
func (p *noticePanel) searchKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter":
		p.searching = false
		p.computeSearch()
		p.jumpToResult(0)
		return true
	case "esc":
		p.searching = false
		p.searchBuf = ""
		p.searchIdxs = nil
		p.searchPos = 0
		return true
	}
	if msg.Type == tea.KeyBackspace || msg.Type == tea.KeyCtrlH {
		if r := []rune(p.searchBuf); len(r) > 0 {
			p.searchBuf = string(r[:len(r)-1])
		}
	} else if msg.Type == tea.KeyRunes {
		p.searchBuf += string(msg.Runes)
	}
	return false
}

// computeSearch builds indexes of lines containing searchBuf (case-insensitive)
func (p *noticePanel) computeSearch() {
	p.searchIdxs = nil
	q := strings.ToLower(strings.TrimSpace(p.searchBuf))
	if q == "" {
		p.searchPos = 0
		return
	}
	for i, ln := range p.lines {
		if strings.Contains(strings.ToLower(ln), q) {
			p.searchIdxs = append(p.searchIdxs, i)
		}
	}
	if p.searchPos >= len(p.searchIdxs) {
		p.searchPos = 0
	}
}

func (p *noticePanel) jumpToResult(pos int) {
	if len(p.searchIdxs) == 0 {
		return
	}
	if pos < 0 {
		pos = len(p.searchIdxs) - 1
	}
	if pos >= len(p.searchIdxs) {
		pos = 0
	}
	p.searchPos = pos
	p.vp.SetYOffset(p.searchIdxs[pos])
}

func (p *noticePanel) highlight(s string, idx int) string {
	q := strings.ToLower(strings.TrimSpace(p.searchBuf))
	if q == "" || !containsIndex(p.searchIdxs, idx) {
		return s
	}
	lower := strings.ToLower(s)
	if len(lower) != len(s) {
		return s
	}
	var b strings.Builder
	for {
		i := strings.Index(lower, q)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(p.styles.Match.Render(s[i : i+len(q)]))
		s, lower = s[i+len(q):], lower[i+len(q):]
	}
}

func containsIndex(a []int, x int) bool {
	for _, v := range a {
		if v == x {
			return true
		}
	}
	return false
}

// status is the search prompt or match counter for the status bar.
func (p *noticePanel) status() string {
	if p.searching {
		return "/" + p.searchBuf
	}
	if len(p.searchIdxs) > 0 {
		return fmt.Sprintf("[%d/%d]", p.searchPos+1, len(p.searchIdxs))
	}
	return ""
}

func (p *noticePanel) view() string {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return border.Render(p.vp.View())
}

// save writes the history under dir with a timestamped name.
func (p *noticePanel) save(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, now.Format("20060102_150405")+".log")
	data := strings.Join(p.lines, "\n") + "\n"
	return path, os.WriteFile(path, []byte(data), 0644)
}
