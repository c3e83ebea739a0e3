package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"pullrefresh/internal/feedback"
	"pullrefresh/internal/session"
	"pullrefresh/internal/surface"
	"pullrefresh/internal/tui/state"
	"pullrefresh/internal/tui/util"
	"pullrefresh/internal/tui/widgets/diff"
	help "pullrefresh/internal/tui/widgets/helpoverlay"
	"pullrefresh/internal/tui/widgets/indicator"
	"pullrefresh/internal/tui/widgets/statusbar"
	"pullrefresh/pkg/pullrefresh"
)

// FetchTimeout bounds a single refresh.
var FetchTimeout = 30 * time.Second

// Options tunes the demo host.
type Options struct {
	IdleTimeout time.Duration
	SettleFrame time.Duration
	NoColor     bool
	// Player plays feedback tones; nil or unopened disables sound.
	Player  *feedback.Player
	Sound   bool
	SaveDir string
	Log     logr.Logger
}

// Run shows the pull-to-refresh demo until the user quits or ctx ends.
func Run(ctx context.Context, sess *session.Session, opts Options) error {
	m := New(ctx, sess, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// ===== Model =====

type idleMsg struct{ seq int }

type settleMsg struct{}

type refreshDoneMsg struct {
	edge  pullrefresh.Edge
	lines []string
	err   error
}

type Model struct {
	ctx  context.Context
	sess *session.Session
	opts Options
	log  logr.Logger

	ui     state.UIState
	keys   keyMap
	styles util.Styles

	ind   indicator.Indicator
	rows  diff.DiffView
	bar   statusbar.StatusBar
	help  help.HelpOverlay
	panel noticePanel

	settling bool
	spinning bool

	// accessory heights restored by the toggle keys
	rowsFor [2]int

	copy func(string) error
	now  func() time.Time
}

func New(ctx context.Context, sess *session.Session, opts Options) *Model {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 150 * time.Millisecond
	}
	if opts.SettleFrame <= 0 {
		opts.SettleFrame = 30 * time.Millisecond
	}
	if opts.SaveDir == "" {
		opts.SaveDir = ".pullrefresh/logs"
	}
	if opts.Log.GetSink() == nil {
		opts.Log = logr.Discard()
	}
	noColor := util.NoColor(opts.NoColor)
	styles := util.NewStyles(util.DefaultPalette(), noColor)
	keys := defaultKeys()
	m := &Model{
		ctx:    ctx,
		sess:   sess,
		opts:   opts,
		log:    opts.Log.WithName("tui"),
		ui:     state.UIState{NoColor: noColor},
		keys:   keys,
		styles: styles,
		ind:    indicator.New(noColor),
		rows:   diff.NewDiffView(styles),
		bar:    statusbar.NewStatusBar(),
		help:   help.NewHelpOverlay(keys.sections()...),
		panel:  newNoticePanel(styles),
		copy:   clipboard.WriteAll,
		now:    time.Now,
	}
	for _, e := range pullrefresh.Edges {
		m.rowsFor[e] = sess.Indicator(e).Rows
	}
	if opts.Sound && m.soundAvailable() {
		m.ui.Sound = true
		sess.SetSound(opts.Player)
	}
	m.sync()
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

// Update handles all TUI interactions.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, m.wheel(1)
		case tea.MouseButtonWheelDown:
			return m, m.wheel(-1)
		}
		return m, nil

	case tea.BlurMsg:
		return m, m.afterEvent(m.sess.Cancel())

	case idleMsg:
		return m, m.afterEvent(m.sess.Idle(msg.seq))

	case settleMsg:
		if m.sess.SettleStep() {
			m.settling = false
			m.sync()
			return m, nil
		}
		m.sync()
		return m, m.settleTick()

	case refreshDoneMsg:
		if msg.err != nil {
			m.ui = state.SetNotice(m.ui, "Refresh failed: "+msg.err.Error())
		}
		return m, m.afterEvent(m.sess.Complete(msg.edge, msg.lines, msg.err))

	case spinner.TickMsg:
		if !m.refreshing() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.ind, cmd = m.ind.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.panel.searching {
		m.panel.searchKey(msg)
		m.sync()
		return nil
	}
	if m.ui.ShowHelp && !key.Matches(msg, m.keys.Quit) {
		m.ui = state.ToggleHelp(m.ui)
		return nil
	}
	m.ui = state.ClearNotice(m.ui)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
	case key.Matches(msg, m.keys.Up):
		return m.wheel(1)
	case key.Matches(msg, m.keys.Down):
		return m.wheel(-1)
	case key.Matches(msg, m.keys.PageUp):
		return m.wheel(3)
	case key.Matches(msg, m.keys.PageDown):
		return m.wheel(-3)
	case key.Matches(msg, m.keys.EndAll):
		return m.afterEvent(m.sess.EndAll())
	case key.Matches(msg, m.keys.Copy):
		m.copyFirstLine()
	case key.Matches(msg, m.keys.Top):
		m.toggleAccessory(pullrefresh.Top)
	case key.Matches(msg, m.keys.Bottom):
		m.toggleAccessory(pullrefresh.Bottom)
	case key.Matches(msg, m.keys.Notices):
		m.ui = state.ToggleNotices(m.ui)
		m.layout()
	case key.Matches(msg, m.keys.Search):
		m.panel.searching = true
		m.panel.searchBuf = ""
		if !m.ui.ShowNotices {
			m.ui = state.ToggleNotices(m.ui)
			m.layout()
		}
	case key.Matches(msg, m.keys.Next):
		m.panel.computeSearch()
		m.panel.jumpToResult(m.panel.searchPos + 1)
	case key.Matches(msg, m.keys.Prev):
		m.panel.computeSearch()
		m.panel.jumpToResult(m.panel.searchPos - 1)
	case key.Matches(msg, m.keys.Save):
		if path, err := m.panel.save(m.opts.SaveDir, m.now()); err == nil {
			m.ui = state.SetNotice(m.ui, "Saved notifications to "+path)
		} else {
			m.ui = state.SetNotice(m.ui, "Save failed: "+err.Error())
		}
	case key.Matches(msg, m.keys.Sound):
		m.toggleSound()
	}
	m.sync()
	return nil
}

// wheel delivers one tick and arms the idle timer that ends the gesture.
func (m *Model) wheel(ticks float64) tea.Cmd {
	seq := m.sess.Wheel(ticks)
	idle := tea.Tick(m.opts.IdleTimeout, func(time.Time) tea.Msg { return idleMsg{seq: seq} })
	return tea.Batch(idle, m.afterEvent(false))
}

// afterEvent starts fetches for new triggers, the settle animation and the
// spinner as needed.
func (m *Model) afterEvent(settle bool) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.sess.TakeTriggered() {
		cmds = append(cmds, m.fetchCmd(e))
	}
	if settle && !m.settling {
		m.settling = true
		cmds = append(cmds, m.settleTick())
	}
	if m.refreshing() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.ind.Tick)
	}
	m.sync()
	return tea.Batch(cmds...)
}

func (m *Model) settleTick() tea.Cmd {
	return tea.Tick(m.opts.SettleFrame, func(time.Time) tea.Msg { return settleMsg{} })
}

func (m *Model) fetchCmd(edge pullrefresh.Edge) tea.Cmd {
	ctx, sess := m.ctx, m.sess
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
		defer cancel()
		lines, err := sess.Fetch(ctx, edge)
		return refreshDoneMsg{edge: edge, lines: lines, err: err}
	}
}

func (m *Model) refreshing() bool {
	for _, e := range pullrefresh.Edges {
		if m.sess.Indicator(e).Refreshing {
			return true
		}
	}
	return false
}

func (m *Model) copyFirstLine() {
	line, ok := m.sess.FirstVisibleLine()
	if !ok {
		m.ui = state.SetNotice(m.ui, "Nothing to copy")
		return
	}
	if err := m.copy(line); err != nil {
		m.log.Error(err, "clipboard write failed")
		m.ui = state.SetNotice(m.ui, "Copy failed: "+err.Error())
		return
	}
	m.ui = state.SetNotice(m.ui, "Copied: "+line)
}

func (m *Model) toggleAccessory(edge pullrefresh.Edge) {
	if m.sess.Coordinator().Enabled(edge) {
		m.sess.SetAccessoryRows(edge, 0)
		m.ui = state.SetNotice(m.ui, edge.String()+" accessory removed")
		return
	}
	rows := m.rowsFor[edge]
	if rows <= 0 {
		rows = 2
	}
	m.sess.SetAccessoryRows(edge, rows)
	m.ui = state.SetNotice(m.ui, edge.String()+" accessory installed")
}

func (m *Model) soundAvailable() bool {
	return m.opts.Player != nil && m.opts.Player.Enabled()
}

func (m *Model) toggleSound() {
	if !m.soundAvailable() {
		m.ui = state.SetNotice(m.ui, "Sound unavailable")
		return
	}
	m.ui = state.ToggleSound(m.ui)
	if m.ui.Sound {
		m.sess.SetSound(m.opts.Player)
	} else {
		m.sess.SetSound(nil)
	}
}

func (m *Model) layout() {
	m.sess.Resize(m.ui.Width, state.ContentHeight(m.ui))
	m.panel.setWidth(m.ui.Width)
	m.sync()
}

// sync mirrors session state into the widgets' shared UI state.
func (m *Model) sync() {
	m.ui.Offset = m.sess.Surface().Offset()
	m.ui.Lines = len(m.sess.Lines())
	m.ui.Tags = util.SessionTags(m.sess)
	if m.ui.ShowNotices {
		m.panel.refresh(m.sess.Notices(0))
	}
}

// ===== Views =====

func (m *Model) View() string {
	if m.ui.ShowHelp {
		return m.help.View(m.ui)
	}
	width, _ := m.sess.Surface().Viewport()
	acc := [2][]string{}
	for _, e := range pullrefresh.Edges {
		acc[e] = m.ind.View(m.sess.Indicator(e), m.sess.State(e), width)
	}

	var b strings.Builder
	lines := m.sess.Lines()
	for _, r := range m.sess.Surface().Rows() {
		switch r.Kind {
		case surface.RowContent:
			b.WriteString(m.rows.Line(lines[r.Index], m.sess.Fresh(r.Index), width))
		case surface.RowTopAccessory:
			b.WriteString(rowOf(acc[pullrefresh.Top], r.Index))
		case surface.RowBottomAccessory:
			b.WriteString(rowOf(acc[pullrefresh.Bottom], r.Index))
		}
		b.WriteString("\n")
	}
	if m.ui.ShowNotices {
		b.WriteString(m.panel.view() + "\n")
	}
	ui := m.ui
	if s := m.panel.status(); s != "" {
		ui.Notice = strings.TrimSpace(s + "  " + ui.Notice)
	}
	b.WriteString(m.bar.View(ui))
	return b.String()
}

func rowOf(rows []string, i int) string {
	if i < 0 || i >= len(rows) {
		return ""
	}
	return rows[i]
}
