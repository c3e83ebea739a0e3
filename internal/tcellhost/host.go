// Package tcellhost runs a pull-to-refresh session directly on a tcell
// screen. Timers and finished refreshes come back to the event loop as
// interrupt events, so all session calls happen on one goroutine.
package tcellhost

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"

	"pullrefresh/internal/session"
	"pullrefresh/internal/surface"
	"pullrefresh/pkg/pullrefresh"
)

// FetchTimeout bounds a single refresh.
var FetchTimeout = 30 * time.Second

type Options struct {
	IdleTimeout time.Duration
	SettleFrame time.Duration
	NoColor     bool
	Log         logr.Logger
}

// interrupt payloads
type (
	idleTick    struct{ seq int }
	settleTick  struct{}
	quitRequest struct{}
	refreshDone struct {
		edge  pullrefresh.Edge
		lines []string
		err   error
	}
)

type Host struct {
	ctx    context.Context
	screen tcell.Screen
	sess   *session.Session
	opts   Options
	log    logr.Logger
	styles styles

	settling bool
	notice   string

	// seams for tests
	deliver func(data interface{})
	after   func(d time.Duration, fn func())
	spawn   func(fn func())
	copy    func(string) error
}

// New wraps an initialised screen.
func New(ctx context.Context, screen tcell.Screen, sess *session.Session, opts Options) *Host {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 150 * time.Millisecond
	}
	if opts.SettleFrame <= 0 {
		opts.SettleFrame = 30 * time.Millisecond
	}
	if opts.Log.GetSink() == nil {
		opts.Log = logr.Discard()
	}
	h := &Host{
		ctx:    ctx,
		screen: screen,
		sess:   sess,
		opts:   opts,
		log:    opts.Log.WithName("tcell"),
		styles: newStyles(opts.NoColor),
		after:  func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		spawn:  func(fn func()) { go fn() },
		copy:   clipboard.WriteAll,
	}
	h.deliver = func(data interface{}) {
		if err := screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
			h.log.Error(err, "event queue full, dropping interrupt")
		}
	}
	return h
}

// Run owns the screen until the user quits or ctx ends. It calls Fini.
func (h *Host) Run() error {
	defer h.screen.Fini()
	h.screen.EnableMouse()
	h.screen.Clear()
	h.resize()
	h.draw()

	// The watcher must be gone before Fini, so it never posts to a closed
	// screen.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-h.ctx.Done():
			h.deliver(quitRequest{})
		case <-stop:
		}
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !h.handle(ev) {
			return nil
		}
		h.draw()
	}
}

// handle processes one event and reports whether the loop should go on.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	case *tcell.EventMouse:
		btn := ev.Buttons()
		switch {
		case btn&tcell.WheelUp != 0:
			h.wheel(1)
		case btn&tcell.WheelDown != 0:
			h.wheel(-1)
		}
	case *tcell.EventKey:
		return h.key(ev)
	case *tcell.EventInterrupt:
		return h.interrupt(ev.Data())
	}
	return true
}

func (h *Host) key(ev *tcell.EventKey) bool {
	h.notice = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.wheel(1)
	case tcell.KeyDown:
		h.wheel(-1)
	case tcell.KeyPgUp:
		h.wheel(3)
	case tcell.KeyPgDn:
		h.wheel(-3)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			h.wheel(1)
		case 'j':
			h.wheel(-1)
		case 'e':
			h.afterEvent(h.sess.EndAll())
		case 'y':
			h.copyFirstLine()
		}
	}
	return true
}

func (h *Host) interrupt(data interface{}) bool {
	switch d := data.(type) {
	case quitRequest:
		return false
	case idleTick:
		h.afterEvent(h.sess.Idle(d.seq))
	case settleTick:
		if h.sess.SettleStep() {
			h.settling = false
			return true
		}
		h.after(h.opts.SettleFrame, func() { h.deliver(settleTick{}) })
	case refreshDone:
		if d.err != nil {
			h.notice = "refresh failed: " + d.err.Error()
		}
		h.afterEvent(h.sess.Complete(d.edge, d.lines, d.err))
	}
	return true
}

func (h *Host) wheel(ticks float64) {
	seq := h.sess.Wheel(ticks)
	h.after(h.opts.IdleTimeout, func() { h.deliver(idleTick{seq: seq}) })
	h.afterEvent(false)
}

func (h *Host) afterEvent(settle bool) {
	for _, e := range h.sess.TakeTriggered() {
		h.fetch(e)
	}
	if settle && !h.settling {
		h.settling = true
		h.after(h.opts.SettleFrame, func() { h.deliver(settleTick{}) })
	}
}

func (h *Host) fetch(edge pullrefresh.Edge) {
	ctx, sess := h.ctx, h.sess
	h.spawn(func() {
		ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
		defer cancel()
		lines, err := sess.Fetch(ctx, edge)
		h.deliver(refreshDone{edge: edge, lines: lines, err: err})
	})
}

func (h *Host) copyFirstLine() {
	line, ok := h.sess.FirstVisibleLine()
	if !ok {
		return
	}
	if err := h.copy(line); err != nil {
		h.log.Error(err, "clipboard write failed")
		h.notice = "copy failed: " + err.Error()
		return
	}
	h.notice = "copied: " + line
}

func (h *Host) resize() {
	w, ht := h.screen.Size()
	h.sess.Resize(w, max(ht-1, 1))
}

// ===== drawing =====

func (h *Host) draw() {
	h.screen.Clear()
	width, height := h.sess.Surface().Viewport()
	lines := h.sess.Lines()
	for y, r := range h.sess.Surface().Rows() {
		switch r.Kind {
		case surface.RowContent:
			gutter, st := "  ", h.styles.text
			if h.sess.Fresh(r.Index) {
				gutter, st = "+ ", h.styles.fresh
			}
			h.put(0, y, gutter+lines[r.Index], st, width)
		case surface.RowTopAccessory:
			h.drawAccessory(pullrefresh.Top, r.Index, y, width)
		case surface.RowBottomAccessory:
			h.drawAccessory(pullrefresh.Bottom, r.Index, y, width)
		}
	}
	h.put(0, height, h.statusLine(), h.styles.status, width)
	h.screen.Show()
}

func (h *Host) drawAccessory(edge pullrefresh.Edge, row, y, width int) {
	ind := h.sess.Indicator(edge)
	near := ind.Rows - 1
	if edge == pullrefresh.Bottom {
		near = 0
	}
	if row != near {
		h.put(0, y, strings.Repeat("·", width), h.styles.faint, width)
		return
	}
	msg := Label(ind, h.sess.State(edge))
	x := max((width-len([]rune(msg)))/2, 0)
	h.put(x, y, msg, h.styles.accent, width)
}

// Label is the accessory message for ind in state st.
func Label(ind session.Indicator, st pullrefresh.EdgeState) string {
	verb := "pull down to refresh"
	if ind.Edge == pullrefresh.Bottom {
		verb = "pull up to load more"
	}
	switch {
	case ind.Refreshing || st == pullrefresh.Stuck:
		return "refreshing..."
	case ind.Armed || st == pullrefresh.Overpulled:
		return "release to refresh"
	case st == pullrefresh.Elastic:
		n := int(math.Round(ind.Percent / 10))
		n = min(max(n, 0), 10)
		return "[" + strings.Repeat("#", n) + strings.Repeat(".", 10-n) + "] " + verb
	default:
		return verb
	}
}

func (h *Host) statusLine() string {
	parts := make([]string, 0, 4)
	for _, e := range pullrefresh.Edges {
		st := h.sess.State(e)
		s := fmt.Sprintf("%s:%s", e, st)
		if !h.sess.Coordinator().Enabled(e) {
			s = e.String() + ":off"
		} else if st == pullrefresh.Elastic {
			s += fmt.Sprintf(" %.0f%%", h.sess.Indicator(e).Percent)
		}
		parts = append(parts, s)
	}
	parts = append(parts, fmt.Sprintf("y=%.2f", h.sess.Surface().Offset()))
	if h.notice != "" {
		parts = append(parts, h.notice)
	}
	return strings.Join(parts, " | ")
}

func (h *Host) put(x, y int, s string, st tcell.Style, width int) {
	for _, r := range s {
		if x >= width {
			return
		}
		h.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
