package tcellhost

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"pullrefresh/internal/feed"
	"pullrefresh/internal/session"
	"pullrefresh/internal/surface"
	"pullrefresh/pkg/pullrefresh"
)

type harness struct {
	t      *testing.T
	h      *Host
	screen tcell.SimulationScreen
	queue  []interface{}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sess := session.New(session.Options{
		TopRows:    3,
		BottomRows: 2,
		Lines:      feed.Initial(20),
		Physics:    surface.DefaultConfig(),
		Source:     &feed.Generator{Now: func() time.Time { return fixed }},
	})
	hr := &harness{t: t, screen: screen}
	h := New(context.Background(), screen, sess, Options{NoColor: true})
	h.deliver = func(d interface{}) { hr.queue = append(hr.queue, d) }
	h.after = func(_ time.Duration, fn func()) { fn() }
	h.spawn = func(fn func()) { fn() }
	h.copy = func(string) error { return nil }
	h.resize()
	hr.h = h
	return hr
}

func (hr *harness) wheel(btn tcell.ButtonMask, n int) {
	for i := 0; i < n; i++ {
		hr.h.handle(tcell.NewEventMouse(5, 5, btn, tcell.ModNone))
	}
}

// pump feeds queued interrupts back into the loop until it drains.
func (hr *harness) pump() {
	hr.t.Helper()
	for i := 0; len(hr.queue) > 0; i++ {
		if i > 200 {
			hr.t.Fatalf("interrupt queue did not drain")
		}
		d := hr.queue[0]
		hr.queue = hr.queue[1:]
		hr.h.handle(tcell.NewEventInterrupt(d))
	}
}

func (hr *harness) row(y int) string {
	w, _ := hr.screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := hr.screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestPullToRefreshEndToEnd(t *testing.T) {
	hr := newHarness(t)
	hr.wheel(tcell.WheelUp, 4)
	if got := hr.h.sess.State(pullrefresh.Top); got != pullrefresh.Overpulled {
		t.Fatalf("expected overpulled, got %v", got)
	}
	hr.h.draw()
	if !strings.Contains(hr.row(2), "release to refresh") {
		t.Fatalf("expected release message on the row nearest the content, got %q", hr.row(2))
	}

	hr.pump()

	if got := hr.h.sess.State(pullrefresh.Top); got != pullrefresh.None {
		t.Fatalf("expected top back to none, got %v", got)
	}
	if off := hr.h.sess.Surface().Offset(); off != 0 {
		t.Fatalf("expected rest at 0, got %v", off)
	}
	if hr.h.settling {
		t.Fatalf("settle animation should have finished")
	}
	hr.h.draw()
	if got := hr.row(0); got != "+ #001 12:00:00 item from top refresh" {
		t.Fatalf("unexpected first row %q", got)
	}
	if got := hr.row(3); got != "  line 1" {
		t.Fatalf("expected old content below the fresh lines, got %q", got)
	}
	if status := hr.row(11); !strings.HasPrefix(status, "top:none | bottom:none | y=0.00") {
		t.Fatalf("unexpected status %q", status)
	}
}

func TestElasticLabel(t *testing.T) {
	got := Label(session.Indicator{Edge: pullrefresh.Top, Rows: 3, Percent: 50}, pullrefresh.Elastic)
	if got != "[#####.....] pull down to refresh" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := Label(session.Indicator{Edge: pullrefresh.Bottom}, pullrefresh.None); got != "pull up to load more" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestShortPullDoesNotRefresh(t *testing.T) {
	hr := newHarness(t)
	hr.wheel(tcell.WheelUp, 2)
	hr.h.draw()
	if status := hr.row(11); !strings.HasPrefix(status, "top:elastic 50%") {
		t.Fatalf("unexpected status %q", status)
	}
	hr.pump()
	if len(hr.h.sess.Lines()) != 20 {
		t.Fatalf("short pull must not refresh")
	}
	if off := hr.h.sess.Surface().Offset(); off != 0 {
		t.Fatalf("expected rest at 0, got %v", off)
	}
}

func TestQuitInterrupt(t *testing.T) {
	hr := newHarness(t)
	if hr.h.handle(tcell.NewEventInterrupt(quitRequest{})) {
		t.Fatalf("quit request should stop the loop")
	}
	if !hr.h.handle(tcell.NewEventInterrupt("unknown")) {
		t.Fatalf("unknown interrupts should be ignored")
	}
}

func runScreen(t *testing.T) (tcell.SimulationScreen, *session.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(40, 12)
	sess := session.New(session.Options{TopRows: 3, Lines: feed.Initial(5)})
	return screen, sess
}

func waitRun(t *testing.T, h *Host) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- h.Run() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not return")
	}
}

func TestRunQuitStopsContextWatcher(t *testing.T) {
	screen, sess := runScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := New(ctx, screen, sess, Options{NoColor: true})
	var mu sync.Mutex
	posted := 0
	h.deliver = func(interface{}) {
		mu.Lock()
		posted++
		mu.Unlock()
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	waitRun(t, h)

	cancel()
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if posted != 0 {
		t.Fatalf("nothing may be posted after the loop exits, got %d", posted)
	}
}

func TestRunEndsWithContext(t *testing.T) {
	screen, sess := runScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	waitRun(t, New(ctx, screen, sess, Options{NoColor: true}))
}

func TestResizeFollowsScreen(t *testing.T) {
	hr := newHarness(t)
	hr.screen.SetSize(60, 20)
	hr.h.handle(tcell.NewEventResize(60, 20))
	if w, h := hr.h.sess.Surface().Viewport(); w != 60 || h != 19 {
		t.Fatalf("expected 60x19 viewport, got %dx%d", w, h)
	}
}
