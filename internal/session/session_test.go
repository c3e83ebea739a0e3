package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"pullrefresh/internal/feed"
	"pullrefresh/internal/surface"
	"pullrefresh/pkg/pullrefresh"
)

type sounds struct{ stick, recede int }

func (s *sounds) PlayStick()  { s.stick++ }
func (s *sounds) PlayRecede() { s.recede++ }

func newSession(t *testing.T, top, bottom int) (*Session, *sounds) {
	t.Helper()
	snd := &sounds{}
	s := New(Options{
		TopRows:    top,
		BottomRows: bottom,
		Lines:      feed.Initial(20),
		Physics:    surface.DefaultConfig(),
		Source:     &feed.Generator{},
		Sound:      snd,
		Now:        func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	s.Resize(40, 10)
	return s, snd
}

func wheel(s *Session, ticks ...float64) int {
	seq := 0
	for _, t := range ticks {
		seq = s.Wheel(t)
	}
	return seq
}

func settle(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 20; i++ {
		if s.SettleStep() {
			return
		}
	}
	t.Fatalf("content did not settle, offset %v", s.Surface().Offset())
}

func texts(ns []Notice) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Edge.String() + ": " + n.Text
	}
	return out
}

func TestTopRefreshPrependsAndSettles(t *testing.T) {
	s, snd := newSession(t, 3, 2)

	seq := wheel(s, 1, 1, 1, 1)
	if got := s.State(pullrefresh.Top); got != pullrefresh.Overpulled {
		t.Fatalf("expected overpulled, got %v", got)
	}
	if !s.Indicator(pullrefresh.Top).Armed {
		t.Fatalf("indicator should be armed past the threshold")
	}
	if s.Idle(seq) {
		t.Fatalf("a stuck accessory rests in place, no settle expected")
	}
	if got := s.TakeTriggered(); !cmp.Equal(got, []pullrefresh.Edge{pullrefresh.Top}) {
		t.Fatalf("expected a top trigger, got %v", got)
	}
	if !s.Indicator(pullrefresh.Top).Refreshing {
		t.Fatalf("indicator should show refreshing")
	}
	if line, ok := s.FirstVisibleLine(); !ok || line != "line 1" {
		t.Fatalf("expected first content line below the accessory, got %q", line)
	}

	if !s.Complete(pullrefresh.Top, []string{"a", "b", "c"}, nil) {
		t.Fatalf("collapsing the top accessory should leave the content to settle")
	}
	settle(t, s)
	if off := s.Surface().Offset(); off != 0 {
		t.Fatalf("expected rest at 0, got %v", off)
	}
	if s.State(pullrefresh.Top) != pullrefresh.None {
		t.Fatalf("expected top back to none")
	}
	if s.Lines()[0] != "a" || len(s.Lines()) != 23 {
		t.Fatalf("expected prepended lines, got %d starting %q", len(s.Lines()), s.Lines()[0])
	}
	if !s.Fresh(0) || !s.Fresh(2) || s.Fresh(3) {
		t.Fatalf("only the new lines should be fresh")
	}

	want := []string{
		"top: elastic",
		"top: release to refresh",
		"top: stick",
		"top: refresh triggered",
		"top: refresh done (+3)",
		"top: recede",
	}
	if diff := cmp.Diff(want, texts(s.Notices(0))); diff != "" {
		t.Fatalf("notices mismatch (-want +got):\n%s", diff)
	}
	if snd.stick != 1 || snd.recede != 1 {
		t.Fatalf("expected one chime and one tick, got %+v", snd)
	}
}

func TestBottomRefreshFailureStillCollapses(t *testing.T) {
	s, _ := newSession(t, 3, 2)
	s.Surface().ScrollTo(10)

	seq := wheel(s, -1, -1, -1)
	if got := s.State(pullrefresh.Bottom); got != pullrefresh.Overpulled {
		t.Fatalf("expected bottom overpulled, got %v", got)
	}
	if !s.Idle(seq) {
		t.Fatalf("content pulled past the pinned accessory should settle")
	}
	settle(t, s)
	if got := s.State(pullrefresh.Bottom); got != pullrefresh.Stuck {
		t.Fatalf("expected bottom stuck, got %v", got)
	}
	if off := s.Surface().Offset(); off != 12 {
		t.Fatalf("expected the accessory pinned at 12, got %v", off)
	}
	if got := s.TakeTriggered(); !cmp.Equal(got, []pullrefresh.Edge{pullrefresh.Bottom}) {
		t.Fatalf("expected a bottom trigger, got %v", got)
	}

	if !s.Complete(pullrefresh.Bottom, nil, errors.New("boom")) {
		t.Fatalf("expected settle after collapsing the bottom accessory")
	}
	settle(t, s)
	if off := s.Surface().Offset(); off != 10 {
		t.Fatalf("expected rest at 10, got %v", off)
	}
	if len(s.Lines()) != 20 {
		t.Fatalf("failed refresh should not change content")
	}
	last := s.Notices(2)
	if last[0].Text != "refresh failed: boom" || last[1].Text != "recede" {
		t.Fatalf("unexpected tail notices: %v", texts(last))
	}
}

func TestPartialPullSettlesWithoutTrigger(t *testing.T) {
	s, snd := newSession(t, 3, 2)
	seq := wheel(s, 1, 1)
	if !s.Idle(seq) {
		t.Fatalf("partial pull should settle")
	}
	settle(t, s)
	if got := s.TakeTriggered(); len(got) != 0 {
		t.Fatalf("expected no trigger, got %v", got)
	}
	if s.State(pullrefresh.Top) != pullrefresh.None || snd.recede != 1 {
		t.Fatalf("expected a single recede back to none")
	}
}

func TestStaleIdleIsIgnored(t *testing.T) {
	s, _ := newSession(t, 3, 2)
	first := s.Wheel(1)
	s.Wheel(1)
	if s.Idle(first) {
		t.Fatalf("an idle timer from an earlier tick must not end the gesture")
	}
	if !s.Surface().GestureActive() {
		t.Fatalf("gesture should still be active")
	}
}

func TestCancelDoesNotTrigger(t *testing.T) {
	s, _ := newSession(t, 3, 2)
	wheel(s, 1, 1, 1, 1)
	if !s.Cancel() {
		t.Fatalf("cancelled overpull should settle")
	}
	if s.State(pullrefresh.Top) != pullrefresh.None {
		t.Fatalf("expected none after cancel, got %v", s.State(pullrefresh.Top))
	}
	if got := s.TakeTriggered(); len(got) != 0 {
		t.Fatalf("cancel must not trigger, got %v", got)
	}
	if s.Cancel() {
		t.Fatalf("second cancel without a gesture should be a no-op")
	}
}

func TestDisabledBottomIsSilent(t *testing.T) {
	s, _ := newSession(t, 3, 0)
	s.Surface().ScrollTo(10)
	seq := wheel(s, -1, -1, -1, -1)
	s.Idle(seq)
	settle(t, s)
	if s.State(pullrefresh.Bottom) != pullrefresh.None {
		t.Fatalf("bottom without accessory must stay none")
	}
	if n := len(s.Notices(0)); n != 0 {
		t.Fatalf("expected no notices, got %v", texts(s.Notices(0)))
	}
}

func TestRemoveAccessoryWhileStuck(t *testing.T) {
	s, _ := newSession(t, 3, 2)
	s.Idle(wheel(s, 1, 1, 1, 1))
	if s.State(pullrefresh.Top) != pullrefresh.Stuck {
		t.Fatalf("expected stuck")
	}
	s.SetAccessoryRows(pullrefresh.Top, 0)
	s.Idle(wheel(s, -1))
	if s.State(pullrefresh.Top) != pullrefresh.None {
		t.Fatalf("removed accessory should reset the edge")
	}
}

func TestFetch(t *testing.T) {
	s, _ := newSession(t, 3, 2)
	lines, err := s.Fetch(context.Background(), pullrefresh.Bottom)
	if err != nil || len(lines) != FetchSize {
		t.Fatalf("expected %d lines, got %v (%v)", FetchSize, lines, err)
	}

	empty := New(Options{TopRows: 1})
	if _, err := empty.Fetch(context.Background(), pullrefresh.Top); !errors.Is(err, feed.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

func TestNoticesAreBounded(t *testing.T) {
	s, _ := newSession(t, 3, 2)
	for i := 0; i < MaxNotices+10; i++ {
		s.notify(pullrefresh.Top, fmt.Sprintf("n%d", i))
	}
	all := s.Notices(0)
	if len(all) != MaxNotices {
		t.Fatalf("expected %d notices, got %d", MaxNotices, len(all))
	}
	if all[len(all)-1].Text != fmt.Sprintf("n%d", MaxNotices+9) {
		t.Fatalf("newest notice should be last, got %q", all[len(all)-1].Text)
	}
	if got := s.Notices(3); len(got) != 3 || got[2].Text != all[len(all)-1].Text {
		t.Fatalf("expected the three newest notices")
	}
}

func TestFreshLines(t *testing.T) {
	got := FreshLines([]string{"a", "b", "c"}, []string{"x", "a", "b", "c", "y"})
	want := map[int]bool{0: true, 4: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fresh lines mismatch (-want +got):\n%s", diff)
	}
	if got := FreshLines(nil, nil); len(got) != 0 {
		t.Fatalf("expected nothing fresh, got %v", got)
	}
}

func TestSettleYieldsToNewGesture(t *testing.T) {
	s, _ := newSession(t, 3, 2)
	s.Idle(wheel(s, 1, 1))
	s.Wheel(1)
	if !s.SettleStep() {
		t.Fatalf("settle frames should stop while a gesture is active")
	}
	if s.State(pullrefresh.Top) != pullrefresh.Elastic {
		t.Fatalf("an active pull must not be receded by a stale settle frame, got %v", s.State(pullrefresh.Top))
	}
}
