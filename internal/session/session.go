// Package session wires a scroll surface, a pull-to-refresh coordinator and
// a feed into one host-agnostic unit. Terminal hosts forward input to it,
// schedule the timers it asks for, and render from its accessors.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"pullrefresh/internal/feed"
	"pullrefresh/internal/logging"
	"pullrefresh/internal/surface"
	"pullrefresh/pkg/pullrefresh"
)

// FetchSize is how many lines one refresh asks the feed for.
const FetchSize = 3

// MaxNotices bounds the notification history.
const MaxNotices = 50

// Sounder plays feedback tones. *feedback.Player satisfies it.
type Sounder interface {
	PlayStick()
	PlayRecede()
}

// Indicator is what an accessory shows. The coordinator's hooks keep it
// current.
type Indicator struct {
	Edge       pullrefresh.Edge
	Rows       int
	Percent    float64
	Armed      bool
	Refreshing bool
}

// Options configures New.
type Options struct {
	TopRows    int
	BottomRows int
	Lines      []string
	Physics    surface.Config
	Source     feed.Source
	Sound      Sounder
	Log        logr.Logger
	Now        func() time.Time
}

type Session struct {
	surf   *surface.Surface
	coord  *pullrefresh.Coordinator
	source feed.Source
	sound  Sounder
	log    logr.Logger
	now    func() time.Time

	accessories [2]*pullrefresh.Accessory
	indicators  [2]Indicator

	lines []string
	fresh map[int]bool

	triggered []pullrefresh.Edge
	notices   []Notice
}

// New builds a bound session. A rows value of 0 leaves that edge without an
// accessory, which disables it.
func New(opts Options) *Session {
	s := &Session{
		surf:   surface.New(opts.Physics),
		source: opts.Source,
		sound:  opts.Sound,
		log:    opts.Log,
		now:    opts.Now,
		lines:  append([]string(nil), opts.Lines...),
		fresh:  map[int]bool{},
	}
	if s.log.GetSink() == nil {
		s.log = logr.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.SetAccessoryRows(pullrefresh.Top, opts.TopRows)
	s.SetAccessoryRows(pullrefresh.Bottom, opts.BottomRows)

	s.coord = pullrefresh.New(pullrefresh.DelegateFunc(s.triggeredBy),
		pullrefresh.WithAccessories(func(e pullrefresh.Edge) *pullrefresh.Accessory { return s.accessories[e] }),
		pullrefresh.WithLogger(s.log.WithName("coordinator")))
	s.surf.Attach(s.coord)
	s.surf.SetContent(len(s.lines))
	s.coord.Bind(s.surf)
	return s
}

// SetAccessoryRows installs, resizes or (rows <= 0) removes the accessory
// on edge. The coordinator picks the change up on the next event.
func (s *Session) SetAccessoryRows(edge pullrefresh.Edge, rows int) {
	s.indicators[edge] = Indicator{Edge: edge, Rows: max(rows, 0)}
	if rows <= 0 {
		s.accessories[edge] = nil
		return
	}
	s.accessories[edge] = s.newAccessory(edge, rows)
	if s.coord != nil {
		s.coord.Layout()
	}
}

func (s *Session) newAccessory(edge pullrefresh.Edge, rows int) *pullrefresh.Accessory {
	ind := &s.indicators[edge]
	return &pullrefresh.Accessory{
		Height: float64(rows),
		OnRecede: func() {
			ind.Percent, ind.Armed = 0, false
			s.notify(edge, "recede")
			if s.sound != nil {
				s.sound.PlayRecede()
			}
		},
		OnEnterElasticity: func() {
			ind.Percent, ind.Armed = 0, false
			s.notify(edge, "elastic")
		},
		OnElasticityPercentage: func(pct float64) { ind.Percent = pct },
		OnEnterValidationArea: func() {
			ind.Armed = true
			s.notify(edge, "release to refresh")
		},
		OnStick: func() {
			ind.Percent, ind.Armed = 100, false
			s.notify(edge, "stick")
			if s.sound != nil {
				s.sound.PlayStick()
			}
		},
	}
}

func (s *Session) triggeredBy(edge pullrefresh.Edge) {
	s.indicators[edge].Refreshing = true
	s.triggered = append(s.triggered, edge)
	s.notify(edge, "refresh triggered")
}

// SetSound swaps the feedback player; nil mutes.
func (s *Session) SetSound(snd Sounder) { s.sound = snd }

// TakeTriggered returns and clears the edges triggered since the last call.
// The host starts one Fetch per edge.
func (s *Session) TakeTriggered() []pullrefresh.Edge {
	out := s.triggered
	s.triggered = nil
	return out
}

// Resize sets the viewport size and re-lays out the accessories.
func (s *Session) Resize(width, height int) {
	s.surf.SetViewport(width, height)
	s.coord.Layout()
}

// Wheel delivers one wheel tick (ticks > 0 pulls the content down). The
// returned sequence number is passed to Idle once the idle timeout elapses.
func (s *Session) Wheel(ticks float64) int {
	ev, seq := s.surf.Wheel(ticks)
	s.coord.ScrollWheel(ev)
	return seq
}

// Idle ends the gesture started by Wheel if seq is still current. It
// reports whether the content now needs settle frames.
func (s *Session) Idle(seq int) bool {
	ev, ok := s.surf.Idle(seq)
	if !ok {
		return false
	}
	s.coord.ScrollWheel(ev)
	return s.surf.Settling()
}

// Cancel aborts the current gesture, as when the terminal loses focus.
func (s *Session) Cancel() bool {
	ev, ok := s.surf.Cancel()
	if !ok {
		return false
	}
	s.coord.ScrollWheel(ev)
	return s.surf.Settling()
}

// SettleStep advances one settle frame. It returns true once no further
// frames are needed: the content has come to rest (the momentum-ended event
// is then delivered) or a new gesture has taken over.
func (s *Session) SettleStep() bool {
	if s.surf.GestureActive() {
		return true
	}
	if !s.surf.SettleStep() {
		return false
	}
	s.coord.ScrollWheel(surface.MomentumEnded())
	return true
}

// Fetch asks the feed for new lines for edge. It is safe to call from a
// goroutine; pass the result to Complete on the host's loop.
func (s *Session) Fetch(ctx context.Context, edge pullrefresh.Edge) ([]string, error) {
	if s.source == nil {
		return nil, feed.ErrNoSource
	}
	lines, err := s.source.Fetch(ctx, edge, FetchSize)
	if err != nil {
		return nil, fmt.Errorf("refresh %s: %w", edge, err)
	}
	return lines, nil
}

// Complete merges a finished refresh and collapses its accessory. It
// reports whether the content needs settle frames afterwards. A failed
// refresh still collapses the accessory.
func (s *Session) Complete(edge pullrefresh.Edge, lines []string, err error) bool {
	s.indicators[edge].Refreshing = false
	if err != nil {
		s.log.Error(err, "refresh failed", "edge", edge)
		s.notify(edge, "refresh failed: "+err.Error())
	} else {
		s.merge(edge, lines)
		s.notify(edge, fmt.Sprintf("refresh done (+%d)", len(lines)))
		s.log.V(logging.VERBOSE).Info("refresh done", "edge", edge, "lines", len(lines))
	}
	s.coord.EndAction(edge)
	return s.surf.Settling()
}

// EndAll collapses every stuck edge without new content.
func (s *Session) EndAll() bool {
	for _, e := range pullrefresh.Edges {
		s.indicators[e].Refreshing = false
	}
	s.coord.EndActions()
	return s.surf.Settling()
}

func (s *Session) merge(edge pullrefresh.Edge, lines []string) {
	next := make([]string, 0, len(s.lines)+len(lines))
	if edge == pullrefresh.Top {
		next = append(append(next, lines...), s.lines...)
	} else {
		next = append(append(next, s.lines...), lines...)
	}
	s.fresh = FreshLines(s.lines, next)
	s.lines = next
	s.surf.SetContent(len(s.lines))
	s.coord.Layout()
}

// Accessors used by renderers.

func (s *Session) Coordinator() *pullrefresh.Coordinator { return s.coord }
func (s *Session) Surface() *surface.Surface              { return s.surf }
func (s *Session) Lines() []string                        { return s.lines }
func (s *Session) Fresh(i int) bool                       { return s.fresh[i] }

func (s *Session) Indicator(edge pullrefresh.Edge) Indicator { return s.indicators[edge] }

func (s *Session) State(edge pullrefresh.Edge) pullrefresh.EdgeState {
	return s.coord.State(edge)
}

// FirstVisibleLine is the topmost content line in the viewport.
func (s *Session) FirstVisibleLine() (string, bool) {
	for _, r := range s.surf.Rows() {
		if r.Kind == surface.RowContent {
			return s.lines[r.Index], true
		}
	}
	return "", false
}
