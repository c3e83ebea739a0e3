// Package surface is a row-based scroll container for terminal hosts. It
// supplies the physics a native scroll view would (elastic resistance past
// the ends, settling back to rest) and turns discrete wheel ticks into
// gesture phases for the pull-to-refresh coordinator.
package surface

import (
	"math"

	"pullrefresh/pkg/pullrefresh"
)

// Region is the part of the coordinator the surface consults while moving.
type Region interface {
	DocumentRect(natural pullrefresh.Rect) pullrefresh.Rect
	ConstrainBounds(proposed pullrefresh.Rect) pullrefresh.Rect
	Accessory(edge pullrefresh.Edge) *pullrefresh.Accessory
}

// Config tunes the physics.
type Config struct {
	// WheelStep is the number of rows one wheel tick pulls.
	WheelStep float64
	// Resistance scales movement past the rest range, in (0, 1].
	Resistance float64
	// MaxOverscroll caps how far past the rest range the content can be
	// pulled, in rows.
	MaxOverscroll float64
	// SettleRatio is the share of the remaining distance covered by each
	// settle step, in (0, 1].
	SettleRatio float64
}

// DefaultConfig returns the physics used by the demo hosts.
func DefaultConfig() Config {
	return Config{WheelStep: 1, Resistance: 0.75, MaxOverscroll: 8, SettleRatio: 0.5}
}

// Surface implements pullrefresh.ScrollView over a document of Lines rows.
type Surface struct {
	cfg    Config
	region Region

	lines  int
	width  int
	height int
	y      float64

	listener func()

	gestureActive bool
	gestureSeq    int
}

// New returns an empty surface. Attach a Region before binding a
// coordinator to it.
func New(cfg Config) *Surface {
	def := DefaultConfig()
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = def.WheelStep
	}
	if cfg.Resistance <= 0 || cfg.Resistance > 1 {
		cfg.Resistance = def.Resistance
	}
	if cfg.MaxOverscroll <= 0 {
		cfg.MaxOverscroll = def.MaxOverscroll
	}
	if cfg.SettleRatio <= 0 || cfg.SettleRatio > 1 {
		cfg.SettleRatio = def.SettleRatio
	}
	return &Surface{cfg: cfg}
}

// Attach sets the region consulted for the expanded document and the
// constrained bounds.
func (s *Surface) Attach(r Region) { s.region = r }

// SetContent sets the number of content rows.
func (s *Surface) SetContent(lines int) {
	if lines < 0 {
		lines = 0
	}
	s.lines = lines
}

// SetViewport sets the visible size in cells.
func (s *Surface) SetViewport(width, height int) {
	if height < 1 {
		height = 1
	}
	s.width, s.height = width, height
}

// Lines returns the number of content rows.
func (s *Surface) Lines() int { return s.lines }

// Offset returns the current visible origin.
func (s *Surface) Offset() float64 { return s.y }

// Viewport returns the visible size.
func (s *Surface) Viewport() (width, height int) { return s.width, s.height }

// DocumentRect is at least as tall as the viewport, like a table view
// filling its clip view, so a short document rests at both extremes.
func (s *Surface) DocumentRect() pullrefresh.Rect {
	h := s.lines
	if h < s.height {
		h = s.height
	}
	return pullrefresh.Rect{Width: float64(s.width), Height: float64(h)}
}

func (s *Surface) VisibleRect() pullrefresh.Rect {
	return pullrefresh.Rect{Y: s.y, Width: float64(s.width), Height: float64(s.height)}
}

func (s *Surface) OnBoundsChange(fn func()) { s.listener = fn }

func (s *Surface) ScrollTo(y float64) {
	s.setOffset(y)
}

// ScrollBy moves the content by dy rows (dy > 0 reveals what is above).
// Movement past the rest range is resisted and capped.
func (s *Surface) ScrollBy(dy float64) {
	lo, hi := s.RestRange()
	next := s.elastic(s.y, -dy, lo, hi)
	proposed := s.VisibleRect()
	proposed.Y = next
	if s.region != nil {
		proposed = s.region.ConstrainBounds(proposed)
	}
	s.setOffset(proposed.Y)
}

func (s *Surface) elastic(y, move, lo, hi float64) float64 {
	next := y + move
	r := s.cfg.Resistance
	switch {
	case move < 0 && next < lo:
		start := math.Min(y, lo)
		next = start + (next-start)*r
		next = math.Max(next, lo-s.cfg.MaxOverscroll)
	case move > 0 && next > hi:
		start := math.Max(y, hi)
		next = start + (next-start)*r
		next = math.Min(next, hi+s.cfg.MaxOverscroll)
	}
	return next
}

// RestRange is the span of origins the content may rest at, including any
// stuck accessory.
func (s *Surface) RestRange() (lo, hi float64) {
	doc := s.DocumentRect()
	if s.region != nil {
		doc = s.region.DocumentRect(doc)
	}
	lo = doc.Y
	hi = doc.MaxY() - float64(s.height)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// setOffset always notifies, even for a zero move: the coordinator re-checks
// thresholds on every scroll request.
func (s *Surface) setOffset(y float64) {
	s.y = y
	if s.listener != nil {
		s.listener()
	}
}
