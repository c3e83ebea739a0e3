package surface

import (
	"math"

	"pullrefresh/pkg/pullrefresh"
)

// Wheel turns one wheel tick into a scroll event. ticks > 0 scrolls toward
// the top of the content. The first tick after an idle period begins a
// gesture; the host must call Idle with the returned sequence number once
// no further tick arrived within its idle timeout.
func (s *Surface) Wheel(ticks float64) (pullrefresh.ScrollEvent, int) {
	phase := pullrefresh.PhaseChanged
	if !s.gestureActive {
		s.gestureActive = true
		phase = pullrefresh.PhaseBegan
	}
	s.gestureSeq++
	return pullrefresh.ScrollEvent{DeltaY: ticks * s.cfg.WheelStep, Phase: phase}, s.gestureSeq
}

// Idle ends the gesture if seq is still the latest tick. The returned event
// must be delivered to the coordinator.
func (s *Surface) Idle(seq int) (pullrefresh.ScrollEvent, bool) {
	if !s.gestureActive || seq != s.gestureSeq {
		return pullrefresh.ScrollEvent{}, false
	}
	s.gestureActive = false
	return pullrefresh.ScrollEvent{Phase: pullrefresh.PhaseEnded}, true
}

// GestureActive reports whether wheel ticks are still arriving.
func (s *Surface) GestureActive() bool { return s.gestureActive }

// Settling reports whether the content rests outside its rest range with no
// gesture holding it there.
func (s *Surface) Settling() bool {
	if s.gestureActive {
		return false
	}
	lo, hi := s.RestRange()
	return s.y < lo || s.y > hi
}

// SettleStep moves the content one animation frame toward its rest range.
// It returns true once the content is at rest; the host then delivers
// MomentumEnded.
func (s *Surface) SettleStep() bool {
	if !s.Settling() {
		return true
	}
	lo, hi := s.RestRange()
	target := lo
	if s.y > hi {
		target = hi
	}
	dist := target - s.y
	if math.Abs(dist) <= 0.5 {
		s.ScrollTo(target)
		return true
	}
	s.ScrollTo(s.y + dist*s.cfg.SettleRatio)
	return false
}

// MomentumEnded is the event closing a settle animation.
func MomentumEnded() pullrefresh.ScrollEvent {
	return pullrefresh.ScrollEvent{Momentum: pullrefresh.PhaseEnded}
}

// Cancel aborts the active gesture. The returned event must be delivered to
// the coordinator.
func (s *Surface) Cancel() (pullrefresh.ScrollEvent, bool) {
	if !s.gestureActive {
		return pullrefresh.ScrollEvent{}, false
	}
	s.gestureActive = false
	s.gestureSeq++
	return pullrefresh.ScrollEvent{Phase: pullrefresh.PhaseCancelled}, true
}
