package util

import (
	"math"

	"pullrefresh/internal/session"
	"pullrefresh/internal/tui/state"
	"pullrefresh/pkg/pullrefresh"
)

// ComputeTags returns the status chip for one edge given its coordinator
// state and indicator. Exactly one tag is returned:
//   - Disabled when the edge has no accessory.
//   - Refreshing wins over Stuck while a fetch is in flight.
//   - Elastic carries the rounded elasticity percentage.
func ComputeTags(edge pullrefresh.Edge, st pullrefresh.EdgeState, ind session.Indicator, enabled bool) []state.Tag {
	tag := state.Tag{Edge: edge}
	switch {
	case !enabled:
		tag.Kind = state.DISABLED
	case st == pullrefresh.Stuck && ind.Refreshing:
		tag.Kind = state.REFRESHING
	case st == pullrefresh.Stuck:
		tag.Kind = state.STUCK
	case st == pullrefresh.Overpulled:
		tag.Kind = state.ARMED
	case st == pullrefresh.Elastic:
		tag.Kind = state.ELASTIC
		tag.Value = int(math.Round(ind.Percent))
	default:
		tag.Kind = state.RESTING
	}
	return []state.Tag{tag}
}

// SessionTags computes the chips for both edges of s.
func SessionTags(s *session.Session) []state.Tag {
	c := s.Coordinator()
	tags := make([]state.Tag, 0, len(pullrefresh.Edges))
	for _, e := range pullrefresh.Edges {
		tags = append(tags, ComputeTags(e, c.State(e), s.Indicator(e), c.Enabled(e))...)
	}
	return tags
}
