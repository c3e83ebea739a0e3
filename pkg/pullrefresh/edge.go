// Package pullrefresh implements pull-to-refresh and pull-to-load behaviour
// for a vertically scrolling container.
//
// A Coordinator owns one state machine per edge. The host feeds it raw
// scroll events and bounds changes; the coordinator decides when an edge
// becomes elastic, enters the validation area, sticks, and recedes, and
// notifies the edge's Accessory and the Delegate accordingly.
package pullrefresh

import "fmt"

// Edge identifies the boundary of the content an edge controller governs.
type Edge int

const (
	Top Edge = iota
	Bottom
)

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// Edges lists both edges in dispatch order.
var Edges = [...]Edge{Top, Bottom}

// EdgeState is the overscroll state of one edge.
type EdgeState int

const (
	// None: the accessory is hidden or receding.
	None EdgeState = iota
	// Elastic: the accessory is being pulled into view, below the threshold.
	Elastic
	// Overpulled: pulled past the threshold, gesture not yet released.
	Overpulled
	// Stuck: released past the threshold; pinned until EndAction.
	Stuck
)

func (s EdgeState) String() string {
	switch s {
	case None:
		return "none"
	case Elastic:
		return "elastic"
	case Overpulled:
		return "overpulled"
	case Stuck:
		return "stuck"
	default:
		return fmt.Sprintf("EdgeState(%d)", int(s))
	}
}
