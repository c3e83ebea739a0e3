package state

import "pullrefresh/pkg/pullrefresh"

// TagKind enumerates the edge status chips.
type TagKind int

const (
	// One per edge, in this order of precedence.
	DISABLED TagKind = iota
	RESTING
	ELASTIC
	ARMED
	STUCK
	REFRESHING
)

// Tag is a single status chip. Value carries the elasticity percentage for
// ELASTIC and is 0 otherwise.
type Tag struct {
	Kind  TagKind
	Edge  pullrefresh.Edge
	Value int
}
