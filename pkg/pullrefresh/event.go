package pullrefresh

// Phase is the phase of a scroll gesture or of its momentum tail.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseBegan
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// ScrollEvent is a raw scroll event delivered by the host.
//
// DeltaY > 0 pulls the content down, revealing what is above it (the top
// accessory); DeltaY < 0 pulls it up. Phase describes the user's gesture and
// Momentum the inertial scrolling that follows it; synthetic events carry
// PhaseNone in both.
type ScrollEvent struct {
	DeltaY   float64
	Phase    Phase
	Momentum Phase
}

// ScrollView is the host scroll container as seen by the coordinator.
type ScrollView interface {
	// DocumentRect is the natural rectangle of the content, without any
	// accessory.
	DocumentRect() Rect
	// VisibleRect is the currently visible region in document coordinates.
	VisibleRect() Rect
	// ScrollBy applies a raw scroll delta using the host's own physics.
	ScrollBy(dy float64)
	// ScrollTo moves the visible origin to y.
	ScrollTo(y float64)
	// OnBoundsChange registers fn to be called synchronously whenever the
	// visible region moves. Registering again replaces the previous fn.
	OnBoundsChange(fn func())
}
