package pullrefresh

import (
	"github.com/go-logr/logr"

	"pullrefresh/internal/logging"
)

// DefaultNudge is the size of the synthetic scroll EndAction issues to start
// the content moving back to rest.
const DefaultNudge = 1

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithAccessories sets the accessory lookup. It is called on every access,
// never cached; returning nil, or an accessory without height, disables the
// edge.
func WithAccessories(lookup func(edge Edge) *Accessory) Option {
	return func(c *Coordinator) { c.lookup = lookup }
}

// WithLogger sets the logger. State changes are logged at
// logging.DEBUG, triggers at logging.VERBOSE.
func WithLogger(log logr.Logger) Option {
	return func(c *Coordinator) { c.log = log }
}

// WithNudge sets the magnitude of the corrective scroll issued by EndAction.
func WithNudge(delta float64) Option {
	return func(c *Coordinator) {
		if delta > 0 {
			c.nudgeDelta = delta
		}
	}
}

// Coordinator drives the top and bottom edge controllers of one scroll view.
//
// All methods must be called from the goroutine that delivers scroll events.
type Coordinator struct {
	delegate   Delegate
	lookup     func(Edge) *Accessory
	log        logr.Logger
	nudgeDelta float64

	view ScrollView
	top  *controller
	bot  *controller
}

// New returns a coordinator reporting triggers to delegate. It does nothing
// until bound to a view with Bind.
func New(delegate Delegate, opts ...Option) *Coordinator {
	c := &Coordinator{
		delegate:   delegate,
		log:        logr.Discard(),
		nudgeDelta: DefaultNudge,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.top = newController(c, Top)
	c.bot = newController(c, Bottom)
	return c
}

func (c *Coordinator) controller(edge Edge) *controller {
	if edge == Bottom {
		return c.bot
	}
	return c.top
}

// State returns the current state of edge.
func (c *Coordinator) State(edge Edge) EdgeState { return c.controller(edge).state }

// Enabled reports whether edge currently has an accessory with height.
func (c *Coordinator) Enabled(edge Edge) bool { return c.controller(edge).enabled() }

// Accessory returns the accessory currently supplied for edge, or nil.
func (c *Coordinator) Accessory(edge Edge) *Accessory { return c.accessory(edge) }

// Geometry returns the current geometry inputs of edge.
func (c *Coordinator) Geometry(edge Edge) Geometry { return c.controller(edge).geometry() }

// Bind attaches the coordinator to view: it becomes the view's bounds
// listener, both edges return to None, accessories are placed just outside
// the content and the view is scrolled back to the origin.
func (c *Coordinator) Bind(view ScrollView) {
	c.view = view
	for _, e := range Edges {
		c.controller(e).setState(None)
	}
	if view == nil {
		return
	}
	view.OnBoundsChange(c.BoundsChanged)
	c.Layout()
	view.ScrollTo(view.DocumentRect().Y)
}

// Layout places each enabled accessory immediately outside the content on
// its edge, as wide as the content. Hosts call it again after the content
// size changes.
func (c *Coordinator) Layout() {
	if c.view == nil {
		return
	}
	doc := c.view.DocumentRect()
	if a := c.accessory(Top); a != nil {
		a.Frame = Rect{X: doc.X, Y: doc.Y - a.Height, Width: doc.Width, Height: a.Height}
	}
	if a := c.accessory(Bottom); a != nil {
		a.Frame = Rect{X: doc.X, Y: doc.MaxY(), Width: doc.Width, Height: a.Height}
	}
}

// ScrollWheel feeds one raw scroll event through both edges.
func (c *Coordinator) ScrollWheel(ev ScrollEvent) {
	if c.view == nil {
		return
	}
	c.sync()

	if ev.Phase == PhaseBegan {
		for _, e := range Edges {
			c.controller(e).gestureBegan(ev.DeltaY)
		}
	}

	c.view.ScrollBy(ev.DeltaY)

	// Phase-only events do not move the content, so progress is unchanged.
	if ev.DeltaY != 0 {
		for _, e := range Edges {
			c.controller(e).elasticityPercentage()
		}
	}

	switch ev.Phase {
	case PhaseEnded:
		for _, e := range Edges {
			c.controller(e).gestureEnded()
		}
	case PhaseCancelled:
		for _, e := range Edges {
			c.controller(e).gestureCancelled()
		}
	}

	if ev.Momentum == PhaseEnded {
		for _, e := range Edges {
			c.controller(e).momentumEnded()
		}
	}
}

// BoundsChanged is the view's bounds listener. Bind registers it; hosts
// that track bounds themselves may call it directly.
func (c *Coordinator) BoundsChanged() {
	if c.view == nil {
		return
	}
	c.sync()
	for _, e := range Edges {
		c.controller(e).boundsChanged()
	}
}

// EndAction collapses edge if it is stuck. Call it once the refresh started
// by Delegate.Triggered has finished. It is a no-op otherwise.
func (c *Coordinator) EndAction(edge Edge) {
	c.controller(edge).resetScroll()
}

// EndActions calls EndAction for both edges.
func (c *Coordinator) EndActions() {
	for _, e := range Edges {
		c.EndAction(e)
	}
}

func (c *Coordinator) sync() {
	for _, e := range Edges {
		c.controller(e).sync()
	}
}

// edgeHost

func (c *Coordinator) accessory(edge Edge) *Accessory {
	if c.lookup == nil {
		return nil
	}
	return c.lookup(edge)
}

func (c *Coordinator) visibleRect() (Rect, bool) {
	if c.view == nil {
		return Rect{}, false
	}
	return c.view.VisibleRect(), true
}

func (c *Coordinator) contentHeight() float64 {
	if c.view == nil {
		return 0
	}
	return c.view.DocumentRect().Height
}

func (c *Coordinator) apply(edge Edge, old, new EdgeState) {
	c.log.V(logging.DEBUG).Info("edge state changed", "edge", edge, "from", old, "to", new)
	acc := c.accessory(edge)
	for _, ef := range Transition(edge, old, new) {
		switch ef.Kind {
		case EffectRecede:
			acc.recede()
		case EffectEnterElasticity:
			acc.enterElasticity()
		case EffectElasticityPercentage:
			acc.elasticityPercentage(ef.Percent)
		case EffectEnterValidationArea:
			acc.enterValidationArea()
		case EffectStick:
			acc.stick()
		case EffectTriggered:
			c.log.V(logging.VERBOSE).Info("refresh triggered", "edge", edge)
			if c.delegate != nil {
				c.delegate.Triggered(edge)
			}
		}
	}
}

func (c *Coordinator) nudge(edge Edge) {
	delta := c.nudgeDelta
	if edge == Top {
		// The top rest position has a larger origin than the pinned accessory.
		delta = -delta
	}
	c.ScrollWheel(ScrollEvent{DeltaY: delta})
}
