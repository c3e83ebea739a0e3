package pullrefresh

// edgeHost is what a controller needs from its coordinator. The controller
// does not own it.
type edgeHost interface {
	accessory(edge Edge) *Accessory
	visibleRect() (Rect, bool)
	contentHeight() float64
	apply(edge Edge, old, new EdgeState)
	nudge(edge Edge)
}

// controller is the overscroll state machine of one edge.
type controller struct {
	host  edgeHost
	edge  Edge
	state EdgeState
}

func newController(host edgeHost, edge Edge) *controller {
	return &controller{host: host, edge: edge}
}

func (c *controller) accessory() *Accessory { return c.host.accessory(c.edge) }

// enabled reports whether the edge has an accessory to reveal. A zero
// height would put the threshold at rest.
func (c *controller) enabled() bool { return c.accessory().height() > 0 }

func (c *controller) geometry() Geometry {
	return Geometry{
		Edge:            c.edge,
		ContentHeight:   c.host.contentHeight(),
		AccessoryHeight: c.accessory().height(),
	}
}

func (c *controller) setState(s EdgeState) {
	old := c.state
	if old == s {
		return
	}
	c.state = s
	c.host.apply(c.edge, old, s)
}

// sync drops the edge back to None once its accessory has gone away.
func (c *controller) sync() {
	if c.state != None && !c.enabled() {
		c.setState(None)
	}
}

func (c *controller) overThreshold() bool {
	visible, ok := c.host.visibleRect()
	if !ok {
		return false
	}
	return c.geometry().IsOverThreshold(visible)
}

// atExtreme reports whether the container is scrolled all the way to this
// edge.
func (c *controller) atExtreme() bool {
	visible, ok := c.host.visibleRect()
	if !ok {
		return false
	}
	g := c.geometry()
	if c.edge == Bottom {
		return visible.MaxY() >= g.ScrollBase()
	}
	return visible.Y <= g.ScrollBase()
}

func (c *controller) pullsToward(deltaY float64) bool {
	if c.edge == Bottom {
		return deltaY < 0
	}
	return deltaY > 0
}

func (c *controller) gestureBegan(deltaY float64) {
	if c.state == Stuck || !c.enabled() {
		return
	}
	if c.pullsToward(deltaY) && c.atExtreme() {
		c.setState(Elastic)
	}
}

func (c *controller) boundsChanged() {
	if c.state == Stuck || !c.enabled() {
		return
	}
	if c.overThreshold() {
		c.setState(Overpulled)
	}
}

// elasticityPercentage is the continuous progress signal; it is not an edge
// trigger and fires on every call while elastic.
func (c *controller) elasticityPercentage() {
	if c.state != Elastic || !c.enabled() {
		return
	}
	visible, ok := c.host.visibleRect()
	if !ok {
		return
	}
	c.accessory().elasticityPercentage(c.geometry().ElasticityPercentage(visible))
}

func (c *controller) gestureEnded() {
	if c.state == Stuck {
		return
	}
	if c.enabled() && c.overThreshold() {
		c.setState(Stuck)
		return
	}
	c.setState(None)
}

func (c *controller) gestureCancelled() {
	if c.state != Stuck {
		c.setState(None)
	}
}

func (c *controller) momentumEnded() {
	if c.state != Stuck {
		c.setState(None)
	}
}

// resetScroll collapses a stuck edge and nudges the content toward rest if
// it is still visibly offset on this edge.
func (c *controller) resetScroll() {
	if c.state != Stuck {
		return
	}
	c.setState(None)

	visible, ok := c.host.visibleRect()
	if !ok {
		return
	}
	base := c.geometry().ScrollBase()
	if (c.edge == Top && visible.Y < base) || (c.edge == Bottom && visible.MaxY() > base) {
		c.host.nudge(c.edge)
	}
}
