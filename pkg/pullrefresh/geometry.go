package pullrefresh

// Geometry holds the inputs of the threshold and elasticity computations for
// one edge. All methods are pure and may be evaluated on every scroll tick.
type Geometry struct {
	Edge            Edge
	ContentHeight   float64
	AccessoryHeight float64
}

// ScrollBase is the resting scroll value of the edge: the top of the content
// for Top, its natural height for Bottom.
func (g Geometry) ScrollBase() float64 {
	if g.Edge == Bottom {
		return g.ContentHeight
	}
	return 0
}

// MinimumScroll is the scroll value at which the accessory is fully
// revealed. Pulling past it puts the edge in the validation area.
func (g Geometry) MinimumScroll() float64 {
	if g.Edge == Bottom {
		return g.ScrollBase() + g.AccessoryHeight
	}
	return g.ScrollBase() - g.AccessoryHeight
}

// IsOverThreshold reports whether visible has been pulled to or past
// MinimumScroll. The bottom edge is measured from the far edge of visible.
func (g Geometry) IsOverThreshold(visible Rect) bool {
	if g.Edge == Bottom {
		return visible.MaxY() >= g.MinimumScroll()
	}
	return visible.Y <= g.MinimumScroll()
}

// PullDistance is how far visible extends past the scroll base on this edge,
// or 0 when it does not reach past it.
func (g Geometry) PullDistance(visible Rect) float64 {
	var d float64
	if g.Edge == Bottom {
		d = visible.MaxY() - g.ScrollBase()
	} else {
		d = g.ScrollBase() - visible.Y
	}
	if d < 0 {
		return 0
	}
	return d
}

// ElasticityPercentage is the progress of the pull toward MinimumScroll in
// [0, 100]: 0 at rest, 100 at the threshold and beyond.
func (g Geometry) ElasticityPercentage(visible Rect) float64 {
	pull := g.PullDistance(visible)
	if g.AccessoryHeight <= 0 {
		if pull > 0 {
			return 100
		}
		return 0
	}
	return clamp(100*pull/g.AccessoryHeight, 0, 100)
}
