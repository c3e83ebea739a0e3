package pullrefresh

// Rect is an axis-aligned rectangle in document coordinates. Y grows
// downward: the top of the content is Y == 0.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MaxY returns the far (bottom) edge of r.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// MaxX returns the right edge of r.
func (r Rect) MaxX() float64 { return r.X + r.Width }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
