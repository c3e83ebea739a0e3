package pullrefresh

// DocumentRect expands the natural content rectangle to include the
// accessory of every stuck edge, so the host's scrollable range (and its
// scrollbar) covers the pinned accessory.
func (c *Coordinator) DocumentRect(natural Rect) Rect {
	doc := natural
	if c.top.state == Stuck {
		h := c.accessory(Top).height()
		doc.Y -= h
		doc.Height += h
	}
	if c.bot.state == Stuck {
		doc.Height += c.accessory(Bottom).height()
	}
	return doc
}

// ConstrainBounds adjusts a proposed visible rectangle. A stuck accessory is
// a hard stop: scrolling toward its edge is clamped at the edge's
// MinimumScroll instead of overscrolling further.
func (c *Coordinator) ConstrainBounds(proposed Rect) Rect {
	out := proposed
	if c.top.state == Stuck {
		g := c.top.geometry()
		if out.Y <= g.ScrollBase() && g.IsOverThreshold(out) {
			out.Y = g.MinimumScroll()
		}
	}
	if c.bot.state == Stuck {
		g := c.bot.geometry()
		if out.MaxY() >= g.ScrollBase() && g.IsOverThreshold(out) {
			out.Y = g.MinimumScroll() - out.Height
		}
	}
	return out
}
