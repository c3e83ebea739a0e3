package sim

import "pullrefresh/pkg/pullrefresh"

// view is a frictionless scroll container: deltas move the origin 1:1 and
// every proposed rectangle goes through the coordinator's constraint.
type view struct {
	doc      pullrefresh.Rect
	visible  pullrefresh.Rect
	region   *pullrefresh.Coordinator
	listener func()

	// scrolls records every ScrollBy delta, corrective ones included.
	scrolls []float64
}

func newView(content, viewport float64) *view {
	return &view{
		doc:     pullrefresh.Rect{Width: 80, Height: content},
		visible: pullrefresh.Rect{Width: 80, Height: viewport},
	}
}

func (v *view) DocumentRect() pullrefresh.Rect { return v.doc }
func (v *view) VisibleRect() pullrefresh.Rect  { return v.visible }
func (v *view) OnBoundsChange(fn func())       { v.listener = fn }

func (v *view) ScrollBy(dy float64) {
	v.scrolls = append(v.scrolls, dy)
	p := v.visible
	p.Y -= dy
	if v.region != nil {
		p = v.region.ConstrainBounds(p)
	}
	v.set(p)
}

func (v *view) ScrollTo(y float64) {
	p := v.visible
	p.Y = y
	v.set(p)
}

func (v *view) set(r pullrefresh.Rect) {
	v.visible = r
	if v.listener != nil {
		v.listener()
	}
}
