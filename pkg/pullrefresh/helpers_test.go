package pullrefresh

import "fmt"

// fakeView is a minimal scroll container: deltas move the origin 1:1 and
// proposed bounds go through the coordinator's constraint.
type fakeView struct {
	doc      Rect
	visible  Rect
	coord    *Coordinator
	listener func()
	scrolls  []float64
}

func newFakeView(contentHeight, viewportHeight float64) *fakeView {
	return &fakeView{
		doc:     Rect{Width: 80, Height: contentHeight},
		visible: Rect{Width: 80, Height: viewportHeight},
	}
}

func (v *fakeView) DocumentRect() Rect { return v.doc }
func (v *fakeView) VisibleRect() Rect  { return v.visible }

func (v *fakeView) ScrollBy(dy float64) {
	v.scrolls = append(v.scrolls, dy)
	p := v.visible
	p.Y -= dy
	if v.coord != nil {
		p = v.coord.ConstrainBounds(p)
	}
	v.set(p)
}

func (v *fakeView) ScrollTo(y float64) {
	p := v.visible
	p.Y = y
	v.set(p)
}

func (v *fakeView) OnBoundsChange(fn func()) { v.listener = fn }

func (v *fakeView) set(r Rect) {
	v.visible = r
	if v.listener != nil {
		v.listener()
	}
}

// recorder collects every notification as a short string.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) accessory(edge Edge, height float64) *Accessory {
	return &Accessory{
		Height:                 height,
		OnRecede:               func() { r.add("%s:recede", edge) },
		OnEnterElasticity:      func() { r.add("%s:elastic", edge) },
		OnEnterValidationArea:  func() { r.add("%s:validation", edge) },
		OnElasticityPercentage: func(pct float64) { r.add("%s:pct=%.0f", edge, pct) },
		OnStick:                func() { r.add("%s:stick", edge) },
	}
}

func (r *recorder) Triggered(edge Edge) { r.add("%s:triggered", edge) }

func (r *recorder) take() []string {
	out := r.events
	r.events = nil
	return out
}

type harness struct {
	rec   *recorder
	view  *fakeView
	coord *Coordinator
	acc   map[Edge]*Accessory
}

// newHarness binds a coordinator to a fake view. A zero accessory height
// leaves that edge without an accessory.
func newHarness(contentHeight, viewportHeight, topHeight, bottomHeight float64) *harness {
	h := &harness{rec: &recorder{}, acc: map[Edge]*Accessory{}}
	if topHeight > 0 {
		h.acc[Top] = h.rec.accessory(Top, topHeight)
	}
	if bottomHeight > 0 {
		h.acc[Bottom] = h.rec.accessory(Bottom, bottomHeight)
	}
	h.view = newFakeView(contentHeight, viewportHeight)
	h.coord = New(h.rec, WithAccessories(func(e Edge) *Accessory { return h.acc[e] }))
	h.view.coord = h.coord
	h.coord.Bind(h.view)
	h.rec.take()
	return h
}

func (h *harness) gesture(deltas ...float64) {
	for i, d := range deltas {
		ph := PhaseChanged
		if i == 0 {
			ph = PhaseBegan
		}
		h.coord.ScrollWheel(ScrollEvent{DeltaY: d, Phase: ph})
	}
	h.coord.ScrollWheel(ScrollEvent{Phase: PhaseEnded})
}
