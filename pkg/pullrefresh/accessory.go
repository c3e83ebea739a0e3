package pullrefresh

// Accessory is the indicator revealed while pulling an edge. Every hook is
// optional; a nil hook is a no-op.
//
// The coordinator never keeps an Accessory between events: it asks the
// accessory lookup again every time, so a host may swap or remove
// accessories at any moment.
type Accessory struct {
	// Height is the natural height of the accessory. It sets the distance
	// the edge must be pulled before a release triggers. An accessory
	// with Height <= 0 leaves its edge disabled.
	Height float64
	// Frame is assigned by the coordinator when it places the accessory
	// just outside the content bounds.
	Frame Rect

	// OnRecede fires when the accessory retreats out of the visible area.
	OnRecede func()
	// OnEnterElasticity fires when the accessory starts being pulled in.
	OnEnterElasticity func()
	// OnEnterValidationArea fires once the pull is far enough that a
	// release would trigger. The user may still push it back.
	OnEnterValidationArea func()
	// OnElasticityPercentage reports pull progress in [0, 100]. It fires on
	// every scroll event while the edge is elastic.
	OnElasticityPercentage func(pct float64)
	// OnStick fires when a release in the validation area pins the
	// accessory. It should only update the view; the refresh itself
	// belongs to the Delegate.
	OnStick func()
}

func (a *Accessory) recede() {
	if a != nil && a.OnRecede != nil {
		a.OnRecede()
	}
}

func (a *Accessory) enterElasticity() {
	if a != nil && a.OnEnterElasticity != nil {
		a.OnEnterElasticity()
	}
}

func (a *Accessory) enterValidationArea() {
	if a != nil && a.OnEnterValidationArea != nil {
		a.OnEnterValidationArea()
	}
}

func (a *Accessory) elasticityPercentage(pct float64) {
	if a != nil && a.OnElasticityPercentage != nil {
		a.OnElasticityPercentage(pct)
	}
}

func (a *Accessory) stick() {
	if a != nil && a.OnStick != nil {
		a.OnStick()
	}
}

func (a *Accessory) height() float64 {
	if a == nil {
		return 0
	}
	return a.Height
}

// Delegate is notified when an edge sticks. Triggered is called exactly once
// per transition into Stuck; the delegate starts its refresh and later calls
// EndAction on the event goroutine.
type Delegate interface {
	Triggered(edge Edge)
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(edge Edge)

// Triggered calls f(edge).
func (f DelegateFunc) Triggered(edge Edge) {
	if f != nil {
		f(edge)
	}
}
