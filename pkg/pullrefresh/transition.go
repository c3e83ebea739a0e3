package pullrefresh

// EffectKind names a notification produced by a state change.
type EffectKind int

const (
	EffectRecede EffectKind = iota
	EffectEnterElasticity
	EffectElasticityPercentage
	EffectEnterValidationArea
	EffectStick
	EffectTriggered
)

func (k EffectKind) String() string {
	switch k {
	case EffectRecede:
		return "recede"
	case EffectEnterElasticity:
		return "enter-elasticity"
	case EffectElasticityPercentage:
		return "elasticity-percentage"
	case EffectEnterValidationArea:
		return "enter-validation-area"
	case EffectStick:
		return "stick"
	case EffectTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// Effect is one notification to deliver, to the accessory or (for
// EffectTriggered) to the delegate.
type Effect struct {
	Kind    EffectKind
	Edge    Edge
	Percent float64
}

// Transition returns the notifications for moving edge from old to new, in
// delivery order. Re-entering the current state produces nothing.
func Transition(edge Edge, old, new EdgeState) []Effect {
	if old == new {
		return nil
	}
	switch new {
	case None:
		return []Effect{{Kind: EffectRecede, Edge: edge}}
	case Elastic:
		return []Effect{{Kind: EffectEnterElasticity, Edge: edge}}
	case Overpulled:
		// Listeners rely on 100% arriving before the validation area.
		return []Effect{
			{Kind: EffectElasticityPercentage, Edge: edge, Percent: 100},
			{Kind: EffectEnterValidationArea, Edge: edge},
		}
	case Stuck:
		return []Effect{
			{Kind: EffectStick, Edge: edge},
			{Kind: EffectTriggered, Edge: edge},
		}
	}
	return nil
}
