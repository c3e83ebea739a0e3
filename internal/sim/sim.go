// Package sim replays scripted scroll sequences against a coordinator and
// records every notification it emits.
package sim

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-logr/logr"

	"pullrefresh/pkg/pullrefresh"
)

// StepKind selects what a Step feeds the coordinator.
type StepKind int

const (
	// StepGesture sends Deltas as began/changed events and then ends the
	// gesture.
	StepGesture StepKind = iota
	// StepMomentumEnded sends a momentum-ended event.
	StepMomentumEnded
	// StepEndActions collapses every stuck edge.
	StepEndActions
	// StepScrollTo moves the view without a gesture.
	StepScrollTo
)

type Step struct {
	Kind   StepKind
	Deltas []float64
	Y      float64
}

func (s Step) String() string {
	switch s.Kind {
	case StepGesture:
		parts := make([]string, len(s.Deltas))
		for i, d := range s.Deltas {
			parts[i] = fmt.Sprintf("%+g", d)
		}
		return "gesture " + strings.Join(parts, " ")
	case StepMomentumEnded:
		return "momentum ended"
	case StepEndActions:
		return "end actions"
	case StepScrollTo:
		return fmt.Sprintf("scroll to %g", s.Y)
	default:
		return fmt.Sprintf("Step(%d)", int(s.Kind))
	}
}

// Scenario is a scripted run. A zero accessory height leaves the edge
// without an accessory.
type Scenario struct {
	Name            string
	Title           string
	ContentHeight   float64
	ViewportHeight  float64
	TopAccessory    float64
	BottomAccessory float64
	Steps           []Step
}

// Event is one recorded line of a trace.
type Event struct {
	Step int
	Text string
}

type Trace struct {
	Scenario Scenario
	Events   []Event
	// Final edge states and visible origin.
	Top, Bottom pullrefresh.EdgeState
	Offset      float64
	// Scrolls the coordinator issued on its own, such as the reset nudge.
	Corrective []float64
	Triggers   int
}

// Scenarios returns the built-in scripts, keyed A through D.
func Scenarios() map[string]Scenario {
	return map[string]Scenario{
		"A": {
			Name: "A", Title: "top trigger",
			ContentHeight: 1000, ViewportHeight: 400, TopAccessory: 60,
			Steps: []Step{{Kind: StepGesture, Deltas: []float64{20, 20, 20}}},
		},
		"B": {
			Name: "B", Title: "partial pull released early",
			ContentHeight: 1000, ViewportHeight: 400, TopAccessory: 60,
			Steps: []Step{{Kind: StepGesture, Deltas: []float64{15, 15}}, {Kind: StepMomentumEnded}},
		},
		"C": {
			Name: "C", Title: "bottom reset after stick",
			ContentHeight: 1000, ViewportHeight: 400, BottomAccessory: 50,
			Steps: []Step{
				{Kind: StepScrollTo, Y: 600},
				{Kind: StepGesture, Deltas: []float64{-25, -25}},
				{Kind: StepEndActions},
			},
		},
		"D": {
			Name: "D", Title: "disabled bottom edge",
			ContentHeight: 1000, ViewportHeight: 400, TopAccessory: 60,
			Steps: []Step{
				{Kind: StepScrollTo, Y: 600},
				{Kind: StepGesture, Deltas: []float64{-30, -30, -30}},
				{Kind: StepMomentumEnded},
				{Kind: StepEndActions},
			},
		},
	}
}

// Names returns the scenario names in order.
func Names() []string {
	all := Scenarios()
	names := make([]string, 0, len(all))
	for n := range all {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a scenario by name, case-insensitively.
func Lookup(name string) (Scenario, bool) {
	sc, ok := Scenarios()[strings.ToUpper(strings.TrimSpace(name))]
	return sc, ok
}

type recorder struct {
	step   int
	events []Event
	count  int
}

func (r *recorder) add(format string, args ...interface{}) {
	r.events = append(r.events, Event{Step: r.step, Text: fmt.Sprintf(format, args...)})
}

func (r *recorder) Triggered(edge pullrefresh.Edge) {
	r.count++
	r.add("%s triggered", edge)
}

func (r *recorder) accessory(edge pullrefresh.Edge, height float64) *pullrefresh.Accessory {
	if height <= 0 {
		return nil
	}
	return &pullrefresh.Accessory{
		Height:                 height,
		OnRecede:               func() { r.add("%s recede", edge) },
		OnEnterElasticity:      func() { r.add("%s enter elasticity", edge) },
		OnElasticityPercentage: func(pct float64) { r.add("%s elasticity %.0f%%", edge, pct) },
		OnEnterValidationArea:  func() { r.add("%s enter validation area", edge) },
		OnStick:                func() { r.add("%s stick", edge) },
	}
}

// Run replays sc against a fresh coordinator.
func Run(sc Scenario, log logr.Logger) Trace {
	rec := &recorder{}
	acc := map[pullrefresh.Edge]*pullrefresh.Accessory{
		pullrefresh.Top:    rec.accessory(pullrefresh.Top, sc.TopAccessory),
		pullrefresh.Bottom: rec.accessory(pullrefresh.Bottom, sc.BottomAccessory),
	}
	v := newView(sc.ContentHeight, sc.ViewportHeight)
	c := pullrefresh.New(rec,
		pullrefresh.WithAccessories(func(e pullrefresh.Edge) *pullrefresh.Accessory { return acc[e] }),
		pullrefresh.WithLogger(log))
	v.region = c
	c.Bind(v)

	tr := Trace{Scenario: sc}
	for i, st := range sc.Steps {
		rec.step = i + 1
		switch st.Kind {
		case StepGesture:
			for j, d := range st.Deltas {
				ph := pullrefresh.PhaseChanged
				if j == 0 {
					ph = pullrefresh.PhaseBegan
				}
				c.ScrollWheel(pullrefresh.ScrollEvent{DeltaY: d, Phase: ph})
			}
			c.ScrollWheel(pullrefresh.ScrollEvent{Phase: pullrefresh.PhaseEnded})
		case StepMomentumEnded:
			c.ScrollWheel(pullrefresh.ScrollEvent{Momentum: pullrefresh.PhaseEnded})
		case StepEndActions:
			n := len(v.scrolls)
			c.EndActions()
			tr.Corrective = append(tr.Corrective, v.scrolls[n:]...)
		case StepScrollTo:
			v.ScrollTo(st.Y)
		}
	}
	tr.Events = rec.events
	tr.Top, tr.Bottom = c.State(pullrefresh.Top), c.State(pullrefresh.Bottom)
	tr.Offset = v.visible.Y
	tr.Triggers = rec.count
	return tr
}

// Write prints the trace grouped by step.
func (t Trace) Write(w io.Writer) error {
	sc := t.Scenario
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", sc.Name, sc.Title)
	fmt.Fprintf(&b, "  content %g, viewport %g, top accessory %g, bottom accessory %g\n",
		sc.ContentHeight, sc.ViewportHeight, sc.TopAccessory, sc.BottomAccessory)
	for i, st := range sc.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, st)
		for _, ev := range t.Events {
			if ev.Step == i+1 {
				fmt.Fprintf(&b, "       %s\n", ev.Text)
			}
		}
	}
	fmt.Fprintf(&b, "  final: top=%s bottom=%s offset=%g triggers=%d", t.Top, t.Bottom, t.Offset, t.Triggers)
	if len(t.Corrective) > 0 {
		fmt.Fprintf(&b, " corrective=%v", t.Corrective)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
