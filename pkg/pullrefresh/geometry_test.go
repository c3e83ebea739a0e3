package pullrefresh

import "testing"

func TestGeometryThresholds(t *testing.T) {
	top := Geometry{Edge: Top, ContentHeight: 1000, AccessoryHeight: 60}
	if top.ScrollBase() != 0 || top.MinimumScroll() != -60 {
		t.Fatalf("top base/min: got %v/%v", top.ScrollBase(), top.MinimumScroll())
	}
	bottom := Geometry{Edge: Bottom, ContentHeight: 1000, AccessoryHeight: 50}
	if bottom.ScrollBase() != 1000 || bottom.MinimumScroll() != 1050 {
		t.Fatalf("bottom base/min: got %v/%v", bottom.ScrollBase(), bottom.MinimumScroll())
	}

	cases := []struct {
		name string
		g    Geometry
		y    float64
		want bool
	}{
		{"top at rest", top, 0, false},
		{"top half pulled", top, -30, false},
		{"top at threshold", top, -60, true},
		{"top past threshold", top, -80, true},
		{"bottom at rest", bottom, 600, false},
		{"bottom half pulled", bottom, 625, false},
		{"bottom at threshold", bottom, 650, true},
		{"bottom past threshold", bottom, 670, true},
	}
	for _, tc := range cases {
		visible := Rect{Y: tc.y, Width: 80, Height: 400}
		if got := tc.g.IsOverThreshold(visible); got != tc.want {
			t.Fatalf("%s: IsOverThreshold = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestElasticityPercentageMonotonic(t *testing.T) {
	for _, g := range []Geometry{
		{Edge: Top, ContentHeight: 1000, AccessoryHeight: 60},
		{Edge: Bottom, ContentHeight: 1000, AccessoryHeight: 50},
	} {
		rest := Rect{Width: 80, Height: 400}
		if g.Edge == Bottom {
			rest.Y = g.ContentHeight - rest.Height
		}
		if pct := g.ElasticityPercentage(rest); pct != 0 {
			t.Fatalf("%s: percentage at rest = %v, want 0", g.Edge, pct)
		}

		prev := -1.0
		for pull := 0.0; pull <= g.AccessoryHeight; pull += 0.5 {
			v := rest
			if g.Edge == Bottom {
				v.Y += pull
			} else {
				v.Y -= pull
			}
			pct := g.ElasticityPercentage(v)
			if pct < prev {
				t.Fatalf("%s: percentage decreased at pull %v: %v < %v", g.Edge, pull, pct, prev)
			}
			if pct < 0 || pct > 100 {
				t.Fatalf("%s: percentage out of range at pull %v: %v", g.Edge, pull, pct)
			}
			prev = pct
		}

		at := rest
		if g.Edge == Bottom {
			at.Y = g.MinimumScroll() - at.Height
		} else {
			at.Y = g.MinimumScroll()
		}
		if pct := g.ElasticityPercentage(at); pct != 100 {
			t.Fatalf("%s: percentage at threshold = %v, want 100", g.Edge, pct)
		}
		if !g.IsOverThreshold(at) {
			t.Fatalf("%s: expected threshold reached at MinimumScroll", g.Edge)
		}
	}
}

func TestElasticityPercentageClamped(t *testing.T) {
	g := Geometry{Edge: Top, ContentHeight: 1000, AccessoryHeight: 60}
	if pct := g.ElasticityPercentage(Rect{Y: -500, Height: 400}); pct != 100 {
		t.Fatalf("expected clamp to 100, got %v", pct)
	}
	if pct := g.ElasticityPercentage(Rect{Y: 300, Height: 400}); pct != 0 {
		t.Fatalf("scrolled into content should read 0, got %v", pct)
	}
}
