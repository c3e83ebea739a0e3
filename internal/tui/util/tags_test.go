package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pullrefresh/internal/session"
	"pullrefresh/internal/tui/state"
	"pullrefresh/pkg/pullrefresh"
)

func TestComputeTags(t *testing.T) {
	cases := []struct {
		name    string
		st      pullrefresh.EdgeState
		ind     session.Indicator
		enabled bool
		want    state.Tag
	}{
		{"disabled wins", pullrefresh.Stuck, session.Indicator{Refreshing: true}, false, state.Tag{Kind: state.DISABLED}},
		{"resting", pullrefresh.None, session.Indicator{}, true, state.Tag{Kind: state.RESTING}},
		{"elastic rounds", pullrefresh.Elastic, session.Indicator{Percent: 33.4}, true, state.Tag{Kind: state.ELASTIC, Value: 33}},
		{"armed", pullrefresh.Overpulled, session.Indicator{Percent: 100, Armed: true}, true, state.Tag{Kind: state.ARMED}},
		{"stuck", pullrefresh.Stuck, session.Indicator{}, true, state.Tag{Kind: state.STUCK}},
		{"refreshing", pullrefresh.Stuck, session.Indicator{Refreshing: true}, true, state.Tag{Kind: state.REFRESHING}},
	}
	for _, tc := range cases {
		got := ComputeTags(pullrefresh.Top, tc.st, tc.ind, tc.enabled)
		tc.want.Edge = pullrefresh.Top
		if diff := cmp.Diff([]state.Tag{tc.want}, got); diff != "" {
			t.Fatalf("%s: tags mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestSessionTags(t *testing.T) {
	s := session.New(session.Options{TopRows: 2})
	s.Resize(20, 5)
	got := SessionTags(s)
	want := []state.Tag{
		{Kind: state.RESTING, Edge: pullrefresh.Top},
		{Kind: state.DISABLED, Edge: pullrefresh.Bottom},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}
