package indicator

import (
	"strings"
	"testing"

	"pullrefresh/internal/session"
	"pullrefresh/pkg/pullrefresh"
)

func TestTopRowsMessageNearContent(t *testing.T) {
	i := New(true)
	rows := i.View(session.Indicator{Edge: pullrefresh.Top, Rows: 3}, pullrefresh.None, 30)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !strings.Contains(rows[2], "Pull down to refresh") {
		t.Fatalf("expected message on the last row, got %q", rows[2])
	}
	if !strings.HasPrefix(rows[0], "·") {
		t.Fatalf("expected a rule on the outer row, got %q", rows[0])
	}
}

func TestBottomRowsMessageNearContent(t *testing.T) {
	i := New(true)
	rows := i.View(session.Indicator{Edge: pullrefresh.Bottom, Rows: 2, Armed: true}, pullrefresh.Overpulled, 30)
	if !strings.Contains(rows[0], "Release to refresh") {
		t.Fatalf("expected release message first, got %q", rows[0])
	}
}

func TestElasticShowsProgress(t *testing.T) {
	i := New(true)
	rows := i.View(session.Indicator{Edge: pullrefresh.Top, Rows: 1, Percent: 50}, pullrefresh.Elastic, 60)
	if !strings.Contains(rows[0], "[##########..........]") {
		t.Fatalf("expected half-full bar, got %q", rows[0])
	}
}

func TestRefreshing(t *testing.T) {
	i := New(true)
	rows := i.View(session.Indicator{Edge: pullrefresh.Top, Rows: 1, Refreshing: true}, pullrefresh.Stuck, 40)
	if !strings.Contains(rows[0], "Refreshing") {
		t.Fatalf("expected refreshing message, got %q", rows[0])
	}
}

func TestNoRows(t *testing.T) {
	if rows := New(true).View(session.Indicator{}, pullrefresh.None, 10); rows != nil {
		t.Fatalf("expected no rows, got %v", rows)
	}
}
