// Package feed supplies the lines a refresh prepends or appends.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pullrefresh/pkg/pullrefresh"
)

// ErrNoSource is returned by New when neither a URL nor a generator is usable.
var ErrNoSource = errors.New("no feed source configured")

// Source fetches up to n fresh lines for a refresh triggered at edge.
type Source interface {
	Fetch(ctx context.Context, edge pullrefresh.Edge, n int) ([]string, error)
}

// Generator produces synthetic timestamped lines after Delay.
type Generator struct {
	Delay time.Duration
	Now   func() time.Time

	mu  sync.Mutex
	seq int
}

func (g *Generator) Fetch(ctx context.Context, edge pullrefresh.Edge, n int) ([]string, error) {
	if g.Delay > 0 {
		t := time.NewTimer(g.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	stamp := now().Format("15:04:05")

	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		g.seq++
		out = append(out, fmt.Sprintf("#%03d %s item from %s refresh", g.seq, stamp, edge))
	}
	return out, nil
}

// Initial returns n placeholder lines for the first screen.
func Initial(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %d", i+1)
	}
	return out
}

// New picks the HTTP source when url is set, the generator otherwise.
func New(url string, delay time.Duration) (Source, error) {
	if url != "" {
		return &HTTPSource{URL: url}, nil
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: negative generator delay %v", ErrNoSource, delay)
	}
	return &Generator{Delay: delay}, nil
}
