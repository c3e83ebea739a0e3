package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pullrefresh/pkg/pullrefresh"
)

var (
	DefaultTimeout = 20 * time.Second
)

// HTTPSource GETs URL?edge=top&n=5 and expects a JSON array of strings.
type HTTPSource struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

func (h *HTTPSource) Fetch(ctx context.Context, edge pullrefresh.Edge, n int) ([]string, error) {
	if h.URL == "" {
		return nil, ErrNoSource
	}
	u, err := url.Parse(h.URL)
	if err != nil {
		return nil, fmt.Errorf("feed url: %w", err)
	}
	q := u.Query()
	q.Set("edge", edge.String())
	q.Set("n", strconv.Itoa(n))
	u.RawQuery = q.Encode()

	body, err := h.get(ctx, u.String())
	if err != nil {
		return nil, err
	}
	var lines []string
	if err := json.Unmarshal(body, &lines); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines, nil
}

func (h *HTTPSource) get(ctx context.Context, url string) ([]byte, error) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("GET %s: %s (%d)", url, string(b), resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
