package session

import (
	"fmt"
	"time"

	"pullrefresh/internal/logging"
	"pullrefresh/pkg/pullrefresh"
)

// Notice is one entry of the notification history.
type Notice struct {
	At   time.Time
	Edge pullrefresh.Edge
	Text string
}

func (n Notice) String() string {
	return fmt.Sprintf("%s %-6s %s", n.At.Format("15:04:05"), n.Edge, n.Text)
}

func (s *Session) notify(edge pullrefresh.Edge, text string) {
	s.log.V(logging.DEBUG).Info("notification", "edge", edge, "text", text)
	s.notices = append(s.notices, Notice{At: s.now(), Edge: edge, Text: text})
	if over := len(s.notices) - MaxNotices; over > 0 {
		s.notices = append(s.notices[:0], s.notices[over:]...)
	}
}

// Notices returns up to n of the most recent notices, oldest first.
func (s *Session) Notices(n int) []Notice {
	if n <= 0 || n > len(s.notices) {
		n = len(s.notices)
	}
	return s.notices[len(s.notices)-n:]
}
