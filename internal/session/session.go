// Package session owns the conversation sessions shown in the navigation panel.
// A Store holds an ordered, most-recent-first list of sessions and the current
// selection. All operations are total: unknown ids are tolerated silently.
package session

import (
	"math"
	"strconv"
	"time"
)

// DefaultTitle is the title given to a freshly created session.
const DefaultTitle = "New Chat"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in a conversation.
type Message struct {
	Role    string
	Content string
	At      time.Time
}

// Session is one saved or ongoing conversation thread.
type Session struct {
	// ID is unique within the owning Store.
	ID string

	// Title is the short text shown in the navigation panel.
	Title string

	// LastActivity is when the session was created or last touched.
	LastActivity time.Time

	// Messages is the ordered transcript.
	Messages []Message
}

// DisplayName returns the title, or the default title when it is blank.
func (s Session) DisplayName() string {
	if s.Title != "" {
		return s.Title
	}
	return DefaultTitle
}

// ActivityLabel renders LastActivity relative to now: "now", "Today",
// "Yesterday" or "N days ago".
func (s Session) ActivityLabel(now time.Time) string {
	if s.LastActivity.IsZero() {
		return ""
	}
	if d := now.Sub(s.LastActivity); d >= 0 && d < time.Minute {
		return "now"
	}

	days := calendarDays(s.LastActivity, now)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return strconv.Itoa(days) + " days ago"
	}
}

// HasMessages reports whether the transcript is non-empty.
func (s Session) HasMessages() bool {
	return len(s.Messages) > 0
}

// calendarDays counts midnights between from and to in to's location.
func calendarDays(from, to time.Time) int {
	loc := to.Location()
	f := from.In(loc)
	fy, fm, fd := f.Date()
	ty, tm, td := to.Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, loc)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, loc)
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// clone returns a copy whose Messages slice is not shared with s.
func (s Session) clone() Session {
	if s.Messages != nil {
		msgs := make([]Message, len(s.Messages))
		copy(msgs, s.Messages)
		s.Messages = msgs
	}
	return s
}
