package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// maxDerivedTitleWidth bounds titles derived from the first user message.
const maxDerivedTitleWidth = 40

// IDFunc generates session identifiers.
type IDFunc func() string

// Store owns the ordered session list and the current selection.
// Every mutation replaces the list wholesale, so slices returned by List
// are never modified afterwards. A Store has a single owner and is not
// safe for concurrent use.
type Store struct {
	sessions []Session
	selected string
	newID    IDFunc
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides the identifier generator (uuid by default).
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the time source used for activity timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: []Session{},
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed replaces the list with the given sessions, keeping their order.
// Sessions without an id get one; duplicate ids are dropped. The first
// session becomes the selection.
func (s *Store) Seed(sessions []Session) {
	next := make([]Session, 0, len(sessions))
	seen := make(map[string]bool, len(sessions))
	for _, sess := range sessions {
		if sess.ID == "" {
			sess.ID = s.newID()
		}
		if seen[sess.ID] {
			continue
		}
		seen[sess.ID] = true
		next = append(next, sess.clone())
	}
	s.sessions = next

	s.selected = ""
	if len(next) > 0 {
		s.selected = next[0].ID
	}
}

// Create allocates a new session, inserts it at the front of the list and
// selects it.
func (s *Store) Create() Session {
	sess := Session{
		ID:           s.uniqueID(),
		Title:        DefaultTitle,
		LastActivity: s.now(),
		Messages:     []Message{},
	}

	next := make([]Session, 0, len(s.sessions)+1)
	next = append(next, sess)
	next = append(next, s.sessions...)
	s.sessions = next
	s.selected = sess.ID

	return sess.clone()
}

// Delete removes the session with the given id. It reports whether a session
// was removed. When the removed session was selected, the selection moves to
// the new first session, or to none when the list is empty.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	next := make([]Session, 0, len(s.sessions)-1)
	next = append(next, s.sessions[:idx]...)
	next = append(next, s.sessions[idx+1:]...)
	s.sessions = next

	if s.selected == id {
		s.selected = ""
		if len(next) > 0 {
			s.selected = next[0].ID
		}
	}
	return true
}

// List returns the sessions in current order, most recent first.
func (s *Store) List() []Session {
	out := make([]Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	return len(s.sessions)
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (Session, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Session{}, false
	}
	return s.sessions[idx].clone(), true
}

// Rename updates the title of the session with the given id.
// Blank titles and unknown ids are ignored.
func (s *Store) Rename(id, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	s.update(id, func(sess *Session) {
		sess.Title = title
	})
}

// Touch marks the session as active now.
func (s *Store) Touch(id string) {
	now := s.now()
	s.update(id, func(sess *Session) {
		sess.LastActivity = now
	})
}

// AppendMessage adds a message to the session transcript and touches it.
// The first user message of a session still carrying the default title
// becomes its title.
func (s *Store) AppendMessage(id string, msg Message) {
	now := s.now()
	if msg.At.IsZero() {
		msg.At = now
	}
	s.update(id, func(sess *Session) {
		msgs := make([]Message, len(sess.Messages), len(sess.Messages)+1)
		copy(msgs, sess.Messages)
		sess.Messages = append(msgs, msg)
		sess.LastActivity = now

		if sess.Title == DefaultTitle && msg.Role == RoleUser {
			if title := deriveTitle(msg.Content); title != "" {
				sess.Title = title
			}
		}
	})
}

// Select makes the session with the given id current. Unknown ids are ignored.
func (s *Store) Select(id string) {
	if s.indexOf(id) >= 0 {
		s.selected = id
	}
}

// SelectedID returns the selected session id, or "" when nothing is selected.
func (s *Store) SelectedID() string {
	return s.selected
}

// Selected returns the selected session.
func (s *Store) Selected() (Session, bool) {
	if s.selected == "" {
		return Session{}, false
	}
	return s.Get(s.selected)
}

// IndexOf returns the position of the session in the list, or -1.
func (s *Store) IndexOf(id string) int {
	return s.indexOf(id)
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, sess := range s.sessions {
		if sess.ID == id {
			return i
		}
	}
	return -1
}

// update replaces the session with the given id by a modified copy.
func (s *Store) update(id string, fn func(*Session)) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	next := make([]Session, len(s.sessions))
	copy(next, s.sessions)
	sess := next[idx]
	fn(&sess)
	next[idx] = sess
	s.sessions = next
}

// uniqueID returns a generated id not already present in the list.
func (s *Store) uniqueID() string {
	base := s.newID()
	id := base
	for n := 2; s.indexOf(id) >= 0 || id == ""; n++ {
		if base == "" {
			base = "session"
		}
		id = base + "-" + strconv.Itoa(n)
	}
	return id
}

// deriveTitle turns a message into a single-line title.
func deriveTitle(content string) string {
	line := strings.TrimSpace(strings.SplitN(strings.TrimSpace(content), "\n", 2)[0])
	if line == "" {
		return ""
	}
	if ansi.StringWidth(line) <= maxDerivedTitleWidth {
		return line
	}
	return ansi.Truncate(line, maxDerivedTitleWidth, "...")
}
