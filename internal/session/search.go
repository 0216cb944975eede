package session

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Search returns the sessions whose title matches query, in store order.
// Matching is case-insensitive on substrings; queries of four or more
// characters also match title words within a small edit distance, so
// "agentc" still finds "Agentic AI News". An empty query returns every
// session.
func (s *Store) Search(query string) []Session {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.List()
	}

	var out []Session
	for _, sess := range s.sessions {
		if titleMatches(strings.ToLower(sess.DisplayName()), q) {
			out = append(out, sess)
		}
	}
	return out
}

func titleMatches(title, q string) bool {
	if strings.Contains(title, q) {
		return true
	}

	limit := fuzzyLimit(q)
	if limit == 0 {
		return false
	}
	for _, word := range strings.FieldsFunc(title, isSeparator) {
		if levenshtein.ComputeDistance(q, word) <= limit {
			return true
		}
	}
	return false
}

// fuzzyLimit is the edit distance tolerated for a query.
func fuzzyLimit(q string) int {
	switch n := len([]rune(q)); {
	case n < 4:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
