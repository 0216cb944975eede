package session

import "testing"

func TestStore_Search(t *testing.T) {
	s := newTestStore()
	s.Seed([]Session{
		{ID: "1", Title: "Pluripotency, Differentiation..."},
		{ID: "2", Title: "Agentic AI News and Trends"},
		{ID: "3", Title: "Age reversal research"},
	})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "  ", want: []string{"1", "2", "3"}},
		{name: "case insensitive substring", query: "REVERSAL", want: []string{"3"}},
		{name: "shared prefix", query: "ag", want: []string{"2", "3"}},
		{name: "multi word substring", query: "ai news", want: []string{"2"}},
		{name: "typo within distance", query: "agentc", want: []string{"2"}},
		{name: "long typo", query: "diferentiaton", want: []string{"1"}},
		{name: "short query is not fuzzy", query: "agx", want: nil},
		{name: "no match", query: "quantum", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(s.Search(tt.query))
			if !equalIDs(got, tt.want) {
				t.Errorf("Search(%q) = %v; want %v", tt.query, got, tt.want)
			}
		})
	}
}
