package content

import (
	"testing"
	"time"
)

func TestResearchPlan(t *testing.T) {
	plan := ResearchPlan()

	if len(plan.Steps) != 3 {
		t.Errorf("len(Steps) = %d; want 3", len(plan.Steps))
	}
	if len(plan.Log) != 6 {
		t.Errorf("len(Log) = %d; want 6", len(plan.Log))
	}
	for i, step := range plan.Steps {
		if step.Icon == "" || step.Label == "" {
			t.Errorf("step %d incomplete: %+v", i, step)
		}
	}
}

func TestResearchReportCitationsResolve(t *testing.T) {
	report := ResearchReport()

	for _, f := range report.Findings {
		if f.Citation < 0 || f.Citation > len(report.Sources) {
			t.Errorf("finding %q cites %d; only %d sources", f.Title, f.Citation, len(report.Sources))
		}
	}
}

func TestSeedSessionsMostRecentFirst(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	seeds := SeedSessions(now)

	for i := 1; i < len(seeds); i++ {
		if seeds[i].LastActivity.After(seeds[i-1].LastActivity) {
			t.Errorf("seed %d is more recent than seed %d", i, i-1)
		}
	}

	want := []string{"Today", "Yesterday", "2 days ago"}
	for i, w := range want {
		if got := seeds[i].ActivityLabel(now); got != w {
			t.Errorf("seed %d label = %q; want %q", i, got, w)
		}
	}
}
