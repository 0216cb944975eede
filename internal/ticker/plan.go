// Package ticker drives the simulated multi-step task display. A Ticker
// advances a bounded step counter on a fixed cadence and progressively
// reveals a scripted execution log. The cadence itself is supplied by the
// owner, so a Ticker never starts timers or goroutines of its own.
package ticker

// PlanStep is one entry of the plan of action.
type PlanStep struct {
	Icon  string
	Label string
}

// LogLine is one entry of the live execution log.
type LogLine struct {
	Text string
}

// Plan is the fixed script a Ticker progresses through.
type Plan struct {
	Steps []PlanStep
	Log   []LogLine
}

// StepStatus describes a single step relative to the ticker's progress.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
)

// StepView pairs a plan step with its current status.
type StepView struct {
	PlanStep
	Status StepStatus
}

// clone copies the plan so later edits by the caller are not observed.
func (p Plan) clone() Plan {
	out := Plan{
		Steps: make([]PlanStep, len(p.Steps)),
		Log:   make([]LogLine, len(p.Log)),
	}
	copy(out.Steps, p.Steps)
	copy(out.Log, p.Log)
	return out
}
