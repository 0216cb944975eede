package ticker

import (
	"log/slog"
	"strconv"
	"time"
)

// DefaultCadence is the interval between ticks when none is configured.
const DefaultCadence = 800 * time.Millisecond

// CompletedHeadline is shown once every step has completed.
const CompletedHeadline = "Agent is planning and executing research strategy..."

// Tick identifies one scheduled advancement. A cadence source hands the tick
// back to Advance once the cadence has elapsed; ticks issued before the
// ticker was stopped are rejected.
type Tick struct {
	Seq uint64
}

// State is a snapshot of the ticker.
type State struct {
	CompletedSteps   int
	TotalSteps       int
	RevealedLogLines int
	TotalLogLines    int
	Running          bool
}

// Done reports whether every step has completed.
func (s State) Done() bool {
	return s.CompletedSteps >= s.TotalSteps
}

// Headline returns the one-line progress summary.
func (s State) Headline() string {
	if s.CompletedSteps < s.TotalSteps {
		return "Completed " + strconv.Itoa(s.CompletedSteps) + "/" + strconv.Itoa(s.TotalSteps) + " steps"
	}
	return CompletedHeadline
}

// Ticker is a time-driven progression engine. It has a single owner and is
// not safe for concurrent use; the owner delivers ticks from its event loop.
type Ticker struct {
	plan      Plan
	completed int
	revealed  int
	running   bool
	cadence   time.Duration
	seq       uint64
	autoStop  bool
	logger    *slog.Logger
}

// Option configures a Ticker.
type Option func(*Ticker)

// WithAutoStop controls whether the ticker cancels its own cadence once every
// step has completed. It is enabled by default; when disabled, further ticks
// are accepted as no-ops until the owner calls Stop.
func WithAutoStop(enabled bool) Option {
	return func(t *Ticker) {
		t.autoStop = enabled
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Ticker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a stopped Ticker with an empty plan.
func New(opts ...Option) *Ticker {
	t := &Ticker{
		cadence:  DefaultCadence,
		autoStop: true,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins the cadence for plan and returns the first tick to schedule.
// Progress is kept from any earlier run, clamped to the new plan's length;
// use Reset to start over. Starting a running ticker is a no-op and returns
// false. A non-positive cadence falls back to DefaultCadence.
func (t *Ticker) Start(plan Plan, cadence time.Duration) (Tick, bool) {
	if t.running {
		return Tick{}, false
	}
	if cadence <= 0 {
		cadence = DefaultCadence
	}

	t.plan = plan.clone()
	t.cadence = cadence
	if t.completed > len(t.plan.Steps) {
		t.completed = len(t.plan.Steps)
	}
	t.revealed = t.revealFor(t.completed)
	t.running = true
	t.seq++

	t.logger.Debug("ticker started",
		slog.Int("steps", len(t.plan.Steps)),
		slog.Int("completed", t.completed),
		slog.Duration("cadence", cadence),
	)

	if t.autoStop && t.completed >= len(t.plan.Steps) {
		t.stop("already complete")
		return Tick{}, false
	}

	return Tick{Seq: t.seq}, true
}

// Advance applies one tick. Ticks that do not carry the current sequence, or
// that arrive while stopped, are ignored. It returns the next tick to
// schedule and true while the ticker is still running.
func (t *Ticker) Advance(tick Tick) (Tick, bool) {
	if !t.running || tick.Seq != t.seq {
		return Tick{}, false
	}

	if t.completed < len(t.plan.Steps) {
		t.completed++
		t.revealed = t.revealFor(t.completed)
		if t.completed == len(t.plan.Steps) {
			t.logger.Info("plan complete", slog.Int("steps", t.completed))
		}
	}

	if t.autoStop && t.completed >= len(t.plan.Steps) {
		t.stop("complete")
		return Tick{}, false
	}

	t.seq++
	return Tick{Seq: t.seq}, true
}

// Stop cancels the cadence. Any tick already scheduled is rejected when it
// arrives. Stopping a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.stop("stopped")
}

func (t *Ticker) stop(reason string) {
	t.running = false
	t.seq++
	t.logger.Debug("ticker stopped", slog.String("reason", reason), slog.Int("completed", t.completed))
}

// Reset returns progress to zero without starting or stopping the cadence.
func (t *Ticker) Reset() {
	t.completed = 0
	t.revealed = 0
}

// State returns a snapshot of the ticker.
func (t *Ticker) State() State {
	return State{
		CompletedSteps:   t.completed,
		TotalSteps:       len(t.plan.Steps),
		RevealedLogLines: t.revealed,
		TotalLogLines:    len(t.plan.Log),
		Running:          t.running,
	}
}

// Running reports whether the cadence is active.
func (t *Ticker) Running() bool {
	return t.running
}

// Cadence returns the interval the owner should wait between ticks.
func (t *Ticker) Cadence() time.Duration {
	return t.cadence
}

// Plan returns a copy of the current plan.
func (t *Ticker) Plan() Plan {
	return t.plan.clone()
}

// Steps returns each plan step with its status. The step after the last
// completed one is in progress while the ticker runs.
func (t *Ticker) Steps() []StepView {
	out := make([]StepView, len(t.plan.Steps))
	for i, step := range t.plan.Steps {
		status := StepPending
		switch {
		case i < t.completed:
			status = StepCompleted
		case i == t.completed && t.running:
			status = StepInProgress
		}
		out[i] = StepView{PlanStep: step, Status: status}
	}
	return out
}

// RevealedLog returns the log lines revealed so far.
func (t *Ticker) RevealedLog() []LogLine {
	out := make([]LogLine, t.revealed)
	copy(out, t.plan.Log[:t.revealed])
	return out
}

// revealFor returns how many log lines accompany the given step count: the
// log is spread evenly over the steps, rounding up, and fully revealed once
// every step has completed.
func (t *Ticker) revealFor(completed int) int {
	steps, lines := len(t.plan.Steps), len(t.plan.Log)
	if steps == 0 {
		return lines
	}
	n := (completed*lines + steps - 1) / steps
	if n > lines {
		n = lines
	}
	return n
}
