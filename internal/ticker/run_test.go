package ticker

import (
	"context"
	"errors"
	"testing"
	"time"
)

// instantClock fires immediately and records the requested durations.
type instantClock struct {
	waits []time.Duration
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

// stalledClock never fires.
type stalledClock struct{}

func (stalledClock) After(time.Duration) <-chan time.Time {
	return make(chan time.Time)
}

func TestRun_CompletesPlan(t *testing.T) {
	clock := &instantClock{}
	tk := New()
	var observed []int

	err := Run(context.Background(), tk, threeStepPlan(), 250*time.Millisecond, clock, func(s State) {
		observed = append(observed, s.CompletedSteps)
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []int{0, 1, 2, 3}
	if len(observed) != len(want) {
		t.Fatalf("observed = %v; want %v", observed, want)
	}
	for i := range want {
		if observed[i] != want[i] {
			t.Errorf("observed[%d] = %d; want %d", i, observed[i], want[i])
		}
	}

	if len(clock.waits) != 3 {
		t.Errorf("clock waited %d times; want 3", len(clock.waits))
	}
	for _, d := range clock.waits {
		if d != 250*time.Millisecond {
			t.Errorf("wait = %v; want 250ms", d)
		}
	}
	if tk.Running() {
		t.Error("expected ticker stopped after Run")
	}
}

func TestRun_CancelStopsTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := New()

	err := Run(ctx, tk, threeStepPlan(), time.Millisecond, stalledClock{}, func(State) {
		cancel()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v; want context.Canceled", err)
	}
	if tk.Running() {
		t.Error("expected ticker stopped after cancellation")
	}
	if got := tk.State().CompletedSteps; got != 0 {
		t.Errorf("CompletedSteps = %d; want 0", got)
	}
}

func TestRun_WithoutAutoStopRunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := New(WithAutoStop(false))
	calls := 0

	err := Run(ctx, tk, threeStepPlan(), time.Millisecond, &instantClock{}, func(s State) {
		calls++
		if calls == 6 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v; want context.Canceled", err)
	}
	if got := tk.State().CompletedSteps; got != 3 {
		t.Errorf("CompletedSteps = %d; want 3", got)
	}
	if tk.Running() {
		t.Error("expected Run to stop the ticker on exit")
	}
}

func TestRun_ReturnsWhenObserverStops(t *testing.T) {
	tk := New(WithAutoStop(false))
	clock := &instantClock{}

	err := Run(context.Background(), tk, threeStepPlan(), time.Millisecond, clock, func(s State) {
		if s.Running && s.Done() {
			tk.Stop()
		}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := tk.State().CompletedSteps; got != 3 {
		t.Errorf("CompletedSteps = %d; want 3", got)
	}
	if len(clock.waits) != 3 {
		t.Errorf("waited %d times; want 3", len(clock.waits))
	}
	if tk.Running() {
		t.Error("expected ticker stopped")
	}
}

func TestRun_LeavesForeignRunAlone(t *testing.T) {
	tk := New()
	tk.Start(threeStepPlan(), time.Millisecond)

	if err := Run(context.Background(), tk, threeStepPlan(), time.Millisecond, &instantClock{}, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !tk.Running() {
		t.Error("Run stopped a ticker it did not start")
	}
}
