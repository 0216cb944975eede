package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/flashingpumpkin/stratos/internal/ticker"
)

// reasoningPanel is the "Thinking" block shown under a sent message. It owns
// its ticker; unmounting the panel always stops it.
type reasoningPanel struct {
	id        uint64
	sessionID string
	// after is the number of transcript messages shown above the panel.
	after int

	ticker    *ticker.Ticker
	expanded  bool
	logOpen   bool
	delivered bool
}

func newReasoningPanel(id uint64, sessionID string, after int, autoStop bool, logger *slog.Logger) *reasoningPanel {
	return &reasoningPanel{
		id:        id,
		sessionID: sessionID,
		after:     after,
		ticker:    ticker.New(ticker.WithAutoStop(autoStop), ticker.WithLogger(logger)),
		expanded:  true,
		logOpen:   true,
	}
}

// start begins the cadence and returns the command for the first tick.
func (p *reasoningPanel) start(plan ticker.Plan, cadence time.Duration, schedule Scheduler) tea.Cmd {
	tick, ok := p.ticker.Start(plan, cadence)
	if !ok {
		return nil
	}
	return schedule(p.ticker.Cadence(), TickMsg{Panel: p.id, Tick: tick})
}

// advance applies msg and returns the command for the next tick, if any.
func (p *reasoningPanel) advance(msg TickMsg, schedule Scheduler) tea.Cmd {
	if msg.Panel != p.id {
		return nil
	}
	next, ok := p.ticker.Advance(msg.Tick)
	if !ok {
		return nil
	}
	return schedule(p.ticker.Cadence(), TickMsg{Panel: p.id, Tick: next})
}

func (p *reasoningPanel) unmount() {
	p.ticker.Stop()
}

// busy reports whether the agent is still working through the plan.
func (p *reasoningPanel) busy() bool {
	s := p.ticker.State()
	return s.Running && !s.Done()
}

// render draws the panel at the given width.
func (p *reasoningPanel) render(width int, styles Styles) []string {
	state := p.ticker.State()

	chevron := IconCollapsed
	if p.expanded {
		chevron = IconExpanded
	}

	lines := []string{
		spread(styles.Header.Render(IconThinking+" Thinking"), styles.Muted.Render(chevron), width),
	}

	ratio := 1.0
	if state.TotalSteps > 0 {
		ratio = float64(state.CompletedSteps) / float64(state.TotalSteps)
	}
	bar := RenderProgressBar(ratio, BarWidth, styles.Accent)
	headline := styles.Label.Render(state.Headline())
	if ansi.StringWidth(state.Headline())+BarWidth+5 <= width {
		lines = append(lines, "  "+headline+" "+bar)
	} else {
		lines = append(lines, "  "+ellipsis(headline, width-2))
	}

	if !p.expanded {
		return lines
	}

	lines = append(lines, "", "  "+styles.Accent.Render("Plan of Action"))
	for _, step := range p.ticker.Steps() {
		lines = append(lines, renderStep(step, width, styles))
	}

	logChevron := IconCollapsed
	if p.logOpen {
		logChevron = IconExpanded
	}
	lines = append(lines, "", "  "+styles.Accent.Render(logChevron+" Live Execution Log"))
	if p.logOpen {
		for _, line := range p.ticker.RevealedLog() {
			for _, wrapped := range wrap("> "+line.Text, width-4) {
				lines = append(lines, "    "+styles.LogLine.Render(wrapped))
			}
		}
	}
	return lines
}

func renderStep(step ticker.StepView, width int, styles Styles) string {
	label := "  " + step.Icon + " " + step.Label
	switch step.Status {
	case ticker.StepCompleted:
		return spread(styles.StepComplete.Render(label), styles.Success.Render(IconDone), width)
	case ticker.StepInProgress:
		return spread(styles.StepInProgress.Render(label), styles.Muted.Render(IconInProgress), width)
	default:
		return spread(styles.StepPending.Render(label), "", width)
	}
}
