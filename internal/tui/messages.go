package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flashingpumpkin/stratos/internal/ticker"
)

// TickMsg hands a reasoning tick back to the model once the cadence has
// elapsed. Panel identifies the reasoning panel that scheduled it, so ticks
// from an unmounted panel are dropped.
type TickMsg struct {
	Panel uint64
	Tick  ticker.Tick
}

// Scheduler returns a command that delivers msg after d.
type Scheduler func(d time.Duration, msg TickMsg) tea.Cmd

// TeaScheduler schedules ticks with tea.Tick.
func TeaScheduler(d time.Duration, msg TickMsg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// ClipboardMsg reports the outcome of copying the report.
type ClipboardMsg struct {
	Err error
}
