// Package output provides formatted, non-interactive output for stratos.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/flashingpumpkin/stratos/internal/ticker"
)

// Status symbols
const (
	CheckMark   = "✓"
	ArrowMark   = "→"
	PendingMark = "○"
)

// Formatter handles formatted output for the plan command and minimal mode.
type Formatter struct {
	quiet   bool
	noColor bool
	writer  io.Writer
}

// BannerConfig contains the settings shown before a plan run.
type BannerConfig struct {
	Prompt     string
	Steps      int
	LogLines   int
	Cadence    time.Duration
	AutoStop   bool
	ConfigFile string
}

// PlanSummary contains summary information for a finished plan run.
type PlanSummary struct {
	CompletedSteps int
	TotalSteps     int
	LogLines       int
	Duration       time.Duration
	Error          error
}

// NewFormatter creates a new Formatter writing to w.
// It checks the NO_COLOR environment variable to determine if colour output should be disabled.
func NewFormatter(quiet bool, w io.Writer) *Formatter {
	noColor := os.Getenv("NO_COLOR") != ""

	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		quiet:   quiet,
		noColor: noColor,
		writer:  w,
	}
}

// Writer returns the destination of the formatter.
func (f *Formatter) Writer() io.Writer {
	return f.writer
}

// PrintBanner prints the stratos banner with the run configuration.
func (f *Formatter) PrintBanner(cfg BannerConfig) {
	if f.quiet {
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)
	dim := color.New(color.FgHiBlack)

	_, _ = cyan.Fprintln(f.writer, "╔═══════════════════════════════════════════════════════════════╗")
	_, _ = cyan.Fprintln(f.writer, "║                 ◆ Stratos - research workspace                ║")
	_, _ = cyan.Fprintln(f.writer, "╚═══════════════════════════════════════════════════════════════╝")
	_, _ = fmt.Fprintln(f.writer, "")

	if cfg.Prompt != "" {
		_, _ = white.Fprintf(f.writer, "  Prompt:      %s\n", cfg.Prompt)
	}
	_, _ = white.Fprintf(f.writer, "  Plan:        %d steps, %d log lines\n", cfg.Steps, cfg.LogLines)
	_, _ = white.Fprintf(f.writer, "  Cadence:     %v per step\n", cfg.Cadence)
	if cfg.AutoStop {
		_, _ = white.Fprintln(f.writer, "  Auto-stop:   on")
	} else {
		_, _ = white.Fprintln(f.writer, "  Auto-stop:   off (ctrl+c to stop)")
	}
	if cfg.ConfigFile != "" {
		_, _ = dim.Fprintf(f.writer, "  Config:      %s\n", cfg.ConfigFile)
	}
	_, _ = fmt.Fprintln(f.writer, "")
}

// PrintStep prints one plan step with its status mark.
func (f *Formatter) PrintStep(position int, step ticker.StepView) {
	if f.quiet {
		return
	}

	switch step.Status {
	case ticker.StepCompleted:
		green := color.New(color.FgGreen)
		_, _ = green.Fprintf(f.writer, "  %s %d. %s %s\n", CheckMark, position, step.Icon, step.Label)
	case ticker.StepInProgress:
		yellow := color.New(color.FgYellow)
		_, _ = yellow.Fprintf(f.writer, "  %s %d. %s %s\n", ArrowMark, position, step.Icon, step.Label)
	default:
		dim := color.New(color.FgHiBlack)
		_, _ = dim.Fprintf(f.writer, "  %s %d. %s %s\n", PendingMark, position, step.Icon, step.Label)
	}
}

// PrintLogLine prints one revealed execution log line.
func (f *Formatter) PrintLogLine(line ticker.LogLine) {
	if f.quiet {
		return
	}

	dim := color.New(color.FgHiBlack)
	_, _ = dim.Fprintf(f.writer, "    > %s\n", line.Text)
}

// PrintPlanSummary prints the final summary of a plan run.
func (f *Formatter) PrintPlanSummary(summary PlanSummary) {
	// Always print summary (even in quiet mode, it's important info)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	_, _ = fmt.Fprintln(f.writer, "")
	_, _ = cyan.Fprintln(f.writer, "════════════════════════════════════════════════════════════════")
	_, _ = cyan.Fprintln(f.writer, "                           Summary                              ")
	_, _ = cyan.Fprintln(f.writer, "════════════════════════════════════════════════════════════════")
	_, _ = white.Fprintf(f.writer, "  Steps:        %d/%d\n", summary.CompletedSteps, summary.TotalSteps)
	_, _ = white.Fprintf(f.writer, "  Log lines:    %d\n", summary.LogLines)
	_, _ = white.Fprintf(f.writer, "  Duration:     %v\n", formatDuration(summary.Duration))

	switch {
	case summary.Error != nil && errors.Is(summary.Error, context.Canceled):
		_, _ = yellow.Fprintln(f.writer, "  Status:       INTERRUPTED")
	case summary.Error != nil && errors.Is(summary.Error, context.DeadlineExceeded):
		_, _ = red.Fprintln(f.writer, "  Status:       TIMEOUT")
	case summary.Error != nil:
		_, _ = red.Fprintf(f.writer, "  Status:       FAILED (%v)\n", summary.Error)
	case summary.CompletedSteps >= summary.TotalSteps:
		_, _ = green.Fprintln(f.writer, "  Status:       COMPLETED")
	default:
		_, _ = yellow.Fprintln(f.writer, "  Status:       STOPPED")
	}

	_, _ = fmt.Fprintln(f.writer, "")
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	if seconds == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
