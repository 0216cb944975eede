package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/flashingpumpkin/stratos/internal/config"
	"github.com/flashingpumpkin/stratos/internal/output"
	"github.com/flashingpumpkin/stratos/internal/ticker"
	"github.com/spf13/cobra"
)

func newPlanCmd(opts *options) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "plan [prompt...]",
		Short: "Run the reasoning display without the TUI",
		Long: `Run the agent's plan of action in plain text.

Each completed step is printed with a check mark and the execution log is
revealed as the plan progresses. The summary is printed even with --quiet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, configPath, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, cleanup, err := newLogger(cmd, cfg, true)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			return runPlan(cmd, cfg, configPath, logger, strings.Join(args, " "), quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the summary")

	return cmd
}

func runPlan(cmd *cobra.Command, cfg *config.Config, configPath string, logger *slog.Logger, prompt string, quiet bool) error {
	ctx, cancel := setupSignalHandler(cmd.Context())
	defer cancel()

	f := output.NewFormatter(quiet, cmd.OutOrStdout())
	plan := planRun{
		cfg:        cfg,
		configPath: configPath,
		formatter:  f,
		clock:      ticker.SystemClock{},
		animate:    isTerminal(cmd.OutOrStdout()),
		logger:     logger,
	}
	summary := plan.execute(ctx, prompt)
	if summary.Error != nil && !errors.Is(summary.Error, context.Canceled) {
		return fmt.Errorf("plan: %w", summary.Error)
	}
	return nil
}

// planRun drives one ticker through the configured plan, printing progress
// as steps complete.
type planRun struct {
	cfg        *config.Config
	configPath string
	formatter  *output.Formatter
	clock      ticker.Clock
	animate    bool
	logger     *slog.Logger
}

func (p planRun) execute(ctx context.Context, prompt string) output.PlanSummary {
	f := p.formatter
	f.PrintBanner(output.BannerConfig{
		Prompt:     prompt,
		Steps:      len(p.cfg.Plan.Steps),
		LogLines:   len(p.cfg.Plan.Log),
		Cadence:    p.cfg.Cadence,
		AutoStop:   p.cfg.AutoStop,
		ConfigFile: p.configPath,
	})

	tk := ticker.New(ticker.WithAutoStop(p.cfg.AutoStop), ticker.WithLogger(p.logger))
	spin := f.Spinner(ticker.State{TotalSteps: len(p.cfg.Plan.Steps)}.Headline(), p.animate)

	printedSteps, printedLog := 0, 0
	observe := func(s ticker.State) {
		// Without auto-stop the run still ends once every step is done.
		if s.Running && s.Done() {
			tk.Stop()
		}
		spin.UpdateMessage(s.Headline())

		steps := tk.Steps()
		revealed := tk.RevealedLog()
		if printedSteps >= s.CompletedSteps && printedLog >= len(revealed) {
			return
		}
		spin.Pause(func() {
			for ; printedSteps < s.CompletedSteps && printedSteps < len(steps); printedSteps++ {
				f.PrintStep(printedSteps+1, steps[printedSteps])
			}
			for ; printedLog < len(revealed); printedLog++ {
				f.PrintLogLine(revealed[printedLog])
			}
		})
	}

	start := time.Now()
	spin.Start()
	err := ticker.Run(ctx, tk, p.cfg.Plan, p.cfg.Cadence, p.clock, observe)

	state := tk.State()
	if err == nil && state.Done() {
		spin.StopWithSuccess("Research plan complete")
	} else {
		spin.Stop()
	}
	if err != nil {
		p.logger.Warn("plan interrupted", slog.String("error", err.Error()), slog.Int("completed", state.CompletedSteps))
	}

	summary := output.PlanSummary{
		CompletedSteps: state.CompletedSteps,
		TotalSteps:     state.TotalSteps,
		LogLines:       state.RevealedLogLines,
		Duration:       time.Since(start),
		Error:          err,
	}
	f.PrintPlanSummary(summary)
	return summary
}
