package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/flashingpumpkin/stratos/internal/config"
	"github.com/flashingpumpkin/stratos/internal/logging"
	"github.com/flashingpumpkin/stratos/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// options holds the flag values shared by every command.
type options struct {
	configFile string
	workingDir string
	theme      string
	logFile    string
	logLevel   string
	logFormat  string
	minimal    bool
	noSeed     bool
	cadence    time.Duration
	noAutoStop bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "stratos",
		Short: "Terminal research workspace",
		Long: `Stratos is a terminal research workspace: a navigation panel of chat
sessions, a workspace where an agent plans and reports on your question, and
a source viewer.

The agent is scripted. Sending a message shows a "Thinking" panel that works
through a plan of action on a fixed cadence, then answers with a research
report.

CONFIGURATION FILE

Stratos can be configured via a TOML file. By default, it looks for
.stratos/config.toml in the working directory. Use --config to specify a
different path. Flags override the file.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to config file (default: .stratos/config.toml)")
	flags.StringVarP(&opts.workingDir, "working-dir", "d", ".", "Directory to look up .stratos/config.toml in")
	flags.StringVar(&opts.theme, "theme", "auto", "Colour theme: auto, dark, light")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")
	flags.BoolVar(&opts.minimal, "minimal", false, "Use minimal output mode (no TUI)")
	flags.BoolVar(&opts.noSeed, "no-seed", false, "Start without the starter chat sessions")
	flags.DurationVar(&opts.cadence, "cadence", 0, "Interval between reasoning steps (default 800ms)")
	flags.BoolVar(&opts.noAutoStop, "no-auto-stop", false, "Keep the reasoning cadence running after the plan completes")

	cmd.AddCommand(newPlanCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runRoot(cmd *cobra.Command, opts *options) error {
	useTUI := shouldUseTUI(opts.minimal)

	cfg, configPath, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(cmd, cfg, !useTUI)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	if !useTUI {
		// Without a terminal the reasoning display runs once in plain text.
		return runPlan(cmd, cfg, configPath, logger, "", false)
	}

	logger.Info("starting tui", slog.String("theme", cfg.Theme))
	if err := tui.New(cfg, tui.WithLogger(logger)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// buildConfig layers defaults, the optional config file and explicitly set
// flags, then validates the result. It also returns the config file path
// that was loaded, or "".
func buildConfig(cmd *cobra.Command, opts *options) (*config.Config, string, error) {
	cfg := config.NewConfig()
	cfg.WorkingDir = opts.workingDir

	var (
		fileConfig *config.FileConfig
		configPath string
		err        error
	)
	if opts.configFile != "" {
		// Use explicit config file path
		configPath = opts.configFile
		fileConfig, err = config.LoadFileConfigFrom(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if fileConfig == nil {
			return nil, "", fmt.Errorf("config file not found: %s", configPath)
		}
	} else {
		// Try default .stratos/config.toml
		fileConfig, err = config.LoadFileConfig(cfg.WorkingDir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config file: %w", err)
		}
		if fileConfig != nil {
			configPath = config.DefaultPath(cfg.WorkingDir)
		}
	}
	if err := fileConfig.Apply(cfg); err != nil {
		return nil, "", fmt.Errorf("configuration error: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("cadence") {
		cfg.Cadence = opts.cadence
	}
	if opts.noSeed {
		cfg.SeedSessions = false
	}
	if opts.noAutoStop {
		cfg.AutoStop = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("configuration error: %w", err)
	}
	return cfg, configPath, nil
}

// newLogger builds the logger for a run. In minimal mode an explicitly
// requested level also logs to stderr; the TUI only ever logs to a file.
func newLogger(cmd *cobra.Command, cfg *config.Config, minimal bool) (*slog.Logger, func() error, error) {
	logger, cleanup, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
		Stderr:  minimal && cfg.LogFile == "" && cmd.Flags().Changed("log-level"),
		Version: version,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	return logger, cleanup, nil
}

// shouldUseTUI determines whether to use the TUI based on flags and environment.
func shouldUseTUI(minimal bool) bool {
	// Explicit minimal flag disables TUI
	if minimal {
		return false
	}

	// CI environment disables TUI
	if os.Getenv("CI") != "" {
		return false
	}

	// Non-interactive terminal disables TUI
	return isTerminal(os.Stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
