package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/flashingpumpkin/stratos/internal/ticker"
)

// FileConfig represents the configuration loaded from .stratos/config.toml.
// Unset fields leave the corresponding Config value untouched.
type FileConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme"`

	Layout    LayoutConfig    `toml:"layout"`
	Reasoning ReasoningConfig `toml:"reasoning"`
	Sessions  SessionsConfig  `toml:"sessions"`
	Log       LogConfig       `toml:"log"`
}

// LayoutConfig represents the [layout] section.
type LayoutConfig struct {
	NavWidth          int `toml:"nav_width"`
	NavCollapsedWidth int `toml:"nav_collapsed_width"`
}

// ReasoningConfig represents the [reasoning] section.
type ReasoningConfig struct {
	// Cadence is a Go duration string such as "800ms".
	Cadence string `toml:"cadence"`

	// AutoStop overrides the auto-stop behaviour when set.
	AutoStop *bool `toml:"auto_stop"`

	// Steps replaces the default plan of action when non-empty.
	Steps []StepConfig `toml:"steps"`

	// Log replaces the default execution log when non-empty.
	Log []string `toml:"log"`
}

// StepConfig is one [[reasoning.steps]] entry.
type StepConfig struct {
	Icon  string `toml:"icon"`
	Label string `toml:"label"`
}

// SessionsConfig represents the [sessions] section.
type SessionsConfig struct {
	Seed *bool `toml:"seed"`
}

// LogConfig represents the [log] section.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// DefaultPath returns the location of .stratos/config.toml under workingDir.
func DefaultPath(workingDir string) string {
	return filepath.Join(workingDir, ".stratos", "config.toml")
}

// LoadFileConfig reads configuration from .stratos/config.toml in the working directory.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfig(workingDir string) (*FileConfig, error) {
	return LoadFileConfigFrom(DefaultPath(workingDir))
}

// LoadFileConfigFrom reads configuration from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfigFrom(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply overlays the values set in the file onto cfg.
func (fc *FileConfig) Apply(cfg *Config) error {
	if fc == nil {
		return nil
	}

	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if fc.Layout.NavWidth != 0 {
		cfg.NavExpandedWidth = fc.Layout.NavWidth
	}
	if fc.Layout.NavCollapsedWidth != 0 {
		cfg.NavCollapsedWidth = fc.Layout.NavCollapsedWidth
	}

	if fc.Reasoning.Cadence != "" {
		d, err := time.ParseDuration(fc.Reasoning.Cadence)
		if err != nil {
			return fmt.Errorf("reasoning.cadence: %w", err)
		}
		cfg.Cadence = d
	}
	if fc.Reasoning.AutoStop != nil {
		cfg.AutoStop = *fc.Reasoning.AutoStop
	}
	if len(fc.Reasoning.Steps) > 0 {
		steps := make([]ticker.PlanStep, 0, len(fc.Reasoning.Steps))
		for _, s := range fc.Reasoning.Steps {
			steps = append(steps, ticker.PlanStep{Icon: s.Icon, Label: s.Label})
		}
		cfg.Plan.Steps = steps
	}
	if len(fc.Reasoning.Log) > 0 {
		lines := make([]ticker.LogLine, 0, len(fc.Reasoning.Log))
		for _, text := range fc.Reasoning.Log {
			lines = append(lines, ticker.LogLine{Text: text})
		}
		cfg.Plan.Log = lines
	}

	if fc.Sessions.Seed != nil {
		cfg.SeedSessions = *fc.Sessions.Seed
	}

	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		cfg.LogFormat = fc.Log.Format
	}
	if fc.Log.File != "" {
		cfg.LogFile = fc.Log.File
	}

	return nil
}
