// Package config provides configuration management for stratos.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/flashingpumpkin/stratos/internal/content"
	apperrors "github.com/flashingpumpkin/stratos/internal/errors"
	"github.com/flashingpumpkin/stratos/internal/ticker"
)

// Default panel widths, in terminal columns.
const (
	DefaultNavExpandedWidth  = 32
	DefaultNavCollapsedWidth = 6
)

// Config holds the configuration for one stratos screen.
type Config struct {
	// Theme is the colour theme for the TUI: "auto", "dark", or "light".
	// "auto" detects the terminal background colour automatically.
	Theme string

	// NavExpandedWidth is the navigation panel width when expanded (default: 32).
	NavExpandedWidth int

	// NavCollapsedWidth is the navigation panel width when collapsed (default: 6).
	NavCollapsedWidth int

	// Cadence is the interval between reasoning ticks (default: 800ms).
	Cadence time.Duration

	// AutoStop stops the reasoning ticker once every plan step has completed
	// (default: true). When false the cadence keeps running until the
	// reasoning panel is dismissed.
	AutoStop bool

	// SeedSessions fills the navigation panel with starter sessions (default: true).
	SeedSessions bool

	// Plan is the scripted plan of action shown while the agent "thinks".
	Plan ticker.Plan

	// LogLevel is one of debug, info, warn, error (default: info).
	LogLevel string

	// LogFormat is text or json (default: text).
	LogFormat string

	// LogFile is where logs are written. Empty discards logs in TUI mode.
	LogFile string

	// WorkingDir is where .stratos/config.toml is looked up (default: ".").
	WorkingDir string
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Theme:             "auto",
		NavExpandedWidth:  DefaultNavExpandedWidth,
		NavCollapsedWidth: DefaultNavCollapsedWidth,
		Cadence:           ticker.DefaultCadence,
		AutoStop:          true,
		SeedSessions:      true,
		Plan:              content.ResearchPlan(),
		LogLevel:          "info",
		LogFormat:         "text",
		WorkingDir:        ".",
	}
}

// ValidThemes lists the accepted theme names.
var ValidThemes = []string{"auto", "dark", "light"}

// ValidLogLevels lists the accepted log level names.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the configuration is valid.
// Returns an error wrapping one of the sentinel errors if validation fails.
func (c *Config) Validate() error {
	if !contains(ValidThemes, c.Theme) {
		return fmt.Errorf("%w: %q (allowed: %s)", apperrors.ErrInvalidTheme, c.Theme, strings.Join(ValidThemes, ", "))
	}
	if c.NavExpandedWidth <= 0 {
		return fmt.Errorf("%w: expanded width must be positive, got %d", apperrors.ErrInvalidWidth, c.NavExpandedWidth)
	}
	if c.NavCollapsedWidth <= 0 {
		return fmt.Errorf("%w: collapsed width must be positive, got %d", apperrors.ErrInvalidWidth, c.NavCollapsedWidth)
	}
	if c.NavCollapsedWidth >= c.NavExpandedWidth {
		return fmt.Errorf("%w: collapsed width %d must be less than expanded width %d",
			apperrors.ErrInvalidWidth, c.NavCollapsedWidth, c.NavExpandedWidth)
	}
	if c.Cadence <= 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidCadence, c.Cadence)
	}
	if len(c.Plan.Steps) == 0 {
		return apperrors.ErrEmptyPlan
	}
	if !contains(ValidLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("%w: %q (allowed: %s)", apperrors.ErrInvalidLogLevel, c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q (allowed: text, json)", apperrors.ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
