package config

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/flashingpumpkin/stratos/internal/errors"
)

func TestNewConfig_ReturnsConfigWithDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg == nil {
		t.Fatal("NewConfig() returned nil")
	}

	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q; want %q", cfg.Theme, "auto")
	}
	if cfg.NavExpandedWidth != 32 {
		t.Errorf("NavExpandedWidth = %d; want 32", cfg.NavExpandedWidth)
	}
	if cfg.NavCollapsedWidth != 6 {
		t.Errorf("NavCollapsedWidth = %d; want 6", cfg.NavCollapsedWidth)
	}
	if cfg.Cadence != 800*time.Millisecond {
		t.Errorf("Cadence = %v; want 800ms", cfg.Cadence)
	}
	if !cfg.AutoStop {
		t.Error("AutoStop = false; want true")
	}
	if !cfg.SeedSessions {
		t.Error("SeedSessions = false; want true")
	}
	if len(cfg.Plan.Steps) != 3 {
		t.Errorf("len(Plan.Steps) = %d; want 3", len(cfg.Plan.Steps))
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log = %q/%q; want info/text", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q; want empty string", cfg.LogFile)
	}
	if cfg.WorkingDir != "." {
		t.Errorf("WorkingDir = %q; want %q", cfg.WorkingDir, ".")
	}
}

func TestConfig_Validate_AcceptsDefaults(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v; want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "solarized" }, want: apperrors.ErrInvalidTheme},
		{name: "zero expanded width", mutate: func(c *Config) { c.NavExpandedWidth = 0 }, want: apperrors.ErrInvalidWidth},
		{name: "negative collapsed width", mutate: func(c *Config) { c.NavCollapsedWidth = -1 }, want: apperrors.ErrInvalidWidth},
		{name: "collapsed not narrower", mutate: func(c *Config) { c.NavCollapsedWidth = 32 }, want: apperrors.ErrInvalidWidth},
		{name: "zero cadence", mutate: func(c *Config) { c.Cadence = 0 }, want: apperrors.ErrInvalidCadence},
		{name: "empty plan", mutate: func(c *Config) { c.Plan.Steps = nil }, want: apperrors.ErrEmptyPlan},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, want: apperrors.ErrInvalidLogLevel},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, want: apperrors.ErrInvalidLogFormat},
		{name: "upper case log level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }, want: nil},
		{name: "empty log is allowed", mutate: func(c *Config) { c.Plan.Log = nil }, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v; want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v; want %v", err, tt.want)
			}
		})
	}
}
