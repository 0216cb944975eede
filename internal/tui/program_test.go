package tui

import (
	"os"
	"testing"

	"github.com/flashingpumpkin/stratos/internal/config"
)

func TestNewProgram(t *testing.T) {
	// Skip if running in CI without a terminal
	if os.Getenv("CI") != "" {
		t.Skip("Skipping TUI test in CI environment")
	}
	t.Setenv("NO_COLOR", "1")

	cfg := config.NewConfig()
	cfg.Theme = "dark"

	prog := New(cfg)
	if prog == nil {
		t.Fatal("expected non-nil Program")
	}
	if prog.program == nil {
		t.Error("expected non-nil tea.Program")
	}
}
