package logging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/flashingpumpkin/stratos/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); !errors.Is(err, apperrors.ErrInvalidLogLevel) {
		t.Errorf("ParseLevel(loud) error = %v; want ErrInvalidLogLevel", err)
	}
}

func TestNew_NoSinksDiscards(t *testing.T) {
	logger, cleanup, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer cleanup()

	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger without sinks should discard everything")
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stratos.log")

	logger, cleanup, err := New(Options{Level: "debug", Format: "json", File: path, Version: "test"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("session created", "session.id", "abc")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if record["msg"] != "session created" {
		t.Errorf("msg = %v; want session created", record["msg"])
	}
	if record["session.id"] != "abc" {
		t.Errorf("session.id = %v; want abc", record["session.id"])
	}
	if record["stratos.version"] != "test" {
		t.Errorf("stratos.version = %v; want test", record["stratos.version"])
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stratos.log")

	logger, cleanup, err := New(Options{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	_ = cleanup()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn record missing")
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stratos.log")

	_, _, err := New(Options{Format: "xml", File: path})
	if !errors.Is(err, apperrors.ErrInvalidLogFormat) {
		t.Errorf("New() error = %v; want ErrInvalidLogFormat", err)
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := Discard()
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if FromContext(context.Background()) == nil {
		t.Error("FromContext on empty context returned nil")
	}
}
