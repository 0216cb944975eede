// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// StratosDir creates a temporary directory with the .stratos structure.
// Returns the temp dir root and the .stratos dir path.
// The temp dir is automatically cleaned up when the test completes.
func StratosDir(t *testing.T) (tempDir, stratosDir string) {
	t.Helper()
	tempDir = t.TempDir()
	stratosDir = filepath.Join(tempDir, ".stratos")
	if err := os.MkdirAll(stratosDir, 0755); err != nil {
		t.Fatalf("failed to create .stratos dir: %v", err)
	}
	return tempDir, stratosDir
}

// WriteConfig writes content to .stratos/config.toml under a fresh temp dir.
// Returns the temp dir root and the config file path.
func WriteConfig(t *testing.T, content string) (tempDir, configPath string) {
	t.Helper()
	tempDir, stratosDir := StratosDir(t)
	configPath = filepath.Join(stratosDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return tempDir, configPath
}
