// ABOUTME: Tests for TOML config loading and saving
// ABOUTME: Verifies defaults fallback, partial files and save/load round-trips

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigMissingFile verifies defaults when no config exists
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

// TestLoadConfigPartialFile verifies unset fields keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	content := "energy_policy = \"wave\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.EnergyPolicy != "wave" {
		t.Errorf("EnergyPolicy = %q, want %q", cfg.EnergyPolicy, "wave")
	}

	if cfg.ExactSolverLimit != DefaultConfig().ExactSolverLimit {
		t.Errorf("ExactSolverLimit = %d, want default %d", cfg.ExactSolverLimit, DefaultConfig().ExactSolverLimit)
	}
}

// TestLoadConfigMalformed verifies defaults come back with the parse error
func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := os.WriteFile(path, []byte("energy_policy = [broken"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("expected parse error, got none")
	}

	if cfg != DefaultConfig() {
		t.Errorf("malformed config should yield defaults, got %+v", cfg)
	}
}

// TestSaveLoadRoundTrip verifies a saved config reads back identically
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	want := Config{
		EnergyPolicy:     "ramp_down",
		ExactSolverLimit: 12,
		Verbose:          true,
	}

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
