// ABOUTME: Configuration management for harmonic-flow defaults
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads and saves harmonic-flow settings as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable optimizer defaults
type Config struct {
	// EnergyPolicy is the default BPM contour: ramp_up, ramp_down or wave
	EnergyPolicy string `toml:"energy_policy"`

	// ExactSolverLimit is the largest distinct-key count solved with the
	// exact path solver before falling back to the greedy heuristic.
	// Zero means the built-in default.
	ExactSolverLimit int `toml:"exact_solver_limit"`

	// Verbose enables per-track progress output while loading
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the default settings
func DefaultConfig() Config {
	return Config{
		EnergyPolicy:     "ramp_up",
		ExactSolverLimit: 0,
		Verbose:          false,
	}
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/harmonic-flow/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./harmonic-flow.toml"); err == nil {
		return "./harmonic-flow.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./harmonic-flow.toml"
	}

	return filepath.Join(home, ".config", "harmonic-flow", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}

		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
