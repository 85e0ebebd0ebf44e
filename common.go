// ABOUTME: Shared initialization code for CLI and view modes
// ABOUTME: Provides common playlist loading, config setup, and debug logging

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"harmonic-flow/config"
	"harmonic-flow/playlist"
)

var debugLog *log.Logger

// RunOptions contains command-line options for all modes
type RunOptions struct {
	InputPath  string
	OutputPath string
	Policy     string
	DryRun     bool
	DebugLog   bool
}

// LoadOptions contains options for loading playlists
type LoadOptions struct {
	Path    string
	Verbose bool
}

// LoadTracks reads a playlist by file type: M3U8 playlists pull metadata
// from audio tags, everything else is treated as a Rekordbox-style export.
// Resolved keys are attached and input positions assigned.
func LoadTracks(opts LoadOptions) ([]playlist.Track, error) {
	if opts.Verbose {
		fmt.Printf("Reading playlist: %s\n", opts.Path)
	}

	var (
		tracks []playlist.Track
		err    error
	)

	switch strings.ToLower(filepath.Ext(opts.Path)) {
	case ".m3u8", ".m3u":
		tracks, err = playlist.LoadM3U8(opts.Path, opts.Verbose)
	default:
		tracks, err = playlist.ReadExport(opts.Path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}

	if len(tracks) == 0 {
		return nil, errors.New("playlist is empty")
	}

	playlist.ResolveKeys(tracks)

	for i := range tracks {
		tracks[i].Index = i
	}

	return tracks, nil
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// resolvePolicy picks the energy policy from the flag, falling back to config
func resolvePolicy(flagValue string, cfg config.Config) (playlist.EnergyPolicy, error) {
	token := flagValue
	if token == "" {
		token = cfg.EnergyPolicy
	}

	if token == "" {
		return playlist.RampUp, nil
	}

	return playlist.ParseEnergyPolicy(token)
}

// defaultOutputPath derives the export path from the input file name
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)

	return strings.TrimSuffix(inputPath, ext) + "_sorted.csv"
}

// truncate shortens string to maxLen, adding "..." if needed
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
