// ABOUTME: M3U8 ingestion adapter reading track metadata from audio file tags
// ABOUTME: Fetches tag metadata concurrently with a bounded worker pool

package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alitto/pond"
)

// ReadM3U8 reads an M3U8 playlist file and returns the track paths in
// order, skipping comments and blank lines.
func ReadM3U8(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	var paths []string

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading playlist: %w", err)
	}

	return paths, nil
}

// LoadM3U8 reads an M3U8 playlist and fetches tag metadata for every track.
// Tag reads hit the filesystem per file, so they run on a worker pool sized
// to the CPU count; the returned slice keeps playlist order. Tracks whose
// metadata cannot be read are skipped with a warning when verbose is set.
func LoadM3U8(path string, verbose bool) ([]Track, error) {
	paths, err := ReadM3U8(path)
	if err != nil {
		return nil, err
	}

	if verbose {
		fmt.Printf("Loading metadata for %d tracks...\n", len(paths))
	}

	baseDir := filepath.Dir(path)

	loaded := make([]*Track, len(paths))

	pool := pond.New(runtime.NumCPU(), len(paths))

	for i, trackPath := range paths {
		pool.Submit(func() {
			track, err := ReadTrackTags(trackPath, baseDir)
			if err != nil {
				if verbose {
					fmt.Printf("[!] Skipping track (could not load metadata): %s: %v\n", trackPath, err)
				}

				return
			}

			loaded[i] = track
		})
	}

	pool.StopAndWait()

	tracks := make([]Track, 0, len(paths))

	for _, track := range loaded {
		if track != nil {
			tracks = append(tracks, *track)
		}
	}

	return tracks, nil
}
