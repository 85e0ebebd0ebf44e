// ABOUTME: Defines the Track record and metadata fetching from audio file tags
// ABOUTME: Reads artist, title, BPM and key from ID3/Vorbis tags including the comment convention

// Package playlist models DJ track lists and reorders them for harmonic
// mixing. It ingests Rekordbox-style playlist exports and M3U8 playlists,
// sequences tracks along a solved Camelot key path under an energy policy,
// and reports transition quality.
package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/dhowden/tag"

	"harmonic-flow/camelot"
)

// Track is one playlist row. Records are created by an ingestion adapter
// and never mutated by the optimizer beyond attaching the resolved key.
type Track struct {
	Artist string       // Artist name, may be empty
	Title  string       // Track title
	Key    string       // Raw key notation as found in the source data
	Parsed *camelot.Key // Resolved wheel position, nil when keyless
	BPM    float64      // Beats per minute, 0 when unknown
	Path   string       // Source file path when loaded from an M3U8
	Index  int          // Position in the original input sequence
}

// Compile regex once at package initialization
var commentKeyRegex = regexp.MustCompile(`(\d+[AB])\s*-\s*Energy`)

// ReadTrackTags fetches track metadata by reading the audio file's tags.
// Relative paths are resolved against baseDir (typically the playlist's
// directory). The Camelot key is taken from the "8A - Energy 6" comment
// convention first, then from initial-key tags in any supported notation.
func ReadTrackTags(trackPath string, baseDir string) (*Track, error) {
	fullPath := trackPath
	if !filepath.IsAbs(trackPath) && baseDir != "" {
		fullPath = filepath.Join(baseDir, trackPath)
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	title := metadata.Title()
	if title == "" {
		title = filepath.Base(trackPath)
	}

	rawKey := extractCommentKey(metadata.Comment())

	var bpm float64

	if raw := metadata.Raw(); raw != nil {
		// Common BPM tag names across formats
		for _, name := range []string{"BPM", "TBPM", "bpm", "tempo"} {
			if val, exists := raw[name]; exists {
				switch v := val.(type) {
				case string:
					bpm, _ = strconv.ParseFloat(v, 64)
				case int:
					bpm = float64(v)
				case float64:
					bpm = v
				}

				if bpm > 0 {
					break
				}
			}
		}

		// Initial-key tags when the comment convention is absent
		if rawKey == "" {
			for _, name := range []string{"TKEY", "KEY", "INITIALKEY", "initialkey"} {
				if val, exists := raw[name]; exists {
					if s, ok := val.(string); ok && s != "" {
						rawKey = s

						break
					}
				}
			}
		}
	}

	parsed, _ := camelot.Normalize(rawKey)

	return &Track{
		Artist: metadata.Artist(),
		Title:  title,
		Key:    rawKey,
		Parsed: parsed,
		BPM:    bpm,
		Path:   trackPath,
	}, nil
}

// extractCommentKey pulls a Camelot code from a comment like "8A - Energy 6"
func extractCommentKey(comment string) string {
	matches := commentKeyRegex.FindStringSubmatch(comment)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// ResolveKeys attaches the canonical wheel position to every track whose raw
// key notation resolves. Unresolvable keys leave Parsed nil; those tracks
// are treated as keyless throughout.
func ResolveKeys(tracks []Track) {
	for i := range tracks {
		if tracks[i].Parsed == nil {
			tracks[i].Parsed, _ = camelot.Normalize(tracks[i].Key)
		}
	}
}

// String returns a formatted string representation of the track
func (t *Track) String() string {
	return fmt.Sprintf("%-25s - %-30s Key: %-4s BPM: %.0f", t.Artist, t.Title, t.Key, t.BPM)
}
