// ABOUTME: Tests for M3U8 playlist reading
// ABOUTME: Verifies comment handling, empty lines and metadata loading failures

package playlist

import (
	"os"
	"path/filepath"
	"testing"
)

// TestReadM3U8 verifies M3U8 parsing
func TestReadM3U8(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectCount int
	}{
		{
			name: "simple playlist",
			content: `Artist/Album/01 Track.mp3
Artist/Album/02 Track.mp3
Artist/Album/03 Track.mp3`,
			expectCount: 3,
		},
		{
			name: "with comments",
			content: `#EXTM3U
# This is a comment
Artist/Album/01 Track.mp3
Artist/Album/02 Track.mp3`,
			expectCount: 2,
		},
		{
			name: "with empty lines",
			content: `Artist/Album/01 Track.mp3

Artist/Album/02 Track.mp3

`,
			expectCount: 2,
		},
		{
			name:        "empty file",
			content:     "",
			expectCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "test.m3u8")
			if err := os.WriteFile(tmpFile, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			paths, err := ReadM3U8(tmpFile)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(paths) != tt.expectCount {
				t.Errorf("Expected %d paths, got %d", tt.expectCount, len(paths))
			}

			for i, path := range paths {
				if path == "" {
					t.Errorf("Path %d is empty", i)
				}
			}
		})
	}
}

// TestReadM3U8NonExistent verifies error handling for missing files
func TestReadM3U8NonExistent(t *testing.T) {
	if _, err := ReadM3U8("/nonexistent/path/to/playlist.m3u8"); err == nil {
		t.Error("Expected error for nonexistent file, got none")
	}
}

// TestLoadM3U8SkipsUnreadableTracks verifies tracks without readable
// metadata are filtered out instead of failing the load
func TestLoadM3U8SkipsUnreadableTracks(t *testing.T) {
	tmpDir := t.TempDir()

	// Not real audio: tag reading fails for both entries
	playlistFile := filepath.Join(tmpDir, "test.m3u8")
	content := "missing.mp3\nalso-missing.mp3\n"

	if err := os.WriteFile(playlistFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create playlist: %v", err)
	}

	tracks, err := LoadM3U8(playlistFile, false)
	if err != nil {
		t.Fatalf("LoadM3U8 failed: %v", err)
	}

	if len(tracks) != 0 {
		t.Errorf("Expected 0 loadable tracks, got %d", len(tracks))
	}
}
