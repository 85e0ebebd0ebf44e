// ABOUTME: CSV export of the reordered track list
// ABOUTME: Emits only the columns present on input and drops the internal canonical key

package playlist

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes tracks to a flat CSV table. The Artist and BPM columns
// are emitted only when any track carries them, mirroring whatever the
// input had; the resolved wheel position is a working field and never
// exported. Creates a .bak of an existing file before overwriting.
func WriteCSV(path string, tracks []Track) (err error) {
	withArtist := false
	withBPM := false

	for i := range tracks {
		if tracks[i].Artist != "" {
			withArtist = true
		}

		if tracks[i].BPM > 0 {
			withBPM = true
		}
	}

	// Create backup if file exists
	if _, statErr := os.Stat(path); statErr == nil {
		if renameErr := os.Rename(path, path+".bak"); renameErr != nil {
			return fmt.Errorf("failed to create backup: %w", renameErr)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", closeErr)
		}
	}()

	writer := csv.NewWriter(file)

	header := make([]string, 0, 4)
	if withArtist {
		header = append(header, "Artist")
	}

	header = append(header, "Title", "Key")

	if withBPM {
		header = append(header, "BPM")
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range tracks {
		row := make([]string, 0, 4)
		if withArtist {
			row = append(row, tracks[i].Artist)
		}

		row = append(row, tracks[i].Title, tracks[i].Key)

		if withBPM {
			row = append(row, formatBPMCell(tracks[i].BPM))
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write track: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	return nil
}

// formatBPMCell renders a BPM without trailing zeros, empty when unknown
func formatBPMCell(bpm float64) string {
	if bpm <= 0 {
		return ""
	}

	return strconv.FormatFloat(bpm, 'f', -1, 64)
}
