// ABOUTME: Reads Rekordbox-style playlist exports into Track records
// ABOUTME: Handles UTF-16LE TXT exports, tab or comma delimiters, and loose header matching

package playlist

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"harmonic-flow/camelot"
)

// ErrKeyColumnMissing is returned when an export has no Key column; the
// optimizer cannot run without key information.
var ErrKeyColumnMissing = errors.New("column \"Key\" not found in playlist export")

// ReadExport reads a Rekordbox playlist export (TXT or CSV) into Track
// records. Rekordbox TXT exports are tab-separated UTF-16LE; plain CSV
// works too. Column headers are matched loosely ("Track Title" or "Title",
// any casing). Invalid or missing BPM values become 0 rather than errors;
// the Key column is required.
func ReadExport(path string) ([]Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist export: %w", err)
	}

	text, err := decodeExport(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse playlist export: %w", err)
	}

	if len(rows) == 0 {
		return nil, errors.New("playlist export is empty")
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(rows)-1)

	for _, row := range rows[1:] {
		track := Track{
			Artist: cols.field(row, cols.artist),
			Title:  cols.field(row, cols.title),
			Key:    cols.field(row, cols.key),
		}

		if bpmText := cols.field(row, cols.bpm); bpmText != "" {
			// Coerce; anything non-numeric is simply a missing BPM
			if bpm, err := strconv.ParseFloat(bpmText, 64); err == nil && bpm > 0 {
				track.BPM = bpm
			}
		}

		track.Parsed, _ = camelot.Normalize(track.Key)

		tracks = append(tracks, track)
	}

	return tracks, nil
}

// utf16leBOM marks Rekordbox TXT exports
var utf16leBOM = []byte{0xFF, 0xFE}

// decodeExport converts the raw export bytes to UTF-8 text. Rekordbox TXT
// files carry a UTF-16LE byte order mark; files with embedded NUL bytes are
// treated as BOM-less UTF-16LE. Everything else passes through as UTF-8.
func decodeExport(data []byte) (string, error) {
	if bytes.HasPrefix(data, utf16leBOM) || bytes.IndexByte(data, 0x00) >= 0 {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()

		decoded, err := decoder.Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode UTF-16 export: %w", err)
		}

		return string(decoded), nil
	}

	// Strip a UTF-8 BOM if present
	return string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})), nil
}

// detectDelimiter inspects the header line: Rekordbox TXT is tab-separated,
// everything else is treated as comma-separated
func detectDelimiter(text string) rune {
	header := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		header = text[:idx]
	}

	if strings.ContainsRune(header, '\t') {
		return '\t'
	}

	return ','
}

// columnMap holds the resolved column index per field, -1 when absent
type columnMap struct {
	artist int
	title  int
	bpm    int
	key    int
}

// field safely extracts a trimmed cell from a possibly short row
func (c columnMap) field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// mapColumns resolves header names to column indices. Rekordbox names the
// title column "Track Title"; other exports use "Title". The Key column is
// mandatory, the rest degrade to empty values.
func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{artist: -1, title: -1, bpm: -1, key: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "artist":
			cols.artist = i
		case "track title", "title":
			cols.title = i
		case "bpm":
			cols.bpm = i
		case "key":
			cols.key = i
		}
	}

	if cols.key < 0 {
		return cols, ErrKeyColumnMissing
	}

	return cols, nil
}
