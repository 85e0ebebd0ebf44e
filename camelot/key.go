// ABOUTME: Camelot wheel key codes and normalization of textual key notation
// ABOUTME: Maps musical spellings and Open Key notation onto the 24 canonical wheel codes

// Package camelot implements the Camelot wheel harmonic mixing core:
// key normalization, harmonic distance and key path planning.
//
// The wheel has 24 positions: numbers 1-12 on two rings, "A" for minor
// and "B" for major keys. Everything in this package works on canonical
// codes like "8A"; Normalize funnels arbitrary DJ-software notation into
// that form.
package camelot

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Key is a position on the Camelot wheel
type Key struct {
	Letter string // "A" (minor) or "B" (major)
	Number int    // 1-12
}

// Compile regex once at package initialization
var keyCodeRegex = regexp.MustCompile(`^(\d+)([AB])$`)

// ParseCode parses a canonical Camelot code like "8A" into structured form.
// Returns an error if the code is not one of the 24 wheel positions.
func ParseCode(code string) (*Key, error) {
	if code == "" {
		return nil, fmt.Errorf("empty key code")
	}

	matches := keyCodeRegex.FindStringSubmatch(code)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid key code: %s", code)
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil || number < 1 || number > 12 {
		return nil, fmt.Errorf("key number out of range: %s", matches[1])
	}

	return &Key{
		Letter: matches[2],
		Number: number,
	}, nil
}

// String returns the canonical code of a Key
func (k *Key) String() string {
	return fmt.Sprintf("%d%s", k.Number, k.Letter)
}

// Relative returns the relative major/minor of a key (same number, other ring)
func (k *Key) Relative() *Key {
	letter := "A"
	if k.Letter == "A" {
		letter = "B"
	}

	return &Key{Letter: letter, Number: k.Number}
}

// minorRoots and majorRoots list the note spellings (including enharmonic
// variants) for each wheel number, indexed by number-1.
var minorRoots = [12][]string{
	{"Ab", "G#"},  // 1A
	{"Eb", "D#"},  // 2A
	{"Bb", "A#"},  // 3A
	{"F"},         // 4A
	{"C"},         // 5A
	{"G"},         // 6A
	{"D"},         // 7A
	{"A"},         // 8A
	{"E"},         // 9A
	{"B"},         // 10A
	{"F#", "Gb"},  // 11A
	{"Db", "C#"},  // 12A
}

var majorRoots = [12][]string{
	{"B"},         // 1B
	{"F#", "Gb"},  // 2B
	{"Db", "C#"},  // 3B
	{"Ab", "G#"},  // 4B
	{"Eb", "D#"},  // 5B
	{"Bb", "A#"},  // 6B
	{"F"},         // 7B
	{"C"},         // 8B
	{"G"},         // 9B
	{"D"},         // 10B
	{"A"},         // 11B
	{"E"},         // 12B
}

// keyNames maps every supported key spelling to its canonical Camelot code.
// Covers bare major names ("C"), maj/min suffixes ("Cmaj", "Am", "Amin"),
// and Traktor Open Key notation ("1d".."12d" major, "1m".."12m" minor).
var keyNames = buildKeyNames()

// sortedKeyNames holds the table keys in a fixed order so the
// case-insensitive fallback scan is deterministic.
var sortedKeyNames = func() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}()

func buildKeyNames() map[string]string {
	names := make(map[string]string, 160)

	for i := 0; i < 12; i++ {
		minorCode := fmt.Sprintf("%dA", i+1)
		majorCode := fmt.Sprintf("%dB", i+1)

		for _, root := range minorRoots[i] {
			names[root+"m"] = minorCode
			names[root+"min"] = minorCode
		}

		for _, root := range majorRoots[i] {
			names[root] = majorCode
			names[root+"maj"] = majorCode
		}

		// Open Key runs around the circle of fifths offset by 7 positions
		// from Camelot: 1d is C major (8B), 1m is A minor (8A).
		open := ((i + 12 - 7) % 12) + 1
		names[fmt.Sprintf("%dd", open)] = majorCode
		names[fmt.Sprintf("%dm", open)] = minorCode
	}

	return names
}

// Normalize resolves arbitrary textual key notation to a canonical wheel
// position. Resolution order (first match wins):
//
//  1. Canonical code ("8A") passes through unchanged.
//  2. Case-sensitive lookup against the key spelling table.
//  3. Leading-zero correction ("08A" -> "8A").
//  4. Case-insensitive table lookup.
//
// Returns an error when the notation is not recognised; callers treat the
// track as keyless in that case. Input is trimmed before comparison.
func Normalize(raw string) (*Key, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("empty key")
	}

	if k, err := ParseCode(s); err == nil {
		return k, nil
	}

	if code, ok := keyNames[s]; ok {
		return ParseCode(code)
	}

	if len(s) > 1 && s[0] == '0' {
		if k, err := ParseCode(s[1:]); err == nil {
			return k, nil
		}
	}

	for _, name := range sortedKeyNames {
		if strings.EqualFold(name, s) {
			return ParseCode(keyNames[name])
		}
	}

	return nil, fmt.Errorf("unrecognised key notation: %q", raw)
}
