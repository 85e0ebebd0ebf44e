// ABOUTME: Display formatting for BPM values
// ABOUTME: Renders floats with just enough digits, and a dash for missing values

package main

import (
	"math"
	"strconv"
)

// FormatBPM renders a BPM for table display: no trailing zeros, at most two
// decimals, "-" when the value is missing.
func FormatBPM(bpm float64) string {
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return "-"
	}

	rounded := math.Round(bpm*100) / 100

	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
