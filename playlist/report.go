// ABOUTME: Transition quality statistics over a final track ordering
// ABOUTME: Counts perfect/good/bad transitions and tracks the worst harmonic jump

package playlist

import "harmonic-flow/camelot"

// Transition quality thresholds on the harmonic distance scale
const (
	perfectThreshold = 1 // same key, relative swap or one ring step
	goodThreshold    = 2 // one ring step plus a ring switch
)

// Report aggregates transition quality over a track ordering. Purely
// informational; building it never alters the sequence.
type Report struct {
	Transitions   int // adjacent keyed pairs examined
	Perfect       int // distance <= 1
	Good          int // distance == 2
	Bad           int // distance > 2, an unavoidable gap
	TotalDistance int // sum of harmonic distances
	WorstJump     int // largest single transition distance
}

// BuildReport walks consecutive pairs of keyed tracks in the given order
// and sums their harmonic distances. Keyless tracks are ordering-exempt and
// excluded from the statistic entirely.
func BuildReport(tracks []Track) Report {
	var report Report

	var prev *camelot.Key

	for i := range tracks {
		k := tracks[i].Parsed
		if k == nil {
			continue
		}

		if prev != nil {
			d := camelot.Distance(prev, k)

			report.Transitions++
			report.TotalDistance += d

			switch {
			case d <= perfectThreshold:
				report.Perfect++
			case d == goodThreshold:
				report.Good++
			default:
				report.Bad++
			}

			if d > report.WorstJump {
				report.WorstJump = d
			}
		}

		prev = k
	}

	return report
}
