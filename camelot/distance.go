// ABOUTME: Harmonic distance metric between Camelot wheel positions
// ABOUTME: Shortest path length on the two-ring wheel graph, with an unknown-key sentinel

package camelot

const (
	// UnknownDistance is returned when either key is missing. It exceeds
	// every real wheel distance (max 7) so unknown transitions always lose
	// comparisons against real ones.
	UnknownDistance = 100

	// MaxDistance is the largest distance between two valid wheel
	// positions: 6 ring steps plus 1 cross-ring step.
	MaxDistance = 7
)

// Distance returns the harmonic distance between two wheel positions: the
// shortest path length on the 24-node wheel graph where adjacent numbers on
// the same ring and same-number positions on opposite rings are one step
// apart. Symmetric, zero on identity.
//
//	0 = same key
//	1 = relative major/minor or one ring step
//	2 = one ring step plus a ring switch
//	up to 7 for opposite sides of the wheel on different rings
//
// Returns UnknownDistance if either key is nil.
func Distance(a, b *Key) int {
	if a == nil || b == nil {
		return UnknownDistance
	}

	if a.Number == b.Number {
		if a.Letter == b.Letter {
			return 0
		}

		// Relative major/minor swap, the cleanest non-identical mix
		return 1
	}

	diff := a.Number - b.Number
	if diff < 0 {
		diff = -diff
	}

	numDiff := min(diff, 12-diff)

	if a.Letter == b.Letter {
		return numDiff
	}

	return numDiff + 1
}
