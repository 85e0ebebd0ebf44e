// ABOUTME: Tests for the harmonic distance metric
// ABOUTME: Validates identity, symmetry, bounds and the relative major/minor shortcut

package camelot

import (
	"fmt"
	"testing"
)

// allKeys returns all 24 wheel positions
func allKeys(t *testing.T) []*Key {
	t.Helper()

	keys := make([]*Key, 0, 24)

	for number := 1; number <= 12; number++ {
		for _, letter := range []string{"A", "B"} {
			k, err := ParseCode(fmt.Sprintf("%d%s", number, letter))
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}

			keys = append(keys, k)
		}
	}

	return keys
}

// TestDistanceIdentityAndSymmetry verifies d(a,a)=0 and d(a,b)=d(b,a) for all pairs
func TestDistanceIdentityAndSymmetry(t *testing.T) {
	keys := allKeys(t)

	for _, a := range keys {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%s, %s) = %d, want 0", a, a, d)
		}

		for _, b := range keys {
			ab := Distance(a, b)
			ba := Distance(b, a)

			if ab != ba {
				t.Errorf("Distance(%s, %s) = %d but Distance(%s, %s) = %d", a, b, ab, b, a, ba)
			}
		}
	}
}

// TestDistanceBounds verifies 1 <= d <= 7 for all distinct valid pairs
func TestDistanceBounds(t *testing.T) {
	keys := allKeys(t)

	for _, a := range keys {
		for _, b := range keys {
			if a == b {
				continue
			}

			d := Distance(a, b)
			if d < 1 || d > MaxDistance {
				t.Errorf("Distance(%s, %s) = %d, want within [1, %d]", a, b, d, MaxDistance)
			}
		}
	}
}

// TestDistanceKnownTransitions verifies documented transition costs
func TestDistanceKnownTransitions(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"8A", "8A", 0},
		{"8A", "8B", 1},  // relative major/minor
		{"8A", "9A", 1},  // one ring step
		{"8A", "7A", 1},  // one ring step, other direction
		{"12A", "1A", 1}, // wrap-around
		{"8A", "9B", 2},  // ring step plus ring switch
		{"8A", "10A", 2},
		{"8A", "2A", 6},  // opposite side, same ring
		{"8A", "2B", 7},  // opposite side, cross ring: the worst case
		{"1A", "7B", 7},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			a, _ := ParseCode(tt.a)
			b, _ := ParseCode(tt.b)

			if got := Distance(a, b); got != tt.want {
				t.Errorf("Distance(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestDistanceUnknownSentinel verifies nil keys cost more than any real transition
func TestDistanceUnknownSentinel(t *testing.T) {
	k, _ := ParseCode("5A")

	for _, d := range []int{Distance(nil, nil), Distance(k, nil), Distance(nil, k)} {
		if d != UnknownDistance {
			t.Errorf("Distance with nil key = %d, want %d", d, UnknownDistance)
		}
	}

	if UnknownDistance <= MaxDistance {
		t.Errorf("UnknownDistance (%d) must exceed MaxDistance (%d)", UnknownDistance, MaxDistance)
	}
}
