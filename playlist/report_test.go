// ABOUTME: Tests for transition quality reporting
// ABOUTME: Validates the distance sum, category counts and keyless exclusion

package playlist

import (
	"testing"

	"harmonic-flow/camelot"
)

// TestBuildReportCounts verifies category counts over a known sequence
func TestBuildReportCounts(t *testing.T) {
	// 8A -> 8B (1, perfect), 8B -> 9B (1, perfect), 9B -> 10A (2, good),
	// 10A -> 3A (5, bad)
	tracks := []Track{
		trk("a", "8A", 120),
		trk("b", "8B", 121),
		trk("c", "9B", 122),
		trk("d", "10A", 123),
		trk("e", "3A", 124),
	}
	ResolveKeys(tracks)

	report := BuildReport(tracks)

	if report.Transitions != 4 {
		t.Errorf("Transitions = %d, want 4", report.Transitions)
	}

	if report.Perfect != 2 || report.Good != 1 || report.Bad != 1 {
		t.Errorf("counts = perfect:%d good:%d bad:%d, want 2/1/1",
			report.Perfect, report.Good, report.Bad)
	}

	if report.TotalDistance != 9 {
		t.Errorf("TotalDistance = %d, want 9", report.TotalDistance)
	}

	if report.WorstJump != 5 {
		t.Errorf("WorstJump = %d, want 5", report.WorstJump)
	}
}

// TestBuildReportMatchesDistances verifies the totals are exactly the sum
// and max of the pairwise distances in final order
func TestBuildReportMatchesDistances(t *testing.T) {
	tracks := []Track{
		trk("a", "1A", 0), trk("b", "6B", 0), trk("c", "12A", 0),
		trk("d", "4B", 0), trk("e", "9A", 0),
	}
	ResolveKeys(tracks)

	wantTotal := 0
	wantWorst := 0

	for i := 1; i < len(tracks); i++ {
		d := camelot.Distance(tracks[i-1].Parsed, tracks[i].Parsed)
		wantTotal += d

		if d > wantWorst {
			wantWorst = d
		}
	}

	report := BuildReport(tracks)

	if report.TotalDistance != wantTotal {
		t.Errorf("TotalDistance = %d, want %d", report.TotalDistance, wantTotal)
	}

	if report.WorstJump != wantWorst {
		t.Errorf("WorstJump = %d, want %d", report.WorstJump, wantWorst)
	}
}

// TestBuildReportSkipsKeyless verifies keyless tracks never enter the statistic
func TestBuildReportSkipsKeyless(t *testing.T) {
	tracks := []Track{
		trk("a", "8A", 0),
		trk("x", "mystery", 0),
		trk("b", "9A", 0),
		trk("y", "", 0),
	}
	ResolveKeys(tracks)

	report := BuildReport(tracks)

	// 8A and 9A are treated as consecutive keyed tracks
	if report.Transitions != 1 {
		t.Errorf("Transitions = %d, want 1", report.Transitions)
	}

	if report.TotalDistance != 1 || report.WorstJump != 1 {
		t.Errorf("report = %+v, want total 1 worst 1", report)
	}
}

// TestBuildReportDegenerate verifies empty and single-track sequences
func TestBuildReportDegenerate(t *testing.T) {
	if report := BuildReport(nil); report.Transitions != 0 || report.TotalDistance != 0 {
		t.Errorf("BuildReport(nil) = %+v, want zero value", report)
	}

	single := []Track{trk("a", "8A", 0)}
	ResolveKeys(single)

	if report := BuildReport(single); report.Transitions != 0 {
		t.Errorf("single track report = %+v, want no transitions", report)
	}
}
