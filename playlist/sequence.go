// ABOUTME: Expands a solved key path into a full track ordering
// ABOUTME: Groups tracks by canonical key, picks traversal direction, sorts groups by BPM

package playlist

import (
	"slices"
	"sort"

	"harmonic-flow/camelot"
)

// OptimizeOptions configures one optimization run
type OptimizeOptions struct {
	Policy      EnergyPolicy
	SolverLimit int // largest key count solved exactly; 0 uses the default
}

// keyGroup indexes the tracks sharing one canonical key. Groups hold
// indices into the source slice rather than copies, so sorting a group can
// never diverge from the source records.
type keyGroup struct {
	key     *camelot.Key
	indices []int
}

// Optimize reorders tracks so consecutive keys are harmonically close and
// BPM follows the declared energy policy. Keyed tracks come first, grouped
// along the solved key path; tracks whose key fails normalization keep
// their original relative order at the end. The input slice is not
// reordered; raw keys get their resolved wheel position attached.
//
// Optimize never fails: unresolvable keys and missing BPM values degrade
// locally (keyless bucket, skipped direction selection) instead of
// aborting the run.
func Optimize(tracks []Track, opts OptimizeOptions) []Track {
	ResolveKeys(tracks)

	groups, keyless := groupByKey(tracks)

	keys := make([]*camelot.Key, len(groups))
	for i, g := range groups {
		keys[i] = g.key
	}

	solver := camelot.Solver{ExactLimit: opts.SolverLimit}
	path := solver.SolvePath(keys)

	ordered := orderGroups(groups, path)

	if first, last, ok := boundaryMeans(tracks, ordered); ok {
		if opts.Policy.reversePath(first, last) {
			slices.Reverse(ordered)
		}
	}

	out := make([]Track, 0, len(tracks))

	for groupIdx, g := range ordered {
		for _, trackIdx := range sortGroup(tracks, g, opts.Policy.ascendingAt(groupIdx)) {
			out = append(out, tracks[trackIdx])
		}
	}

	for _, trackIdx := range keyless {
		out = append(out, tracks[trackIdx])
	}

	return out
}

// groupByKey partitions track indices into per-key groups (first-appearance
// order) and the keyless remainder (original order). The groups partition
// the keyed subset exactly.
func groupByKey(tracks []Track) ([]*keyGroup, []int) {
	var groups []*keyGroup

	var keyless []int

	byCode := make(map[string]*keyGroup)

	for i := range tracks {
		k := tracks[i].Parsed
		if k == nil {
			keyless = append(keyless, i)

			continue
		}

		code := k.String()

		g, ok := byCode[code]
		if !ok {
			g = &keyGroup{key: k}
			byCode[code] = g
			groups = append(groups, g)
		}

		g.indices = append(g.indices, i)
	}

	return groups, keyless
}

// orderGroups arranges the groups along the solved key path
func orderGroups(groups []*keyGroup, path []*camelot.Key) []*keyGroup {
	byCode := make(map[string]*keyGroup, len(groups))
	for _, g := range groups {
		byCode[g.key.String()] = g
	}

	ordered := make([]*keyGroup, 0, len(groups))
	for _, k := range path {
		ordered = append(ordered, byCode[k.String()])
	}

	return ordered
}

// boundaryMeans returns the mean BPM of the first and last groups on the
// path. Tracks without a BPM are ignored; a boundary group with no BPM data
// at all makes direction selection impossible, reported via ok=false.
func boundaryMeans(tracks []Track, ordered []*keyGroup) (first, last float64, ok bool) {
	if len(ordered) < 2 {
		return 0, 0, false
	}

	first, firstOK := meanBPM(tracks, ordered[0])
	last, lastOK := meanBPM(tracks, ordered[len(ordered)-1])

	return first, last, firstOK && lastOK
}

// meanBPM averages the known BPM values of a group
func meanBPM(tracks []Track, g *keyGroup) (float64, bool) {
	sum := 0.0
	count := 0

	for _, i := range g.indices {
		if tracks[i].BPM > 0 {
			sum += tracks[i].BPM
			count++
		}
	}

	if count == 0 {
		return 0, false
	}

	return sum / float64(count), true
}

// sortGroup returns the group's track indices ordered by BPM. Tracks with
// no BPM sort last either way; the sort is stable so equal BPM values keep
// their input order.
func sortGroup(tracks []Track, g *keyGroup, ascending bool) []int {
	indices := slices.Clone(g.indices)

	sort.SliceStable(indices, func(a, b int) bool {
		ba, bb := tracks[indices[a]].BPM, tracks[indices[b]].BPM

		if ba <= 0 || bb <= 0 {
			// Known BPM always sorts before missing
			return ba > 0
		}

		if ascending {
			return ba < bb
		}

		return ba > bb
	})

	return indices
}
