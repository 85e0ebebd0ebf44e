// ABOUTME: Key path planning over the distinct keys present in a playlist
// ABOUTME: Exact Held-Karp subset DP with a greedy plus 2-opt fallback for large key sets

package camelot

import (
	"math"
	"slices"
)

// DefaultExactLimit is the largest distinct-key count solved exactly. The
// subset DP costs O(2^n * n^2), which stays well under a millisecond at 16
// keys; a playlist can hold at most 24 distinct keys anyway.
const DefaultExactLimit = 16

// Solver plans key visiting orders. The zero value uses DefaultExactLimit.
type Solver struct {
	// ExactLimit is the largest key count solved with the exact DP.
	// Larger sets fall back to nearest-neighbour construction with a
	// 2-opt polish.
	ExactLimit int
}

// SolvePath orders the given distinct keys so that the sum of harmonic
// distances between consecutive keys is minimal (an open Hamiltonian path,
// no return to start). Uses the default solver limits.
//
// The result is always a permutation of the input and is deterministic for
// identical input order.
func SolvePath(keys []*Key) []*Key {
	return Solver{}.SolvePath(keys)
}

// SolvePath orders keys minimizing total transition distance. Exact up to
// s.ExactLimit keys, heuristic beyond it.
func (s Solver) SolvePath(keys []*Key) []*Key {
	if len(keys) <= 2 {
		return slices.Clone(keys)
	}

	limit := s.ExactLimit
	if limit <= 0 {
		limit = DefaultExactLimit
	}

	if len(keys) <= limit {
		return solveExact(keys)
	}

	path := solveGreedy(keys)
	twoOptPath(path)

	return path
}

// PathCost sums the harmonic distance over consecutive keys in a path
func PathCost(path []*Key) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += Distance(path[i-1], path[i])
	}

	return cost
}

// distanceMatrix precomputes pairwise distances by input index
func distanceMatrix(keys []*Key) [][]int {
	n := len(keys)
	dist := make([][]int, n)

	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = Distance(keys[i], keys[j])
		}
	}

	return dist
}

// solveExact finds the optimal open path with Held-Karp dynamic programming.
//
// State: dp[subset][end] = minimum cost of a path visiting exactly the keys
// in subset and finishing on end. Base case is every single key alone at
// cost 0; transitions extend a subset by one unvisited key. The answer is
// the cheapest full-subset state, recovered by backtracking predecessors.
// Ties break toward the lowest end index, keeping output reproducible.
//
// O(2^n * n^2) time, O(2^n * n) space.
func solveExact(keys []*Key) []*Key {
	n := len(keys)
	dist := distanceMatrix(keys)
	full := 1<<n - 1

	const unreached = math.MaxInt32

	dp := make([][]int, full+1)
	parent := make([][]int, full+1)

	for mask := 1; mask <= full; mask++ {
		dp[mask] = make([]int, n)
		parent[mask] = make([]int, n)

		for end := range dp[mask] {
			dp[mask][end] = unreached
			parent[mask][end] = -1
		}
	}

	for i := 0; i < n; i++ {
		dp[1<<i][i] = 0
	}

	for mask := 1; mask <= full; mask++ {
		for end := 0; end < n; end++ {
			cost := dp[mask][end]
			if cost == unreached || mask&(1<<end) == 0 {
				continue
			}

			for next := 0; next < n; next++ {
				if mask&(1<<next) != 0 {
					continue
				}

				extended := mask | 1<<next
				candidate := cost + dist[end][next]

				if candidate < dp[extended][next] {
					dp[extended][next] = candidate
					parent[extended][next] = end
				}
			}
		}
	}

	// Cheapest end over the full subset; strict < keeps the lowest index
	bestEnd := 0
	for end := 1; end < n; end++ {
		if dp[full][end] < dp[full][bestEnd] {
			bestEnd = end
		}
	}

	// Backtrack predecessors to recover the path
	order := make([]int, 0, n)
	mask, end := full, bestEnd

	for end != -1 {
		order = append(order, end)
		prev := parent[mask][end]
		mask &^= 1 << end
		end = prev
	}

	slices.Reverse(order)

	path := make([]*Key, n)
	for i, idx := range order {
		path[i] = keys[idx]
	}

	return path
}

// solveGreedy builds a path by repeatedly appending the unvisited key
// nearest to the current path end, starting from the first input key.
// Ties break by input order. Deterministic, O(n^2), not guaranteed optimal.
func solveGreedy(keys []*Key) []*Key {
	n := len(keys)
	visited := make([]bool, n)

	path := make([]*Key, 0, n)
	path = append(path, keys[0])
	visited[0] = true
	current := 0

	for len(path) < n {
		next := -1
		best := UnknownDistance + 1

		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}

			if d := Distance(keys[current], keys[i]); d < best {
				best = d
				next = i
			}
		}

		path = append(path, keys[next])
		visited[next] = true
		current = next
	}

	return path
}

// twoOptPath polishes a path in place by reversing segments while that
// strictly lowers total cost. Integer costs cannot oscillate, but a safety
// limit guards the loop anyway.
func twoOptPath(path []*Key) {
	n := len(path)

	const maxIterations = 1000
	iteration := 0

	improved := true
	for improved && iteration < maxIterations {
		improved = false
		iteration++

		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				delta := 0

				// Only the boundary edges change when reversing [i,j]
				if i > 0 {
					delta += Distance(path[i-1], path[j]) - Distance(path[i-1], path[i])
				}
				if j < n-1 {
					delta += Distance(path[i], path[j+1]) - Distance(path[j], path[j+1])
				}

				if delta < 0 {
					reverseSegment(path, i, j)
					improved = true
				}
			}
		}
	}
}

// reverseSegment reverses path[start:end+1] in place
func reverseSegment(path []*Key, start, end int) {
	for start < end {
		path[start], path[end] = path[end], path[start]
		start++
		end--
	}
}
