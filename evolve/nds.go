package evolve

import (
	"math"
	"sort"
)

// dominates reports whether a dominates b: no worse in every objective
// and strictly better in at least one (minimization, spec.md §4.5 step
// 6 "fast non-dominated sorting").
func dominates(a, b []float64) bool {
	betterInAny := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			betterInAny = true
		}
	}
	return betterInAny
}

// fastNonDominatedSort partitions fs (fitness vectors) into fronts by
// Pareto rank, generalized for any n_obj >= 2 (spec.md §13 decision 1:
// no 2-D-only shortcut). Returns, for each front in ascending rank
// order, the indices of fs it contains.
func fastNonDominatedSort(fs [][]float64) [][]int {
	n := len(fs)
	dominatedBy := make([][]int, n) // indices this one dominates
	dominationCount := make([]int, n)
	rank := make([]int, n)

	var front []int
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			switch {
			case dominates(fs[p], fs[q]):
				dominatedBy[p] = append(dominatedBy[p], q)
			case dominates(fs[q], fs[p]):
				dominationCount[p]++
			}
		}
		if dominationCount[p] == 0 {
			rank[p] = 0
			front = append(front, p)
		}
	}

	fronts := [][]int{}
	for len(front) > 0 {
		fronts = append(fronts, front)
		var next []int
		for _, p := range front {
			for _, q := range dominatedBy[p] {
				dominationCount[q]--
				if dominationCount[q] == 0 {
					rank[q] = len(fronts)
					next = append(next, q)
				}
			}
		}
		front = next
	}
	return fronts
}

// crowdingDistance computes the NSGA-II crowding distance of each index
// in front, over the objective vectors fs (spec.md §4.5 step 6
// "crowding distance"). Boundary points (min/max per objective) receive
// +Inf so they are always preferred by selectByNDSAndCrowding.
func crowdingDistance(fs [][]float64, front []int) map[int]float64 {
	dist := make(map[int]float64, len(front))
	for _, i := range front {
		dist[i] = 0
	}
	if len(front) <= 2 {
		for _, i := range front {
			dist[i] = math.Inf(1)
		}
		return dist
	}

	nObj := len(fs[front[0]])
	ordered := append([]int(nil), front...)
	for m := 0; m < nObj; m++ {
		sort.Slice(ordered, func(i, j int) bool { return fs[ordered[i]][m] < fs[ordered[j]][m] })
		lo, hi := fs[ordered[0]][m], fs[ordered[len(ordered)-1]][m]
		dist[ordered[0]] = math.Inf(1)
		dist[ordered[len(ordered)-1]] = math.Inf(1)
		span := hi - lo
		if span == 0 {
			continue
		}
		for k := 1; k < len(ordered)-1; k++ {
			dist[ordered[k]] += (fs[ordered[k+1]][m] - fs[ordered[k-1]][m]) / span
		}
	}
	return dist
}

// selectByNDSAndCrowding returns the indices (into fs) of the keep best
// candidates by Pareto rank, breaking ties within the last admitted
// front by descending crowding distance (spec.md §4.5 step 6
// multi-objective selection).
func selectByNDSAndCrowding(fs [][]float64, keep int) []int {
	fronts := fastNonDominatedSort(fs)
	selected := make([]int, 0, keep)
	for _, front := range fronts {
		if len(selected)+len(front) <= keep {
			selected = append(selected, front...)
			continue
		}
		dist := crowdingDistance(fs, front)
		remaining := append([]int(nil), front...)
		sort.Slice(remaining, func(i, j int) bool { return dist[remaining[i]] > dist[remaining[j]] })
		selected = append(selected, remaining[:keep-len(selected)]...)
		break
	}
	return selected
}

// ndfSize returns the size of the first (rank-0) non-dominated front.
func ndfSize(fs [][]float64) int {
	if len(fs) == 0 {
		return 0
	}
	return len(fastNonDominatedSort(fs)[0])
}
