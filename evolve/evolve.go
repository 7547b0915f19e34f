package evolve

import (
	"math"
	"sort"

	"github.com/dcgp-go/dcgp/expr"
)

// Evolve runs gen generations of a's variant over pop (spec.md §4.5),
// writing the resulting population back into pop via SetXF. gen == 0
// is a no-op, not an error. Fails with ErrPopulationTooSmall if
// pop.Size() < 2, ErrTooFewObjectives if a multi-objective variant is
// run against a single-objective problem, or ErrNotApplicable if the
// problem exposes no CGP handle (no GetCGP method).
func (a *Algorithm) Evolve(pop Population, gen int) error {
	if pop.Size() < 2 {
		return ErrPopulationTooSmall
	}
	prob := pop.GetProblem()
	if a.variant.multiObjective() && prob.GetNObj() < 2 {
		return ErrTooFewObjectives
	}
	cgp, ok := prob.(CGPExtractor)
	if !ok {
		return ErrNotApplicable
	}
	if gen == 0 {
		return nil
	}
	if a.scratch == nil {
		base := cgp.GetCGP()
		scratch, err := expr.New(base.Topology(), base.Kernels(), a.eng.Derive(1))
		if err != nil {
			return err
		}
		a.scratch = scratch
	}

	k := prob.GetNcx()
	n := pop.Size()
	fevalsStart := prob.GetFevals()

	for g := 1; g <= gen; g++ {
		parentX := cloneRows(pop.GetX())
		parentF := cloneRows(pop.GetF())

		intensities := a.eng.CycledShuffle(n, a.maxMut)

		childX := make([][]float64, 0, n)
		childF := make([][]float64, 0, n)

		for i := 0; i < n; i++ {
			newX, err := a.mutateOne(parentX[i], k, intensities[i])
			if err != nil {
				return err
			}
			if err := a.localLearn(prob, newX); err != nil {
				return err
			}
			fi, err := prob.Fitness(newX)
			if err != nil {
				return err
			}
			if !finiteFitness(fi) || duplicateFitness(fi, parentF, childF) {
				continue
			}
			childX = append(childX, newX)
			childF = append(childF, fi)
		}

		poolX := append(cloneRows(parentX), childX...)
		poolF := append(cloneRows(parentF), childF...)

		var selected []int
		if a.variant.multiObjective() {
			selected = selectByNDSAndCrowding(poolF, n)
		} else {
			selected = selectBestByLoss(poolF, n)
		}

		for i, idx := range selected {
			pop.SetXF(i, poolX[idx], poolF[idx])
		}

		if shouldLog(uint64(g), a.verbosity) {
			a.appendLog(a.buildLogLine(uint64(g), prob.GetFevals()-fevalsStart, poolF, selected))
		}
	}
	return nil
}

// mutateOne decodes x's continuous prefix/integer suffix, redraws
// intensity active genes of a scratch CGP set to that chromosome, and
// reassembles a mutated decision vector (spec.md §4.5 steps 1-2). The
// mutation-intensity value is drawn straight from CycledShuffle's
// [0,maxMut) range — an intensity of 0 is a legal (no-op) mutation, as
// in momes4cgp.hpp's own n_active_mutations assignment.
func (a *Algorithm) mutateOne(x []float64, k, intensity int) ([]float64, error) {
	chromo := make([]int, len(x)-k)
	for j, v := range x[k:] {
		chromo[j] = roundToInt(v)
	}
	if err := a.scratch.SetChromosome(chromo); err != nil {
		return nil, err
	}
	a.scratch.MutateActive(intensity)
	mutated := a.scratch.Chromosome()

	newX := make([]float64, len(x))
	copy(newX, x[:k])
	for j, v := range mutated {
		newX[k+j] = float64(v)
	}
	return newX, nil
}

func (a *Algorithm) buildLogLine(gen, fevals uint64, poolF [][]float64, selected []int) LogLine {
	best := selected[0]
	for _, idx := range selected {
		if poolF[idx][0] < poolF[best][0] {
			best = idx
		}
	}
	line := LogLine{Gen: gen, Fevals: fevals, BestLoss: poolF[best][0]}
	if a.variant.multiObjective() {
		selFs := make([][]float64, len(selected))
		for i, idx := range selected {
			selFs[i] = poolF[idx]
		}
		line.NdfSize = uint64(ndfSize(selFs))
	}
	if len(poolF[best]) > 1 {
		line.BestComplexity = poolF[best][1]
	}
	return line
}

// selectBestByLoss returns the keep indices with the lowest f[0]
// (spec.md §4.5 step 6, single-objective: "keep the |pop| best by
// loss"), ties broken by original index for determinism.
func selectBestByLoss(fs [][]float64, keep int) []int {
	idx := make([]int, len(fs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return fs[idx[i]][0] < fs[idx[j]][0] })
	if keep > len(idx) {
		keep = len(idx)
	}
	return idx[:keep]
}

func finiteFitness(f []float64) bool {
	return len(f) > 0 && !math.IsNaN(f[0]) && !math.IsInf(f[0], 0)
}

// duplicateFitness reports whether f matches (by exact equality, spec.md
// §4.5 step 5) the fitness vector of any already-accepted individual.
func duplicateFitness(f []float64, pools ...[][]float64) bool {
	for _, pool := range pools {
		for _, other := range pool {
			if fitnessEqual(f, other) {
				return true
			}
		}
	}
	return false
}

func fitnessEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func roundToInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}
	return out
}
