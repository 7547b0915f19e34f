package evolve_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/evolve"
	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/rng"
	"github.com/dcgp-go/dcgp/srproblem"
)

func quadraticProblem(t *testing.T, n int) *srproblem.Problem {
	t.Helper()
	eng := rng.NewFromSeed(1)
	x := make([][]float64, n)
	y := make([][]float64, n)
	for i := 0; i < n; i++ {
		v := -2 + 4*float64(i)/float64(n-1)
		x[i] = []float64{v}
		y[i] = []float64{v*v + 1}
	}
	topo := expr.Topology{N: 2, M: 1, R: 6, C: 6, L: 3, A: 2}
	p, err := srproblem.New(topo, []string{"sum", "mul", "diff"}, 1, x, y, eng)
	require.NoError(t, err)
	return p
}

func seedPopulation(t *testing.T, p *srproblem.Problem, size int, eng *rng.Engine) *evolve.BasicPopulation {
	t.Helper()
	pop, err := evolve.NewRandomPopulation(p, size, eng)
	require.NoError(t, err)
	return pop
}

func bestLoss(pop *evolve.BasicPopulation) float64 {
	best := math.Inf(1)
	for _, f := range pop.GetF() {
		if f[0] < best {
			best = f[0]
		}
	}
	return best
}

func TestNew_RejectsInvalidMutation(t *testing.T) {
	_, err := evolve.New(evolve.Es4cgp, 0, rng.NewFromSeed(1))
	assert.ErrorIs(t, err, evolve.ErrInvalidMutation)
}

func TestEvolve_RejectsSmallPopulation(t *testing.T) {
	p := quadraticProblem(t, 10)
	eng := rng.NewFromSeed(2)
	pop := seedPopulation(t, p, 1, eng)
	a, err := evolve.New(evolve.Es4cgp, 2, eng)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Evolve(pop, 1), evolve.ErrPopulationTooSmall)
}

func TestEvolve_RejectsTooFewObjectivesForMultiObjective(t *testing.T) {
	p := quadraticProblem(t, 10)
	eng := rng.NewFromSeed(2)
	pop := seedPopulation(t, p, 6, eng)
	a, err := evolve.New(evolve.Moes4cgp, 2, eng)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Evolve(pop, 1), evolve.ErrTooFewObjectives)
}

// wrapped embeds the evolve.Problem interface (not *srproblem.Problem
// directly), so it promotes only the interface's own methods — GetCGP
// is not among them even though the underlying concrete value has one.
// This lets the test construct a Problem that satisfies evolve.Problem
// but not evolve.CGPExtractor.
type wrappedProblem struct{ evolve.Problem }

func TestEvolve_NotApplicableForNonCGPProblem(t *testing.T) {
	p := quadraticProblem(t, 10)
	eng := rng.NewFromSeed(2)
	wrapped := wrappedProblem{p}

	popX := make([][]float64, 6)
	lower, upper := p.GetBounds()
	for i := range popX {
		row := make([]float64, len(lower))
		for d := range row {
			row[d] = (lower[d] + upper[d]) / 2
		}
		popX[i] = row
	}
	realPop, err := evolve.NewPopulation(wrapped, popX)
	require.NoError(t, err)

	a, err := evolve.New(evolve.Es4cgp, 2, eng)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Evolve(realPop, 1), evolve.ErrNotApplicable)
}

func TestEvolve_GenZeroIsNoop(t *testing.T) {
	p := quadraticProblem(t, 10)
	eng := rng.NewFromSeed(2)
	pop := seedPopulation(t, p, 6, eng)
	before := bestLoss(pop)

	a, err := evolve.New(evolve.Es4cgp, 3, eng)
	require.NoError(t, err)
	require.NoError(t, a.Evolve(pop, 0))
	assert.Equal(t, before, bestLoss(pop))
}

func TestEvolve_Es4cgp_NeverWorsensBestLoss(t *testing.T) {
	p := quadraticProblem(t, 20)
	eng := rng.NewFromSeed(7)
	pop := seedPopulation(t, p, 12, eng)
	start := bestLoss(pop)

	a, err := evolve.New(evolve.Es4cgp, 3, eng)
	require.NoError(t, err)
	require.NoError(t, a.Evolve(pop, 15))

	end := bestLoss(pop)
	assert.LessOrEqual(t, end, start)
	for _, f := range pop.GetF() {
		assert.False(t, math.IsNaN(f[0]))
	}
}

func TestEvolve_Mes4cgp_NewtonLearnerRuns(t *testing.T) {
	p := quadraticProblem(t, 20)
	eng := rng.NewFromSeed(8)
	pop := seedPopulation(t, p, 10, eng)
	start := bestLoss(pop)

	a, err := evolve.New(evolve.Mes4cgp, 2, eng)
	require.NoError(t, err)
	require.NoError(t, a.Evolve(pop, 10))

	end := bestLoss(pop)
	assert.LessOrEqual(t, end, start)
}

func TestEvolve_Gd4cgp_RunsWithCustomLearningRate(t *testing.T) {
	p := quadraticProblem(t, 20)
	eng := rng.NewFromSeed(9)
	pop := seedPopulation(t, p, 10, eng)

	a, err := evolve.New(evolve.Gd4cgp, 2, eng, evolve.WithLearningRate(0.05))
	require.NoError(t, err)
	require.NoError(t, a.Evolve(pop, 10))
	for _, f := range pop.GetF() {
		assert.False(t, math.IsNaN(f[0]))
	}
}

func TestWithLearningRate_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { evolve.WithLearningRate(0) })
}

func TestEvolve_Moes4cgp_MultiObjectivePreservesPopulationSize(t *testing.T) {
	eng := rng.NewFromSeed(10)
	x := make([][]float64, 15)
	y := make([][]float64, 15)
	for i := range x {
		v := -2 + 4*float64(i)/14
		x[i] = []float64{v}
		y[i] = []float64{v*v + 1}
	}
	topo := expr.Topology{N: 2, M: 1, R: 6, C: 6, L: 3, A: 2}
	p, err := srproblem.New(topo, []string{"sum", "mul", "diff"}, 1, x, y, eng, srproblem.WithMultiObjective())
	require.NoError(t, err)

	pop := seedPopulation(t, p, 10, eng)
	a, err := evolve.New(evolve.Moes4cgp, 3, eng)
	require.NoError(t, err)
	require.NoError(t, a.Evolve(pop, 8))

	assert.Equal(t, 10, pop.Size())
	for _, f := range pop.GetF() {
		require.Len(t, f, 2)
	}
}

func TestEvolve_LogWriterEmitsHeaderAndLines(t *testing.T) {
	p := quadraticProblem(t, 20)
	eng := rng.NewFromSeed(12)
	pop := seedPopulation(t, p, 8, eng)

	var buf bytes.Buffer
	a, err := evolve.New(evolve.Es4cgp, 2, eng, evolve.WithVerbosity(1), evolve.WithLogWriter(&buf))
	require.NoError(t, err)
	require.NoError(t, a.Evolve(pop, 3))

	out := buf.String()
	assert.True(t, strings.Contains(out, "Gen:"))
	assert.Equal(t, 3, len(a.Log()))
}
