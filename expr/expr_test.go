package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/kernel"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/rng"
)

func newExpr(t *testing.T, topo expr.Topology, names ...string) *expr.Expression[numeric.Real] {
	t.Helper()
	ks, err := kernel.NewSetFromNames[numeric.Real](names...)
	require.NoError(t, err)
	e, err := expr.New(topo, ks, rng.NewFromSeed(1))
	require.NoError(t, err)
	return e
}

func call(t *testing.T, e *expr.Expression[numeric.Real], xs ...float64) []float64 {
	t.Helper()
	out, err := e.Call(numeric.Slice(xs))
	require.NoError(t, err)
	return numeric.Floats(out)
}

// S1: Miller PPSN-2014 case.
func TestExpression_S1_MillerPPSN2014(t *testing.T) {
	topo := expr.Topology{N: 2, M: 4, R: 2, C: 3, L: 4, A: 2}
	e := newExpr(t, topo, "sum", "diff", "mul", "div")
	require.NoError(t, e.SetChromosome([]int{
		0, 0, 1,
		1, 0, 0,
		1, 3, 1,
		2, 0, 1,
		0, 4, 4,
		2, 5, 4,
		2, 5, 7, 3,
	}))

	got := call(t, e, 1.0, -1.0)
	want := []float64{0, -1, -1, 0}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}

	got = call(t, e, -0.123, 2.345)
	want = []float64{2.222, -0.288435, 0.676380075, 0}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-8)
	}
}

// S2: single-row program.
func TestExpression_S2_SingleRowProgram(t *testing.T) {
	topo := expr.Topology{N: 4, M: 1, R: 1, C: 10, L: 10, A: 2}
	e := newExpr(t, topo, "sum", "diff", "mul", "div")
	require.NoError(t, e.SetChromosome([]int{
		2, 3, 0,
		0, 2, 2,
		3, 0, 1,
		1, 5, 4,
		2, 6, 1,
		0, 7, 7,
		3, 6, 7,
		1, 7, 6,
		2, 4, 10,
		2, 3, 2,
		10,
	}))

	got := call(t, e, 2, 3, 4, -2)
	assert.InDelta(t, 0.055555555555, got[0], 1e-9)

	got = call(t, e, -1, 1, -1, 1)
	assert.InDelta(t, 1.0, got[0], 1e-9)
}

// S3: bounds.
func TestExpression_S3_Bounds(t *testing.T) {
	topo := expr.Topology{N: 3, M: 1, R: 2, C: 3, L: 2, A: 3}
	e := newExpr(t, topo, "sum", "diff", "mul", "div")

	wantLB := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 3, 0, 3, 3, 3, 5}
	wantUB := []int{3, 2, 2, 2, 3, 2, 2, 2, 3, 4, 4, 4, 3, 4, 4, 4, 3, 6, 6, 6, 3, 6, 6, 6, 8}

	assert.Equal(t, wantLB, e.LowerBounds())
	assert.Equal(t, wantUB, e.UpperBounds())
}

func TestExpression_New_RejectsBadTopology(t *testing.T) {
	ks, err := kernel.NewSetFromNames[numeric.Real]("sum")
	require.NoError(t, err)

	_, err = expr.New(expr.Topology{N: 0, M: 1, R: 1, C: 1, L: 1, A: 1}, ks, rng.NewFromSeed(1))
	assert.ErrorIs(t, err, expr.ErrBadTopology)

	_, err = expr.New(expr.Topology{N: 1, M: 1, R: 1, C: 3, L: 5, A: 1}, ks, rng.NewFromSeed(1))
	assert.ErrorIs(t, err, expr.ErrBadTopology)
}

func TestExpression_New_RejectsEmptyKernelSet(t *testing.T) {
	ks := kernel.NewSet[numeric.Real]()
	_, err := expr.New(expr.Topology{N: 1, M: 1, R: 1, C: 1, L: 1, A: 1}, ks, rng.NewFromSeed(1))
	assert.ErrorIs(t, err, expr.ErrEmptyKernelSet)
}

func TestExpression_SetChromosome_BoundsChecked(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 1, C: 1, L: 1, A: 2}
	e := newExpr(t, topo, "sum", "mul")

	bad := e.Chromosome()
	bad[0] = 999
	err := e.SetChromosome(bad)
	assert.ErrorIs(t, err, expr.ErrOutOfBounds)

	err = e.SetChromosome([]int{0, 0})
	assert.ErrorIs(t, err, expr.ErrChromosomeLength)
}

func TestExpression_Call_ShapeMismatch(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 1, C: 1, L: 1, A: 2}
	e := newExpr(t, topo, "sum")
	_, err := e.Call(numeric.Slice([]float64{1}))
	assert.ErrorIs(t, err, expr.ErrShapeMismatch)
}

// Nodes whose chosen kernel has arity < a still carry a connection genes;
// the surplus genes must stay in-bounds and must never be selected by
// MutateActiveCGene.
func TestExpression_UnusedConnectionGenes(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 1, C: 1, L: 1, A: 3}
	ks, err := kernel.NewSetFromNames[numeric.Real]("sqrt", "sum")
	require.NoError(t, err)
	e, err := expr.New(topo, ks, rng.NewFromSeed(7))
	require.NoError(t, err)

	// Force the single node to use "sqrt" (arity 1): its 2nd and 3rd
	// connection genes are unused but must remain valid chromosome state.
	// With n=2,m=1,r=1,c=1,a=3 the single output gene is pinned to the
	// sole node by levels-back (lb==ub==2), so only the function and
	// first connection gene need setting.
	require.NoError(t, e.Set(0, 0)) // function gene -> sqrt
	require.NoError(t, e.Set(1, 0)) // conn0 -> x0, used
	before := e.Chromosome()

	out := call(t, e, 4.0, 9.0)
	assert.InDelta(t, 2.0, out[0], 1e-9)

	for i := 0; i < 50; i++ {
		e.MutateActiveCGene(1)
		got := e.Chromosome()
		assert.Equal(t, before[2], got[2], "unused conn gene 2 must never be touched")
		assert.Equal(t, before[3], got[3], "unused conn gene 3 must never be touched")
	}
}

func TestExpression_MutateActive_AlwaysChangesActivePath(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 2, C: 2, L: 2, A: 2}
	e := newExpr(t, topo, "sum", "diff", "mul", "div")

	before := e.Print(0, nil)
	changed := false
	for i := 0; i < 20; i++ {
		e.MutateActive(1)
		if e.Print(0, nil) != before {
			changed = true
			break
		}
		before = e.Print(0, nil)
	}
	assert.True(t, changed, "20 active mutations should eventually alter the symbolic form")
}

func TestExpression_Clone_Independent(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 2, C: 2, L: 2, A: 2}
	e := newExpr(t, topo, "sum", "diff", "mul", "div")
	c := e.Clone()

	c.MutateRandom(5)
	assert.NotEqual(t, e.Chromosome(), c.Chromosome())
}

func TestExpression_PhenotypeCorrection(t *testing.T) {
	topo := expr.Topology{N: 1, M: 1, R: 1, C: 1, L: 1, A: 2}
	e := newExpr(t, topo, "sum")
	require.NoError(t, e.Set(0, 0))
	require.NoError(t, e.Set(1, 0))
	require.NoError(t, e.Set(2, 0))

	var postSawXs []numeric.Real
	e.SetPhenotypeCorrection(
		func(xs []numeric.Real) []numeric.Real {
			out := make([]numeric.Real, len(xs))
			for i, x := range xs {
				out[i] = x * 2
			}
			return out
		},
		func(xs []numeric.Real, out []numeric.Real) []numeric.Real {
			postSawXs = xs
			out[0] = out[0] + 1
			return out
		},
	)

	got := call(t, e, 3.0)
	// sum(x0,x0) with x0 doubled to 6 -> 12, then +1 post.
	assert.InDelta(t, 13.0, got[0], 1e-9)
	// post must see the caller's original xs, not pre's doubled output.
	require.Len(t, postSawXs, 1)
	assert.InDelta(t, 3.0, float64(postSawXs[0]), 1e-9)
}
