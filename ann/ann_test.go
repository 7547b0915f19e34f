package ann_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/ann"
	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/kernel"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/rng"
)

func newAnn(t *testing.T, topo expr.Topology, names ...string) *ann.ExpressionANN[numeric.Real] {
	t.Helper()
	ks, err := kernel.NewSetFromNames[numeric.Real](names...)
	require.NoError(t, err)
	a, err := ann.New(topo, ks, rng.NewFromSeed(1), numeric.Real(0))
	require.NoError(t, err)
	return a
}

// S4: ANN forward.
func TestExpressionANN_S4_Forward(t *testing.T) {
	topo := expr.Topology{N: 1, M: 1, R: 1, C: 2, L: 1, A: 2}
	a := newAnn(t, topo, "tanh")
	require.NoError(t, a.SetChromosome([]int{0, 0, 0, 0, 1, 1, 2}))
	require.NoError(t, a.SetWeights(numeric.Slice([]float64{0.1, 0.2, 0.3, 0.4})))
	require.NoError(t, a.SetBiases(numeric.Slice([]float64{0.5, 0.6})))

	out, err := a.Call(numeric.Slice([]float64{0.23}))
	require.NoError(t, err)

	n1 := math.Tanh(0.23*0.1 + 0.23*0.2 + 0.5)
	want := math.Tanh(0.3*n1 + 0.4*n1 + 0.6)
	assert.InDelta(t, want, float64(out[0]), 1e-12)
}

func TestExpressionANN_New_DefaultsWeightsOneBiasesZero(t *testing.T) {
	topo := expr.Topology{N: 1, M: 1, R: 1, C: 2, L: 1, A: 2}
	a := newAnn(t, topo, "tanh")
	for _, w := range a.GetWeights() {
		assert.Equal(t, numeric.Real(1), w)
	}
	for _, b := range a.GetBiases() {
		assert.Equal(t, numeric.Real(0), b)
	}
}

// Mirrors original_source/tests/expression_ann.cpp's construction test:
// a kernel set mixing activations from outside kernel.AnnActivationNames
// must be rejected, even when every individual name is a valid
// expr.Expression kernel.
func TestExpressionANN_New_RejectsNonActivationKernels(t *testing.T) {
	topo := expr.Topology{N: 1, M: 1, R: 1, C: 2, L: 1, A: 1}
	cases := [][]string{
		{"tanh", "sin"},
		{"cos", "sig"},
		{"ReLu", "sum"},
	}
	for _, names := range cases {
		ks, err := kernel.NewSetFromNames[numeric.Real](names...)
		require.NoError(t, err)
		_, err = ann.New(topo, ks, rng.NewFromSeed(1), numeric.Real(0))
		assert.ErrorIsf(t, err, ann.ErrUnsupportedKernel, "names=%v", names)
	}
}

// S5-style: SGD strictly decreases mean loss over a handful of epochs on
// a small synthetic regression dataset (scaled down from spec.md's
// 100-sample / 3-input topology for test speed).
func TestExpressionANN_Sgd_DecreasesLoss(t *testing.T) {
	topo := expr.Topology{N: 3, M: 2, R: 20, C: 3, L: 1, A: 4}
	ks, err := kernel.NewSetFromNames[numeric.Real]("sig", "tanh", "ReLu")
	require.NoError(t, err)
	eng := rng.NewFromSeed(42)
	a, err := ann.New(topo, ks, eng, numeric.Real(0))
	require.NoError(t, err)
	a.RandomiseWeights(0, 0.3, eng)
	a.RandomiseBiases(0, 0.1, eng)

	n := 60
	points := make([][]numeric.Real, n)
	labels := make([][]numeric.Real, n)
	for i := 0; i < n; i++ {
		x0 := eng.NormFloat64()
		x1 := eng.NormFloat64()
		x2 := eng.NormFloat64()
		points[i] = numeric.Slice([]float64{x0, x1, x2})
		labels[i] = numeric.Slice([]float64{
			0.2*math.Cos(x0+x1+x2) - x0*x1,
			x0 * x1 * x2,
		})
	}

	startLoss, _, _, err := a.MseBatch(points, labels)
	require.NoError(t, err)

	var lastLoss float64
	for epoch := 0; epoch < 10; epoch++ {
		lastLoss, err = a.Sgd(points, labels, 0.1, 16, eng)
		require.NoError(t, err)
	}
	endLoss, _, _, err := a.MseBatch(points, labels)
	require.NoError(t, err)

	assert.Less(t, endLoss, startLoss)
	assert.False(t, math.IsNaN(lastLoss))
}

// Property 3: Mse's analytical gradient matches central finite
// differences (h = max(1,|theta|)*1e-4) to within 5% relative error on
// every weight and bias.
func TestExpressionANN_Mse_GradientMatchesFiniteDifference(t *testing.T) {
	topo := expr.Topology{N: 3, M: 2, R: 10, C: 3, L: 2, A: 3}
	ks, err := kernel.NewSetFromNames[numeric.Real]("sig", "tanh", "ReLu")
	require.NoError(t, err)
	eng := rng.NewFromSeed(7)
	a, err := ann.New(topo, ks, eng, numeric.Real(0))
	require.NoError(t, err)
	a.RandomiseWeights(0, 0.5, eng)
	a.RandomiseBiases(0, 0.2, eng)

	point := numeric.Slice([]float64{0.22, -0.4, 0.17})
	label := numeric.Slice([]float64{0.23, -0.1})

	_, gradW, gradB, err := a.Mse(point, label)
	require.NoError(t, err)

	sqLoss := func() float64 {
		out, err := a.Call(point)
		require.NoError(t, err)
		var s float64
		for i := range out {
			d := float64(out[i]) - float64(label[i])
			s += d * d
		}
		return s / float64(len(out))
	}

	const eps = 1e-4
	weights := a.GetWeights()
	for i := range weights {
		orig := weights[i]
		h := math.Max(1, math.Abs(float64(orig))) * eps
		weights[i] = orig + numeric.Real(h)
		require.NoError(t, a.SetWeights(weights))
		plus := sqLoss()
		weights[i] = orig - numeric.Real(h)
		require.NoError(t, a.SetWeights(weights))
		minus := sqLoss()
		weights[i] = orig
		require.NoError(t, a.SetWeights(weights))

		fd := (plus - minus) / (2 * h)
		analytical := float64(gradW[i])
		if math.Abs(analytical) < 1e-8 && math.Abs(fd) < 1e-8 {
			continue
		}
		assert.InEpsilonf(t, fd, analytical, 0.05, "weight %d: fd=%v analytical=%v", i, fd, analytical)
	}

	biases := a.GetBiases()
	for i := range biases {
		orig := biases[i]
		h := math.Max(1, math.Abs(float64(orig))) * eps
		biases[i] = orig + numeric.Real(h)
		require.NoError(t, a.SetBiases(biases))
		plus := sqLoss()
		biases[i] = orig - numeric.Real(h)
		require.NoError(t, a.SetBiases(biases))
		minus := sqLoss()
		biases[i] = orig
		require.NoError(t, a.SetBiases(biases))

		fd := (plus - minus) / (2 * h)
		analytical := float64(gradB[i])
		if math.Abs(analytical) < 1e-8 && math.Abs(fd) < 1e-8 {
			continue
		}
		assert.InEpsilonf(t, fd, analytical, 0.05, "bias %d: fd=%v analytical=%v", i, fd, analytical)
	}
}

func TestExpressionANN_NActiveWeights(t *testing.T) {
	topo := expr.Topology{N: 1, M: 1, R: 1, C: 2, L: 1, A: 2}
	a := newAnn(t, topo, "tanh")
	require.NoError(t, a.SetChromosome([]int{0, 0, 0, 0, 1, 1, 2}))

	// Both functional nodes are active (node1 is the sole output, node0
	// feeds it), each with arity 2: 2*2 = 4 weight slots total. Every
	// node's two connection genes happen to read the same source (node0's
	// both read x0, node1's both read node0), so the unique (src,dst)
	// count collapses each node's pair to one edge: 2 total.
	assert.Equal(t, 4, a.NActiveWeights(false))
	assert.Equal(t, 2, a.NActiveWeights(true))
}

func TestExpressionANN_SetOutputF(t *testing.T) {
	topo := expr.Topology{N: 1, M: 1, R: 1, C: 1, L: 1, A: 1}
	a := newAnn(t, topo, "tanh")
	assert.NoError(t, a.SetOutputF("sig"))
	assert.ErrorIs(t, a.SetOutputF("sqrt"), ann.ErrUnsupportedKernel)
}

func TestExpressionANN_Sgd_RejectsBadArguments(t *testing.T) {
	topo := expr.Topology{N: 1, M: 1, R: 1, C: 1, L: 1, A: 1}
	a := newAnn(t, topo, "tanh")
	eng := rng.NewFromSeed(1)
	points := [][]numeric.Real{{0}}
	labels := [][]numeric.Real{{0}}

	_, err := a.Sgd(points, labels, 0, 1, eng)
	assert.ErrorIs(t, err, ann.ErrInvalidLearningRate)

	_, err = a.Sgd(points, labels, 0.1, 0, eng)
	assert.ErrorIs(t, err, ann.ErrInvalidBatchSize)

	_, err = a.Sgd(points, labels, 0.1, 2, eng)
	assert.ErrorIs(t, err, ann.ErrInvalidBatchSize)
}
