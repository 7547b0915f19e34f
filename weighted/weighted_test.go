package weighted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/kernel"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/rng"
	"github.com/dcgp-go/dcgp/weighted"
)

func TestExpressionWeighted_DefaultWeightsMatchPlainExpression(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 1, C: 1, L: 1, A: 2}
	ks, err := kernel.NewSetFromNames[numeric.Real]("sum")
	require.NoError(t, err)

	ew, err := weighted.New(topo, ks, rng.NewFromSeed(3), numeric.Real(0))
	require.NoError(t, err)
	require.NoError(t, ew.Set(0, 0))
	require.NoError(t, ew.Set(1, 0))
	require.NoError(t, ew.Set(2, 1))

	out, err := ew.Call(numeric.Slice([]float64{3, 5}))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, float64(out[0]), 1e-9)
}

func TestExpressionWeighted_WeightsScaleOperands(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 1, C: 1, L: 1, A: 2}
	ks, err := kernel.NewSetFromNames[numeric.Real]("sum")
	require.NoError(t, err)

	ew, err := weighted.New(topo, ks, rng.NewFromSeed(3), numeric.Real(0))
	require.NoError(t, err)
	require.NoError(t, ew.Set(0, 0))
	require.NoError(t, ew.Set(1, 0))
	require.NoError(t, ew.Set(2, 1))

	require.NoError(t, ew.SetWeight(2, 0, numeric.Real(2)))
	require.NoError(t, ew.SetWeight(2, 1, numeric.Real(-1)))

	out, err := ew.Call(numeric.Slice([]float64{3, 5}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, float64(out[0]), 1e-9) // 2*3 + -1*5
}

func TestExpressionWeighted_SetWeightsRejectsWrongLength(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 1, C: 1, L: 1, A: 2}
	ks, err := kernel.NewSetFromNames[numeric.Real]("sum")
	require.NoError(t, err)
	ew, err := weighted.New(topo, ks, rng.NewFromSeed(3), numeric.Real(0))
	require.NoError(t, err)

	err = ew.SetWeights([]numeric.Real{1})
	assert.ErrorIs(t, err, weighted.ErrWeightCount)
}

func TestExpressionWeighted_EdgeOutOfRange(t *testing.T) {
	topo := expr.Topology{N: 2, M: 1, R: 1, C: 1, L: 1, A: 2}
	ks, err := kernel.NewSetFromNames[numeric.Real]("sum")
	require.NoError(t, err)
	ew, err := weighted.New(topo, ks, rng.NewFromSeed(3), numeric.Real(0))
	require.NoError(t, err)

	_, err = ew.GetWeight(2, 5)
	assert.ErrorIs(t, err, weighted.ErrEdgeOutOfRange)
}
