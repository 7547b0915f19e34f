package weighted

import (
	"fmt"

	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/kernel"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/rng"
)

// ExpressionWeighted extends expr.Expression with one scalar weight per
// incoming edge of every functional node (F*a weights total, including
// the inert slots of lower-arity kernels — kept present and in-bounds
// for the same reason expr keeps unused connection genes).
type ExpressionWeighted[T numeric.Scalar[T]] struct {
	*expr.Expression[T]

	weights  []T
	template T // used only to call template.Lift(x) with the right internal shape
}

// New constructs an ExpressionWeighted over topo/kernels, with every
// weight initialized to template.Lift(1) (the neutral, unweighted
// value). template supplies the scalar "shape" (e.g. a jet's dimension
// count) Lift needs to build well-formed constants; for numeric.Real any
// value works, for numeric/jet.Jet pass a jet of the intended K.
func New[T numeric.Scalar[T]](topo expr.Topology, kernels *kernel.KernelSet[T], eng *rng.Engine, template T) (*ExpressionWeighted[T], error) {
	base, err := expr.New(topo, kernels, eng)
	if err != nil {
		return nil, err
	}
	ew := &ExpressionWeighted[T]{Expression: base, template: template}
	ew.weights = make([]T, topo.F()*topo.A)
	one := template.Lift(1)
	for i := range ew.weights {
		ew.weights[i] = one
	}
	return ew, nil
}

func (ew *ExpressionWeighted[T]) edgeSlot(node, edge int) (int, error) {
	topo := ew.Topology()
	ni := ew.LocalIndex(node)
	if ni < 0 || ni >= topo.F() || edge < 0 || edge >= topo.A {
		return 0, fmt.Errorf("weighted: node=%d edge=%d: %w", node, edge, ErrEdgeOutOfRange)
	}
	return ni*topo.A + edge, nil
}

// GetWeight returns the weight on functional node node's edge'th incoming
// edge.
func (ew *ExpressionWeighted[T]) GetWeight(node, edge int) (T, error) {
	i, err := ew.edgeSlot(node, edge)
	if err != nil {
		var zero T
		return zero, err
	}
	return ew.weights[i], nil
}

// SetWeight overwrites the weight on functional node node's edge'th
// incoming edge.
func (ew *ExpressionWeighted[T]) SetWeight(node, edge int, w T) error {
	i, err := ew.edgeSlot(node, edge)
	if err != nil {
		return err
	}
	ew.weights[i] = w
	return nil
}

// GetWeights returns a copy of the full F*a weight vector.
func (ew *ExpressionWeighted[T]) GetWeights() []T { return append([]T(nil), ew.weights...) }

// SetWeights replaces the full weight vector; fails with ErrWeightCount
// if len(ws) != F*a.
func (ew *ExpressionWeighted[T]) SetWeights(ws []T) error {
	if len(ws) != len(ew.weights) {
		return fmt.Errorf("weighted.SetWeights: got %d want %d: %w", len(ws), len(ew.weights), ErrWeightCount)
	}
	copy(ew.weights, ws)
	return nil
}

// RandomiseWeights draws every weight from a Gaussian(mean,std) via eng.
func (ew *ExpressionWeighted[T]) RandomiseWeights(mean, std float64, eng *rng.Engine) {
	for i := range ew.weights {
		ew.weights[i] = ew.template.Lift(mean + std*eng.NormFloat64())
	}
}

// Call evaluates the weighted phenotype: identical to expr.Expression's
// active-node topological walk, except each operand is scaled by its
// edge weight before the node's kernel is applied.
func (ew *ExpressionWeighted[T]) Call(xs []T) ([]T, error) {
	topo := ew.Topology()
	if len(xs) != topo.N {
		return nil, fmt.Errorf("weighted: %w", expr.ErrShapeMismatch)
	}

	vals := make([]T, topo.N+topo.F())
	copy(vals, xs)

	operands := make([]T, topo.A)
	for _, node := range ew.ActiveNodes() {
		k := ew.NodeKernel(node)
		ni := ew.LocalIndex(node)
		for a := 0; a < k.Arity; a++ {
			src := ew.NodeSource(node, a)
			operands[a] = vals[src].Mul(ew.weights[ni*topo.A+a])
		}
		vals[node] = k.Apply(operands[:k.Arity])
	}

	out := make([]T, topo.M)
	for o := 0; o < topo.M; o++ {
		out[o] = vals[ew.OutputGene(o)]
	}
	return out, nil
}
