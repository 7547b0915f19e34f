package ann

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/kernel"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/rng"
)

// ExpressionANN extends expr.Expression with per-edge weights and
// per-node biases, and restricts its kernel set to unary activations
// (kernel.AnnActivationNames). template supplies the scalar "shape" Lift
// needs (see weighted.New for the same convention).
type ExpressionANN[T numeric.Scalar[T]] struct {
	*expr.Expression[T]

	weights  []T // F*a, node-major then edge-index
	biases   []T // F
	template T

	outputKernel kernel.Kernel[T]
}

// linearKernel is the default output-layer activation: the identity.
func linearKernel[T numeric.Scalar[T]]() kernel.Kernel[T] {
	return kernel.Kernel[T]{
		Name: "linear", Arity: 1,
		Apply: func(xs []T) T { return xs[0] },
		Print: func(o []string) string { return o[0] },
	}
}

// New constructs an ExpressionANN over topo/kernels, failing with
// ErrUnsupportedKernel if kernels contains anything outside
// kernel.AnnActivationNames. All weights start at template.Lift(1), all
// biases at template.Lift(0), and the output activation defaults to the
// identity ("linear"), per spec.md §4.3's construction-time invariant
// check and §4.3's set_output_f default.
func New[T numeric.Scalar[T]](topo expr.Topology, kernels *kernel.KernelSet[T], eng *rng.Engine, template T) (*ExpressionANN[T], error) {
	for _, k := range kernels.Kernels() {
		if !kernel.AnnActivationNames[k.Name] {
			return nil, fmt.Errorf("ann.New: kernel %q: %w", k.Name, ErrUnsupportedKernel)
		}
	}
	base, err := expr.New(topo, kernels, eng)
	if err != nil {
		return nil, err
	}
	a := &ExpressionANN[T]{Expression: base, template: template, outputKernel: linearKernel[T]()}

	f := topo.F()
	a.weights = make([]T, f*topo.A)
	one := template.Lift(1)
	for i := range a.weights {
		a.weights[i] = one
	}
	a.biases = make([]T, f)
	zero := template.Lift(0)
	for i := range a.biases {
		a.biases[i] = zero
	}
	return a, nil
}

func (a *ExpressionANN[T]) weightSlot(node, edge int) (int, error) {
	topo := a.Topology()
	ni := a.LocalIndex(node)
	if ni < 0 || ni >= topo.F() || edge < 0 || edge >= topo.A {
		return 0, fmt.Errorf("ann: node=%d edge=%d: %w", node, edge, ErrEdgeOutOfRange)
	}
	return ni*topo.A + edge, nil
}

// GetWeight returns the weight on functional node node's edge'th
// incoming edge.
func (a *ExpressionANN[T]) GetWeight(node, edge int) (T, error) {
	i, err := a.weightSlot(node, edge)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.weights[i], nil
}

// SetWeight overwrites the weight on functional node node's edge'th
// incoming edge.
func (a *ExpressionANN[T]) SetWeight(node, edge int, w T) error {
	i, err := a.weightSlot(node, edge)
	if err != nil {
		return err
	}
	a.weights[i] = w
	return nil
}

// GetWeights returns a copy of the full F*a weight vector.
func (a *ExpressionANN[T]) GetWeights() []T { return append([]T(nil), a.weights...) }

// SetWeights replaces the full weight vector; fails with ErrWeightCount
// if len(ws) != F*a.
func (a *ExpressionANN[T]) SetWeights(ws []T) error {
	if len(ws) != len(a.weights) {
		return fmt.Errorf("ann.SetWeights: got %d want %d: %w", len(ws), len(a.weights), ErrWeightCount)
	}
	copy(a.weights, ws)
	return nil
}

// GetBias returns the bias of functional node node.
func (a *ExpressionANN[T]) GetBias(node int) T { return a.biases[a.LocalIndex(node)] }

// SetBias overwrites the bias of functional node node.
func (a *ExpressionANN[T]) SetBias(node int, b T) { a.biases[a.LocalIndex(node)] = b }

// GetBiases returns a copy of the full F-length bias vector.
func (a *ExpressionANN[T]) GetBiases() []T { return append([]T(nil), a.biases...) }

// SetBiases replaces the full bias vector; fails with ErrBiasCount if
// len(bs) != F.
func (a *ExpressionANN[T]) SetBiases(bs []T) error {
	if len(bs) != len(a.biases) {
		return fmt.Errorf("ann.SetBiases: got %d want %d: %w", len(bs), len(a.biases), ErrBiasCount)
	}
	copy(a.biases, bs)
	return nil
}

// RandomiseWeights draws every weight from a Gaussian(mean,std) via eng,
// using gonum's distuv.Normal sampler seeded from eng's underlying
// math/rand source so results stay reproducible under a fixed seed.
func (a *ExpressionANN[T]) RandomiseWeights(mean, std float64, eng *rng.Engine) {
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: eng.Rand()}
	for i := range a.weights {
		a.weights[i] = a.template.Lift(dist.Rand())
	}
}

// RandomiseBiases draws every bias from a Gaussian(mean,std) via eng.
func (a *ExpressionANN[T]) RandomiseBiases(mean, std float64, eng *rng.Engine) {
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: eng.Rand()}
	for i := range a.biases {
		a.biases[i] = a.template.Lift(dist.Rand())
	}
}

// SetOutputF replaces the output layer's activation (default "linear",
// the identity), failing with ErrUnsupportedKernel if name is neither
// "linear" nor a member of kernel.AnnActivationNames.
func (a *ExpressionANN[T]) SetOutputF(name string) error {
	if name == "linear" {
		a.outputKernel = linearKernel[T]()
		return nil
	}
	k, ok := kernel.Builtin[T](name)
	if !ok || !kernel.AnnActivationNames[name] {
		return fmt.Errorf("ann.SetOutputF(%s): %w", name, ErrUnsupportedKernel)
	}
	a.outputKernel = k
	return nil
}

// NActiveWeights counts the weights feeding currently active nodes
// (spec.md §4.3): every active node contributes exactly topo.A weight
// slots (ANN fan-in is always the full topology arity, regardless of
// its unary activation kernel's own Arity — see package doc). When
// unique is true, a (source, destination-node) pair referenced by more
// than one of a node's a connection genes — i.e. two edge slots of the
// same node happening to read the same source — is counted once rather
// than once per slot.
func (a *ExpressionANN[T]) NActiveWeights(unique bool) int {
	topo := a.Topology()
	nodes := a.activeNodesAll()
	if !unique {
		return len(nodes) * topo.A
	}
	seen := make(map[[2]int]bool, len(nodes)*topo.A)
	count := 0
	for _, node := range nodes {
		for k := 0; k < topo.A; k++ {
			key := [2]int{a.NodeSource(node, k), node}
			if !seen[key] {
				seen[key] = true
				count++
			}
		}
	}
	return count
}
