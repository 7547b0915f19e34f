package expr

import (
	"fmt"

	"github.com/dcgp-go/dcgp/kernel"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/rng"
)

// Topology holds the immutable CGP shape parameters (spec.md §3).
type Topology struct {
	N int // number of inputs
	M int // number of outputs
	R int // rows
	C int // columns
	L int // levels-back
	A int // max arity
}

// F returns the number of functional nodes (r*c).
func (t Topology) F() int { return t.R * t.C }

// ChromosomeLen returns F*(a+1)+m, the length of the integer chromosome.
func (t Topology) ChromosomeLen() int { return t.F()*(t.A+1) + t.M }

func (t Topology) validate() error {
	if t.N < 1 || t.M < 1 || t.R < 1 || t.C < 1 || t.A < 1 {
		return fmt.Errorf("%w: n=%d m=%d r=%d c=%d a=%d must all be >= 1",
			ErrBadTopology, t.N, t.M, t.R, t.C, t.A)
	}
	if t.L < 1 || t.L > t.C+1 {
		return fmt.Errorf("%w: l=%d must be in [1,c+1=%d]", ErrBadTopology, t.L, t.C+1)
	}
	return nil
}

// PrePost is an optional pair of phenotype-correction callbacks wrapping
// evaluation (spec.md §4.2): every Call(xs) becomes
// post(xs, callInner(pre(xs))). A zero-value PrePost (both fields nil) is
// the "no correction" case.
type PrePost[T numeric.Scalar[T]] struct {
	Pre  func(xs []T) []T
	Post func(xs []T, out []T) []T
}

func (p PrePost[T]) active() bool { return p.Pre != nil || p.Post != nil }

// Expression is a CGP genotype/phenotype over scalar type T: a chromosome
// decoded against a kernel.KernelSet[T], evaluable via Call and mutable
// via the Mutate* family. Expression is not safe for concurrent use; each
// goroutine needing independent mutation/evaluation should own a Clone.
type Expression[T numeric.Scalar[T]] struct {
	topo    Topology
	kernels *kernel.KernelSet[T]
	eng     *rng.Engine

	chromosome []int
	lb, ub     []int

	active activeSet
	dirty  bool

	correction PrePost[T]
}

// activeSet caches the result of decoding the chromosome's active nodes
// (spec.md §3 "Active-node set"): which functional nodes participate,
// and which gene indices (within the chromosome) are "active" for the
// purposes of Mutate* selection.
type activeSet struct {
	// nodes is the set of active functional node indices (n-based global
	// indices), in a topological (ascending) order safe for evaluation.
	nodes []int
	// isActiveNode[i] is true if functional node n+i is active.
	isActiveNode []bool
	// activeFuncGenes, activeConnGenes, activeOutGenes are chromosome gene
	// indices participating in the active set, partitioned by kind so
	// Mutate{Active,ActiveFGene,ActiveCGene,OGene} can select efficiently.
	activeFuncGenes []int
	activeConnGenes []int
	activeOutGenes  []int
}

// New constructs an Expression over the given topology and kernel set,
// drawing a uniformly random legal chromosome from eng. Fails with
// ErrBadTopology or ErrEmptyKernelSet per spec.md §4.2.
func New[T numeric.Scalar[T]](topo Topology, kernels *kernel.KernelSet[T], eng *rng.Engine) (*Expression[T], error) {
	if err := topo.validate(); err != nil {
		return nil, err
	}
	if kernels == nil || kernels.Len() == 0 {
		return nil, ErrEmptyKernelSet
	}
	for _, k := range kernels.Kernels() {
		if k.Arity > topo.A {
			return nil, fmt.Errorf("%w: kernel %q has arity %d > a=%d", ErrBadTopology, k.Name, k.Arity, topo.A)
		}
	}
	e := &Expression[T]{topo: topo, kernels: kernels, eng: eng}
	e.lb, e.ub = computeBounds(topo, kernels.Len())
	e.chromosome = make([]int, len(e.lb))
	for i := range e.chromosome {
		e.chromosome[i] = e.eng.IntnRange(e.lb[i], e.ub[i])
	}
	e.dirty = true
	return e, nil
}

// Topology returns the Expression's immutable shape parameters.
func (e *Expression[T]) Topology() Topology { return e.topo }

// Kernels returns the kernel set this Expression decodes against.
func (e *Expression[T]) Kernels() *kernel.KernelSet[T] { return e.kernels }

// Clone returns an independent copy sharing the same kernel set and
// topology but with its own chromosome slice and its own RNG sub-stream,
// derived from the source's engine so behavior stays deterministic under
// a fixed seed.
func (e *Expression[T]) Clone() *Expression[T] {
	c := &Expression[T]{
		topo:       e.topo,
		kernels:    e.kernels,
		eng:        e.eng.Derive(0),
		chromosome: append([]int(nil), e.chromosome...),
		lb:         e.lb,
		ub:         e.ub,
		correction: e.correction,
	}
	c.dirty = true
	return c
}

// SetPhenotypeCorrection installs pre/post evaluation callbacks.
func (e *Expression[T]) SetPhenotypeCorrection(pre func(xs []T) []T, post func(xs []T, out []T) []T) {
	e.correction = PrePost[T]{Pre: pre, Post: post}
}

// UnsetPhenotypeCorrection removes any installed callbacks.
func (e *Expression[T]) UnsetPhenotypeCorrection() {
	e.correction = PrePost[T]{}
}
