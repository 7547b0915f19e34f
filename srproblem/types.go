package srproblem

import (
	"fmt"

	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/kernel"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/numeric/jet"
	"github.com/dcgp-go/dcgp/rng"
)

// config holds construction-time options, applied by newConfig in the
// same default-then-left-to-right-options pattern as builder.BuilderOption.
type config struct {
	continuousLB, continuousUB float64
	multiObjective              bool
	name                        string
}

func newConfig(opts ...Option) *config {
	c := &config{continuousLB: -10, continuousUB: 10, name: "symbolic_regression"}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Option configures a Problem at construction time.
type Option func(*config)

// WithContinuousBounds overrides the default [-10,10] bounds applied to
// every ephemeral-constant dimension. New fails with ErrInvalidBounds if
// lo >= hi.
func WithContinuousBounds(lo, hi float64) Option {
	return func(c *config) {
		c.continuousLB, c.continuousUB = lo, hi
	}
}

// WithMultiObjective enables the second "complexity" objective
// (spec.md §4.4: f2 = number of active nodes).
func WithMultiObjective() Option {
	return func(c *config) { c.multiObjective = true }
}

// WithName overrides the problem's GetName() value.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// Problem is a SymbolicRegressionProblem: a CGP genotype fitted against a
// dataset, exposing the minimal Problem interface spec.md §6 describes.
type Problem struct {
	topo    expr.Topology
	dataDim int
	k       int

	real *expr.Expression[numeric.Real]
	jetE *expr.Expression[jet.Jet]

	x, y [][]float64

	continuousLB, continuousUB float64
	multiObjective              bool
	name                        string

	fevals uint64

	currentConstants  []float64
	currentChromosome []int
}

// New constructs a SymbolicRegressionProblem. topo.N is overridden to
// dataDim+k regardless of the caller-supplied value, per spec.md §13
// decision 6 ("where ephemeral constants live"): the wrapped Expression's
// input dimension is data dimensions plus ephemeral constants, never the
// chromosome's own input count alone.
func New(topo expr.Topology, kernelNames []string, k int, x, y [][]float64, eng *rng.Engine, opts ...Option) (*Problem, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(x) != len(y) {
		return nil, ErrShapeMismatch
	}
	dataDim := len(x[0])
	for _, row := range x {
		if len(row) != dataDim {
			return nil, ErrShapeMismatch
		}
	}
	outDim := len(y[0])
	for _, row := range y {
		if len(row) != outDim {
			return nil, ErrShapeMismatch
		}
	}

	cfg := newConfig(opts...)
	if cfg.continuousLB >= cfg.continuousUB {
		return nil, ErrInvalidBounds
	}

	effTopo := topo
	effTopo.N = dataDim + k
	if effTopo.M != outDim {
		effTopo.M = outDim
	}

	realKernels, err := kernel.NewSetFromNames[numeric.Real](kernelNames...)
	if err != nil {
		return nil, err
	}
	realE, err := expr.New(effTopo, realKernels, eng)
	if err != nil {
		return nil, err
	}

	jetKernels, err := kernel.NewSetFromNames[jet.Jet](kernelNames...)
	if err != nil {
		return nil, err
	}
	jetEng := rng.NewFromSeed(0)
	jetE, err := expr.New(effTopo, jetKernels, jetEng)
	if err != nil {
		return nil, err
	}
	if err := jetE.SetChromosome(realE.Chromosome()); err != nil {
		return nil, err
	}

	return &Problem{
		topo:              effTopo,
		dataDim:           dataDim,
		k:                 k,
		real:              realE,
		jetE:              jetE,
		x:                 x,
		y:                 y,
		continuousLB:      cfg.continuousLB,
		continuousUB:      cfg.continuousUB,
		multiObjective:    cfg.multiObjective,
		name:              cfg.name,
		currentConstants:  make([]float64, k),
		currentChromosome: realE.Chromosome(),
	}, nil
}

// GetCGP returns the underlying plain-CGP Expression, set to whatever
// integer chromosome the most recent Fitness call supplied — the
// "extract<SymbolicRegressionProblem>().get_cgp()" downcast capability of
// spec.md §6, modeled in Go as a plain accessor: package evolve reaches
// it by asserting its Problem interface value to evolve.CGPExtractor.
func (p *Problem) GetCGP() *expr.Expression[numeric.Real] { return p.real }

// GetNObj returns 1, or 2 when WithMultiObjective was supplied.
func (p *Problem) GetNObj() int {
	if p.multiObjective {
		return 2
	}
	return 1
}

// GetNcx returns k, the number of continuous (ephemeral-constant)
// decision variables.
func (p *Problem) GetNcx() int { return p.k }

// GetFevals returns the number of Fitness evaluations performed so far.
func (p *Problem) GetFevals() uint64 { return p.fevals }

// GetName returns the problem's display name.
func (p *Problem) GetName() string { return p.name }

func (p *Problem) decisionLen() int { return p.k + p.topo.ChromosomeLen() }

func (p *Problem) split(x []float64) (constants []float64, chromosome []int, err error) {
	if len(x) != p.decisionLen() {
		return nil, nil, fmt.Errorf("srproblem: decision vector length %d, want %d: %w", len(x), p.decisionLen(), ErrShapeMismatch)
	}
	constants = append([]float64(nil), x[:p.k]...)
	chromosome = make([]int, p.topo.ChromosomeLen())
	for i, v := range x[p.k:] {
		chromosome[i] = roundToInt(v)
	}
	return constants, chromosome, nil
}

func roundToInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
