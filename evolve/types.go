package evolve

import (
	"io"

	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/numeric"
	"github.com/dcgp-go/dcgp/rng"
)

// Problem is the minimal problem interface spec.md §6 requires: an
// objective function over a mixed continuous/integer decision vector,
// with first- and second-order information for the continuous prefix.
// *srproblem.Problem satisfies this directly.
type Problem interface {
	GetNObj() int
	GetNcx() int
	GetBounds() (lower, upper []float64)
	Fitness(x []float64) ([]float64, error)
	Gradient(x []float64) ([]float64, error)
	Hessians(x []float64) ([][][]float64, error)
	HessiansSparsity() [][][2]int
	GetFevals() uint64
	GetName() string
}

// CGPExtractor is the downcast capability spec.md §6 calls
// "extract<SymbolicRegressionProblem>()": a Problem that can hand back
// its underlying CGP genotype/phenotype handle. *srproblem.Problem
// implements this via its GetCGP method.
type CGPExtractor interface {
	GetCGP() *expr.Expression[numeric.Real]
}

// Population is the minimal population interface spec.md §6 requires.
type Population interface {
	Size() int
	GetX() [][]float64
	GetF() [][]float64
	GetProblem() Problem
	PushBack(x, f []float64)
	SetXF(i int, x, f []float64)
}

// LogLine is one record of the per-generation log (spec.md §6 "Log
// record"): NdfSize is left at 0 for single-objective variants, which
// have no non-dominated front; BestComplexity is the best individual's
// second objective when the problem reports one, and 0 otherwise.
type LogLine struct {
	Gen            uint64
	Fevals         uint64
	BestLoss       float64
	NdfSize        uint64
	BestComplexity float64
}

// Variant selects the mutation/learner/selection triple a generic
// Algorithm runs (spec.md §4.5).
type Variant int

const (
	Es4cgp Variant = iota
	Mes4cgp
	Gd4cgp
	Moes4cgp
	Momes4cgp
)

func (v Variant) multiObjective() bool {
	return v == Moes4cgp || v == Momes4cgp
}

func (v Variant) String() string {
	switch v {
	case Es4cgp:
		return "es4cgp"
	case Mes4cgp:
		return "mes4cgp"
	case Gd4cgp:
		return "gd4cgp"
	case Moes4cgp:
		return "moes4cgp"
	case Momes4cgp:
		return "momes4cgp"
	default:
		return "unknown"
	}
}

// config holds Algorithm construction options, applied by newConfig in
// a default-then-options pattern.
type config struct {
	verbosity    int
	logWriter    io.Writer
	learningRate float64
}

func newConfig(opts ...Option) *config {
	c := &config{learningRate: 0.01}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Option configures an Algorithm at construction time.
type Option func(*config)

// WithVerbosity sets the logging cadence: a line is emitted every v
// generations (spec.md §4.5 step 7). v <= 0 disables logging (the
// default).
func WithVerbosity(v int) Option {
	return func(c *config) { c.verbosity = v }
}

// WithLogWriter installs the io.Writer the verbose log is printed to.
// No-op if w is nil.
func WithLogWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.logWriter = w
		}
	}
}

// WithLearningRate overrides Gd4cgp's fixed step size eta (default 0.01).
// Panics if eta <= 0, following this codebase's convention of panicking
// on option-constructor misuse for numeric parameters with no sensible
// invalid default.
func WithLearningRate(eta float64) Option {
	if eta <= 0 {
		panic(ErrInvalidLearningRate.Error())
	}
	return func(c *config) { c.learningRate = eta }
}

// Algorithm runs one memetic evolutionary strategy variant (spec.md
// §4.5). Not safe for concurrent use; each goroutine should own one.
type Algorithm struct {
	variant Variant
	maxMut  int
	eng     *rng.Engine

	verbosity int
	logWriter io.Writer
	eta       float64

	scratch *expr.Expression[numeric.Real]
	log     []LogLine
}

// New constructs an Algorithm running variant, with mutation intensities
// drawn from [0, maxMut), using eng as its sole random source. Fails with
// ErrInvalidMutation if maxMut < 1.
func New(variant Variant, maxMut int, eng *rng.Engine, opts ...Option) (*Algorithm, error) {
	if maxMut < 1 {
		return nil, ErrInvalidMutation
	}
	cfg := newConfig(opts...)
	return &Algorithm{
		variant:   variant,
		maxMut:    maxMut,
		eng:       eng,
		verbosity: cfg.verbosity,
		logWriter: cfg.logWriter,
		eta:       cfg.learningRate,
	}, nil
}

// Log returns a copy of the accumulated per-generation log records.
func (a *Algorithm) Log() []LogLine { return append([]LogLine(nil), a.log...) }
