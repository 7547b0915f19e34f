package srproblem

import (
	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/numeric"
)

// Fitness decodes x into (constants, chromosome), sets the wrapped
// Expression to that chromosome, and returns the mean-squared-error loss
// over the dataset as a single-element slice, or a two-element
// [loss, complexity] slice when the problem was built WithMultiObjective
// (spec.md §4.4: complexity is the number of active functional nodes).
func (p *Problem) Fitness(x []float64) ([]float64, error) {
	constants, chromosome, err := p.split(x)
	if err != nil {
		return nil, err
	}
	if err := p.real.SetChromosome(chromosome); err != nil {
		return nil, err
	}
	p.currentConstants = constants
	p.currentChromosome = chromosome

	points := make([][]numeric.Real, len(p.x))
	labels := make([][]numeric.Real, len(p.y))
	for i, row := range p.x {
		points[i] = p.augmentRow(row, constants)
		labels[i] = numeric.Slice(p.y[i])
	}

	loss, err := p.real.Loss(expr.MSE, points, labels)
	if err != nil {
		return nil, err
	}
	p.fevals++

	if p.multiObjective {
		return []float64{loss, float64(len(p.real.ActiveNodes()))}, nil
	}
	return []float64{loss}, nil
}

// augmentRow concatenates a data row with the current ephemeral constants,
// matching the N=dataDim+k input layout New builds the Expression with.
func (p *Problem) augmentRow(row, constants []float64) []numeric.Real {
	out := make([]numeric.Real, p.dataDim+p.k)
	for i, v := range row {
		out[i] = numeric.Real(v)
	}
	for i, v := range constants {
		out[p.dataDim+i] = numeric.Real(v)
	}
	return out
}

// GetBounds returns the per-dimension [lower,upper] box constraints on the
// decision vector: a continuous prefix of k entries bounded by
// WithContinuousBounds (default [-10,10]), followed by the CGP
// chromosome's own integer gene bounds widened to float64.
func (p *Problem) GetBounds() (lower, upper []float64) {
	n := p.decisionLen()
	lower = make([]float64, n)
	upper = make([]float64, n)
	for i := 0; i < p.k; i++ {
		lower[i] = p.continuousLB
		upper[i] = p.continuousUB
	}
	lb, ub := p.real.LowerBounds(), p.real.UpperBounds()
	for i := 0; i < len(lb); i++ {
		lower[p.k+i] = float64(lb[i])
		upper[p.k+i] = float64(ub[i])
	}
	return lower, upper
}

// GetNObj is also exposed as part of the Problem contract; see types.go.

// Predict evaluates the genotype and constants most recently set by
// Fitness (or SetChromosome/SetConstants directly) over a fresh batch of
// data rows, without touching the fitness-evaluation counter.
func (p *Problem) Predict(points [][]float64) ([][]float64, error) {
	out := make([][]float64, len(points))
	for i, row := range points {
		if len(row) != p.dataDim {
			return nil, ErrShapeMismatch
		}
		pred, err := p.real.Call(p.augmentRow(row, p.currentConstants))
		if err != nil {
			return nil, err
		}
		out[i] = numeric.Floats(pred)
	}
	return out, nil
}

// SetChromosome installs ints as the current integer chromosome, used by
// Predict/GetCGP without running a full Fitness evaluation.
func (p *Problem) SetChromosome(ints []int) error {
	if err := p.real.SetChromosome(ints); err != nil {
		return err
	}
	p.currentChromosome = append([]int(nil), ints...)
	return nil
}

// SetConstants installs constants as the current ephemeral-constant
// prefix, used by Predict without running a full Fitness evaluation.
func (p *Problem) SetConstants(constants []float64) error {
	if len(constants) != p.k {
		return ErrShapeMismatch
	}
	p.currentConstants = append([]float64(nil), constants...)
	return nil
}
