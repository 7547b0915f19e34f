package evolve

import "github.com/dcgp-go/dcgp/rng"

// BasicPopulation is a minimal in-memory Population (spec.md §6): a
// parallel (x,f) array pair bound to one Problem.
type BasicPopulation struct {
	problem Problem
	x, f    [][]float64
}

// NewPopulation evaluates problem.Fitness over every row of xs and
// returns the resulting population.
func NewPopulation(problem Problem, xs [][]float64) (*BasicPopulation, error) {
	pop := &BasicPopulation{problem: problem, x: make([][]float64, 0, len(xs)), f: make([][]float64, 0, len(xs))}
	for _, x := range xs {
		f, err := problem.Fitness(x)
		if err != nil {
			return nil, err
		}
		pop.x = append(pop.x, append([]float64(nil), x...))
		pop.f = append(pop.f, f)
	}
	return pop, nil
}

// NewRandomPopulation draws n decision vectors uniformly within
// problem.GetBounds() and evaluates each through problem.Fitness. Every
// entry, including the integer suffix, is stored as the drawn real
// value; srproblem rounds the suffix to the nearest integer when it
// decodes the vector.
func NewRandomPopulation(problem Problem, n int, eng *rng.Engine) (*BasicPopulation, error) {
	lower, upper := problem.GetBounds()
	xs := make([][]float64, n)
	for i := range xs {
		x := make([]float64, len(lower))
		for d := range x {
			x[d] = lower[d] + eng.Float64()*(upper[d]-lower[d])
		}
		xs[i] = x
	}
	return NewPopulation(problem, xs)
}

// Size implements Population.
func (p *BasicPopulation) Size() int { return len(p.x) }

// GetX implements Population.
func (p *BasicPopulation) GetX() [][]float64 { return p.x }

// GetF implements Population.
func (p *BasicPopulation) GetF() [][]float64 { return p.f }

// GetProblem implements Population.
func (p *BasicPopulation) GetProblem() Problem { return p.problem }

// PushBack implements Population.
func (p *BasicPopulation) PushBack(x, f []float64) {
	p.x = append(p.x, append([]float64(nil), x...))
	p.f = append(p.f, append([]float64(nil), f...))
}

// SetXF implements Population.
func (p *BasicPopulation) SetXF(i int, x, f []float64) {
	p.x[i] = append([]float64(nil), x...)
	p.f[i] = append([]float64(nil), f...)
}
