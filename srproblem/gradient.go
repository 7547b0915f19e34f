package srproblem

import "github.com/dcgp-go/dcgp/numeric/jet"

// computeLossJet evaluates the MSE loss over the whole dataset as a single
// Jet in the problem's k ephemeral constants, by re-running the identical
// chromosome through p.jetE with constant jets for data dimensions and
// variable jets for the constants prefix. The resulting jet's value,
// gradient, and Hessian are the loss and its exact first/second partials
// with respect to the continuous decision variables.
func (p *Problem) computeLossJet(chromosome []int, constants []float64) (jet.Jet, error) {
	if err := p.jetE.SetChromosome(chromosome); err != nil {
		return jet.Jet{}, err
	}

	k := p.k
	constJets := make([]jet.Jet, k)
	for i, v := range constants {
		constJets[i] = jet.NewVariable(k, i, v)
	}

	n := len(p.x)
	total := jet.NewConstant(k, 0)
	for i, row := range p.x {
		input := make([]jet.Jet, p.dataDim+k)
		for d, v := range row {
			input[d] = jet.NewConstant(k, v)
		}
		copy(input[p.dataDim:], constJets)

		out, err := p.jetE.Call(input)
		if err != nil {
			return jet.Jet{}, err
		}
		m := len(out)
		for o, val := range out {
			diff := val.Sub(jet.NewConstant(k, p.y[i][o]))
			sq := diff.Mul(diff)
			scaled := sq.Mul(jet.NewConstant(k, 1/float64(n*m)))
			total = total.Add(scaled)
		}
	}
	return total, nil
}

// Gradient returns the gradient of the MSE loss with respect to the
// continuous prefix of x, evaluated via computeLossJet. The integer
// chromosome suffix contributes no gradient entries (it is not a
// continuous variable); this matches spec.md §4.4's "gradient w.r.t.
// ephemeral constants only" contract.
func (p *Problem) Gradient(x []float64) ([]float64, error) {
	constants, chromosome, err := p.split(x)
	if err != nil {
		return nil, err
	}
	j, err := p.computeLossJet(chromosome, constants)
	if err != nil {
		return nil, err
	}
	return j.Gradient(), nil
}

// Hessians returns one k x k Hessian per objective: the loss objective's
// exact analytical Hessian (from computeLossJet), and, when the problem is
// multi-objective, a zero matrix for the complexity objective (which is a
// step function of the integer chromosome and has zero derivative
// everywhere it is defined with respect to the continuous prefix).
func (p *Problem) Hessians(x []float64) ([][][]float64, error) {
	constants, chromosome, err := p.split(x)
	if err != nil {
		return nil, err
	}
	j, err := p.computeLossJet(chromosome, constants)
	if err != nil {
		return nil, err
	}
	hessians := [][][]float64{j.Hessian()}
	if p.multiObjective {
		zero := make([][]float64, p.k)
		for i := range zero {
			zero[i] = make([]float64, p.k)
		}
		hessians = append(hessians, zero)
	}
	return hessians, nil
}

// HessiansSparsity returns the dense upper-triangular sparsity pattern
// shared by every objective's Hessian (k==0 means no continuous
// variables, so every objective's pattern is empty).
func (p *Problem) HessiansSparsity() [][][2]int {
	pattern := make([][2]int, 0, p.k*(p.k+1)/2)
	for i := 0; i < p.k; i++ {
		for col := i; col < p.k; col++ {
			pattern = append(pattern, [2]int{i, col})
		}
	}
	nObj := 1
	if p.multiObjective {
		nObj = 2
	}
	out := make([][][2]int, nObj)
	for i := range out {
		out[i] = pattern
	}
	return out
}
