package evolve

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// reciprocalCondTolerance is the threshold below which a Hessian is
// treated as numerically non-invertible for the k>1 Newton step
// (spec.md §13 decision 2).
const reciprocalCondTolerance = 1e-12

// localLearn mutates the continuous prefix of x in place according to
// a's variant (spec.md §4.5 step 3). es4cgp/moes4cgp have no local
// learner and this is a no-op. Any failure to invert a Hessian (k>1) or
// a degenerate scalar second derivative (k==1) silently skips the step
// for this individual, per spec.md §7 propagation policy item 1 — it is
// never reported as an error.
func (a *Algorithm) localLearn(prob Problem, x []float64) error {
	switch a.variant {
	case Es4cgp, Moes4cgp:
		return nil
	case Gd4cgp:
		return a.gradientStep(prob, x)
	case Mes4cgp, Momes4cgp:
		return a.newtonStep(prob, x)
	default:
		return nil
	}
}

func (a *Algorithm) gradientStep(prob Problem, x []float64) error {
	k := prob.GetNcx()
	if k == 0 {
		return nil
	}
	g, err := prob.Gradient(x)
	if err != nil {
		return err
	}
	for i := 0; i < k; i++ {
		x[i] -= a.eta * g[i]
	}
	return nil
}

func (a *Algorithm) newtonStep(prob Problem, x []float64) error {
	k := prob.GetNcx()
	if k == 0 {
		return nil
	}
	g, err := prob.Gradient(x)
	if err != nil {
		return err
	}
	hs, err := prob.Hessians(x)
	if err != nil {
		return err
	}
	h := hs[0]

	if k == 1 {
		if math.Abs(h[0][0]) < reciprocalCondTolerance || g[0] == 0 {
			return nil
		}
		x[0] -= g[0] / h[0][0]
		return nil
	}

	delta, ok := solveNewtonSystem(h, g)
	if !ok {
		return nil
	}
	for i := 0; i < k; i++ {
		x[i] -= delta[i]
	}
	return nil
}

// solveNewtonSystem solves H*delta = g for delta, preferring a Cholesky
// factorization (H is the symmetric loss Hessian and should be positive
// definite near a minimum) and falling back to a general LU solve with
// a condition-number check when Cholesky fails (spec.md §13 decision 2).
// ok is false when neither factorization is numerically trustworthy, in
// which case the caller must skip the Newton step.
func solveNewtonSystem(h [][]float64, g []float64) (delta []float64, ok bool) {
	k := len(g)
	flat := make([]float64, 0, k*k)
	for _, row := range h {
		flat = append(flat, row...)
	}
	sym := mat.NewSymDense(k, flat)
	rhs := mat.NewVecDense(k, g)
	dst := mat.NewVecDense(k, nil)

	var chol mat.Cholesky
	if chol.Factorize(sym) {
		if err := chol.SolveVecTo(dst, rhs); err == nil {
			return matVecData(dst), true
		}
	}

	dense := mat.NewDense(k, k, flat)
	var lu mat.LU
	lu.Factorize(dense)
	if lu.Cond() > 1/reciprocalCondTolerance {
		return nil, false
	}
	if err := lu.SolveVecTo(dst, false, rhs); err != nil {
		return nil, false
	}
	return matVecData(dst), true
}

func matVecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
