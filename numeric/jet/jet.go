package jet

import "math"

// Jet is a truncated multivariate Taylor polynomial of order 2 in k fixed
// variables: value V, gradient G (length k), and Hessian H (k rows of
// length k, symmetric, storing actual second partial derivatives — not
// Taylor-series coefficients, i.e. H[i][j] == d2f/dxi/dxj with no 1/2!
// scaling). All Jets participating in one arithmetic expression must share
// the same k; mismatched k is a programmer error and panics.
type Jet struct {
	K int
	V float64
	G []float64
	H [][]float64
}

func newZero(k int) Jet {
	h := make([][]float64, k)
	for i := range h {
		h[i] = make([]float64, k)
	}
	return Jet{K: k, G: make([]float64, k), H: h}
}

// NewConstant returns the jet representing the constant value v in a space
// of k variables: zero gradient, zero Hessian.
func NewConstant(k int, v float64) Jet {
	j := newZero(k)
	j.V = v
	return j
}

// NewVariable returns the jet representing the index-th of k variables,
// evaluated at value v: gradient is the index-th standard basis vector,
// Hessian is zero (the variable is linear in itself).
func NewVariable(k, index int, v float64) Jet {
	if index < 0 || index >= k {
		panic("jet: variable index out of range")
	}
	j := newZero(k)
	j.V = v
	j.G[index] = 1
	return j
}

func (j Jet) requireSameShape(o Jet) {
	if j.K != o.K {
		panic("jet: mismatched dimension in binary operation")
	}
}

// Add implements numeric.Scalar.
func (j Jet) Add(o Jet) Jet {
	j.requireSameShape(o)
	r := newZero(j.K)
	r.V = j.V + o.V
	for i := 0; i < j.K; i++ {
		r.G[i] = j.G[i] + o.G[i]
		for c := 0; c < j.K; c++ {
			r.H[i][c] = j.H[i][c] + o.H[i][c]
		}
	}
	return r
}

// Sub implements numeric.Scalar.
func (j Jet) Sub(o Jet) Jet {
	j.requireSameShape(o)
	r := newZero(j.K)
	r.V = j.V - o.V
	for i := 0; i < j.K; i++ {
		r.G[i] = j.G[i] - o.G[i]
		for c := 0; c < j.K; c++ {
			r.H[i][c] = j.H[i][c] - o.H[i][c]
		}
	}
	return r
}

// Mul implements numeric.Scalar via the product rule extended to Hessians:
// (fg)_i = f_i g + f g_i
// (fg)_ij = f_ij g + f_i g_j + f_j g_i + f g_ij
func (j Jet) Mul(o Jet) Jet {
	j.requireSameShape(o)
	r := newZero(j.K)
	r.V = j.V * o.V
	for i := 0; i < j.K; i++ {
		r.G[i] = j.G[i]*o.V + j.V*o.G[i]
	}
	for i := 0; i < j.K; i++ {
		for c := 0; c < j.K; c++ {
			r.H[i][c] = j.H[i][c]*o.V + j.G[i]*o.G[c] + j.G[c]*o.G[i] + j.V*o.H[i][c]
		}
	}
	return r
}

// inv returns the jet for 1/j via the unary chain rule with
// phi(x)=1/x, phi'(x)=-1/x^2, phi''(x)=2/x^3.
func (j Jet) inv() Jet {
	v := 1 / j.V
	return j.chain(v, -v*v, 2*v*v*v)
}

// Div implements numeric.Scalar as Mul(j, inv(o)).
func (j Jet) Div(o Jet) Jet {
	j.requireSameShape(o)
	return j.Mul(o.inv())
}

// Neg implements numeric.Scalar.
func (j Jet) Neg() Jet {
	r := newZero(j.K)
	r.V = -j.V
	for i := 0; i < j.K; i++ {
		r.G[i] = -j.G[i]
		for c := 0; c < j.K; c++ {
			r.H[i][c] = -j.H[i][c]
		}
	}
	return r
}

// chain applies the 2nd-order chain rule for a unary elementary function
// phi evaluated at this jet's value: v=phi(j.V), d1=phi'(j.V), d2=phi''(j.V).
//
//	(phi(j))_i  = d1 * j_i
//	(phi(j))_ij = d1 * j_ij + d2 * j_i * j_j
func (j Jet) chain(v, d1, d2 float64) Jet {
	r := newZero(j.K)
	r.V = v
	for i := 0; i < j.K; i++ {
		r.G[i] = d1 * j.G[i]
	}
	for i := 0; i < j.K; i++ {
		for c := 0; c < j.K; c++ {
			r.H[i][c] = d1*j.H[i][c] + d2*j.G[i]*j.G[c]
		}
	}
	return r
}

// Sin implements numeric.Scalar.
func (j Jet) Sin() Jet {
	s, c := math.Sin(j.V), math.Cos(j.V)
	return j.chain(s, c, -s)
}

// Cos implements numeric.Scalar.
func (j Jet) Cos() Jet {
	s, c := math.Sin(j.V), math.Cos(j.V)
	return j.chain(c, -s, -c)
}

// Tanh implements numeric.Scalar.
func (j Jet) Tanh() Jet {
	t := math.Tanh(j.V)
	return j.chain(t, 1-t*t, -2*t*(1-t*t))
}

// Exp implements numeric.Scalar.
func (j Jet) Exp() Jet {
	e := math.Exp(j.V)
	return j.chain(e, e, e)
}

// Log implements numeric.Scalar. Protected like the kernel-level log: the
// argument magnitude is floored at protectionThreshold before taking the
// logarithm or its derivatives, matching the "log" kernel's behaviour so
// jets differentiate the same protected function the real-valued kernel
// evaluates.
func (j Jet) Log() Jet {
	x := j.V
	ax := math.Abs(x)
	if ax < protectionThreshold {
		if x < 0 {
			x = -protectionThreshold
		} else {
			x = protectionThreshold
		}
	}
	return j.chain(math.Log(math.Abs(x)), 1/x, -1/(x*x))
}

// Sqrt implements numeric.Scalar.
func (j Jet) Sqrt() Jet {
	s := math.Sqrt(j.V)
	return j.chain(s, 1/(2*s), -1/(4*s*s*s))
}

// Abs implements numeric.Scalar. Not differentiable at 0; away from 0 its
// derivative is sign(x) and second derivative is 0.
func (j Jet) Abs() Jet {
	sign := 1.0
	if j.V < 0 {
		sign = -1.0
	}
	return j.chain(math.Abs(j.V), sign, 0)
}

// Lift implements numeric.Scalar: returns the constant x in the same
// k-dimensional space as the receiver.
func (j Jet) Lift(x float64) Jet { return NewConstant(j.K, x) }

// Float64 implements numeric.Scalar: projects onto the plain value.
func (j Jet) Float64() float64 { return j.V }

// IsZero implements numeric.Scalar.
func (j Jet) IsZero() bool { return j.V == 0 }

// protectionThreshold mirrors kernel.ProtectionThreshold; duplicated here
// (rather than imported) to avoid a dependency cycle between kernel (which
// is generic over numeric.Scalar, instantiated with jet.Jet by srproblem)
// and jet itself.
const protectionThreshold = 1e-12

// Gradient returns a copy of the jet's gradient vector.
func (j Jet) Gradient() []float64 {
	out := make([]float64, j.K)
	copy(out, j.G)
	return out
}

// Hessian returns a copy of the jet's Hessian matrix (k x k, symmetric).
func (j Jet) Hessian() [][]float64 {
	out := make([][]float64, j.K)
	for i := range out {
		out[i] = make([]float64, j.K)
		copy(out[i], j.H[i])
	}
	return out
}

// Derivative returns the partial derivative identified by orders, a
// length-K slice where orders[i] is the differentiation order with respect
// to variable i. Only total order 0, 1, or 2 is representable by this
// truncation; Derivative panics if sum(orders) > 2 or any entry exceeds 2.
func (j Jet) Derivative(orders []int) float64 {
	if len(orders) != j.K {
		panic("jet: Derivative requires one order per variable")
	}
	total := 0
	var first, second int = -1, -1
	for i, o := range orders {
		switch {
		case o == 0:
		case o == 1:
			total++
			if first == -1 {
				first = i
			} else {
				second = i
			}
		case o == 2:
			total += 2
			first, second = i, i
		default:
			panic("jet: order per variable must be 0, 1, or 2")
		}
	}
	switch total {
	case 0:
		return j.V
	case 1:
		return j.G[first]
	case 2:
		return j.H[first][second]
	default:
		panic("jet: total differentiation order exceeds truncation order 2")
	}
}
