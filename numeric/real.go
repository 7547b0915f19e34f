package numeric

import "math"

// Real is the float64 instantiation of Scalar. It is a defined type (not a
// plain float64 alias) because Go methods cannot be attached to the
// predeclared float64 type directly.
type Real float64

// RealOf converts a plain float64 into a Real.
func RealOf(v float64) Real { return Real(v) }

// Slice converts a []float64 into a []Real.
func Slice(vs []float64) []Real {
	out := make([]Real, len(vs))
	for i, v := range vs {
		out[i] = Real(v)
	}
	return out
}

// Floats converts a []Real back into a []float64.
func Floats(vs []Real) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
func (r Real) Mul(o Real) Real { return r * o }
func (r Real) Div(o Real) Real { return r / o }
func (r Real) Neg() Real       { return -r }

func (r Real) Sin() Real  { return Real(math.Sin(float64(r))) }
func (r Real) Cos() Real  { return Real(math.Cos(float64(r))) }
func (r Real) Tanh() Real { return Real(math.Tanh(float64(r))) }
func (r Real) Exp() Real  { return Real(math.Exp(float64(r))) }
func (r Real) Log() Real  { return Real(math.Log(float64(r))) }
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }
func (r Real) Abs() Real  { return Real(math.Abs(float64(r))) }

func (r Real) Lift(x float64) Real { return Real(x) }
func (r Real) Float64() float64    { return float64(r) }
func (r Real) IsZero() bool        { return float64(r) == 0 }
