package kernel

import "github.com/dcgp-go/dcgp/numeric"

// ProtectionThreshold is the magnitude floor below which the protected
// kernels (pdiv, log, inv_sum) switch to their fallback behaviour, so that
// the chromosomes CGP routinely presents with zero or near-zero operands
// never produce a non-finite loss. Spec value is 1e-12.
const ProtectionThreshold = 1e-12

// Kernel is a named n-ary function over T plus a symbolic printer.
//
// Arity is the number of leading elements of Apply's input slice that are
// actually read; callers must always pass a slice of at least Arity
// elements (expr.decode enforces this by construction).
type Kernel[T numeric.Scalar[T]] struct {
	Name  string
	Arity int
	Apply func(xs []T) T
	Print func(operands []string) string
}

// String returns the kernel's name.
func (k Kernel[T]) String() string { return k.Name }
