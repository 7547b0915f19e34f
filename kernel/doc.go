// Package kernel defines the named n-ary functions a CGP expression wires
// its function genes to, plus the ordered, de-duplicated KernelSet that
// indexes them.
//
// A Kernel[T] is a (name, apply, print) triple: Apply evaluates the
// kernel over its inputs for any T satisfying numeric.Scalar[T]; Print
// renders the kernel symbolically given the printed form of its operands.
// Because Kernel is generic over T, the same named kernel ("mul", "tanh",
// ...) can be instantiated for numeric.Real (plain evaluation) or
// jet.Jet (exact differentiation) without any duplicated logic — the
// arithmetic lives once, in T's Scalar methods.
//
// Arity is part of a kernel's identity: it is the number of leading
// connection genes a node using this kernel actually consumes. A CGP
// topology's max arity parameter a may exceed a kernel's Arity; the
// surplus connection genes are preserved in the chromosome (kept
// in-bounds) but are not wired to any input and are excluded from
// mutate_active_cgene's selection pool (see package expr).
package kernel
