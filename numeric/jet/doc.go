// Package jet implements truncated multivariate Taylor polynomials
// ("jets") of order 2: a value plus its gradient and Hessian with respect
// to a fixed set of k variables. Evaluating a CGP expression over jets
// instead of plain reals (package numeric.Real) yields, for free, the
// exact first- and second-order partial derivatives of the expression's
// output with respect to those k variables — this is how
// package srproblem computes gradients and Hessians with respect to
// ephemeral constants without finite differences.
//
// The arithmetic follows the standard forward-mode second-order
// automatic-differentiation rules: linear chain rule for unary
// elementary functions (sin, cos, tanh, exp, log, sqrt, abs, negation),
// and the product/quotient rule extended to Hessians for multiplication
// and division. See jet_test.go for the worked examples this
// package is validated against (ported from dcgp's own jet test suite).
package jet
