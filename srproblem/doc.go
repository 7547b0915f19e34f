// Package srproblem implements SymbolicRegressionProblem (spec.md §4.4):
// a multi-objective wrapper around an expr.Expression[numeric.Real] and a
// dataset (X,Y), exposing the Problem interface package evolve consumes.
//
// The decision vector is the concatenation of a continuous prefix of k
// ephemeral constants and the CGP integer chromosome (spec.md §13
// decision 6): the wrapped Expression is constructed with input
// dimension dataDim+k, and every evaluation concatenates a data row with
// the current constants before calling it, exactly as the "Predict"
// contract describes.
//
// Gradient and Hessian (with respect to the continuous prefix only) are
// computed by evaluating the identical genotype through a second
// Expression instantiated over numeric/jet.Jet: each data dimension
// becomes a constant jet and each ephemeral constant becomes a jet
// variable, so the mean-squared-error accumulated in jet arithmetic
// carries its own exact gradient and Hessian by construction — no
// separate symbolic differentiation pass is needed.
package srproblem
