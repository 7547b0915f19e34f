// Package evolve implements the memetic multi-objective evolutionary
// strategies of spec.md §4.5: a single parametric generation loop
// (mutate, locally learn, evaluate, filter, select, log) specialized into
// five named algorithms by its mutation operator, local learner, and
// selection rule:
//
//   - Es4cgp    — single-objective, no local learning.
//   - Mes4cgp   — single-objective, Newton-step local learning.
//   - Gd4cgp    — single-objective, gradient-descent local learning.
//   - Moes4cgp  — multi-objective (NDS + crowding), no local learning.
//   - Momes4cgp — multi-objective (NDS + crowding), Newton-step learning.
//
// Every variant consumes the minimal Problem/Population interfaces of
// spec.md §6, so any host type satisfying them can be evolved; the local
// learners additionally require the problem to expose a CGP handle (the
// extract<SymbolicRegressionProblem>() downcast of spec.md §6), modeled
// here as the CGPExtractor interface srproblem.Problem already satisfies.
package evolve
