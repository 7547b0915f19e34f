package evolve

import "errors"

// ErrInvalidMutation indicates max_mut < 1 was passed to New.
var ErrInvalidMutation = errors.New("evolve: max_mut must be >= 1")

// ErrPopulationTooSmall indicates Evolve was called with |pop| < 2.
var ErrPopulationTooSmall = errors.New("evolve: population size must be >= 2")

// ErrNotApplicable indicates the problem wired into Evolve has no
// extractable CGP handle (no GetCGP() method), so no local learner or
// integer mutation can operate on it.
var ErrNotApplicable = errors.New("evolve: problem has no extractable SymbolicRegressionProblem")

// ErrTooFewObjectives indicates a multi-objective variant (Moes4cgp,
// Momes4cgp) was run against a problem reporting GetNObj() < 2.
var ErrTooFewObjectives = errors.New("evolve: multi-objective variants require n_obj >= 2")

// ErrInvalidLearningRate indicates WithLearningRate was given a
// non-positive step size for Gd4cgp.
var ErrInvalidLearningRate = errors.New("evolve: learning rate must be > 0")

// errNumericalFailure names the case of a candidate whose fitness came
// back non-finite. Nothing returns it: Evolve's diversity/finiteness
// filter (spec.md §7 propagation policy item 2) checks finiteFitness and
// silently drops such a candidate from selection.
var errNumericalFailure = errors.New("evolve: non-finite fitness")
