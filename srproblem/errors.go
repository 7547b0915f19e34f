// Package srproblem sentinel errors.
package srproblem

import "errors"

// ErrEmptyDataset indicates X or Y has zero rows.
var ErrEmptyDataset = errors.New("srproblem: dataset must be non-empty")

// ErrShapeMismatch indicates X and Y have mismatched row counts, or a
// decision vector/prediction input has the wrong length.
var ErrShapeMismatch = errors.New("srproblem: shape mismatch")

// ErrInvalidK indicates a negative ephemeral-constant count k.
var ErrInvalidK = errors.New("srproblem: k must be >= 0")

// ErrInvalidBounds indicates WithContinuousBounds was given lo >= hi.
var ErrInvalidBounds = errors.New("srproblem: continuous lower bound must be < upper bound")
