// Package expr errors.
package expr

import "errors"

// ErrBadTopology indicates a topology parameter violates spec.md §4.2's
// construction contract (n>=1, m>=1, r>=1, c>=1, a>=1, l in [1,c+1];
// l=c+1 lets every column and the outputs reach back to the inputs).
var ErrBadTopology = errors.New("expr: invalid topology parameters")

// ErrEmptyKernelSet indicates a construction was attempted with zero
// kernels.
var ErrEmptyKernelSet = errors.New("expr: kernel set must be non-empty")

// ErrChromosomeLength indicates a chromosome passed to SetChromosome has the wrong
// length for this Expression's topology.
var ErrChromosomeLength = errors.New("expr: chromosome has wrong length")

// ErrOutOfBounds indicates a gene in a chromosome passed to Set lies
// outside its legal interval.
var ErrOutOfBounds = errors.New("expr: gene out of bounds")

// ErrShapeMismatch indicates points/labels passed to Loss or Call have
// inconsistent dimensions.
var ErrShapeMismatch = errors.New("expr: shape mismatch")

// ErrUnknownLossKind indicates a Kind value not in {MSE, MAE, CE}.
var ErrUnknownLossKind = errors.New("expr: unknown loss kind")
