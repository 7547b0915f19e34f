package weighted

import "errors"

// ErrWeightCount indicates a weight vector's length does not equal
// F*a (one weight per incoming edge slot of every functional node,
// including unused slots for lower-arity kernels).
var ErrWeightCount = errors.New("weighted: weight vector has wrong length")

// ErrEdgeOutOfRange indicates an (node,edge) pair passed to
// SetWeight/GetWeight addresses a slot outside [0,F) x [0,a).
var ErrEdgeOutOfRange = errors.New("weighted: node/edge index out of range")
