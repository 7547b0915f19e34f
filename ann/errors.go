// Package ann sentinel errors.
package ann

import "errors"

// ErrUnsupportedKernel indicates a kernel set passed to New contains a
// kernel outside kernel.AnnActivationNames.
var ErrUnsupportedKernel = errors.New("ann: kernel set contains a non-activation kernel")

// ErrWeightCount indicates a weight vector's length does not equal F*a.
var ErrWeightCount = errors.New("ann: weight vector has wrong length")

// ErrBiasCount indicates a bias vector's length does not equal F.
var ErrBiasCount = errors.New("ann: bias vector has wrong length")

// ErrEdgeOutOfRange indicates a (node,edge) pair addresses a slot
// outside [0,F) x [0,a).
var ErrEdgeOutOfRange = errors.New("ann: node/edge index out of range")

// ErrShapeMismatch indicates points/labels passed to Mse or Sgd have
// inconsistent dimensions.
var ErrShapeMismatch = errors.New("ann: shape mismatch")

// ErrInvalidLearningRate indicates Sgd was called with lr <= 0.
var ErrInvalidLearningRate = errors.New("ann: learning rate must be positive")

// ErrInvalidBatchSize indicates Sgd was called with batchSize <= 0 or
// batchSize > len(points).
var ErrInvalidBatchSize = errors.New("ann: batch size must be in (0, len(points)]")

// ErrUnsupportedLossKind names a loss kind other than MSE for SGD. No
// function returns it: Sgd takes no loss-kind argument and always
// minimises MSE, since the analytical backprop this package ships only
// differentiates the mean-squared-error loss (spec.md §4.3's mse()
// contract); MAE/CE SGD would need their own closed-form output-layer
// derivative, which no SPEC_FULL.md scenario exercises.
var ErrUnsupportedLossKind = errors.New("ann: sgd only supports MSE loss")
