// Package kernel sentinel errors.
//
// Error policy mirrors the sentinel-error convention used throughout
// this codebase: only sentinel variables are exported; callers branch
// with errors.Is, never string comparison.
package kernel

import "errors"

// ErrUnknownKernel indicates a name passed to PushBackName (or
// NewSetFromNames) does not match any built-in kernel. Builtin reports an
// unknown name through its bool result instead.
var ErrUnknownKernel = errors.New("kernel: unknown built-in kernel name")

// ErrDuplicateKernel indicates a PushBack/PushBackName call would insert a
// second kernel with a name already present in the KernelSet.
var ErrDuplicateKernel = errors.New("kernel: kernel with this name already present")

// ErrKernelNotFound indicates Remove was asked to drop a name not present
// in the KernelSet.
var ErrKernelNotFound = errors.New("kernel: kernel not found in set")

// ErrEmptyKernelSet indicates a KernelSet has zero kernels where at least
// one is required. No function in this package returns it; expr.New
// reports an empty set with its own expr.ErrEmptyKernelSet.
var ErrEmptyKernelSet = errors.New("kernel: kernel set is empty")
