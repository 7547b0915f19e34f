package kernel

import (
	"fmt"

	"github.com/dcgp-go/dcgp/numeric"
)

// KernelSet is an ordered, de-duplicated collection of kernels. Indexing is
// stable: a chromosome's function genes refer to kernels by their position
// in this set, so once added a kernel's index never changes for the
// lifetime of the set (Remove is the only mutation that can shift later
// indices, and callers must not Remove from a set already wired into a
// live Expression).
type KernelSet[T numeric.Scalar[T]] struct {
	kernels []Kernel[T]
	index   map[string]int
}

// NewSet returns an empty KernelSet.
func NewSet[T numeric.Scalar[T]]() *KernelSet[T] {
	return &KernelSet[T]{index: make(map[string]int)}
}

// PushBack appends k, failing with ErrDuplicateKernel if its name is
// already present.
func (s *KernelSet[T]) PushBack(k Kernel[T]) error {
	if _, ok := s.index[k.Name]; ok {
		return fmt.Errorf("KernelSet.PushBack(%s): %w", k.Name, ErrDuplicateKernel)
	}
	s.index[k.Name] = len(s.kernels)
	s.kernels = append(s.kernels, k)
	return nil
}

// PushBackName looks up name among the built-in kernels and appends it.
func (s *KernelSet[T]) PushBackName(name string) error {
	k, ok := Builtin[T](name)
	if !ok {
		return fmt.Errorf("KernelSet.PushBackName(%s): %w", name, ErrUnknownKernel)
	}
	return s.PushBack(k)
}

// Remove drops the kernel named name, shifting later kernels' indices down
// by one. Failing with ErrKernelNotFound if absent.
func (s *KernelSet[T]) Remove(name string) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("KernelSet.Remove(%s): %w", name, ErrKernelNotFound)
	}
	s.kernels = append(s.kernels[:i], s.kernels[i+1:]...)
	delete(s.index, name)
	for n, idx := range s.index {
		if idx > i {
			s.index[n] = idx - 1
		}
	}
	return nil
}

// Len returns the number of kernels in the set.
func (s *KernelSet[T]) Len() int { return len(s.kernels) }

// Get returns the kernel at position i. Panics if i is out of range: i
// always comes from a validated function gene in practice.
func (s *KernelSet[T]) Get(i int) Kernel[T] { return s.kernels[i] }

// IndexOf returns the stable index of the kernel named name.
func (s *KernelSet[T]) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Kernels returns the ordered slice of kernels backing this set (the
// "call operator" of spec.md §4.1 — the vector used for wiring into
// Expressions). The returned slice shares the set's backing array and
// must not be mutated by callers.
func (s *KernelSet[T]) Kernels() []Kernel[T] { return s.kernels }

// NewSetFromNames is a convenience constructor building a KernelSet from a
// list of built-in kernel names, failing fast on the first unknown name.
func NewSetFromNames[T numeric.Scalar[T]](names ...string) (*KernelSet[T], error) {
	s := NewSet[T]()
	for _, n := range names {
		if err := s.PushBackName(n); err != nil {
			return nil, err
		}
	}
	return s, nil
}
