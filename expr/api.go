package expr

import "fmt"

// Chromosome returns a copy of the current integer chromosome.
func (e *Expression[T]) Chromosome() []int { return append([]int(nil), e.chromosome...) }

// Get returns gene i.
func (e *Expression[T]) Get(i int) int { return e.chromosome[i] }

// Set overwrites gene i with v, failing with ErrOutOfBounds if v lies
// outside gene i's legal interval.
func (e *Expression[T]) Set(i, v int) error {
	if v < e.lb[i] || v > e.ub[i] {
		return fmt.Errorf("expr.Set(%d,%d): %w [%d,%d]", i, v, ErrOutOfBounds, e.lb[i], e.ub[i])
	}
	e.chromosome[i] = v
	e.dirty = true
	return nil
}

// SetChromosome replaces the whole chromosome, validating length and
// per-gene bounds before committing (atomically: on any error the
// Expression's prior chromosome is left untouched).
func (e *Expression[T]) SetChromosome(c []int) error {
	if len(c) != len(e.chromosome) {
		return fmt.Errorf("expr.SetChromosome: %w: got %d want %d", ErrChromosomeLength, len(c), len(e.chromosome))
	}
	for i, v := range c {
		if v < e.lb[i] || v > e.ub[i] {
			return fmt.Errorf("expr.SetChromosome[%d]=%d: %w [%d,%d]", i, v, ErrOutOfBounds, e.lb[i], e.ub[i])
		}
	}
	copy(e.chromosome, c)
	e.dirty = true
	return nil
}
