package expr

// mutateGene redraws chromosome[i] to a uniformly random legal value
// different from its current value when the interval has more than one
// point (spec.md §4.2 mutation contract: a mutated gene always changes).
func (e *Expression[T]) mutateGene(i int) {
	lo, hi := e.lb[i], e.ub[i]
	if lo == hi {
		return
	}
	cur := e.chromosome[i]
	v := e.eng.IntnRange(lo, hi)
	for v == cur {
		v = e.eng.IntnRange(lo, hi)
	}
	e.chromosome[i] = v
	e.dirty = true
}

// MutateRandom redraws nMut genes chosen uniformly at random from the
// entire chromosome (active or not).
func (e *Expression[T]) MutateRandom(nMut int) {
	for i := 0; i < nMut; i++ {
		e.mutateGene(e.eng.Intn(len(e.chromosome)))
	}
}

// MutateActive redraws nMut genes chosen uniformly at random from the
// currently active function, connection, and output genes.
func (e *Expression[T]) MutateActive(nMut int) {
	e.ensureActive()
	pool := e.activePool()
	if len(pool) == 0 {
		return
	}
	for i := 0; i < nMut; i++ {
		e.mutateGene(pool[e.eng.Intn(len(pool))])
		e.ensureActive()
		pool = e.activePool()
		if len(pool) == 0 {
			return
		}
	}
}

func (e *Expression[T]) activePool() []int {
	pool := make([]int, 0, len(e.active.activeFuncGenes)+len(e.active.activeConnGenes)+len(e.active.activeOutGenes))
	pool = append(pool, e.active.activeFuncGenes...)
	pool = append(pool, e.active.activeConnGenes...)
	pool = append(pool, e.active.activeOutGenes...)
	return pool
}

// MutateActiveFGene redraws nMut genes chosen from the active function
// genes only.
func (e *Expression[T]) MutateActiveFGene(nMut int) {
	e.ensureActive()
	pool := e.active.activeFuncGenes
	for i := 0; i < nMut && len(pool) > 0; i++ {
		e.mutateGene(pool[e.eng.Intn(len(pool))])
		e.ensureActive()
		pool = e.active.activeFuncGenes
	}
}

// MutateActiveCGene redraws nMut genes chosen from the active connection
// genes only (the "used" connection genes — see package doc for the
// unused-connection-genes distinction).
func (e *Expression[T]) MutateActiveCGene(nMut int) {
	e.ensureActive()
	pool := e.active.activeConnGenes
	for i := 0; i < nMut && len(pool) > 0; i++ {
		e.mutateGene(pool[e.eng.Intn(len(pool))])
		e.ensureActive()
		pool = e.active.activeConnGenes
	}
}

// MutateOGene redraws nMut output genes chosen uniformly at random among
// all m outputs.
func (e *Expression[T]) MutateOGene(nMut int) {
	for i := 0; i < nMut; i++ {
		o := e.eng.Intn(e.topo.M)
		e.mutateGene(e.outGeneIndex(o))
	}
}
