package expr

// computeBounds returns the per-gene [lb,ub] interval pairs for a
// chromosome of this topology over a kernel set of size nKernels, in
// chromosome order: for each functional node, one function-gene bound
// pair followed by a connection-gene bound pair (for each of topo.A),
// then topo.M output-gene bound pairs.
//
// Connection genes at column col (0-based) may reach node indices
// [0, n+col*r-1] unrestricted, but levels-back further restricts the
// lower end once col >= l: a node at column col may only look back l
// columns, i.e. lb = max(0, n+(col-l)*r). Output genes are bounded by
// the identical formula evaluated at the virtual column col=c (one
// past the last functional column): this is what the worked bounds
// reproduce, not the simpler "[0, n+F-1]" one might expect from
// output genes having no column of their own — levels-back still
// constrains how far back the output stage may reach.
func computeBounds(topo Topology, nKernels int) (lb, ub []int) {
	n := topo.N
	r, c, l := topo.R, topo.C, topo.L
	length := topo.ChromosomeLen()
	lb = make([]int, length)
	ub = make([]int, length)

	colBounds := func(col int) (int, int) {
		hi := n + col*r - 1
		lo := 0
		if col >= l {
			lo = n + (col-l)*r
			if lo < 0 {
				lo = 0
			}
		}
		return lo, hi
	}

	gi := 0
	for ni := 0; ni < topo.F(); ni++ {
		col := ni / r
		lo, hi := colBounds(col)

		lb[gi], ub[gi] = 0, nKernels-1
		gi++
		for a := 0; a < topo.A; a++ {
			lb[gi], ub[gi] = lo, hi
			gi++
		}
	}

	lo, hi := colBounds(c)
	for o := 0; o < topo.M; o++ {
		lb[gi], ub[gi] = lo, hi
		gi++
	}
	return lb, ub
}

// GetLB returns the lower bound of gene i.
func (e *Expression[T]) GetLB(i int) int { return e.lb[i] }

// GetUB returns the upper bound of gene i.
func (e *Expression[T]) GetUB(i int) int { return e.ub[i] }

// LowerBounds returns a copy of the full lower-bound vector.
func (e *Expression[T]) LowerBounds() []int { return append([]int(nil), e.lb...) }

// UpperBounds returns a copy of the full upper-bound vector.
func (e *Expression[T]) UpperBounds() []int { return append([]int(nil), e.ub...) }
