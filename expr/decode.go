package expr

import "github.com/dcgp-go/dcgp/kernel"

// geneBase returns the chromosome index of node ni's function gene; its
// connection genes follow at geneBase+1..geneBase+topo.A.
func (e *Expression[T]) geneBase(ni int) int { return ni * (e.topo.A + 1) }

// outGeneIndex returns the chromosome index of output o's gene.
func (e *Expression[T]) outGeneIndex(o int) int {
	return e.topo.F()*(e.topo.A+1) + o
}

// funcGene returns the kernel-set index selected for functional node ni.
func (e *Expression[T]) funcGene(ni int) int { return e.chromosome[e.geneBase(ni)] }

// connGene returns the k-th (0-based) connection gene of functional node
// ni: the global node index it reads its k-th operand from.
func (e *Expression[T]) connGene(ni, k int) int { return e.chromosome[e.geneBase(ni)+1+k] }

// rebuildActiveSet recomputes the cached active-node/gene-index sets by
// reverse BFS from the output genes, following only the first
// kernel-arity connection genes of each visited node (spec.md §3).
func (e *Expression[T]) rebuildActiveSet() {
	n := e.topo.N
	f := e.topo.F()

	isActive := make([]bool, f)
	queue := make([]int, 0, f)

	visit := func(globalIdx int) {
		if globalIdx < n {
			return // program input, not a functional node
		}
		ni := globalIdx - n
		if !isActive[ni] {
			isActive[ni] = true
			queue = append(queue, ni)
		}
	}

	for o := 0; o < e.topo.M; o++ {
		visit(e.chromosome[e.outGeneIndex(o)])
	}
	for qi := 0; qi < len(queue); qi++ {
		ni := queue[qi]
		arity := e.kernels.Get(e.funcGene(ni)).Arity
		for k := 0; k < arity; k++ {
			visit(e.connGene(ni, k))
		}
	}

	// Ascending node order is already topologically safe: a node's
	// connection genes can only reference nodes at strictly earlier
	// columns (levels-back), and within a column, earlier or
	// equal-column nodes per the column-major bounds in bounds.go never
	// reference a later row of the same column going forward, so sorting
	// active functional node indices ascending suffices.
	nodes := make([]int, 0, len(queue))
	for ni := 0; ni < f; ni++ {
		if isActive[ni] {
			nodes = append(nodes, ni)
		}
	}

	funcGenes := make([]int, 0, len(nodes))
	connGenes := make([]int, 0, len(nodes)*e.topo.A)
	for _, ni := range nodes {
		funcGenes = append(funcGenes, e.geneBase(ni))
		arity := e.kernels.Get(e.funcGene(ni)).Arity
		for k := 0; k < arity; k++ {
			connGenes = append(connGenes, e.geneBase(ni)+1+k)
		}
	}
	outGenes := make([]int, e.topo.M)
	for o := range outGenes {
		outGenes[o] = e.outGeneIndex(o)
	}

	e.active = activeSet{
		nodes:           nodes,
		isActiveNode:    isActive,
		activeFuncGenes: funcGenes,
		activeConnGenes: connGenes,
		activeOutGenes:  outGenes,
	}
	e.dirty = false
}

func (e *Expression[T]) ensureActive() {
	if e.dirty {
		e.rebuildActiveSet()
	}
}

// ActiveNodes returns the sorted list of active functional node global
// indices (n-based) after decoding.
func (e *Expression[T]) ActiveNodes() []int {
	e.ensureActive()
	out := make([]int, len(e.active.nodes))
	for i, ni := range e.active.nodes {
		out[i] = ni + e.topo.N
	}
	return out
}

// OutputGene returns the global node/input index output o currently
// points at.
func (e *Expression[T]) OutputGene(o int) int { return e.chromosome[e.outGeneIndex(o)] }

// NodeKernel returns the kernel selected for functional node global
// index node.
func (e *Expression[T]) NodeKernel(node int) kernel.Kernel[T] {
	ni := node - e.topo.N
	return e.kernels.Get(e.funcGene(ni))
}

// NodeArity returns the arity of the kernel selected for functional node
// global index node.
func (e *Expression[T]) NodeArity(node int) int {
	ni := node - e.topo.N
	return e.kernels.Get(e.funcGene(ni)).Arity
}

// NodeKernelIndex returns the kernel-set index selected for functional
// node global index node.
func (e *Expression[T]) NodeKernelIndex(node int) int {
	ni := node - e.topo.N
	return e.funcGene(ni)
}

// NodeSource returns the global node/input index that functional node
// global index node reads as its k-th (0-based) operand.
func (e *Expression[T]) NodeSource(node, k int) int {
	ni := node - e.topo.N
	return e.connGene(ni, k)
}

// LocalIndex converts a functional node's global index into its 0-based
// functional-node index (node-topo.N), the indexing used by per-node
// weight/bias tables in ExpressionWeighted and ExpressionANN.
func (e *Expression[T]) LocalIndex(node int) int { return node - e.topo.N }

// Call evaluates the phenotype at xs, which must have length topo.N,
// returning a slice of length topo.M.
func (e *Expression[T]) Call(xs []T) ([]T, error) {
	if len(xs) != e.topo.N {
		return nil, ErrShapeMismatch
	}
	e.ensureActive()

	vals := make([]T, e.topo.N+e.topo.F())
	copy(vals, xs)

	if e.correction.Pre != nil {
		copy(vals, e.correction.Pre(xs))
	}

	operands := make([]T, e.topo.A)
	for _, ni := range e.active.nodes {
		k := e.kernels.Get(e.funcGene(ni))
		for a := 0; a < k.Arity; a++ {
			operands[a] = vals[e.connGene(ni, a)]
		}
		vals[e.topo.N+ni] = k.Apply(operands[:k.Arity])
	}

	out := make([]T, e.topo.M)
	for o := 0; o < e.topo.M; o++ {
		out[o] = vals[e.chromosome[e.outGeneIndex(o)]]
	}
	if e.correction.Post != nil {
		out = e.correction.Post(xs, out)
	}
	return out, nil
}

// CallBatch evaluates Call over each row of points, returning one output
// row per input row.
func (e *Expression[T]) CallBatch(points [][]T) ([][]T, error) {
	out := make([][]T, len(points))
	for i, p := range points {
		row, err := e.Call(p)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}
