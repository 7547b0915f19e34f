package ann

import "github.com/dcgp-go/dcgp/expr"

// activeNodesAll returns the active functional node global indices in
// ascending (topologically safe) order, following all topo.A connection
// genes of every reachable node — unlike expr.Expression's own active-set
// cache, which follows only each node's kernel.Arity connections. ANN
// nodes always sum over the full topology arity regardless of their
// activation kernel's declared Arity (see package doc), so this package
// cannot reuse the base Expression's cached active set.
func (a *ExpressionANN[T]) activeNodesAll() []int {
	topo := a.Topology()
	n, f := topo.N, topo.F()

	isActive := make([]bool, f)
	queue := make([]int, 0, f)
	visit := func(g int) {
		if g < n {
			return
		}
		ni := g - n
		if !isActive[ni] {
			isActive[ni] = true
			queue = append(queue, ni)
		}
	}

	for o := 0; o < topo.M; o++ {
		visit(a.OutputGene(o))
	}
	for qi := 0; qi < len(queue); qi++ {
		node := queue[qi] + n
		for k := 0; k < topo.A; k++ {
			visit(a.NodeSource(node, k))
		}
	}

	nodes := make([]int, 0, len(queue))
	for ni := 0; ni < f; ni++ {
		if isActive[ni] {
			nodes = append(nodes, ni+n)
		}
	}
	return nodes
}

// trace holds the recorded state of one forward pass, indexed by the
// same node numbering as expr.Expression (n-based for vals, 0-based
// local index for preAct).
type trace[T any] struct {
	nodes  []int // active node global indices, ascending
	vals   []T   // length n+f, input values then node post-activation values
	preAct []T   // length f, local-indexed pre-activation scalar per node
	out    []T   // length m, output-layer post-activation values
}

func (a *ExpressionANN[T]) forward(xs []T) (trace[T], error) {
	topo := a.Topology()
	if len(xs) != topo.N {
		var zero trace[T]
		return zero, expr.ErrShapeMismatch
	}
	n, f := topo.N, topo.F()

	nodes := a.activeNodesAll()
	vals := make([]T, n+f)
	copy(vals, xs)
	preAct := make([]T, f)

	for _, node := range nodes {
		ni := a.LocalIndex(node)
		acc := a.biases[ni]
		for k := 0; k < topo.A; k++ {
			src := a.NodeSource(node, k)
			w := a.weights[ni*topo.A+k]
			acc = acc.Add(vals[src].Mul(w))
		}
		preAct[ni] = acc
		kern := a.NodeKernel(node)
		vals[node] = kern.Apply([]T{acc})
	}

	out := make([]T, topo.M)
	for o := 0; o < topo.M; o++ {
		out[o] = a.outputKernel.Apply([]T{vals[a.OutputGene(o)]})
	}

	return trace[T]{nodes: nodes, vals: vals, preAct: preAct, out: out}, nil
}

// Call evaluates the ANN phenotype at xs (length topo.N), returning a
// slice of length topo.M: each output is the output-layer activation
// applied to its output gene's node value.
func (a *ExpressionANN[T]) Call(xs []T) ([]T, error) {
	tr, err := a.forward(xs)
	if err != nil {
		return nil, err
	}
	return tr.out, nil
}
