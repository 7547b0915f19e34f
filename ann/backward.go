package ann

import "math"

// activationDeriv maps an activation kernel name to its closed-form
// derivative d(act)/d(pre-activation), expressed in terms of the
// pre-activation scalar s and the already-computed post-activation value
// v = act(s) (cheaper than recomputing exp/tanh from scratch). Mirrors
// the restricted set in kernel.AnnActivationNames plus the "linear"
// output-layer default.
var activationDeriv = map[string]func(s, v float64) float64{
	"tanh": func(_, v float64) float64 { return 1 - v*v },
	"sig":  func(_, v float64) float64 { return v * (1 - v) },
	"ReLu": func(s, _ float64) float64 {
		if s > 0 {
			return 1
		}
		return 0
	},
	// ELU(s) = s for s>0, exp(s)-1 otherwise, so exp(s) = v+1 on the
	// negative branch and its derivative is exp(s) itself.
	"ELU": func(s, v float64) float64 {
		if s > 0 {
			return 1
		}
		return v + 1
	},
	"ISRU": func(s, _ float64) float64 { return math.Pow(1+s*s, -1.5) },
	"linear": func(_, _ float64) float64 {
		return 1
	},
}

// Mse evaluates the mean-squared error of a single (point, label) pair
// and its exact gradient with respect to every weight and bias, by
// reverse-mode backpropagation over the active subgraph (spec.md §4.3
// "Backpropagation algorithm"). label must have length topo.M.
func (a *ExpressionANN[T]) Mse(point, label []T) (loss float64, gradW, gradB []T, err error) {
	topo := a.Topology()
	if len(label) != topo.M {
		var zeroW, zeroB []T
		return 0, zeroW, zeroB, ErrShapeMismatch
	}
	tr, cerr := a.forward(point)
	if cerr != nil {
		return 0, nil, nil, cerr
	}

	m := float64(topo.M)
	var sumSq float64
	for o := 0; o < topo.M; o++ {
		d := tr.out[o].Float64() - label[o].Float64()
		sumSq += d * d
	}
	loss = sumSq / m

	f := topo.F()
	gradW = make([]T, len(a.weights))
	gradB = make([]T, len(a.biases))
	zero := a.template.Lift(0)
	for i := range gradW {
		gradW[i] = zero
	}
	for i := range gradB {
		gradB[i] = zero
	}

	// dLdv accumulates dLoss/dValue for every node/input slot touched
	// during the reverse pass (only active nodes and their sources ever
	// receive a nonzero contribution).
	dLdv := make([]T, topo.N+f)
	for i := range dLdv {
		dLdv[i] = zero
	}

	outDeriv := activationDeriv[a.outputKernel.Name]
	for o := 0; o < topo.M; o++ {
		g := a.OutputGene(o)
		preOut := tr.vals[g].Float64() // output kernel's "pre-activation" is the node value itself
		dOut := (2.0 / m) * (tr.out[o].Float64() - label[o].Float64())
		localDeriv := outDeriv(preOut, tr.out[o].Float64())
		dLdv[g] = dLdv[g].Add(a.template.Lift(dOut * localDeriv))
	}

	// Reverse topological order: activeNodesAll() returns ascending
	// (forward-safe) order, so iterate it backwards.
	for i := len(tr.nodes) - 1; i >= 0; i-- {
		node := tr.nodes[i]
		ni := a.LocalIndex(node)
		kname := a.NodeKernel(node).Name
		deriv := activationDeriv[kname](tr.preAct[ni].Float64(), tr.vals[node].Float64())

		dLds := dLdv[node].Mul(a.template.Lift(deriv))
		gradB[ni] = gradB[ni].Add(dLds)

		for k := 0; k < topo.A; k++ {
			src := a.NodeSource(node, k)
			w := a.weights[ni*topo.A+k]
			gradW[ni*topo.A+k] = gradW[ni*topo.A+k].Add(dLds.Mul(tr.vals[src]))
			dLdv[src] = dLdv[src].Add(dLds.Mul(w))
		}
	}

	return loss, gradW, gradB, nil
}

// MseBatch averages Mse's loss and gradients over a batch of points and
// labels.
func (a *ExpressionANN[T]) MseBatch(points, labels [][]T) (loss float64, gradW, gradB []T, err error) {
	if len(points) != len(labels) || len(points) == 0 {
		return 0, nil, nil, ErrShapeMismatch
	}
	zero := a.template.Lift(0)
	gradW = make([]T, len(a.weights))
	gradB = make([]T, len(a.biases))
	for i := range gradW {
		gradW[i] = zero
	}
	for i := range gradB {
		gradB[i] = zero
	}

	var totalLoss float64
	for i := range points {
		l, gw, gb, e := a.Mse(points[i], labels[i])
		if e != nil {
			return 0, nil, nil, e
		}
		totalLoss += l
		for j := range gradW {
			gradW[j] = gradW[j].Add(gw[j])
		}
		for j := range gradB {
			gradB[j] = gradB[j].Add(gb[j])
		}
	}

	inv := a.template.Lift(1 / float64(len(points)))
	for j := range gradW {
		gradW[j] = gradW[j].Mul(inv)
	}
	for j := range gradB {
		gradB[j] = gradB[j].Mul(inv)
	}
	return totalLoss / float64(len(points)), gradW, gradB, nil
}
