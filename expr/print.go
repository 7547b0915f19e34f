package expr

import (
	"fmt"
	"strings"
)

// Print returns the symbolic expression string for output o, built by
// recursively expanding each active node through its kernel's Print
// callback (spec.md §4.2 operator()(Vec<String>)). names supplies the
// label for each input node in order; a nil or short names renders the
// missing inputs as x0..x(n-1).
func (e *Expression[T]) Print(o int, names []string) string {
	e.ensureActive()
	memo := make(map[int]string, len(e.active.nodes))
	inputName := func(idx int) string {
		if idx < len(names) {
			return names[idx]
		}
		return fmt.Sprintf("x%d", idx)
	}
	var render func(globalIdx int) string
	render = func(globalIdx int) string {
		if globalIdx < e.topo.N {
			return inputName(globalIdx)
		}
		ni := globalIdx - e.topo.N
		if s, ok := memo[ni]; ok {
			return s
		}
		k := e.kernels.Get(e.funcGene(ni))
		operands := make([]string, k.Arity)
		for a := 0; a < k.Arity; a++ {
			operands[a] = render(e.connGene(ni, a))
		}
		s := k.Print(operands)
		memo[ni] = s
		return s
	}
	return render(e.chromosome[e.outGeneIndex(o)])
}

// PrintAll returns the comma-joined symbolic expressions for every
// output, using names per Print.
func (e *Expression[T]) PrintAll(names []string) string {
	parts := make([]string, e.topo.M)
	for o := range parts {
		parts[o] = e.Print(o, names)
	}
	return strings.Join(parts, ", ")
}
