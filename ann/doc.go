// Package ann implements ExpressionANN: a CGP expr.Expression restricted
// to unary activation kernels, extended with one scalar weight per
// incoming edge of every functional node and one scalar bias per node
// (spec.md §4.3). Unlike package expr, a functional node's fan-in is
// always the topology's full arity a (not the activation kernel's own
// Arity, which is always 1): a node's pre-activation is
// bias + sum_{k=0}^{a-1} weight_k * v_src(k), and its post-activation
// value is its kernel applied to that single scalar.
//
// Because ANN fan-in does not match the activation kernel's declared
// Arity, this package tracks its own active-node set (decode.go's
// expr.Expression traversal would stop after one connection) rather than
// reusing expr.Expression's cached one; forward.go's activeNodesAll
// walks all a connections of every reachable node.
//
// Gradients (Mse) are computed by exact reverse-mode backpropagation
// using closed-form derivatives of the restricted activation family
// (see backward.go), not by differentiating through numeric/jet — the
// jet type is reserved for srproblem's ephemeral-constant Hessians.
package ann
