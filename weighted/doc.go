// Package weighted implements ExpressionWeighted: a CGP expr.Expression
// extended with one scalar weight per incoming edge of each functional
// node. Kernels are unrestricted (unlike package ann); a node's operands
// are simply scaled by their edge weight before the kernel is applied,
// so e.g. a "sum" node with weights (2,-1) computes 2*v0 - 1*v1 instead
// of v0+v1.
package weighted
