// Package expr implements the plain-CGP genotype/phenotype representation:
// a chromosome decoded into a directed acyclic graph over a
// kernel.KernelSet[T], evaluated polymorphically for any T satisfying
// numeric.Scalar[T].
//
// # Layout
//
// Program inputs occupy node indices 0..n-1. Functional nodes occupy
// n..n+F-1 (F = r*c), laid out column-major: functional node index ni
// (0-based, ni = globalIndex-n) sits in column ni/r, row ni%r. Each
// functional node contributes 1+a genes to the chromosome (one function
// gene in [0,|K|-1], then a connection genes); m output genes follow.
//
// # Active set
//
// call, MutateActive*, and the symbolic printer all operate on the active
// node set: the nodes reachable from some output gene by following
// connection genes backwards, restricted to each node's first
// kernel-arity connections (the rest are inert chromosome payload, never
// evaluated, never selected by MutateActiveCGene — see package doc for
// the "unused connection genes" trap spec.md design notes call out).
// Package-level design choice (spec.md §9): the active set is tracked as
// index sets into a flat node-value slice, not as heap Vertex/Edge
// objects. Call allocates that slice afresh on every evaluation; it is
// not reused across calls.
package expr
