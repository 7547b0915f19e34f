// Package dcgp is a Cartesian Genetic Programming engine for symbolic
// regression and differentiable program synthesis.
//
// A CGP individual is a fixed-shape DAG of indexed nodes decoded from an
// integer chromosome (package expr), evaluated polymorphically over plain
// float64 (package numeric) or truncated 2nd-order Taylor jets (package
// numeric/jet) for exact gradient/Hessian extraction. Two richer phenotypes
// build on the same chromosome layout: weighted (per-edge weights, no
// training) and ann (weights, biases, backprop, SGD).
//
// Package srproblem wraps a dataset and a genotype into a multi-objective
// fitness problem; package evolve runs the memetic evolutionary strategies
// (es4cgp, mes4cgp, gd4cgp, moes4cgp, momes4cgp) that search it, using
// package rng as their sole source of randomness.
//
// Each package is self-contained, documented in its own doc.go, and tested
// independently; this file exists only to orient a new reader.
package dcgp
