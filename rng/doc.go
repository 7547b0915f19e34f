// Package rng centralizes deterministic random generation for the CGP engine.
//
// Goals:
//   - Determinism: same seed => identical chromosomes, mutations, and weight
//     initializations across platforms and runs.
//   - Encapsulation: a single engine type wraps math/rand; no time-based
//     sources hidden anywhere. Callers that want OS entropy must ask for it
//     explicitly via NewFromEntropy.
//   - Ownership: each Expression, each evolutionary algorithm instance, and
//     each randomised-weights call owns (or is handed) one *Engine. Engine is
//     not safe for concurrent use, matching math/rand.Rand itself.
package rng
