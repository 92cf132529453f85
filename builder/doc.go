// SPDX-License-Identifier: MIT
// Package builder generates random stochastic vectors, random models and
// sampled emission sequences: the fixture collaborator of this module.
//
// The inference and training core never calls this package internally;
// randomness is an injected capability.  Every function takes an explicit
// *rand.Rand so tests and examples can freeze seeds and stay deterministic:
// same seed and call order ⇒ identical vectors, models and samples.
//
// Typical uses:
//   - RandomModel(n, m, rng) as a Baum-Welch starting point,
//   - Sample(mdl, length, rng) to draw a (states, symbols) pair from a known
//     model and check that training recovers it,
//   - RandomVector(n, rng) wherever a normalized probability vector is
//     needed (log-sum-exp round-trip tests).
package builder
