// Package trellis implements the forward and backward recursions of a
// discrete-emission HMM and the total-sequence likelihood built on them.
//
// 🚀 What is a trellis?
//
//	A T×N table of per-time-step, per-state log-probabilities:
//
//	  alpha[t][j] = log P(O[0..t], state_t = j)        (Forward)
//	  beta[t][i]  = log P(O[t+1..T-1] | state_t = i)   (Backward)
//
//	Both collapse an exponentially-sized path space into O(T·N²) work by
//	sharing sub-computations, exactly like any other DP over a lattice.
//
// ✨ Contract:
//   - Values are intentionally unnormalized: no per-step scaling layer.
//     They shrink toward -Inf as t grows, which is the numerically safe
//     representation (see package logmath) and exactly what the Baum-Welch
//     statistics in package baumwelch expect.
//   - EmissionEstimate(O) = LogSum_i alpha[T-1][i] is the full sequence
//     log-likelihood; exponentiating it reproduces the direct probability
//     to floating-point precision.
//   - Inputs are validated before any recursion: empty sequences and
//     out-of-alphabet symbols are rejected with core sentinels.
//
// Complexity: O(T·N²) time, O(T·N) memory per trellis.
package trellis
