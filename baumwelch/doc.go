// Package baumwelch implements unsupervised HMM parameter learning:
// expectation-maximization over one or more observed emission sequences
// (the Baum-Welch algorithm).
//
// 🚀 How one iteration works:
//
//  1. E-step — for every sequence in the batch, run forward, backward and
//     the posterior engine to obtain gamma and xi for that sequence.
//  2. Accumulate expected counts across the whole batch:
//     π numerator   Σ exp(gamma[0][i])             per sequence
//     A numerator   Σ_t exp(xi[t][i][j])           A denominator Σ_{t<T-1} exp(gamma[t][i])
//     B numerator   Σ_{t: O_t=k} exp(gamma[t][i])  B denominator Σ_t exp(gamma[t][i])
//  3. M-step — normalize each accumulated row by its denominator and replace
//     the model's parameters in place.
//
// Train runs exactly the requested number of iterations; there is no
// convergence criterion (the returned log-likelihood history lets callers
// build one).  Sequences in a batch may have differing lengths.
//
// ✨ Concurrency:
//
//	The per-sequence E-step is embarrassingly parallel.  With
//	Options.Workers > 1 sequences fan out over a bounded worker pool;
//	each worker fills a private accumulator which is merged into the shared
//	one under a mutex.  The model is only read during the E-step and only
//	written after all workers have joined, so every forward/backward call
//	observes a single stable parameter snapshot.
//
// Known limitation: EM is local, non-convex
// optimization.  Different initializations may converge to different
// permutations of the hidden-state labels (harmless) or, occasionally, to a
// different local optimum; the trainer provides no detection or restart
// policy for this.
package baumwelch
