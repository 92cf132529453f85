// Package hmm is an inference and training engine for discrete-emission
// hidden Markov models: likelihoods, posteriors, Viterbi decoding and
// Baum-Welch parameter learning, all in log-domain arithmetic.
//
// 🚀 What is hmm?
//
//	A focused numeric library that brings together:
//		• Log-domain primitives: LogAdd / LogSum built on log-sum-exp
//		• Model core: transition matrix A, emission matrix B, initial π
//		• Forward & backward trellises: exact, unscaled log recursions
//		• Posteriors: per-state (gamma) and per-transition (xi) probabilities
//		• Viterbi: the single most probable hidden-state path
//		• Baum-Welch: EM re-estimation over batches of sequences
//
// ✨ Why choose hmm?
//
//   - Numerically safe – every recursion runs in log space, no ad-hoc scaling
//   - Deterministic – fixed tie-breaks, injectable randomness, seedable fixtures
//   - Parallel training – the per-sequence E-step fans out across workers
//   - Explicit errors – sentinel errors, matched via errors.Is, never panics
//
// Under the hood, everything is organized under small subpackages:
//
//	logmath/   — LogAdd, LogSum and the LogZero representation of p=0
//	core/      — Model (A, B, π + log shadows), dense log matrices/tensors
//	trellis/   — Forward, Backward, EmissionEstimate
//	posterior/ — SingleState (gamma), DoubleState (xi)
//	viterbi/   — Decode: best path + its log-probability
//	baumwelch/ — Train: batched EM with optional worker pool & progress
//	builder/   — random stochastic vectors/models & sequence sampling
//
// Quick sketch of the control flow:
//
//	baumwelch ─▶ posterior ─▶ {trellis.Forward, trellis.Backward} ─▶ logmath
//
//	each stage is also callable on its own for likelihood queries and decoding.
//
// Dive into the per-package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/hmm
package hmm
