// Package core defines the central Model type (transition matrix A,
// emission matrix B and initial distribution π, each shadowed in log space)
// plus the dense LogMatrix / LogTensor containers shared by every algorithm
// package in this module.
//
// The Model is a single owned value passed explicitly to forward/backward,
// Viterbi, posterior and Baum-Welch code; there is no ambient or global
// parameter state.  During a Baum-Welch E-step many goroutines may read the
// same Model concurrently; mutation happens only through SetParams, which the
// trainer calls strictly between iterations.
//
// Validation contract:
//   - shapes are checked at construction (ErrDimensionMismatch),
//   - every row of A, B and π must carry positive mass (ErrDegenerateModel),
//   - row sums ≈ 1 are otherwise the caller's contract and are not
//     re-normalized here,
//   - entries that are exactly zero map to -Inf in the log shadow; -Inf is a
//     valid value, not an error, and every algorithm treats it as exact p=0.
//
// Errors:
//
//	ErrDimensionMismatch - matrix/vector shapes inconsistent, or a sequence
//	                       references a symbol outside 0..M-1.
//	ErrEmptySequence     - zero-length emission sequence.
//	ErrDegenerateModel   - a row of A, B or π does not sum to a positive value.
package core
