// Package logmath provides the log-domain arithmetic primitives that every
// HMM recursion in this module is built on.
//
// 🚀 What is logmath?
//
//	Probabilities of long sequences are products of many numbers < 1 and
//	underflow float64 almost immediately.  The standard fix is to carry
//	log-probabilities and replace multiplication by addition, which in turn
//	forces "+" and "normalize" to be reimplemented as log-sum-exp:
//
//	  LogAdd(a, b) = log(exp(a) + exp(b))
//	  LogSum(v)    = log(Σ exp(v_i))
//
// ✨ Key properties:
//   - LogZero (-Inf) is the exact representation of probability 0:
//     LogAdd(LogZero, x) = x, LogAdd(LogZero, LogZero) = LogZero.
//   - Stable evaluation: the larger operand is factored out so the
//     exponential never overflows (max + log1p(exp(-|a-b|))).
//   - LogSum over an empty vector is LogZero, so folding LogAdd pairwise
//     from a LogZero accumulator and LogSum agree on every input.
//
// No scaling or per-step renormalization happens anywhere above this layer;
// trellis values legitimately drift toward LogZero as sequences grow, and
// that is exactly what keeps the algorithms exact.
//
// Complexity: LogAdd O(1), LogSum O(len(v)).
package logmath
