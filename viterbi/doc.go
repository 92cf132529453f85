// Package viterbi recovers the single most probable hidden-state path of a
// discrete-emission HMM: the max-product counterpart of the sum-product
// forward recursion (and not derivable from it).
//
//	delta[t][j] = best log-probability of any length-(t+1) state path ending
//	              in state j that explains O[0..t]
//	psi[t][j]   = the predecessor state achieving that best path
//
// Recurrence:
//
//	delta[0][i] = log π(i) + log B(i, O[0])
//	delta[t][j] = max_i( delta[t-1][i] + log A(i,j) ) + log B(j, O[t])
//
// Tie-break: when several predecessors achieve the same maximum, the lowest
// state index wins (a strict ">" scan from index 0).  This makes decoded
// paths deterministic and reproducible across runs.
//
// Termination takes the argmax over the final delta row and backtraces psi
// down to t=0; the result is (best log-probability, state sequence).
//
// Complexity: O(T·N²) time, O(T·N) memory.
package viterbi
