// Package posterior combines forward and backward trellises into per-state
// (gamma) and per-transition (xi) posterior probabilities.
//
//	gamma[t][i]   = P(state_t = i | O, model)
//	xi[t][i][j]   = P(state_t = i, state_t+1 = j | O, model)
//
// Both are returned in log space:
//
//	gamma[t][i] = alpha[t][i] + beta[t][i] − LogSum_j(alpha[t][j] + beta[t][j])
//	xi[t][i][j] = alpha[t][i] + logA(i,j) + logB(j, O[t+1]) + beta[t+1][j] − Z
//
// where Z is the LogSum over the full N² slice, which equals the total
// sequence evidence, so exponentiating any gamma row or any xi time slice
// yields a distribution summing to 1.
//
// SingleState and DoubleState are pure functions with no side effects: the
// Baum-Welch trainer consumes them per sequence per iteration, and they are
// equally queryable on their own (state-occupancy smoothing).
//
// Complexity: SingleState O(T·N), DoubleState O(T·N²).
package posterior
