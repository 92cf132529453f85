package viterbi

import (
	"github.com/katalvlaran/hmm/core"
)

// Decode returns the log-probability of the single most probable hidden-state
// path explaining seq, together with the path itself (length T, state
// indices).  Probability ties are broken toward the lowest state index.
//
// Errors: core.ErrEmptySequence for a zero-length sequence (an empty path is
// never produced silently), core.ErrDimensionMismatch for symbols ≥ M; both
// detected before the recursion begins.
func Decode(mdl *core.Model, seq []int) (float64, []int, error) {
	if err := mdl.CheckSequence(seq); err != nil {
		return 0, nil, err
	}

	steps, n := len(seq), mdl.NStates()
	delta := core.NewLogMatrix(steps, n)
	// psi[t*n+j] = best predecessor of state j at time t; row 0 is unused.
	psi := make([]int, steps*n)

	first := delta.Row(0)
	for i := 0; i < n; i++ {
		first[i] = mdl.LogPi(i) + mdl.LogB(i, seq[0])
	}

	for t := 1; t < steps; t++ {
		prev, cur := delta.Row(t-1), delta.Row(t)
		for j := 0; j < n; j++ {
			bestI, bestV := 0, prev[0]+mdl.LogA(0, j)
			for i := 1; i < n; i++ {
				// Strict ">" keeps the lowest index on ties.
				if v := prev[i] + mdl.LogA(i, j); v > bestV {
					bestI, bestV = i, v
				}
			}
			cur[j] = bestV + mdl.LogB(j, seq[t])
			psi[t*n+j] = bestI
		}
	}

	// Best final state, lowest index on ties.
	last := delta.Row(steps - 1)
	best := 0
	for i := 1; i < n; i++ {
		if last[i] > last[best] {
			best = i
		}
	}

	path := make([]int, steps)
	path[steps-1] = best
	for t := steps - 1; t > 0; t-- {
		path[t-1] = psi[t*n+path[t]]
	}

	return last[best], path, nil
}
