package trellis

import (
	"github.com/katalvlaran/hmm/core"
	"github.com/katalvlaran/hmm/logmath"
)

// Backward computes the T×N backward log-trellis beta for the sequence seq.
//
//	beta[T-1][i] = 0                                   (log of probability 1)
//	beta[t][i]   = LogSum_j( log A(i,j) + log B(j, O[t+1]) + beta[t+1][j] )
//
// beta[t][i] is the log-probability of observing the suffix O[t+1..T-1]
// given the chain is in state i at time t.  Like Forward, no normalization
// is applied.
//
// Errors: core.ErrEmptySequence, core.ErrDimensionMismatch (symbol ≥ M).
func Backward(mdl *core.Model, seq []int) (*core.LogMatrix, error) {
	if err := mdl.CheckSequence(seq); err != nil {
		return nil, err
	}

	steps, n := len(seq), mdl.NStates()
	beta := core.NewLogMatrix(steps, n)

	last := beta.Row(steps - 1)
	for i := 0; i < n; i++ {
		last[i] = 0 // suffix past the end is observed with certainty
	}

	terms := make([]float64, n)
	for t := steps - 2; t >= 0; t-- {
		next, cur := beta.Row(t+1), beta.Row(t)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				terms[j] = mdl.LogA(i, j) + mdl.LogB(j, seq[t+1]) + next[j]
			}
			cur[i] = logmath.LogSum(terms)
		}
	}

	return beta, nil
}
