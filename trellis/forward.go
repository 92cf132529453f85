package trellis

import (
	"github.com/katalvlaran/hmm/core"
	"github.com/katalvlaran/hmm/logmath"
)

// Forward computes the T×N forward log-trellis alpha for the sequence seq.
//
//	alpha[0][i] = log π(i) + log B(i, O[0])
//	alpha[t][j] = LogSum_i( alpha[t-1][i] + log A(i,j) ) + log B(j, O[t])
//
// alpha[t][j] is the log-probability of observing the prefix O[0..t] AND
// being in state j at time t.  No normalization is applied.
//
// Errors: core.ErrEmptySequence, core.ErrDimensionMismatch (symbol ≥ M),
// both detected before the recursion begins.
func Forward(mdl *core.Model, seq []int) (*core.LogMatrix, error) {
	if err := mdl.CheckSequence(seq); err != nil {
		return nil, err
	}

	steps, n := len(seq), mdl.NStates()
	alpha := core.NewLogMatrix(steps, n)

	first := alpha.Row(0)
	for i := 0; i < n; i++ {
		first[i] = mdl.LogPi(i) + mdl.LogB(i, seq[0])
	}

	// One scratch vector reused across (t, j); each worker calling Forward
	// concurrently owns its own trellis and scratch.
	terms := make([]float64, n)
	for t := 1; t < steps; t++ {
		prev, cur := alpha.Row(t-1), alpha.Row(t)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				terms[i] = prev[i] + mdl.LogA(i, j)
			}
			cur[j] = logmath.LogSum(terms) + mdl.LogB(j, seq[t])
		}
	}

	return alpha, nil
}

// EmissionEstimate returns the total log-likelihood of the sequence under
// the model: LogSum_i alpha[T-1][i].  Exponentiating the result yields the
// plain probability P(O | model) in [0, 1].
func EmissionEstimate(mdl *core.Model, seq []int) (float64, error) {
	alpha, err := Forward(mdl, seq)
	if err != nil {
		return 0, err
	}

	return logmath.LogSum(alpha.Row(alpha.Rows() - 1)), nil
}
