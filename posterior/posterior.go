package posterior

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hmm/core"
	"github.com/katalvlaran/hmm/logmath"
)

// SingleState computes the gamma posterior: a T×N log-matrix whose row t,
// once exponentiated, is the distribution over hidden states at time t
// conditioned on the whole observed sequence.
//
// alpha and beta must be the forward and backward trellises of the same
// sequence under the same model; mismatched shapes return
// core.ErrDimensionMismatch.
func SingleState(alpha, beta *core.LogMatrix) (*core.LogMatrix, error) {
	if alpha.Rows() != beta.Rows() || alpha.Cols() != beta.Cols() {
		return nil, fmt.Errorf("posterior: alpha is %dx%d, beta is %dx%d: %w",
			alpha.Rows(), alpha.Cols(), beta.Rows(), beta.Cols(), core.ErrDimensionMismatch)
	}

	steps, n := alpha.Rows(), alpha.Cols()
	gamma := core.NewLogMatrix(steps, n)

	for t := 0; t < steps; t++ {
		row := gamma.Row(t)
		for i := 0; i < n; i++ {
			row[i] = alpha.At(t, i) + beta.At(t, i)
		}
		// Renormalize by the row evidence so exp(row) sums to 1.
		floats.AddConst(-logmath.LogSum(row), row)
	}

	return gamma, nil
}

// DoubleState computes the xi posterior: a (T-1)×N×N log-tensor whose time
// slice t, once exponentiated, is the joint distribution over the transition
// taken between times t and t+1 conditioned on the whole observed sequence.
//
//	xi[t][i][j] = alpha[t][i] + logA(i,j) + logB(j, O[t+1]) + beta[t+1][j] − Z
//
// with Z the LogSum over all N² entries of the slice (the total sequence
// evidence).  A length-1 sequence yields a tensor with zero slices.
//
// Errors: core.ErrDimensionMismatch when the trellises disagree with each
// other, with the model's N, or with len(seq); sequence symbols are
// re-validated via mdl.CheckSequence.
func DoubleState(mdl *core.Model, alpha, beta *core.LogMatrix, seq []int) (*core.LogTensor, error) {
	if err := mdl.CheckSequence(seq); err != nil {
		return nil, err
	}
	n := mdl.NStates()
	if alpha.Rows() != len(seq) || alpha.Cols() != n {
		return nil, fmt.Errorf("posterior: alpha is %dx%d, want %dx%d: %w",
			alpha.Rows(), alpha.Cols(), len(seq), n, core.ErrDimensionMismatch)
	}
	if beta.Rows() != len(seq) || beta.Cols() != n {
		return nil, fmt.Errorf("posterior: beta is %dx%d, want %dx%d: %w",
			beta.Rows(), beta.Cols(), len(seq), n, core.ErrDimensionMismatch)
	}

	steps := len(seq) - 1
	xi := core.NewLogTensor(steps, n)

	for t := 0; t < steps; t++ {
		slice := xi.Slice(t)
		for i := 0; i < n; i++ {
			ai := alpha.At(t, i)
			for j := 0; j < n; j++ {
				slice[i*n+j] = ai + mdl.LogA(i, j) + mdl.LogB(j, seq[t+1]) + beta.At(t+1, j)
			}
		}
		floats.AddConst(-logmath.LogSum(slice), slice)
	}

	return xi, nil
}
