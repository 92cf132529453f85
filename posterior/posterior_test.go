package posterior_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hmm/builder"
	"github.com/katalvlaran/hmm/core"
	"github.com/katalvlaran/hmm/posterior"
	"github.com/katalvlaran/hmm/trellis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-7

func smallModel(t *testing.T) *core.Model {
	t.Helper()
	mdl, err := core.NewModel(
		[][]float64{{0.9, 0.1}, {0.4, 0.6}},
		[][]float64{{0.9, 0.1}, {0.2, 0.8}},
		[]float64{0.8, 0.2},
	)
	require.NoError(t, err)

	return mdl
}

// trellises runs forward+backward for seq and fails the test on error.
func trellises(t *testing.T, mdl *core.Model, seq []int) (*core.LogMatrix, *core.LogMatrix) {
	t.Helper()
	alpha, err := trellis.Forward(mdl, seq)
	require.NoError(t, err)
	beta, err := trellis.Backward(mdl, seq)
	require.NoError(t, err)

	return alpha, beta
}

// TestSingleState_SmallFixture pins gamma for O=[0,1,1] to the reference
// values.
func TestSingleState_SmallFixture(t *testing.T) {
	mdl := smallModel(t)
	alpha, beta := trellises(t, mdl, []int{0, 1, 1})

	gamma, err := posterior.SingleState(alpha, beta)
	require.NoError(t, err)

	want := [][]float64{
		{0.79978135, 0.20021865},
		{0.22036545, 0.77963455},
		{0.17663595, 0.82336405},
	}
	for ti := range want {
		for i := range want[ti] {
			assert.InDelta(t, want[ti][i], math.Exp(gamma.At(ti, i)), eps, "gamma[%d][%d]", ti, i)
		}
	}
}

// TestDoubleState_SmallFixture pins the t=1 slice of xi for O=[0,1,1].
func TestDoubleState_SmallFixture(t *testing.T) {
	mdl := smallModel(t)
	seq := []int{0, 1, 1}
	alpha, beta := trellises(t, mdl, seq)

	xi, err := posterior.DoubleState(mdl, alpha, beta, seq)
	require.NoError(t, err)
	require.Equal(t, 2, xi.Steps())

	want := [][]float64{
		{0.11666406, 0.10370139},
		{0.05997189, 0.71966266},
	}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], math.Exp(xi.At(1, i, j)), eps, "xi[1][%d][%d]", i, j)
		}
	}
}

// TestPosteriors_NormalizeToOne checks that every exp(gamma) row and every
// exp(xi) slice sums to 1 on random models and sequences.
func TestPosteriors_NormalizeToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for trial := 0; trial < 20; trial++ {
		mdl, err := builder.RandomModel(2+rng.Intn(4), 2+rng.Intn(3), rng)
		require.NoError(t, err)

		seq := make([]int, 2+rng.Intn(30))
		for i := range seq {
			seq[i] = rng.Intn(mdl.NSymbols())
		}
		alpha, beta := trellises(t, mdl, seq)

		gamma, err := posterior.SingleState(alpha, beta)
		require.NoError(t, err)
		for ti := 0; ti < gamma.Rows(); ti++ {
			var sum float64
			for i := 0; i < gamma.Cols(); i++ {
				sum += math.Exp(gamma.At(ti, i))
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "gamma row %d must be a distribution", ti)
		}

		xi, err := posterior.DoubleState(mdl, alpha, beta, seq)
		require.NoError(t, err)
		for ti := 0; ti < xi.Steps(); ti++ {
			var sum float64
			for _, v := range xi.Slice(ti) {
				sum += math.Exp(v)
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "xi slice %d must be a joint distribution", ti)
		}
	}
}

// TestDoubleState_MarginalizesToGamma checks Σ_j exp(xi[t][i][j]) == exp(gamma[t][i]).
func TestDoubleState_MarginalizesToGamma(t *testing.T) {
	mdl := smallModel(t)
	seq := []int{0, 1, 0, 0, 1, 1}
	alpha, beta := trellises(t, mdl, seq)

	gamma, err := posterior.SingleState(alpha, beta)
	require.NoError(t, err)
	xi, err := posterior.DoubleState(mdl, alpha, beta, seq)
	require.NoError(t, err)

	for ti := 0; ti < xi.Steps(); ti++ {
		for i := 0; i < mdl.NStates(); i++ {
			var marginal float64
			for j := 0; j < mdl.NStates(); j++ {
				marginal += math.Exp(xi.At(ti, i, j))
			}
			assert.InDelta(t, math.Exp(gamma.At(ti, i)), marginal, 1e-10,
				"xi must marginalize to gamma at (t=%d, i=%d)", ti, i)
		}
	}
}

// TestDoubleState_SingleObservation verifies the zero-slice tensor for T=1.
func TestDoubleState_SingleObservation(t *testing.T) {
	mdl := smallModel(t)
	seq := []int{0}
	alpha, beta := trellises(t, mdl, seq)

	xi, err := posterior.DoubleState(mdl, alpha, beta, seq)
	require.NoError(t, err)
	assert.Equal(t, 0, xi.Steps(), "a length-1 sequence has no transitions")
}

// TestPosteriors_ShapeValidation covers the mismatch errors.
func TestPosteriors_ShapeValidation(t *testing.T) {
	mdl := smallModel(t)
	alpha, beta := trellises(t, mdl, []int{0, 1, 1})

	_, err := posterior.SingleState(alpha, core.NewLogMatrix(2, 2))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "alpha/beta row mismatch")

	_, err = posterior.SingleState(alpha, core.NewLogMatrix(3, 3))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "alpha/beta column mismatch")

	_, err = posterior.DoubleState(mdl, alpha, beta, []int{0, 1})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "trellis/sequence length mismatch")

	_, err = posterior.DoubleState(mdl, alpha, beta, nil)
	assert.ErrorIs(t, err, core.ErrEmptySequence)

	_, err = posterior.DoubleState(mdl, alpha, beta, []int{0, 1, 9})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "out-of-alphabet symbol")
}
