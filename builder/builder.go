// SPDX-License-Identifier: MIT
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hmm/core"
)

// ErrBadSize indicates a non-positive dimension passed to a generator.
var ErrBadSize = errors.New("builder: size must be positive")

// RandomVector returns a length-n probability vector: strictly positive
// entries summing to 1.  Returns nil when n <= 0 (data helper contract:
// nil on invalid input, no panic).
func RandomVector(n int, rng *rand.Rand) []float64 {
	if n <= 0 {
		return nil
	}

	v := make([]float64, n)
	for i := range v {
		// Shift away from 0 so no entry is ever exactly zero mass.
		v[i] = rng.Float64() + 1e-3
	}
	floats.Scale(1/floats.Sum(v), v)

	return v
}

// RandomModel returns a model with nStates hidden states and nSymbols
// emission symbols whose A rows, B rows and π are independent random
// probability vectors.  Deterministic under a seeded rng.
func RandomModel(nStates, nSymbols int, rng *rand.Rand) (*core.Model, error) {
	if nStates <= 0 || nSymbols <= 0 {
		return nil, fmt.Errorf("builder: %dx%d model: %w", nStates, nSymbols, ErrBadSize)
	}

	a := make([][]float64, nStates)
	b := make([][]float64, nStates)
	for i := 0; i < nStates; i++ {
		a[i] = RandomVector(nStates, rng)
		b[i] = RandomVector(nSymbols, rng)
	}

	return core.NewModel(a, b, RandomVector(nStates, rng))
}

// Sample draws one state path and its emissions from the model: the initial
// state from π, each next state from the current state's transition row, and
// each symbol from the occupied state's emission row.
//
// Returns core.ErrEmptySequence for length <= 0 — a zero-length draw has no
// meaning to the algorithms consuming it.
func Sample(mdl *core.Model, length int, rng *rand.Rand) (states, symbols []int, err error) {
	if length <= 0 {
		return nil, nil, core.ErrEmptySequence
	}

	n, m := mdl.NStates(), mdl.NSymbols()
	states = make([]int, length)
	symbols = make([]int, length)

	row := make([]float64, n)
	emit := make([]float64, m)

	for i := 0; i < n; i++ {
		row[i] = mdl.Pi(i)
	}
	states[0] = drawDiscrete(row, rng)

	for t := 0; t < length; t++ {
		if t > 0 {
			for j := 0; j < n; j++ {
				row[j] = mdl.A(states[t-1], j)
			}
			states[t] = drawDiscrete(row, rng)
		}
		for k := 0; k < m; k++ {
			emit[k] = mdl.B(states[t], k)
		}
		symbols[t] = drawDiscrete(emit, rng)
	}

	return states, symbols, nil
}

// drawDiscrete samples an index from a probability vector by inverse CDF.
// Rounding slack at the top of the CDF falls to the last index.
func drawDiscrete(pr []float64, rng *rand.Rand) int {
	u := rng.Float64()
	var cum float64
	for i, p := range pr {
		cum += p
		if u < cum {
			return i
		}
	}

	return len(pr) - 1
}
