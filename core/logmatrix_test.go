package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hmm/core"
	"github.com/stretchr/testify/assert"
)

// TestLogMatrix_Basics verifies shape, LogZero initialization and the
// aliasing Row accessor.
func TestLogMatrix_Basics(t *testing.T) {
	lm := core.NewLogMatrix(3, 2)

	assert.Equal(t, 3, lm.Rows())
	assert.Equal(t, 2, lm.Cols())
	assert.True(t, math.IsInf(lm.At(2, 1), -1), "cells must start at LogZero")

	lm.Set(1, 0, -0.5)
	assert.Equal(t, -0.5, lm.At(1, 0))

	row := lm.Row(1)
	row[1] = -1.5
	assert.Equal(t, -1.5, lm.At(1, 1), "Row must alias matrix storage")
}

// TestLogTensor_Basics verifies shape, slice aliasing and the zero-step case.
func TestLogTensor_Basics(t *testing.T) {
	lt := core.NewLogTensor(2, 3)

	assert.Equal(t, 2, lt.Steps())
	assert.Equal(t, 3, lt.Dim())
	assert.True(t, math.IsInf(lt.At(1, 2, 2), -1), "cells must start at LogZero")

	lt.Set(0, 1, 2, -0.25)
	assert.Equal(t, -0.25, lt.At(0, 1, 2))
	assert.Equal(t, -0.25, lt.Slice(0)[1*3+2], "Slice must expose row-major (i,j) order")

	empty := core.NewLogTensor(0, 4)
	assert.Equal(t, 0, empty.Steps(), "a length-1 sequence has no transition slices")
}
