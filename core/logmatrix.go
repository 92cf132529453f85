package core

import "github.com/katalvlaran/hmm/logmath"

// LogMatrix is a dense rows×cols table of log-probabilities backed by one
// contiguous row-major slice: the storage shape of every trellis (alpha,
// beta, delta) and of the gamma posterior.  Cells start at LogZero
// (probability 0) so an unwritten cell never masquerades as certainty.
//
// Indices are the owning algorithm's responsibility; out-of-range access
// panics like any slice access (programmer error, not a runtime condition).
type LogMatrix struct {
	rows, cols int
	data       []float64
}

// NewLogMatrix allocates a rows×cols matrix with every cell at LogZero.
// Complexity: O(rows·cols) time and memory.
func NewLogMatrix(rows, cols int) *LogMatrix {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = logmath.LogZero
	}

	return &LogMatrix{rows: rows, cols: cols, data: data}
}

// Rows returns the number of rows (time steps for a trellis).
func (lm *LogMatrix) Rows() int { return lm.rows }

// Cols returns the number of columns (states for a trellis).
func (lm *LogMatrix) Cols() int { return lm.cols }

// At returns the cell (r, c).
func (lm *LogMatrix) At(r, c int) float64 { return lm.data[r*lm.cols+c] }

// Set writes the cell (r, c).
func (lm *LogMatrix) Set(r, c int, v float64) { lm.data[r*lm.cols+c] = v }

// Row returns the backing slice of row r.  The slice aliases the matrix:
// writes through it are writes to the matrix.  Used by the recursions to
// avoid per-cell indexing in inner loops.
func (lm *LogMatrix) Row(r int) []float64 { return lm.data[r*lm.cols : (r+1)*lm.cols] }

// LogTensor is a dense steps×n×n stack of log-probability slices backed by
// one contiguous slice: the storage shape of the xi posterior, one n×n
// joint-transition table per time step.
type LogTensor struct {
	steps, n int
	data     []float64
}

// NewLogTensor allocates a steps×n×n tensor with every cell at LogZero.
// steps may be zero (a length-1 sequence has no transitions).
func NewLogTensor(steps, n int) *LogTensor {
	data := make([]float64, steps*n*n)
	for i := range data {
		data[i] = logmath.LogZero
	}

	return &LogTensor{steps: steps, n: n, data: data}
}

// Steps returns the number of time slices.
func (lt *LogTensor) Steps() int { return lt.steps }

// Dim returns n, the per-slice side length.
func (lt *LogTensor) Dim() int { return lt.n }

// At returns the cell (t, i, j).
func (lt *LogTensor) At(t, i, j int) float64 { return lt.data[(t*lt.n+i)*lt.n+j] }

// Set writes the cell (t, i, j).
func (lt *LogTensor) Set(t, i, j int, v float64) { lt.data[(t*lt.n+i)*lt.n+j] = v }

// Slice returns the backing n·n slice of time step t in row-major (i, j)
// order.  Like LogMatrix.Row, the slice aliases tensor storage.
func (lt *LogTensor) Slice(t int) []float64 { return lt.data[t*lt.n*lt.n : (t+1)*lt.n*lt.n] }
