package core

import (
	"fmt"
	"math"
)

// Model is a discrete-emission hidden Markov model with N hidden states and
// M emission symbols (dense integers 0..M-1).
//
// Parameters are stored twice: in probability space (row-major flat slices,
// the caller-supplied values) and as a log-space shadow recomputed on every
// parameter write.  All inference code reads only the log shadow; entries
// that are exactly zero appear there as -Inf.
//
// A Model is immutable during a single algorithm call.  SetParams performs a
// full overwrite (the Baum-Welch M-step); it must never run concurrently with
// readers.
type Model struct {
	n, m int // states, symbols

	// probability space, row-major: a is n×n, b is n×m, pi is n
	a, b, pi []float64

	// log-space shadow of the above
	logA, logB, logPi []float64
}

// NewModel constructs a Model from a transition matrix a (N×N), an emission
// matrix b (N×M) and an initial distribution pi (length N).  Inputs are
// copied; the caller keeps ownership of its slices.
//
// Errors:
//   - ErrDimensionMismatch — ragged rows, len(a) ≠ len(pi), M == 0, N == 0.
//   - ErrDegenerateModel   — any row of a or b, or pi itself, has a
//     non-positive sum.
//
// Row sums ≈ 1 are the caller's contract and are not enforced beyond
// positivity.
func NewModel(a, b [][]float64, pi []float64) (*Model, error) {
	n := len(pi)
	if n == 0 {
		return nil, fmt.Errorf("core: initial distribution is empty: %w", ErrDimensionMismatch)
	}
	if len(a) != n {
		return nil, fmt.Errorf("core: transition matrix has %d rows, want %d: %w", len(a), n, ErrDimensionMismatch)
	}
	if len(b) != n {
		return nil, fmt.Errorf("core: emission matrix has %d rows, want %d: %w", len(b), n, ErrDimensionMismatch)
	}
	m := len(b[0])
	if m == 0 {
		return nil, fmt.Errorf("core: emission matrix has no symbol columns: %w", ErrDimensionMismatch)
	}

	mdl := &Model{n: n, m: m}
	if err := mdl.ingest(a, b, pi); err != nil {
		return nil, err
	}

	return mdl, nil
}

// ingest copies and validates a full parameter set into the receiver and
// rebuilds the log shadow.  Shapes must match the receiver's n and m.
func (mdl *Model) ingest(a, b [][]float64, pi []float64) error {
	fa, err := flatten("transition", a, mdl.n, mdl.n)
	if err != nil {
		return err
	}
	fb, err := flatten("emission", b, mdl.n, mdl.m)
	if err != nil {
		return err
	}
	if len(pi) != mdl.n {
		return fmt.Errorf("core: initial distribution has length %d, want %d: %w", len(pi), mdl.n, ErrDimensionMismatch)
	}
	fpi := make([]float64, mdl.n)
	copy(fpi, pi)

	// Positive-mass validation before anything is overwritten.
	for i := 0; i < mdl.n; i++ {
		if rowSum(fa[i*mdl.n:(i+1)*mdl.n]) <= 0 {
			return fmt.Errorf("core: transition row %d: %w", i, ErrDegenerateModel)
		}
		if rowSum(fb[i*mdl.m:(i+1)*mdl.m]) <= 0 {
			return fmt.Errorf("core: emission row %d: %w", i, ErrDegenerateModel)
		}
	}
	if rowSum(fpi) <= 0 {
		return fmt.Errorf("core: initial distribution: %w", ErrDegenerateModel)
	}

	mdl.a, mdl.b, mdl.pi = fa, fb, fpi
	mdl.logA = logShadow(fa)
	mdl.logB = logShadow(fb)
	mdl.logPi = logShadow(fpi)

	return nil
}

// SetParams replaces every parameter of the model in one step, revalidating
// shapes and positive mass and rebuilding the log shadow.  Used by the
// Baum-Welch M-step; on error the model is left unchanged.
func (mdl *Model) SetParams(a, b [][]float64, pi []float64) error {
	return mdl.ingest(a, b, pi)
}

// Clone returns a deep copy sharing no storage with the receiver.
func (mdl *Model) Clone() *Model {
	cp := &Model{n: mdl.n, m: mdl.m}
	cp.a = append([]float64(nil), mdl.a...)
	cp.b = append([]float64(nil), mdl.b...)
	cp.pi = append([]float64(nil), mdl.pi...)
	cp.logA = append([]float64(nil), mdl.logA...)
	cp.logB = append([]float64(nil), mdl.logB...)
	cp.logPi = append([]float64(nil), mdl.logPi...)

	return cp
}

// NStates returns N, the number of hidden states.
func (mdl *Model) NStates() int { return mdl.n }

// NSymbols returns M, the number of emission symbols.
func (mdl *Model) NSymbols() int { return mdl.m }

// A returns the transition probability from state i to state j.
func (mdl *Model) A(i, j int) float64 { return mdl.a[i*mdl.n+j] }

// B returns the probability of emitting symbol k from state i.
func (mdl *Model) B(i, k int) float64 { return mdl.b[i*mdl.m+k] }

// Pi returns the initial probability of state i.
func (mdl *Model) Pi(i int) float64 { return mdl.pi[i] }

// LogA returns log A(i,j); exactly -Inf when A(i,j) == 0.
func (mdl *Model) LogA(i, j int) float64 { return mdl.logA[i*mdl.n+j] }

// LogB returns log B(i,k); exactly -Inf when B(i,k) == 0.
func (mdl *Model) LogB(i, k int) float64 { return mdl.logB[i*mdl.m+k] }

// LogPi returns log π(i); exactly -Inf when π(i) == 0.
func (mdl *Model) LogPi(i int) float64 { return mdl.logPi[i] }

// TransitionMatrix returns a fresh N×N copy of A in probability space.
func (mdl *Model) TransitionMatrix() [][]float64 { return unflatten(mdl.a, mdl.n, mdl.n) }

// EmissionMatrix returns a fresh N×M copy of B in probability space.
func (mdl *Model) EmissionMatrix() [][]float64 { return unflatten(mdl.b, mdl.n, mdl.m) }

// InitialDist returns a fresh copy of π in probability space.
func (mdl *Model) InitialDist() []float64 { return append([]float64(nil), mdl.pi...) }

// CheckSequence validates an emission sequence against the model alphabet.
// Every algorithm package calls this before its recursion begins.
//
// Errors:
//   - ErrEmptySequence     — len(seq) == 0.
//   - ErrDimensionMismatch — a symbol outside 0..M-1 (wrapped with position).
func (mdl *Model) CheckSequence(seq []int) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	for t, s := range seq {
		if s < 0 || s >= mdl.m {
			return fmt.Errorf("core: symbol %d at position %d outside alphabet [0,%d): %w",
				s, t, mdl.m, ErrDimensionMismatch)
		}
	}

	return nil
}

// flatten copies rows into a row-major flat slice, rejecting ragged input.
func flatten(what string, rows [][]float64, wantRows, wantCols int) ([]float64, error) {
	if len(rows) != wantRows {
		return nil, fmt.Errorf("core: %s matrix has %d rows, want %d: %w",
			what, len(rows), wantRows, ErrDimensionMismatch)
	}
	flat := make([]float64, wantRows*wantCols)
	for i, row := range rows {
		if len(row) != wantCols {
			return nil, fmt.Errorf("core: %s row %d has length %d, want %d: %w",
				what, i, len(row), wantCols, ErrDimensionMismatch)
		}
		copy(flat[i*wantCols:], row)
	}

	return flat, nil
}

// unflatten materializes row-major storage back into fresh [][]float64 rows.
func unflatten(flat []float64, nrows, ncols int) [][]float64 {
	out := make([][]float64, nrows)
	for i := range out {
		out[i] = append([]float64(nil), flat[i*ncols:(i+1)*ncols]...)
	}

	return out
}

// logShadow maps probabilities to log space; math.Log(0) is exactly -Inf.
func logShadow(p []float64) []float64 {
	lg := make([]float64, len(p))
	for i, v := range p {
		lg[i] = math.Log(v)
	}

	return lg
}

// rowSum is a plain accumulation; validation only, not a hot path.
func rowSum(row []float64) float64 {
	var s float64
	for _, v := range row {
		s += v
	}

	return s
}
