package logmath

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogZero is the log-domain representation of probability zero.
// math.Log(0) evaluates to the same value, so plain math.Log is a valid
// probability→log conversion everywhere in this module.
var LogZero = math.Inf(-1)

// LogAdd returns log(exp(a) + exp(b)) without leaving the log domain.
//
// The larger operand is factored out:
//
//	LogAdd(a, b) = max(a,b) + log1p(exp(-|a-b|))
//
// so the exponential argument is always ≤ 0 and never overflows.
// LogZero operands are handled exactly: LogAdd(LogZero, x) = x and
// LogAdd(LogZero, LogZero) = LogZero.
func LogAdd(a, b float64) float64 {
	// -Inf represents p=0; exp(-Inf - max) would be NaN-prone, short-circuit.
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}

	return a + math.Log1p(math.Exp(b-a))
}

// LogSum returns log(Σ exp(v_i)) over the whole vector.
//
// Implemented as max-then-sum-exp, the vector analogue of LogAdd; the result
// equals folding LogAdd pairwise from a LogZero accumulator.  An empty vector
// sums zero probability mass, hence LogZero.
func LogSum(v []float64) float64 {
	if len(v) == 0 {
		return LogZero
	}

	mx := floats.Max(v)
	if math.IsInf(mx, -1) {
		// Every entry is p=0; avoid exp(-Inf+Inf).
		return LogZero
	}

	var sum float64
	for _, x := range v {
		sum += math.Exp(x - mx)
	}

	return mx + math.Log(sum)
}
