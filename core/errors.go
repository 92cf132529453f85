// Package core: sentinel error set.
// All algorithm packages return these sentinels for input-validation failures
// and tests match them via errors.Is.  Wrapping with fmt.Errorf("ctx: %w", ErrX)
// is allowed only to add context; callers still branch with errors.Is.
// Panics are reserved for programmer errors (out-of-range indexing of a
// LogMatrix/LogTensor the caller itself allocated).

package core

import "errors"

var (
	// ErrDimensionMismatch indicates matrix/vector shapes inconsistent with
	// each other or with the model's N/M, including emission sequences that
	// reference a symbol ≥ M.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrEmptySequence indicates a zero-length emission sequence was passed
	// to an algorithm that requires at least one observation.
	ErrEmptySequence = errors.New("core: empty emission sequence")

	// ErrDegenerateModel indicates a row of A, B or π with non-positive total
	// mass.  Such a model assigns -Inf log-likelihood to every path, so it is
	// rejected up front instead of silently propagating NaN.
	ErrDegenerateModel = errors.New("core: degenerate model row")
)
