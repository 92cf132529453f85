package baumwelch

import (
	"errors"
	"log/slog"
)

// Sentinel errors for batch-level validation, detected before any iteration.
var (
	// ErrEmptyBatch indicates that the training batch contains no sequences.
	ErrEmptyBatch = errors.New("baumwelch: training batch is empty")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("baumwelch: iteration count must be non-negative")
)

// Options configures a training run.
//
// Fields:
//   - Workers  — number of goroutines for the per-sequence E-step.
//     1 (the default) keeps accumulation order deterministic; values > 1
//     trade bit-for-bit reproducibility of the merge order for throughput
//     (results agree within floating-point noise).
//   - Logger   — destination for one structured line per iteration
//     (iteration index, total batch log-likelihood).  nil disables logging.
//   - Progress — render a terminal progress bar across iterations.
type Options struct {
	Workers  int
	Logger   *slog.Logger
	Progress bool
}

// DefaultOptions returns the deterministic, silent configuration.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
