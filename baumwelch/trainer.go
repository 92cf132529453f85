package baumwelch

import (
	"math"
	"sync"

	"github.com/schollz/progressbar"
	"github.com/sourcegraph/conc"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hmm/core"
	"github.com/katalvlaran/hmm/logmath"
	"github.com/katalvlaran/hmm/posterior"
	"github.com/katalvlaran/hmm/trellis"
)

// Train re-estimates mdl in place over the batch seqs, running exactly
// iterations EM rounds.  It returns the total batch log-likelihood observed
// by the E-step of each round (length == iterations), so callers can inspect
// the EM ascent or bolt on their own stopping rule.
//
// The whole batch is validated before the first round: ErrEmptyBatch,
// ErrBadIterations, and per-sequence core.ErrEmptySequence /
// core.ErrDimensionMismatch.  opts may be nil for DefaultOptions.
func Train(mdl *core.Model, seqs [][]int, iterations int, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	if iterations < 0 {
		return nil, ErrBadIterations
	}
	if len(seqs) == 0 {
		return nil, ErrEmptyBatch
	}
	for _, seq := range seqs {
		if err := mdl.CheckSequence(seq); err != nil {
			return nil, err
		}
	}

	var bar *progressbar.ProgressBar
	if o.Progress {
		bar = progressbar.New(iterations)
	}

	history := make([]float64, 0, iterations)
	for it := 0; it < iterations; it++ {
		counts, err := estep(mdl, seqs, o.Workers)
		if err != nil {
			return history, err
		}
		if err := counts.reestimate(mdl, len(seqs)); err != nil {
			return history, err
		}

		history = append(history, counts.ll)
		if o.Logger != nil {
			o.Logger.Info("baum-welch iteration", "iteration", it+1, "loglik", counts.ll)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return history, nil
}

// accum holds the expected-count statistics of one E-step in probability
// space, plus the total batch log-likelihood at the pre-update parameters.
type accum struct {
	n, m  int
	piNum []float64 // n:   Σ exp(gamma[0][i])
	aNum  []float64 // n×n: Σ_t exp(xi[t][i][j])
	aDen  []float64 // n:   Σ_{t<T-1} exp(gamma[t][i])
	bNum  []float64 // n×m: Σ_{t: O_t=k} exp(gamma[t][i])
	bDen  []float64 // n:   Σ_t exp(gamma[t][i])
	ll    float64
}

func newAccum(n, m int) *accum {
	return &accum{
		n: n, m: m,
		piNum: make([]float64, n),
		aNum:  make([]float64, n*n),
		aDen:  make([]float64, n),
		bNum:  make([]float64, n*m),
		bDen:  make([]float64, n),
	}
}

// add merges another accumulator into the receiver by plain summation.
func (ac *accum) add(other *accum) {
	floats.Add(ac.piNum, other.piNum)
	floats.Add(ac.aNum, other.aNum)
	floats.Add(ac.aDen, other.aDen)
	floats.Add(ac.bNum, other.bNum)
	floats.Add(ac.bDen, other.bDen)
	ac.ll += other.ll
}

// estep gathers expected counts over the whole batch.  With workers == 1 the
// batch is processed in order into a single accumulator; otherwise sequences
// fan out over a bounded pool and private accumulators are merged under a
// mutex, never with concurrent unsynchronized writes to a shared cell.
func estep(mdl *core.Model, seqs [][]int, workers int) (*accum, error) {
	total := newAccum(mdl.NStates(), mdl.NSymbols())

	if workers == 1 {
		for _, seq := range seqs {
			if err := accumulateSequence(mdl, seq, total); err != nil {
				return nil, err
			}
		}

		return total, nil
	}

	var (
		wg       conc.WaitGroup
		mergeMu  sync.Mutex
		errMu    sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, workers)
	for _, seq := range seqs {
		seq := seq // per-iteration copy: required under the go 1.21 directive
		wg.Go(func() {
			sem <- struct{}{}
			defer func() { <-sem }()

			local := newAccum(mdl.NStates(), mdl.NSymbols())
			if err := accumulateSequence(mdl, seq, local); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()

				return
			}

			mergeMu.Lock()
			total.add(local)
			mergeMu.Unlock()
		})
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return total, nil
}

// accumulateSequence runs the full E-step for one sequence and adds its
// expected counts to ac.  The model is read-only here.
func accumulateSequence(mdl *core.Model, seq []int, ac *accum) error {
	alpha, err := trellis.Forward(mdl, seq)
	if err != nil {
		return err
	}
	beta, err := trellis.Backward(mdl, seq)
	if err != nil {
		return err
	}
	gamma, err := posterior.SingleState(alpha, beta)
	if err != nil {
		return err
	}
	xi, err := posterior.DoubleState(mdl, alpha, beta, seq)
	if err != nil {
		return err
	}

	steps, n := len(seq), ac.n

	for i := 0; i < n; i++ {
		ac.piNum[i] += math.Exp(gamma.At(0, i))
	}

	for t := 0; t < steps; t++ {
		row := gamma.Row(t)
		for i := 0; i < n; i++ {
			p := math.Exp(row[i])
			ac.bNum[i*ac.m+seq[t]] += p
			ac.bDen[i] += p
			// The A denominator excludes the final step, matching xi's range.
			if t < steps-1 {
				ac.aDen[i] += p
			}
		}
	}

	for t := 0; t < xi.Steps(); t++ {
		for idx, v := range xi.Slice(t) {
			ac.aNum[idx] += math.Exp(v)
		}
	}

	ac.ll += logmath.LogSum(alpha.Row(steps - 1))

	return nil
}

// reestimate performs the M-step: normalize the accumulated counts into new
// stochastic parameters and overwrite the model.  A state with zero expected
// occupancy contributes no evidence, so its previous row is kept instead of
// dividing by zero.
func (ac *accum) reestimate(mdl *core.Model, batch int) error {
	a := make([][]float64, ac.n)
	b := make([][]float64, ac.n)
	pi := make([]float64, ac.n)

	for i := 0; i < ac.n; i++ {
		arow := make([]float64, ac.n)
		if ac.aDen[i] > 0 {
			copy(arow, ac.aNum[i*ac.n:(i+1)*ac.n])
			floats.Scale(1/ac.aDen[i], arow)
		} else {
			for j := range arow {
				arow[j] = mdl.A(i, j)
			}
		}
		a[i] = arow

		brow := make([]float64, ac.m)
		if ac.bDen[i] > 0 {
			copy(brow, ac.bNum[i*ac.m:(i+1)*ac.m])
			floats.Scale(1/ac.bDen[i], brow)
		} else {
			for k := range brow {
				brow[k] = mdl.B(i, k)
			}
		}
		b[i] = brow

		pi[i] = ac.piNum[i] / float64(batch)
	}

	return mdl.SetParams(a, b, pi)
}
