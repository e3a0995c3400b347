package sweep

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/katalvlaran/optiq/pam"
)

// Run executes the sweep described by cfg under the given noise model.
//
// Algorithm Outline:
//  1. Build the level-set template: the canonical grid, or one optimizer run
//     when cfg.Spacing == pam.Optimized (its diagnostics land on the Result).
//  2. Fan grid indices out to cfg.Workers goroutines. Each worker clones the
//     template, rescales the clone to its grid power via pam.AdjustPower and
//     evaluates pam.EvaluateBER — no LevelSet is ever shared between workers.
//  3. Collect points by index, so Result.Points matches cfg.Powers in order.
//
// Cancellation: ctx is consulted between grid points; a canceled context
// aborts with its error once in-flight evaluations finish.
//
// Contracts: deterministic — worker scheduling cannot affect any value in
// the Result, only wall-clock time.
//
// Errors: ErrNoPowers, ErrNilModel, fatal pam errors from template
// construction, and per-point pam errors wrapped with the offending power.
//
// Complexity: O(len(Powers)/Workers) BER evaluations of O(M) tails each.
func Run(ctx context.Context, cfg Config, model pam.NoiseModel) (*Result, error) {
	if len(cfg.Powers) == 0 {
		return nil, ErrNoPowers
	}
	if model == nil {
		return nil, ErrNilModel
	}

	res := &Result{Points: make([]Point, len(cfg.Powers))}

	template, err := buildTemplate(cfg, model, res)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(cfg.Powers) {
		workers = len(cfg.Powers)
	}

	var (
		wg      sync.WaitGroup
		jobs    = make(chan int)
		mu      sync.Mutex
		firstEr error
	)
	fail := func(e error) {
		mu.Lock()
		if firstEr == nil {
			firstEr = e
		}
		mu.Unlock()
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p := cfg.Powers[i]
				ls := template.Clone()
				if _, err := pam.AdjustPower(ls, p, cfg.ExtinctionRatioDB); err != nil {
					fail(errors.Wrapf(err, "sweep: adjust at power %g", p))

					continue
				}
				ber, err := pam.EvaluateBER(ls, model)
				if err != nil {
					fail(errors.Wrapf(err, "sweep: evaluate at power %g", p))

					continue
				}
				res.Points[i] = Point{Power: p, BERTotal: ber.BERTotal, BERPerLevel: ber.BERPerLevel}
			}
		}()
	}

feed:
	for i := range cfg.Powers {
		if err := ctx.Err(); err != nil {
			fail(errors.Wrap(err, "sweep: canceled"))

			break feed
		}
		select {
		case <-ctx.Done():
			fail(errors.Wrap(ctx.Err(), "sweep: canceled"))

			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstEr != nil {
		return nil, firstEr
	}

	return res, nil
}

// buildTemplate produces the shared level-set geometry per cfg.Spacing and
// records optimizer bookkeeping on res.
func buildTemplate(cfg Config, model pam.NoiseModel, res *Result) (*pam.LevelSet, error) {
	if cfg.Spacing != pam.Optimized {
		return pam.NewEquallySpaced(cfg.Order)
	}

	opts := cfg.Optimizer
	if opts.MaxIterations == 0 && opts.AbsTolerance == 0 && opts.MaxBERRelError == 0 {
		opts = pam.DefaultOptions()
	}
	ores, err := pam.Optimize(cfg.Order, cfg.BERTarget, cfg.ExtinctionRatioDB, model, opts)
	if err != nil {
		return nil, errors.Wrap(err, "sweep: optimizing template")
	}
	res.Iterations = ores.Iterations
	res.Diagnostics = ores.Diagnostics

	return ores.LevelSet, nil
}
