package pam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/optiq/rootfind"
)

// Optimize computes an M-ary level set whose closed-form BER under the given
// signal-dependent noise model meets berTarget, subject to the extinction
// ratio extinctionRatioDB (dB, typically negative; math.Inf(-1) selects an
// ideal zero floor).
//
// Algorithm Outline (fixed point over levels, 1-D root finds per step):
//  1. Split the target into a per-threshold single-tail budget
//     Pe = log2(M)·berTarget·M / (2(M-1)); with uniform priors and one error
//     mechanism per threshold crossing this makes the aggregate BER of the
//     converged set equal berTarget.
//  2. Anchor the floor: Levels[0] = Levels[M-1]·rex, using the previous
//     iterate's top level (rex = 10^(−|extinctionRatioDB|/10)).
//  3. Sweep k = 0..M-2 sequentially:
//     a. solve Q(δ/σ(Levels[k])) = Pe       → Thresholds[k] = Levels[k] + δ
//     b. solve Q(δ/σ(Thresholds[k]+δ)) = Pe → Levels[k+1]  = Thresholds[k] + δ
//     Step (b) is itself a fixed point: σ is evaluated at the still-unknown
//     next level. A solve that fails its own convergence criterion raises
//     DiagRootFindNotConverged and continues with the best iterate.
//  4. Repeat from 2 until the Euclidean norm of the levels change drops below
//     opts.AbsTolerance or opts.MaxIterations elapse.
//  5. Evaluate the achieved BER; a relative deviation beyond
//     opts.MaxBERRelError raises DiagBERToleranceExceeded.
//
// The returned set is receiver-referred: it lives on the scale the noise
// model is defined on. Map it to transmitter-referred amplitudes with
// AdjustPower and the inverse link gain.
//
// Contracts:
//   - m ≥ 2; berTarget ∈ (0, 1); noise non-nil and pure; opts validated.
//   - Deterministic: identical inputs yield bit-identical results.
//
// Errors (fatal): ErrInvalidOrder, ErrBadTarget, ErrNilNoise, ErrBadOptions,
// ErrNoiseDomain. Convergence shortfalls are Diagnostics, never errors.
//
// Complexity: O(MaxIterations·M) solves, each O(solver budget) σ evaluations.
func Optimize(m int, berTarget, extinctionRatioDB float64, noise NoiseModel, opts Options) (*Result, error) {
	if m < 2 {
		return nil, ErrInvalidOrder
	}
	if !(berTarget > 0 && berTarget < 1) {
		return nil, ErrBadTarget
	}
	if noise == nil {
		return nil, ErrNilNoise
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var (
		rex   = extinctionLinear(extinctionRatioDB)
		pe    = math.Log2(float64(m)) * berTarget * float64(m) / (2 * float64(m-1))
		ropts = opts.rootOptions()
		res   = &Result{}

		levels = make([]float64, m)
		thr    = make([]float64, m-1)
		prev   = make([]float64, m)
	)

	res.FinalStep = math.Inf(1)
	for it := 1; it <= opts.MaxIterations; it++ {
		res.Iterations = it
		copy(prev, levels)

		// Re-anchor the floor on the previous iterate's top level.
		levels[0] = levels[m-1] * rex

		for k := 0; k < m-1; k++ {
			// (a) threshold above level k: sigma is fixed at the known level.
			sigma, err := sigmaAt(noise, levels[k])
			if err != nil {
				return nil, err
			}
			dt, rerr := rootfind.Solve(func(d float64) float64 {
				return Q(d/sigma) - pe
			}, ropts)
			if rerr != nil {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Kind: DiagRootFindNotConverged, Iteration: it, LevelIndex: k,
					Detail: fmt.Sprintf("threshold solve: %v", rerr),
				})
			}
			thr[k] = levels[k] + dt

			// (b) level above threshold k: sigma moves with the unknown level.
			var domErr error
			dl, rerr := rootfind.Solve(func(d float64) float64 {
				s := noise.Sigma(thr[k] + d)
				if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
					domErr = ErrNoiseDomain

					return math.NaN()
				}

				return Q(d/s) - pe
			}, ropts)
			if domErr != nil {
				return nil, domErr
			}
			if rerr != nil {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Kind: DiagRootFindNotConverged, Iteration: it, LevelIndex: k,
					Detail: fmt.Sprintf("level solve: %v", rerr),
				})
			}
			levels[k+1] = thr[k] + dl
		}

		res.FinalStep = floats.Distance(levels, prev, 2)
		if opts.Trace != nil {
			fmt.Fprintf(opts.Trace, "pam: iter %2d  step=%.3e  top=%.6g\n", it, res.FinalStep, levels[m-1])
		}
		if res.FinalStep < opts.AbsTolerance {
			break
		}
	}

	ls := &LevelSet{
		M:          m,
		Levels:     levels,
		Thresholds: thr,
		Spacing:    Optimized,
	}
	res.LevelSet = ls

	ber, err := EvaluateBER(ls, noise)
	if err != nil {
		return nil, err
	}
	res.AchievedBER = ber.BERTotal
	if rel := math.Abs(ber.BERTotal-berTarget) / berTarget; rel > opts.MaxBERRelError {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind: DiagBERToleranceExceeded, Iteration: 0, LevelIndex: -1,
			Detail: fmt.Sprintf("achieved %.6g vs target %.6g (rel %.3g)", ber.BERTotal, berTarget, rel),
		})
	}

	return res, nil
}

// extinctionLinear converts an extinction ratio in dB (sign-insensitive) to
// the linear floor ratio Pmin/Pmax. −∞ dB maps to 0 (ideal zero floor).
func extinctionLinear(db float64) float64 {
	if math.IsInf(db, -1) || math.IsInf(db, 1) {
		return 0
	}

	return math.Pow(10, -math.Abs(db)/10)
}

// sigmaAt evaluates the noise model at a known level and guards its domain.
func sigmaAt(noise NoiseModel, level float64) (float64, error) {
	s := noise.Sigma(level)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, ErrNoiseDomain
	}

	return s, nil
}

// rootOptions merges the caller's RootOptions overrides onto the inner
// solver defaults.
func (o Options) rootOptions() rootfind.Options {
	ropts := rootfind.DefaultOptions()
	if o.Root.InitialStep > 0 {
		ropts.InitialStep = o.Root.InitialStep
	}
	if o.Root.MaxIterations > 0 {
		ropts.MaxIterations = o.Root.MaxIterations
	}
	if o.Root.AbsTolerance > 0 {
		ropts.AbsTolerance = o.Root.AbsTolerance
	}

	return ropts
}
