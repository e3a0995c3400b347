package rootfind

import "math"

// Solve finds x ≥ 0 with f(x) = 0.
//
// Algorithm Outline:
//  1. Evaluate f(0). An exact zero (or |f(0)| below AbsTolerance) returns 0.
//  2. Probe outward: b = InitialStep, then b *= GrowthFactor, until sign(f(b))
//     differs from sign(f(0)) or MaxBracket probes elapse.
//  3. Refine [a, b] by bisection; whenever the secant point through (a,f(a))
//     and (b,f(b)) lies strictly inside the bracket it is preferred, which
//     gives superlinear convergence on smooth objectives.
//  4. Stop when b−a < AbsTolerance, f hits an exact zero, or MaxIterations
//     steps elapse.
//
// Contracts:
//   - f must be non-nil; opts must pass validation (see Options).
//   - f is treated as a black box: no continuity assumption is required for
//     termination, only for meaningfulness of the answer.
//
// Best-effort semantics: on ErrNoBracket the last probe is returned, on
// ErrNotConverged the current bracket midpoint is returned. Both errors are
// advisory — the returned x is the best iterate available, never NaN.
//
// Complexity: O(MaxBracket + MaxIterations) evaluations of f.
func Solve(f Func, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if err := opts.validate(); err != nil {
		return 0, err
	}

	// Stage 1: origin.
	fa := f(0)
	if fa == 0 || math.Abs(fa) < opts.AbsTolerance {
		return 0, nil
	}
	if math.IsNaN(fa) {
		return 0, ErrNotConverged
	}

	// Stage 2: outward bracketing.
	var (
		a  = 0.0
		b  = opts.InitialStep
		fb float64
	)
	bracketed := false
	for i := 0; i < opts.MaxBracket; i++ {
		fb = f(b)
		if math.IsNaN(fb) {
			// A hostile objective: hand back the last finite abscissa.
			return a, ErrNotConverged
		}
		if fb == 0 {
			return b, nil
		}
		if (fa > 0) != (fb > 0) {
			bracketed = true
			break
		}
		a, fa = b, fb
		b *= opts.GrowthFactor
	}
	if !bracketed {
		// a is the last probe actually evaluated; b never was.
		return a, ErrNoBracket
	}

	// Stage 3: bisection with secant acceleration inside [a, b].
	// Secant steps run on odd iterations only, so the bracket is guaranteed
	// to halve at least every second step and cannot stall at an endpoint.
	for i := 0; i < opts.MaxIterations; i++ {
		if b-a < opts.AbsTolerance {
			return 0.5 * (a + b), nil
		}
		x := 0.5 * (a + b)
		if denom := fb - fa; i%2 == 1 && denom != 0 {
			s := b - fb*(b-a)/denom
			if s > a && s < b {
				x = s
			}
		}
		fx := f(x)
		if math.IsNaN(fx) {
			return 0.5 * (a + b), ErrNotConverged
		}
		if fx == 0 {
			return x, nil
		}
		if (fx > 0) == (fa > 0) {
			a, fa = x, fx
		} else {
			b, fb = x, fx
		}
	}

	return 0.5 * (a + b), ErrNotConverged
}
