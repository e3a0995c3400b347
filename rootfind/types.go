package rootfind

import "errors"

var (
	// ErrNilFunc indicates Solve was called with a nil objective.
	ErrNilFunc = errors.New("rootfind: objective function must be non-nil")
	// ErrBadOptions indicates a non-positive step, factor, tolerance or budget.
	ErrBadOptions = errors.New("rootfind: options must hold positive step, growth > 1, tolerance and budgets")
	// ErrNoBracket indicates no sign change was found within the bracketing budget.
	ErrNoBracket = errors.New("rootfind: no sign change within bracketing budget")
	// ErrNotConverged indicates the refinement budget ran out before the
	// bracket shrank below AbsTolerance.
	ErrNotConverged = errors.New("rootfind: iteration budget exhausted before convergence")
)

// Func is the scalar objective whose root on [0, ∞) is sought.
type Func func(x float64) float64

// Options configures a Solve call.
//
// Fields:
//   - InitialStep   — width of the first bracketing probe from x = 0.
//   - GrowthFactor  — geometric growth of the probe (must be > 1).
//   - MaxBracket    — maximum number of bracketing probes.
//   - MaxIterations — maximum number of refinement (bisection/secant) steps.
//   - AbsTolerance  — absolute width of the bracket at which the root is
//     accepted.
type Options struct {
	InitialStep   float64
	GrowthFactor  float64
	MaxBracket    int
	MaxIterations int
	AbsTolerance  float64
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - InitialStep:   1e-3 (probes reach ~1e15 within 60 doublings)
//   - GrowthFactor:  2
//   - MaxBracket:    64
//   - MaxIterations: 128
//   - AbsTolerance:  1e-12
func DefaultOptions() Options {
	return Options{
		InitialStep:   1e-3,
		GrowthFactor:  2,
		MaxBracket:    64,
		MaxIterations: 128,
		AbsTolerance:  1e-12,
	}
}

// validate checks internal consistency of Options.
// Complexity: O(1).
func (o Options) validate() error {
	if o.InitialStep <= 0 || o.GrowthFactor <= 1 || o.AbsTolerance <= 0 {
		return ErrBadOptions
	}
	if o.MaxBracket < 1 || o.MaxIterations < 1 {
		return ErrBadOptions
	}

	return nil
}
