package pam

import "io"

// Spacing tags how a level set was produced. The tag is carried on the
// LevelSet itself because power adjustment applies a different rescaling rule
// per origin (see AdjustPower).
type Spacing int

const (
	// EquallySpaced marks the canonical uniform grid: extinction-ratio floors
	// are applied additively at power adjustment.
	EquallySpaced Spacing = iota

	// Optimized marks a set produced by the level-spacing optimizer: the
	// extinction ratio is already baked into the geometry, so power
	// adjustment is a pure linear scaling.
	Optimized
)

// String returns the spacing policy name.
func (s Spacing) String() string {
	switch s {
	case EquallySpaced:
		return "equally-spaced"
	case Optimized:
		return "optimized"
	default:
		return "unknown"
	}
}

// NoiseModel supplies the receiver noise standard deviation conditioned on
// the instantaneous signal level. Implementations must be pure: identical
// levels yield identical sigmas. Non-positive or non-finite returns are
// rejected by the engine with ErrNoiseDomain.
type NoiseModel interface {
	Sigma(level float64) float64
}

// NoiseFunc adapts a plain function to the NoiseModel interface.
type NoiseFunc func(level float64) float64

// Sigma implements NoiseModel.
func (f NoiseFunc) Sigma(level float64) float64 { return f(level) }

// DiagKind enumerates non-fatal diagnostic conditions raised by the
// level-spacing optimizer. Diagnostics are data, not errors: the result that
// carries them is still usable.
type DiagKind int

const (
	// DiagRootFindNotConverged reports that one of the per-threshold or
	// per-level 1-D solves did not meet its own convergence criterion; the
	// best available iterate was used instead.
	DiagRootFindNotConverged DiagKind = iota

	// DiagBERToleranceExceeded reports that the achieved BER of the converged
	// level set deviates from the target beyond MaxBERRelError.
	DiagBERToleranceExceeded
)

// String returns the diagnostic kind name.
func (k DiagKind) String() string {
	switch k {
	case DiagRootFindNotConverged:
		return "root-find-not-converged"
	case DiagBERToleranceExceeded:
		return "ber-tolerance-exceeded"
	default:
		return "unknown"
	}
}

// Diagnostic is one non-fatal optimizer warning.
//
// Fields:
//   - Kind       — the condition (see DiagKind).
//   - Iteration  — outer-loop iteration (1-based) when the condition arose;
//     0 for post-convergence checks.
//   - LevelIndex — the inner-loop index concerned, or -1 when not applicable.
//   - Detail     — short human-readable context.
type Diagnostic struct {
	Kind       DiagKind
	Iteration  int
	LevelIndex int
	Detail     string
}

// Options configures the level-spacing optimizer.
//
// Fields:
//   - MaxIterations  — outer fixed-point iteration budget.
//   - AbsTolerance   — Euclidean-norm threshold on the change of the full
//     levels vector between successive outer iterations.
//   - MaxBERRelError — allowed relative deviation of the achieved BER from
//     the target before DiagBERToleranceExceeded is raised.
//   - Root           — configuration forwarded to every inner 1-D solve.
//   - Trace          — optional sink for per-iteration progress lines
//     (nil = silent). The core never logs on its own.
type Options struct {
	MaxIterations  int
	AbsTolerance   float64
	MaxBERRelError float64
	Root           RootOptions
	Trace          io.Writer
}

// RootOptions mirrors the inner solver's tuning knobs without importing its
// package into every caller. Zero values select the solver defaults.
type RootOptions struct {
	InitialStep   float64
	MaxIterations int
	AbsTolerance  float64
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxIterations:  20
//   - AbsTolerance:   1e-6
//   - MaxBERRelError: 1e-3
//   - Root:           zero value (inner-solver defaults)
//   - Trace:          nil (silent)
func DefaultOptions() Options {
	return Options{
		MaxIterations:  20,
		AbsTolerance:   1e-6,
		MaxBERRelError: 1e-3,
	}
}

// validate checks internal consistency of Options.
// Complexity: O(1).
func (o Options) validate() error {
	if o.MaxIterations < 1 || o.AbsTolerance <= 0 || o.MaxBERRelError <= 0 {
		return ErrBadOptions
	}

	return nil
}

// Result holds the outcome of one Optimize call.
type Result struct {
	// LevelSet is the optimized constellation, receiver-referred (the scale
	// implied by the noise model's input domain).
	LevelSet *LevelSet

	// Iterations is the number of outer iterations actually run.
	Iterations int

	// FinalStep is the Euclidean norm of the last levels-vector change.
	FinalStep float64

	// AchievedBER is the closed-form BER of LevelSet under the supplied
	// noise model, evaluated after convergence.
	AchievedBER float64

	// Diagnostics lists non-fatal warnings in the order they arose.
	Diagnostics []Diagnostic
}

// Has reports whether at least one diagnostic of the given kind is present.
func (r *Result) Has(kind DiagKind) bool {
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}

	return false
}
