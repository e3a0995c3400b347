package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/optiq/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_NilFunc verifies that a nil objective is rejected up front.
func TestSolve_NilFunc(t *testing.T) {
	_, err := rootfind.Solve(nil, rootfind.DefaultOptions())
	assert.ErrorIs(t, err, rootfind.ErrNilFunc, "nil objective must error ErrNilFunc")
}

// TestSolve_BadOptions verifies option validation for step, growth and budgets.
func TestSolve_BadOptions(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }

	opts := rootfind.DefaultOptions()
	opts.InitialStep = 0
	_, err := rootfind.Solve(f, opts)
	assert.ErrorIs(t, err, rootfind.ErrBadOptions, "zero InitialStep must error")

	opts = rootfind.DefaultOptions()
	opts.GrowthFactor = 1
	_, err = rootfind.Solve(f, opts)
	assert.ErrorIs(t, err, rootfind.ErrBadOptions, "GrowthFactor must exceed 1")

	opts = rootfind.DefaultOptions()
	opts.MaxIterations = 0
	_, err = rootfind.Solve(f, opts)
	assert.ErrorIs(t, err, rootfind.ErrBadOptions, "empty refinement budget must error")
}

// TestSolve_Linear verifies convergence on a trivially smooth objective.
func TestSolve_Linear(t *testing.T) {
	x, err := rootfind.Solve(func(x float64) float64 { return x - 7.25 }, rootfind.DefaultOptions())
	require.NoError(t, err, "linear objective must converge")
	assert.InDelta(t, 7.25, x, 1e-9, "root of x-7.25 is 7.25")
}

// TestSolve_Sqrt2 verifies convergence on a curved objective far from the
// first probe scale.
func TestSolve_Sqrt2(t *testing.T) {
	x, err := rootfind.Solve(func(x float64) float64 { return x*x - 2 }, rootfind.DefaultOptions())
	require.NoError(t, err, "quadratic objective must converge")
	assert.InDelta(t, math.Sqrt2, x, 1e-9, "root of x²-2 is √2")
}

// TestSolve_RootAtOrigin verifies the exact-zero fast path at x = 0.
func TestSolve_RootAtOrigin(t *testing.T) {
	x, err := rootfind.Solve(func(x float64) float64 { return x }, rootfind.DefaultOptions())
	require.NoError(t, err, "f(0)=0 must be accepted immediately")
	assert.Equal(t, 0.0, x, "root at origin returns exactly 0")
}

// TestSolve_NoBracket verifies the advisory ErrNoBracket contract: the error
// is reported, yet the last probe is still handed back.
func TestSolve_NoBracket(t *testing.T) {
	// Strictly positive everywhere: no sign change exists.
	x, err := rootfind.Solve(func(x float64) float64 { return 1 + x }, rootfind.DefaultOptions())
	assert.ErrorIs(t, err, rootfind.ErrNoBracket, "sign-definite objective must report ErrNoBracket")
	assert.False(t, math.IsNaN(x), "best iterate must never be NaN")
	assert.GreaterOrEqual(t, x, 0.0, "best iterate stays on the half-line")
}

// TestSolve_NaNObjective verifies that a NaN from f degrades to
// ErrNotConverged instead of propagating.
func TestSolve_NaNObjective(t *testing.T) {
	x, err := rootfind.Solve(func(x float64) float64 {
		if x > 0.5 {
			return math.NaN()
		}

		return 1 - x // still positive below 0.5, so probing passes 0.5
	}, rootfind.DefaultOptions())
	assert.ErrorIs(t, err, rootfind.ErrNotConverged, "NaN objective must report ErrNotConverged")
	assert.False(t, math.IsNaN(x), "best iterate must never be NaN")
}

// TestSolve_TightBudget verifies that an exhausted refinement budget reports
// ErrNotConverged and returns the bracket midpoint.
func TestSolve_TightBudget(t *testing.T) {
	opts := rootfind.DefaultOptions()
	opts.MaxIterations = 2
	x, err := rootfind.Solve(func(x float64) float64 { return x*x*x - 9 }, opts)
	assert.ErrorIs(t, err, rootfind.ErrNotConverged, "two refine steps cannot reach 1e-12")
	assert.InDelta(t, math.Cbrt(9), x, 1.0, "midpoint is still near the root")
}

// TestSolve_Deterministic verifies that identical inputs give bit-identical roots.
func TestSolve_Deterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x) - 0.25 }
	a, errA := rootfind.Solve(f, rootfind.DefaultOptions())
	b, errB := rootfind.Solve(f, rootfind.DefaultOptions())
	require.NoError(t, errA, "first solve must converge")
	require.NoError(t, errB, "second solve must converge")
	assert.Equal(t, a, b, "Solve must be deterministic for identical inputs")
}
