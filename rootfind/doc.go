// Package rootfind solves scalar equations f(x) = 0 on the half-line x ≥ 0,
// with an explicit iteration budget and best-effort results.
//
// 🚀 What is rootfind?
//
//	A small, deterministic 1-D solver built for the level-spacing optimizer:
//	  • outward geometric bracketing starting at x = 0
//	  • bisection with a secant acceleration step inside the bracket
//	  • hard caps on both bracketing and refinement iterations
//	  • never panics on a hostile f — the best iterate is always returned
//
// ✨ Key properties:
//   - Side-effect free: f is the only thing evaluated, in a fixed order
//   - Best-effort contract: ErrNoBracket / ErrNotConverged still carry the
//     last iterate, so callers can degrade gracefully instead of aborting
//   - NaN-tolerant: a NaN from f stops refinement, it does not propagate
//
// ⚙️ Usage:
//
//	opts := rootfind.DefaultOptions()
//	x, err := rootfind.Solve(func(x float64) float64 { return x*x - 2 }, opts)
//	// x ≈ 1.41421356, err == nil
//
// Performance:
//
//   - Bracketing: at most MaxBracket evaluations of f
//   - Refinement: at most MaxIterations evaluations of f
//
// See rootfind_test.go for convergence and failure-mode coverage.
package rootfind
