// Package sweep fans closed-form BER evaluations out across a grid of
// transmit powers — the embarrassingly parallel outer loop around the pam
// engine.
//
// 🚀 What is sweep?
//
//	A deterministic, context-aware runner for BER-vs-power curves:
//	  • one shared level-set template (equally spaced, or optimized once)
//	  • one Clone per grid point — workers never share mutable state
//	  • results in grid order regardless of worker scheduling
//	  • CSV export for downstream plotting and regression tracking
//
// ✨ Key properties:
//   - The pam engine itself has no cancellation semantics; the sweep layer
//     adds context checks between grid points, where interruption is safe
//   - Optimizer diagnostics surface once on the Result, per-point
//     diagnostics on each Point — nothing is logged or swallowed
//
// ⚙️ Usage:
//
//	res, err := sweep.Run(ctx, sweep.Config{
//	  Order:             4,
//	  Spacing:           pam.Optimized,
//	  BERTarget:         1e-4,
//	  ExtinctionRatioDB: -10,
//	  Powers:            powers, // linear units, e.g. mW
//	}, noise.ThermalShot{ThermalVariance: 1e-4, ShotCoefficient: 0.01})
//
// Performance: with W workers and N grid points, wall time is O(N/W) BER
// evaluations plus one optimization when Spacing == pam.Optimized.
package sweep
