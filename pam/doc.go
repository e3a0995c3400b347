// Package pam jointly optimizes the levels and decision thresholds of M-ary
// intensity-modulated signaling under signal-dependent Gaussian noise, and
// evaluates exact closed-form SER/BER for the result.
//
// 🚀 What is pam?
//
//	The analytic core of a fiber-link BER simulator:
//	  • LevelSet          — ordered levels + thresholds with interleaving invariant
//	  • NewEquallySpaced  — the canonical normalized k/(M-1) grid
//	  • Optimize          — fixed-point level spacing for a target BER under a
//	    caller-supplied noise-σ model (shot noise grows with power, so the
//	    thresholds have no closed form — each step is a 1-D root find)
//	  • AdjustPower       — rescale to a physical transmit power + extinction ratio
//	  • EvaluateBER       — Gaussian-tail SER/BER, σ conditioned on the sent level
//	  • PAM               — facade with Gray-coded Modulate/Demodulate
//
// ✨ Why choose pam?
//
//   - Warnings as data – convergence caveats come back as Diagnostics on the
//     Result, so pipelines keep running and tests can assert on them
//   - Explicit config – Options + DefaultOptions, no hidden tolerances
//   - Deterministic – identical inputs give bit-identical level sets
//   - Injection-friendly – NoiseModel is a one-method interface; any physics
//     (thermal, shot, APD, amplifier beat noise) plugs in, as do test fakes
//
// ⚙️ Usage:
//
//	noise := pam.NoiseFunc(func(p float64) float64 {
//	  return math.Sqrt(1e-4 + 0.01*p) // thermal + shot
//	})
//	res, err := pam.Optimize(4, 1e-4, -10, noise, pam.DefaultOptions())
//	if err != nil { ... }                       // fatal: bad inputs / noise domain
//	if res.Has(pam.DiagBERToleranceExceeded) {  // non-fatal caveat
//	  ...
//	}
//	ber, perLevel, _ := pamInstance.BERAWGN(noise)
//
// Error model: malformed inputs and noise-domain violations are sentinel
// errors and abort the call; root-find shortfalls and BER-tolerance misses
// are Diagnostics attached to the Result and never stop the pipeline.
//
// See example_test.go for full walkthroughs and bench_test.go for costs.
package pam
