// Package optiq is your numerical toolbox for multilevel optical signaling —
// from level-spacing optimization to closed-form bit-error-rate analysis.
//
// 🚀 What is optiq?
//
//	A deterministic, pure-Go library for intensity-modulated M-ary links:
//		• Level sets: ordered amplitudes & decision thresholds, normalization
//		• Equally-spaced and noise-adaptive (optimized) level spacing
//		• Power adjustment: average transmit power + extinction-ratio scaling
//		• Analytic SER/BER under signal-dependent Gaussian noise
//		• Gray-coded modulation / threshold demodulation
//		• Pulse-tap synthesis (rect, RRC, Gaussian) with center normalization
//		• Parallel BER-vs-power sweeps with CSV export
//
// ✨ Why choose optiq?
//
//   - Closed-form first – Gaussian-tail math instead of slow Monte-Carlo
//   - Signal-dependent noise – shot/APD/amplifier models via one interface
//   - Diagnostics as data – convergence caveats returned, never hidden in logs
//   - Pure Go – no cgo, deterministic results, safe to fan out across workers
//
// Under the hood, everything is organized per concern:
//
//	pam/      — level sets, the spacing optimizer, power adjuster, BER engine
//	rootfind/ — scalar root finding on the half-line (bracket + bisection)
//	pulse/    — FIR pulse taps and symbol-center normalization
//	noise/    — receiver noise-σ models (thermal, shot, APD, amplifier beat)
//	sweep/    — embarrassingly parallel BER-vs-power sweep runner
//	cmd/      — bersweep, a YAML-driven sweep CLI with tables and plots
//
// Quick ASCII example (4-PAM):
//
//	level:     0      1/3      2/3       1
//	           |  ×    |   ×    |    ×   |
//	threshold:    1/6      1/2      5/6
//
// Dive into the per-package doc.go files and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/optiq/pam
package optiq
