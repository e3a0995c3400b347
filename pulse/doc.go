// Package pulse synthesizes FIR pulse-shaping taps and normalizes them to the
// symbol-center reference required by amplitude-referred BER analysis.
//
// 🚀 What is pulse?
//
//	Finite impulse responses for M-ary intensity modulation:
//	  • Rect              — NRZ rectangular pulse, one symbol wide
//	  • RootRaisedCosine  — RRC taps with configurable roll-off and span
//	  • Gaussian          — Gaussian taps with configurable bandwidth-time product
//	  • NormalizeCenter   — scale any tap set so the symbol-center tap is 1
//
// Center normalization keeps level amplitudes physically meaningful: after it,
// the peak of an isolated pulse equals the transmitted level, so thresholds
// computed on levels apply to sampled waveforms unchanged. Even-length filters
// use the midpoint of the two central taps as the reference.
//
// ⚙️ Usage:
//
//	taps, err := pulse.RootRaisedCosine(8, 0.25, 10) // 8 samples/symbol, β=0.25
//	if err != nil { ... }
//	taps, err = pulse.NormalizeCenter(taps)          // center tap == 1
//
// All functions are pure and deterministic; inputs are never mutated.
package pulse
