// Package noise provides closed-form receiver noise-σ models for the pam
// engine: the physics that makes level spacing a nonlinear problem.
//
// 🚀 What is noise?
//
//	Implementations of pam.NoiseModel, the one-method capability the
//	optimizer and BER evaluator consume:
//	  • Constant          — level-independent σ (classic AWGN)
//	  • ThermalShot       — σ² = σ₀² + q·p (thermal floor + shot noise)
//	  • APD               — σ² = σ₀² + G²·F·q·p (avalanche gain + excess noise)
//	  • SignalSpontaneous — σ² = σ₀² + c·p (amplifier signal-ASE beat noise)
//
// All models are pure value types: Sigma is deterministic, allocation-free
// and safe for concurrent use. Parameters are taken at face value — a model
// configured with negative variances will return NaN, which the pam engine
// rejects with pam.ErrNoiseDomain at the call site.
//
// ⚙️ Usage:
//
//	model := noise.ThermalShot{ThermalVariance: 1e-4, ShotCoefficient: 0.01}
//	res, err := pam.Optimize(4, 1e-4, -10, model, pam.DefaultOptions())
//
// The σ² = a + b·p family is what makes optimized spacing pay off: the eye
// openings must widen toward high levels, which equally spaced grids cannot do.
package noise
