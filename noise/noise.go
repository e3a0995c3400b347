package noise

import "math"

// Constant is the level-independent AWGN model: Sigma(p) = Sigma0 for all p.
type Constant struct {
	// Sigma0 is the noise standard deviation, > 0.
	Sigma0 float64
}

// Sigma implements pam.NoiseModel.
func (m Constant) Sigma(float64) float64 { return m.Sigma0 }

// ThermalShot models a PIN receiver: a level-independent thermal floor plus
// shot noise whose variance grows linearly with the detected level,
//
//	σ(p) = √(ThermalVariance + ShotCoefficient·p).
type ThermalShot struct {
	// ThermalVariance is the level-independent noise variance σ₀², ≥ 0
	// (strictly positive unless shot noise keeps σ away from zero).
	ThermalVariance float64

	// ShotCoefficient scales the signal-dependent variance term, ≥ 0.
	ShotCoefficient float64
}

// Sigma implements pam.NoiseModel.
func (m ThermalShot) Sigma(p float64) float64 {
	return math.Sqrt(m.ThermalVariance + m.ShotCoefficient*p)
}

// APD models an avalanche photodiode receiver: the shot-noise term is
// amplified by the mean gain squared times the excess noise factor,
//
//	σ(p) = √(ThermalVariance + Gain²·ExcessNoise·ShotCoefficient·p).
type APD struct {
	// ThermalVariance is the level-independent variance floor, ≥ 0.
	ThermalVariance float64

	// ShotCoefficient is the primary (unity-gain) shot variance per unit
	// level, ≥ 0.
	ShotCoefficient float64

	// Gain is the mean avalanche gain, ≥ 1.
	Gain float64

	// ExcessNoise is the excess noise factor F(Gain), ≥ 1.
	ExcessNoise float64
}

// Sigma implements pam.NoiseModel.
func (m APD) Sigma(p float64) float64 {
	return math.Sqrt(m.ThermalVariance + m.Gain*m.Gain*m.ExcessNoise*m.ShotCoefficient*p)
}

// SignalSpontaneous models an optically amplified link dominated by
// signal-spontaneous beat noise: a spontaneous-spontaneous floor plus a beat
// term linear in the level,
//
//	σ(p) = √(SpontaneousVariance + BeatCoefficient·p).
type SignalSpontaneous struct {
	// SpontaneousVariance is the ASE-ASE beat floor, ≥ 0.
	SpontaneousVariance float64

	// BeatCoefficient scales the signal-ASE beat term, ≥ 0.
	BeatCoefficient float64
}

// Sigma implements pam.NoiseModel.
func (m SignalSpontaneous) Sigma(p float64) float64 {
	return math.Sqrt(m.SpontaneousVariance + m.BeatCoefficient*p)
}
