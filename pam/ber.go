package pam

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BER holds the closed-form error rates of a level set under a noise model,
// assuming uniform symbol priors and Gray-coded bit mapping.
type BER struct {
	// SERPerLevel[k] is the conditional symbol-error probability given that
	// level k was transmitted: one Gaussian tail for the edge levels, two for
	// interior levels, each with σ evaluated at the transmitted level.
	SERPerLevel []float64

	// SERTotal is the aggregate symbol-error rate, mean(SERPerLevel).
	SERTotal float64

	// BERPerLevel[k] is level k's prior-weighted contribution to the bit
	// error rate: SERPerLevel[k] / (M·log2(M)). Summing it over k recovers
	// BERTotal, which keeps the per-level entries additive.
	BERPerLevel []float64

	// BERTotal is the aggregate bit-error rate, SERTotal / log2(M).
	BERTotal float64
}

// EvaluateBER computes the exact Gaussian-tail SER/BER of ls under noise.
//
// Per level k:
//
//	ser[k] = Q((Levels[k]   − Thresholds[k-1]) / σk)   (absent for k = 0)
//	       + Q((Thresholds[k] − Levels[k])     / σk)   (absent for k = M-1)
//
// with σk = noise.Sigma(Levels[k]) — the noise is conditioned on the
// transmitted level, not on the threshold.
//
// Contracts: ls well-formed enough that the tails are meaningful (run
// Validate when in doubt); noise non-nil and pure.
//
// Errors: ErrNilNoise; ErrNoiseDomain when σ is non-positive or non-finite.
//
// Complexity: O(M) noise evaluations and Gaussian tails.
func EvaluateBER(ls *LevelSet, noise NoiseModel) (*BER, error) {
	if noise == nil {
		return nil, ErrNilNoise
	}

	var (
		m    = ls.M
		bits = math.Log2(float64(m))
		out  = &BER{
			SERPerLevel: make([]float64, m),
			BERPerLevel: make([]float64, m),
		}
	)
	for k := 0; k < m; k++ {
		sigma, err := sigmaAt(noise, ls.Levels[k])
		if err != nil {
			return nil, err
		}
		var ser float64
		if k > 0 {
			ser += Q((ls.Levels[k] - ls.Thresholds[k-1]) / sigma)
		}
		if k < m-1 {
			ser += Q((ls.Thresholds[k] - ls.Levels[k]) / sigma)
		}
		out.SERPerLevel[k] = ser
		out.BERPerLevel[k] = ser / (float64(m) * bits)
	}
	out.SERTotal = stat.Mean(out.SERPerLevel, nil)
	out.BERTotal = floats.Sum(out.BERPerLevel)

	return out, nil
}
