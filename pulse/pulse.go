package pulse

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// rrcSingularityTol guards the removable singularity of the RRC closed form
// at |4βt| = 1; it is a structural tolerance, unrelated to any BER tolerance.
const rrcSingularityTol = 1e-9

// NormalizeCenter returns a copy of taps scaled so the symbol-center tap is
// exactly 1. Odd-length filters use the middle tap as reference; even-length
// filters use the midpoint (average) of the two central taps.
//
// Errors:
//   - ErrEmptyTaps     — len(taps) == 0.
//   - ErrZeroCenterTap — the reference value is 0 (no scale exists).
//
// Complexity: O(n) time, O(n) extra space; the input is never mutated.
func NormalizeCenter(taps []float64) ([]float64, error) {
	n := len(taps)
	if n == 0 {
		return nil, ErrEmptyTaps
	}

	var ref float64
	if n%2 == 1 {
		ref = taps[n/2]
	} else {
		ref = 0.5 * (taps[n/2-1] + taps[n/2])
	}
	if ref == 0 {
		return nil, ErrZeroCenterTap
	}

	out := make([]float64, n)
	copy(out, taps)
	floats.Scale(1/ref, out)

	return out, nil
}

// Rect returns a rectangular (NRZ) pulse: sps unit taps, one symbol wide.
//
// Errors: ErrBadShape when sps < 1.
func Rect(sps int) ([]float64, error) {
	if sps < 1 {
		return nil, ErrBadShape
	}

	taps := make([]float64, sps)
	for i := range taps {
		taps[i] = 1
	}

	return taps, nil
}

// RootRaisedCosine returns span·sps+1 root-raised-cosine taps at sps samples
// per symbol with roll-off β ∈ (0, 1]. The peak sits on the middle tap, so
// the result composes directly with NormalizeCenter.
//
// The three-branch closed form (peak, |4βt| = 1 singularity, general term)
// follows the standard RRC impulse response with the symbol period as the
// time unit.
//
// Errors: ErrBadShape when sps < 1, span < 1, or β outside (0, 1].
//
// Complexity: O(span·sps).
func RootRaisedCosine(sps int, rollOff float64, span int) ([]float64, error) {
	if sps < 1 || span < 1 || rollOff <= 0 || rollOff > 1 {
		return nil, ErrBadShape
	}

	n := span*sps + 1
	taps := make([]float64, n)
	for i := 0; i < n; i++ {
		// Tap instant in symbol periods, centered on the middle tap.
		t := (float64(i) - float64(n-1)/2) / float64(sps)
		switch {
		case t == 0:
			taps[i] = 1 - rollOff + 4*rollOff/math.Pi
		case math.Abs(math.Abs(4*rollOff*t)-1) < rrcSingularityTol:
			taps[i] = (rollOff / math.Sqrt2) *
				((1+2/math.Pi)*math.Sin(math.Pi/(4*rollOff)) +
					(1-2/math.Pi)*math.Cos(math.Pi/(4*rollOff)))
		default:
			num := math.Sin(math.Pi*t*(1-rollOff)) + 4*rollOff*t*math.Cos(math.Pi*t*(1+rollOff))
			den := math.Pi * t * (1 - 16*rollOff*rollOff*t*t)
			taps[i] = num / den
		}
	}

	return taps, nil
}

// Gaussian returns span·sps+1 Gaussian taps at sps samples per symbol with
// bandwidth-time product bt > 0. Used for Gaussian-filtered intensity
// modulation; amplitude is left for NormalizeCenter to fix.
//
// Errors: ErrBadShape when sps < 1, span < 1, or bt ≤ 0.
//
// Complexity: O(span·sps).
func Gaussian(sps int, bt float64, span int) ([]float64, error) {
	if sps < 1 || span < 1 || bt <= 0 {
		return nil, ErrBadShape
	}

	n := span*sps + 1
	taps := make([]float64, n)
	k := 2 * math.Pi * math.Pi * bt * bt / math.Ln2
	for i := 0; i < n; i++ {
		t := (float64(i) - float64(n-1)/2) / float64(sps)
		taps[i] = math.Exp(-k * t * t)
	}

	return taps, nil
}
