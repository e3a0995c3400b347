package pam_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/optiq/pam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdjustPower_ScaleLaw verifies the extinction-floor law for the
// equally-spaced rule across a grid of powers and extinction ratios.
func TestAdjustPower_ScaleLaw(t *testing.T) {
	for _, ptx := range []float64{1e-4, 1e-3, 0.5, 2} {
		for _, rexDB := range []float64{-6, -10, -20, 10} {
			ls, err := pam.NewEquallySpaced(4)
			require.NoError(t, err, "construction must succeed")

			_, err = pam.AdjustPower(ls, ptx, rexDB)
			require.NoError(t, err, "adjustment must succeed (ptx=%g rexDB=%g)", ptx, rexDB)

			rex := math.Pow(10, -math.Abs(rexDB)/10)
			wantMin := 2 * ptx * rex / (1 + rex)
			assert.InEpsilon(t, wantMin, ls.Min(), 1e-9,
				"minimum level must hit the extinction floor (ptx=%g rexDB=%g)", ptx, rexDB)
			assert.InEpsilon(t, ptx, ls.Mean(), 1e-9,
				"mean level must hit the target power (ptx=%g rexDB=%g)", ptx, rexDB)
		}
	}
}

// TestAdjustPower_ThresholdsFollowAffine verifies that thresholds receive the
// same affine map as levels: they must stay midway between adjacent levels.
func TestAdjustPower_ThresholdsFollowAffine(t *testing.T) {
	ls, err := pam.NewEquallySpaced(4)
	require.NoError(t, err, "construction must succeed")

	_, err = pam.AdjustPower(ls, 1.5, -10)
	require.NoError(t, err, "adjustment must succeed")

	for k := 0; k < ls.M-1; k++ {
		mid := 0.5 * (ls.Levels[k] + ls.Levels[k+1])
		assert.InEpsilon(t, mid, ls.Thresholds[k], 1e-12,
			"threshold %d must remain the level midpoint under an affine map", k)
	}
	assert.NoError(t, ls.Validate(), "adjusted set must still interleave")
}

// TestAdjustPower_InfiniteExtinction verifies that −∞ dB keeps a zero floor.
func TestAdjustPower_InfiniteExtinction(t *testing.T) {
	ls, err := pam.NewEquallySpaced(4)
	require.NoError(t, err, "construction must succeed")

	_, err = pam.AdjustPower(ls, 1, math.Inf(-1))
	require.NoError(t, err, "adjustment must succeed")
	assert.Equal(t, 0.0, ls.Min(), "ideal extinction keeps the bottom level at zero")
	assert.InEpsilon(t, 1.0, ls.Mean(), 1e-12, "mean must still hit the target power")
}

// TestAdjustPower_OptimizedPureScaling verifies the optimized rule: a pure
// linear scaling that preserves level ratios and ignores the extinction knob.
func TestAdjustPower_OptimizedPureScaling(t *testing.T) {
	ls, err := pam.NewEquallySpaced(4)
	require.NoError(t, err, "construction must succeed")
	require.NoError(t, ls.SetLevels(
		[]float64{0.02, 0.05, 0.11, 0.2},
		[]float64{0.03, 0.07, 0.15},
	), "setup of an optimizer-shaped set")
	ls.Spacing = pam.Optimized

	ratioBefore := ls.Levels[0] / ls.Levels[3]
	const ptx = 3.0
	_, err = pam.AdjustPower(ls, ptx, -10)
	require.NoError(t, err, "adjustment must succeed")

	assert.InEpsilon(t, ptx, ls.Mean(), 1e-12, "mean must hit the target power")
	assert.InEpsilon(t, ratioBefore, ls.Levels[0]/ls.Levels[3], 1e-12,
		"pure scaling must preserve the extinction baked into the geometry")
}

// TestAdjustPower_BadInputs covers power validation and the unknown tag.
func TestAdjustPower_BadInputs(t *testing.T) {
	ls, err := pam.NewEquallySpaced(2)
	require.NoError(t, err, "construction must succeed")

	for _, ptx := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = pam.AdjustPower(ls, ptx, -10)
		assert.ErrorIs(t, err, pam.ErrBadPower, "ptx=%v must error ErrBadPower", ptx)
	}

	ls.Spacing = pam.Spacing(42)
	_, err = pam.AdjustPower(ls, 1, -10)
	assert.ErrorIs(t, err, pam.ErrUnknownSpacing, "an unknown spacing tag must error")
}
