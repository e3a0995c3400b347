package pam_test

import (
	"testing"

	"github.com/katalvlaran/optiq/pam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEquallySpaced_ClosedFormM4 verifies the canonical 4-PAM grid against
// its closed form.
func TestNewEquallySpaced_ClosedFormM4(t *testing.T) {
	ls, err := pam.NewEquallySpaced(4)
	require.NoError(t, err, "M=4 construction must succeed")

	wantLevels := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	wantThresholds := []float64{1.0 / 6, 0.5, 5.0 / 6}
	for k := range wantLevels {
		assert.InDelta(t, wantLevels[k], ls.Levels[k], 1e-12, "level %d closed form", k)
	}
	for k := range wantThresholds {
		assert.InDelta(t, wantThresholds[k], ls.Thresholds[k], 1e-12, "threshold %d closed form", k)
	}
	assert.Equal(t, pam.EquallySpaced, ls.Spacing, "grid must carry the equally-spaced tag")
	assert.NoError(t, ls.Validate(), "canonical grid must interleave strictly")
}

// TestNewEquallySpaced_Binary verifies the degenerate M=2 grid.
func TestNewEquallySpaced_Binary(t *testing.T) {
	ls, err := pam.NewEquallySpaced(2)
	require.NoError(t, err, "M=2 construction must succeed")
	assert.Equal(t, []float64{0, 1}, ls.Levels, "binary levels are {0, 1}")
	assert.Equal(t, []float64{0.5}, ls.Thresholds, "binary threshold is the midpoint")
}

// TestNewEquallySpaced_InvalidOrder verifies rejection of M < 2.
func TestNewEquallySpaced_InvalidOrder(t *testing.T) {
	for _, m := range []int{-1, 0, 1} {
		_, err := pam.NewEquallySpaced(m)
		assert.ErrorIs(t, err, pam.ErrInvalidOrder, "M=%d must error ErrInvalidOrder", m)
	}
}

// TestSetLevels_LengthsOnly verifies the documented leniency: lengths are
// validated, ordering is not.
func TestSetLevels_LengthsOnly(t *testing.T) {
	ls, err := pam.NewEquallySpaced(3)
	require.NoError(t, err, "M=3 construction must succeed")

	err = ls.SetLevels([]float64{1, 2}, []float64{1.5, 2.5})
	assert.ErrorIs(t, err, pam.ErrLengthMismatch, "wrong level count must error")

	err = ls.SetLevels([]float64{1, 2, 3}, []float64{1.5})
	assert.ErrorIs(t, err, pam.ErrLengthMismatch, "wrong threshold count must error")

	// Unsorted values pass SetLevels; only Validate complains.
	err = ls.SetLevels([]float64{3, 1, 2}, []float64{9, 0})
	assert.NoError(t, err, "SetLevels must not check ordering")
	assert.ErrorIs(t, ls.Validate(), pam.ErrNotMonotonic, "Validate must flag the unsorted set")
}

// TestSetLevels_Copies verifies SetLevels copies rather than aliases.
func TestSetLevels_Copies(t *testing.T) {
	ls, err := pam.NewEquallySpaced(2)
	require.NoError(t, err, "M=2 construction must succeed")

	levels := []float64{0, 2}
	require.NoError(t, ls.SetLevels(levels, []float64{1}), "valid lengths must pass")
	levels[1] = 99
	assert.Equal(t, 2.0, ls.Levels[1], "mutating the caller slice must not touch the set")
}

// TestNormalize_IdempotentUnitTop verifies the normalization contract: top
// level exactly 1, and a second call is a no-op.
func TestNormalize_IdempotentUnitTop(t *testing.T) {
	ls, err := pam.NewEquallySpaced(4)
	require.NoError(t, err, "M=4 construction must succeed")
	require.NoError(t, ls.SetLevels([]float64{0.1, 0.9, 1.7, 2.5}, []float64{0.5, 1.3, 2.1}), "setup")

	require.NoError(t, ls.Normalize(), "first normalization must succeed")
	assert.Equal(t, 1.0, ls.Levels[3], "top level must be exactly 1")

	snapshotLevels := append([]float64(nil), ls.Levels...)
	snapshotThresholds := append([]float64(nil), ls.Thresholds...)
	require.NoError(t, ls.Normalize(), "second normalization must succeed")
	assert.Equal(t, snapshotLevels, ls.Levels, "normalization must be idempotent on levels")
	assert.Equal(t, snapshotThresholds, ls.Thresholds, "normalization must be idempotent on thresholds")
}

// TestNormalize_ZeroTop verifies the zero-divisor failure mode.
func TestNormalize_ZeroTop(t *testing.T) {
	ls, err := pam.NewEquallySpaced(2)
	require.NoError(t, err, "M=2 construction must succeed")
	require.NoError(t, ls.SetLevels([]float64{-1, 0}, []float64{-0.5}), "setup")

	assert.ErrorIs(t, ls.Normalize(), pam.ErrZeroTopLevel, "zero top level must error ErrZeroTopLevel")
}

// TestClone_Independence verifies a clone shares no storage with its origin.
func TestClone_Independence(t *testing.T) {
	ls, err := pam.NewEquallySpaced(4)
	require.NoError(t, err, "M=4 construction must succeed")

	cp := ls.Clone()
	cp.Levels[0] = -7
	cp.Thresholds[0] = -5
	assert.Equal(t, 0.0, ls.Levels[0], "mutating the clone must not touch the origin levels")
	assert.InDelta(t, 1.0/6, ls.Thresholds[0], 1e-12, "mutating the clone must not touch the origin thresholds")
	assert.Equal(t, ls.Spacing, cp.Spacing, "the spacing tag must be carried over")
}

// TestLevelSet_Stats verifies the Mean/Min/Max helpers on the canonical grid.
func TestLevelSet_Stats(t *testing.T) {
	ls, err := pam.NewEquallySpaced(4)
	require.NoError(t, err, "M=4 construction must succeed")

	assert.InDelta(t, 0.5, ls.Mean(), 1e-12, "canonical grid mean is 1/2")
	assert.Equal(t, 0.0, ls.Min(), "bottom level is 0")
	assert.Equal(t, 1.0, ls.Max(), "top level is 1")
}
