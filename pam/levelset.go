package pam

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LevelSet is the M-ary signal constellation for one link direction: M
// strictly increasing amplitude levels interleaved with M-1 decision
// thresholds, plus the spacing-policy tag that produced them.
//
// Invariant (when well-formed):
//
//	Levels[0] < Thresholds[0] < Levels[1] < ... < Thresholds[M-2] < Levels[M-1]
//
// A LevelSet is owned exclusively by its caller: methods mutate in place and
// nothing is shared between concurrent optimizations. Use Clone before fanning
// a set out across workers.
type LevelSet struct {
	// M is the constellation order (number of distinct symbol values), ≥ 2.
	M int

	// Levels holds the M transmit/receive amplitudes for symbols 0..M-1.
	Levels []float64

	// Thresholds holds the M-1 receiver decision points; Thresholds[i]
	// separates Levels[i] from Levels[i+1].
	Thresholds []float64

	// Spacing records how the set was produced; AdjustPower keys off it.
	Spacing Spacing
}

// NewEquallySpaced returns the canonical normalized M-ary grid:
//
//	Levels[k]     = 2k / (2(M-1))     = k/(M-1),  k = 0..M-1
//	Thresholds[k] = (2k+1) / (2(M-1)),            k = 0..M-2
//
// The top level is already 1, so the set is normalized by construction.
//
// Errors: ErrInvalidOrder when m < 2.
//
// Complexity: O(M).
func NewEquallySpaced(m int) (*LevelSet, error) {
	if m < 2 {
		return nil, ErrInvalidOrder
	}

	ls := &LevelSet{
		M:          m,
		Levels:     make([]float64, m),
		Thresholds: make([]float64, m-1),
		Spacing:    EquallySpaced,
	}
	den := 2 * float64(m-1)
	for k := 0; k < m; k++ {
		ls.Levels[k] = 2 * float64(k) / den
	}
	for k := 0; k < m-1; k++ {
		ls.Thresholds[k] = (2*float64(k) + 1) / den
	}

	return ls, nil
}

// SetLevels replaces the levels and thresholds of the set.
//
// Only lengths are validated: exactly M levels and M-1 thresholds. Ordering
// and interleaving are deliberately NOT checked — the optimizer writes
// partial iterates through this path, and callers holding unsorted
// intermediates rely on the leniency. Run Validate when a well-formed set is
// required.
//
// Errors: ErrLengthMismatch on wrong slice lengths.
//
// Complexity: O(M) (values are copied, not aliased).
func (ls *LevelSet) SetLevels(levels, thresholds []float64) error {
	if len(levels) != ls.M || len(thresholds) != ls.M-1 {
		return ErrLengthMismatch
	}

	copy(ls.Levels, levels)
	copy(ls.Thresholds, thresholds)

	return nil
}

// Normalize divides every level and threshold by the top level, so that
// Levels[M-1] == 1 afterwards. Idempotent.
//
// Errors: ErrZeroTopLevel when Levels[M-1] == 0.
//
// Complexity: O(M).
func (ls *LevelSet) Normalize() error {
	top := ls.Levels[ls.M-1]
	if top == 0 {
		return ErrZeroTopLevel
	}

	floats.Scale(1/top, ls.Levels)
	floats.Scale(1/top, ls.Thresholds)
	// The contract is Levels[M-1] == 1 exactly, not within rounding.
	ls.Levels[ls.M-1] = 1

	return nil
}

// Validate checks the strict interleaving invariant
// Levels[0] < Thresholds[0] < Levels[1] < ... < Levels[M-1] and that every
// entry is finite.
//
// Errors: ErrNotMonotonic on any violation.
//
// Complexity: O(M).
func (ls *LevelSet) Validate() error {
	for i := 0; i < ls.M; i++ {
		if math.IsNaN(ls.Levels[i]) || math.IsInf(ls.Levels[i], 0) {
			return ErrNotMonotonic
		}
		if i < ls.M-1 {
			if !(ls.Levels[i] < ls.Thresholds[i] && ls.Thresholds[i] < ls.Levels[i+1]) {
				return ErrNotMonotonic
			}
		}
	}

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
func (ls *LevelSet) Clone() *LevelSet {
	out := &LevelSet{
		M:          ls.M,
		Levels:     make([]float64, len(ls.Levels)),
		Thresholds: make([]float64, len(ls.Thresholds)),
		Spacing:    ls.Spacing,
	}
	copy(out.Levels, ls.Levels)
	copy(out.Thresholds, ls.Thresholds)

	return out
}

// Mean returns the average level (uniform symbol priors).
func (ls *LevelSet) Mean() float64 {
	return stat.Mean(ls.Levels, nil)
}

// Min returns the bottom level.
func (ls *LevelSet) Min() float64 { return ls.Levels[0] }

// Max returns the top level.
func (ls *LevelSet) Max() float64 { return ls.Levels[ls.M-1] }
