package pam

import "math"

// AdjustPower rescales ls so its average level equals the target transmit
// power ptx under extinction ratio extinctionRatioDB. The set is mutated in
// place and returned for chaining.
//
// The rescaling rule is selected by the set's Spacing tag:
//
//   - EquallySpaced — affine floor rule. The set is first normalized, then
//     mapped by L ↦ Pmin + s·L with
//     Pmin = 2·ptx·rex/(1+rex),  s = (ptx − Pmin)/mean(L),
//     so the bottom level lands on the extinction floor and the mean lands
//     on ptx. The same affine map is applied to the thresholds.
//
//   - Optimized — pure linear scaling L ↦ (ptx/mean(L))·L. The optimizer has
//     already baked the extinction ratio into the level geometry, so adding
//     a floor again would double-count it; extinctionRatioDB is ignored.
//
// Contracts: ptx > 0 and finite; for the equally-spaced rule the top level
// must be nonzero (normalization).
//
// Errors: ErrBadPower, ErrUnknownSpacing, ErrZeroTopLevel.
//
// Complexity: O(M).
func AdjustPower(ls *LevelSet, ptx, extinctionRatioDB float64) (*LevelSet, error) {
	if !(ptx > 0) || math.IsInf(ptx, 1) {
		return nil, ErrBadPower
	}

	switch ls.Spacing {
	case EquallySpaced:
		if err := ls.Normalize(); err != nil {
			return nil, err
		}
		rex := extinctionLinear(extinctionRatioDB)
		pmin := 2 * ptx * rex / (1 + rex)
		scale := (ptx - pmin) / ls.Mean()
		affine(ls, scale, pmin)
	case Optimized:
		scale := ptx / ls.Mean()
		affine(ls, scale, 0)
	default:
		return nil, ErrUnknownSpacing
	}

	return ls, nil
}

// affine applies L ↦ offset + scale·L to levels and thresholds alike.
func affine(ls *LevelSet, scale, offset float64) {
	for i := range ls.Levels {
		ls.Levels[i] = offset + scale*ls.Levels[i]
	}
	for i := range ls.Thresholds {
		ls.Thresholds[i] = offset + scale*ls.Thresholds[i]
	}
}
