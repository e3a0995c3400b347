package pam

import (
	"math/bits"
	"os"
	"sort"

	"github.com/katalvlaran/optiq/pulse"
)

// PAM bundles a level set with the link parameters the surrounding
// simulation needs: bit rate, pulse taps (center-normalized at construction)
// and the Gray bit mapping. It is the stable boundary the sweep scripts call.
//
// Not safe for concurrent mutation; give each worker its own instance.
type PAM struct {
	ls      *LevelSet
	bitRate float64
	taps    []float64

	// grayOf[k] is the symbol (bit pattern) carried by level k; levelOf is
	// its inverse. Both are nil unless M is a power of two.
	grayOf  []int
	levelOf []int
}

// New constructs a PAM instance.
//
// Parameters:
//   - m       — constellation order, ≥ 2.
//   - bitRate — aggregate bit rate, > 0 (bookkeeping for callers; the
//     analytic engine itself is rate-agnostic).
//   - spacing — EquallySpaced starts from the canonical grid; Optimized
//     starts from the same grid but tags the set so Optimize/AdjustPower
//     apply optimized-set semantics.
//   - taps    — pulse impulse response, center-normalized via
//     pulse.NormalizeCenter at construction; nil skips pulse handling.
//
// Errors: ErrInvalidOrder, ErrBadBitRate, ErrUnknownSpacing, and pulse
// normalization errors (pulse.ErrZeroCenterTap, pulse.ErrEmptyTaps).
func New(m int, bitRate float64, spacing Spacing, taps []float64) (*PAM, error) {
	if bitRate <= 0 {
		return nil, ErrBadBitRate
	}
	if spacing != EquallySpaced && spacing != Optimized {
		return nil, ErrUnknownSpacing
	}

	ls, err := NewEquallySpaced(m)
	if err != nil {
		return nil, err
	}
	ls.Spacing = spacing

	p := &PAM{ls: ls, bitRate: bitRate}
	if taps != nil {
		if p.taps, err = pulse.NormalizeCenter(taps); err != nil {
			return nil, err
		}
	}
	if m&(m-1) == 0 {
		p.grayOf, p.levelOf = grayTables(m)
	}

	return p, nil
}

// LevelSet exposes the current constellation. Callers mutate it at their own
// risk; the modem reads it live.
func (p *PAM) LevelSet() *LevelSet { return p.ls }

// BitRate returns the configured aggregate bit rate.
func (p *PAM) BitRate() float64 { return p.bitRate }

// Taps returns the center-normalized pulse taps (nil when none were given).
func (p *PAM) Taps() []float64 { return p.taps }

// Optimize runs the level-spacing optimizer with default options and adopts
// the resulting set. verbose streams per-iteration progress to stdout.
//
// See Optimize (package function) for the algorithm and error contract.
func (p *PAM) Optimize(berTarget, extinctionRatioDB float64, noise NoiseModel, verbose bool) (*Result, error) {
	opts := DefaultOptions()
	if verbose {
		opts.Trace = os.Stdout
	}

	res, err := Optimize(p.ls.M, berTarget, extinctionRatioDB, noise, opts)
	if err != nil {
		return nil, err
	}
	p.ls = res.LevelSet

	return res, nil
}

// Adjust rescales the held set to average power ptx under the given
// extinction ratio and returns it. See AdjustPower for the policy split.
func (p *PAM) Adjust(ptx, extinctionRatioDB float64) (*LevelSet, error) {
	return AdjustPower(p.ls, ptx, extinctionRatioDB)
}

// BERAWGN evaluates the closed-form BER of the held set under noise and
// returns the aggregate rate plus the per-level breakdown.
func (p *PAM) BERAWGN(noise NoiseModel) (float64, []float64, error) {
	ber, err := EvaluateBER(p.ls, noise)
	if err != nil {
		return 0, nil, err
	}

	return ber.BERTotal, ber.BERPerLevel, nil
}

// Modulate maps Gray-coded symbol values to amplitude levels: symbol s is
// transmitted on the level whose Gray label equals s, so adjacent levels
// differ in exactly one bit.
//
// Errors: ErrOrderNotPowerOfTwo when M is not a power of two;
// ErrSymbolRange when any symbol lies outside 0..M-1.
//
// Complexity: O(len(symbols)).
func (p *PAM) Modulate(symbols []int) ([]float64, error) {
	if p.levelOf == nil {
		return nil, ErrOrderNotPowerOfTwo
	}

	out := make([]float64, len(symbols))
	for i, s := range symbols {
		if s < 0 || s >= p.ls.M {
			return nil, ErrSymbolRange
		}
		out[i] = p.ls.Levels[p.levelOf[s]]
	}

	return out, nil
}

// Demodulate slices received samples against the decision thresholds and
// returns the Gray-coded symbol values. Samples below every threshold map to
// the bottom level's symbol, above every threshold to the top level's.
//
// Errors: ErrOrderNotPowerOfTwo when M is not a power of two.
//
// Complexity: O(len(samples)·log M) (binary search per sample).
func (p *PAM) Demodulate(samples []float64) ([]int, error) {
	if p.grayOf == nil {
		return nil, ErrOrderNotPowerOfTwo
	}

	out := make([]int, len(samples))
	for i, x := range samples {
		// Level index = number of thresholds strictly below the sample;
		// a sample exactly on a threshold resolves to the lower level.
		k := sort.SearchFloat64s(p.ls.Thresholds, x)
		out[i] = p.grayOf[k]
	}

	return out, nil
}

// grayTables builds the level↔symbol Gray maps for a power-of-two order m:
// level k carries gray(k) = k XOR (k >> 1).
func grayTables(m int) (grayOf, levelOf []int) {
	grayOf = make([]int, m)
	levelOf = make([]int, m)
	for k := 0; k < m; k++ {
		g := k ^ (k >> 1)
		grayOf[k] = g
		levelOf[g] = k
	}

	return grayOf, levelOf
}

// BitsPerSymbol returns log2(M) for power-of-two orders, which callers use
// to size bit buffers; for other orders it returns floor(log2(M)).
func (p *PAM) BitsPerSymbol() int { return bits.Len(uint(p.ls.M)) - 1 }
