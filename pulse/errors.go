package pulse

import "errors"

var (
	// ErrEmptyTaps indicates an empty impulse response was supplied.
	ErrEmptyTaps = errors.New("pulse: impulse response must be non-empty")
	// ErrZeroCenterTap indicates the symbol-center reference tap is zero, so
	// no normalization scale exists.
	ErrZeroCenterTap = errors.New("pulse: symbol-center tap is zero")
	// ErrBadShape indicates invalid synthesis parameters (samples per symbol,
	// span or roll-off out of range).
	ErrBadShape = errors.New("pulse: invalid pulse-shape parameters")
)
