package pam

import "errors"

var (
	// ErrInvalidOrder indicates a constellation order M < 2.
	ErrInvalidOrder = errors.New("pam: constellation order must be at least 2")
	// ErrOrderNotPowerOfTwo indicates a Gray-coded operation was requested for
	// an order that is not a power of two.
	ErrOrderNotPowerOfTwo = errors.New("pam: Gray coding requires a power-of-two order")
	// ErrLengthMismatch indicates SetLevels received the wrong number of
	// levels or thresholds for the constellation order.
	ErrLengthMismatch = errors.New("pam: need exactly M levels and M-1 thresholds")
	// ErrZeroTopLevel indicates normalization was requested while the top
	// level is zero (no divisor exists).
	ErrZeroTopLevel = errors.New("pam: cannot normalize a level set with zero top level")
	// ErrNotMonotonic indicates Validate found levels and thresholds that do
	// not strictly interleave.
	ErrNotMonotonic = errors.New("pam: levels and thresholds must strictly interleave")
	// ErrNilNoise indicates a nil noise model was supplied.
	ErrNilNoise = errors.New("pam: noise model must be non-nil")
	// ErrNoiseDomain indicates a noise model returned a non-positive or
	// non-finite standard deviation.
	ErrNoiseDomain = errors.New("pam: noise model returned non-positive or non-finite sigma")
	// ErrBadTarget indicates a target bit-error rate outside (0, 1).
	ErrBadTarget = errors.New("pam: target BER must lie in (0, 1)")
	// ErrBadPower indicates a non-positive or non-finite average transmit power.
	ErrBadPower = errors.New("pam: average transmit power must be positive and finite")
	// ErrBadOptions indicates an optimizer configuration with a non-positive
	// iteration budget or tolerance.
	ErrBadOptions = errors.New("pam: options must hold positive budgets and tolerances")
	// ErrUnknownSpacing indicates an unrecognized spacing policy tag.
	ErrUnknownSpacing = errors.New("pam: unknown spacing policy")
	// ErrSymbolRange indicates a symbol index outside 0..M-1.
	ErrSymbolRange = errors.New("pam: symbol index out of range")
	// ErrBadBitRate indicates a non-positive bit rate.
	ErrBadBitRate = errors.New("pam: bit rate must be positive")
)
