package sweep

import (
	"errors"

	"github.com/katalvlaran/optiq/pam"
)

var (
	// ErrNoPowers indicates an empty power grid.
	ErrNoPowers = errors.New("sweep: power grid must be non-empty")
	// ErrNilModel indicates a nil noise model.
	ErrNilModel = errors.New("sweep: noise model must be non-nil")
)

// Config describes one BER-vs-power sweep.
//
// Fields:
//   - Order             — constellation order M, ≥ 2.
//   - Spacing           — pam.EquallySpaced evaluates the canonical grid;
//     pam.Optimized runs the level-spacing optimizer once and sweeps its
//     geometry across the power grid.
//   - BERTarget         — optimizer target, consumed only when Spacing is
//     pam.Optimized.
//   - ExtinctionRatioDB — extinction ratio forwarded to the optimizer and to
//     every power adjustment.
//   - Powers            — average transmit powers in linear units; one Point
//     is produced per entry, in order.
//   - Workers           — fan-out width; values < 1 select runtime.NumCPU().
//   - Optimizer         — optimizer options; the zero value selects
//     pam.DefaultOptions().
type Config struct {
	Order             int
	Spacing           pam.Spacing
	BERTarget         float64
	ExtinctionRatioDB float64
	Powers            []float64
	Workers           int
	Optimizer         pam.Options
}

// Point is the outcome of one grid entry.
type Point struct {
	// Power is the average transmit power this point was evaluated at.
	Power float64

	// BERTotal is the aggregate closed-form bit-error rate.
	BERTotal float64

	// BERPerLevel is the per-level breakdown (sums to BERTotal).
	BERPerLevel []float64
}

// Result is a completed sweep.
type Result struct {
	// Points holds one entry per configured power, in grid order.
	Points []Point

	// Iterations is the optimizer's outer-iteration count
	// (0 when Spacing == pam.EquallySpaced).
	Iterations int

	// Diagnostics carries the optimizer's non-fatal warnings, if any.
	Diagnostics []pam.Diagnostic
}
