package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/optiq/rootfind"
)

// benchmarkSolve runs Solve b.N times on the supplied objective and fails on
// unexpected errors.
func benchmarkSolve(b *testing.B, f rootfind.Func) {
	opts := rootfind.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Solve(f, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Linear benchmarks the cheapest possible objective.
func BenchmarkSolve_Linear(b *testing.B) {
	benchmarkSolve(b, func(x float64) float64 { return x - 3 })
}

// BenchmarkSolve_GaussianTail benchmarks the objective shape the level-spacing
// optimizer actually solves (complementary error function minus a budget).
func BenchmarkSolve_GaussianTail(b *testing.B) {
	const pe = 1e-4
	benchmarkSolve(b, func(x float64) float64 {
		return 0.5*math.Erfc(x/math.Sqrt2) - pe
	})
}
