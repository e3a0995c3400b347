package pam_test

import (
	"testing"

	"github.com/katalvlaran/optiq/pam"
)

// benchmarkOptimize runs the optimizer b.N times for order m and fails on
// unexpected errors.
func benchmarkOptimize(b *testing.B, m int) {
	opts := pam.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pam.Optimize(m, 1e-4, -10, thermalShot, opts); err != nil {
			b.Fatalf("Optimize failed: %v", err)
		}
	}
}

// BenchmarkOptimize_M2 benchmarks binary signaling (1 threshold, 2 solves/iter).
func BenchmarkOptimize_M2(b *testing.B) { benchmarkOptimize(b, 2) }

// BenchmarkOptimize_M4 benchmarks the common 4-PAM case.
func BenchmarkOptimize_M4(b *testing.B) { benchmarkOptimize(b, 4) }

// BenchmarkOptimize_M8 benchmarks 8-PAM (7 thresholds, 14 solves/iter).
func BenchmarkOptimize_M8(b *testing.B) { benchmarkOptimize(b, 8) }

// BenchmarkEvaluateBER_M8 benchmarks the closed-form evaluator alone.
func BenchmarkEvaluateBER_M8(b *testing.B) {
	ls, err := pam.NewEquallySpaced(8)
	if err != nil {
		b.Fatalf("NewEquallySpaced failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pam.EvaluateBER(ls, thermalShot); err != nil {
			b.Fatalf("EvaluateBER failed: %v", err)
		}
	}
}
