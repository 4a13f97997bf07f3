package nussinov_test

import (
	"testing"

	"github.com/katalvlaran/rnafold/nussinov"
	"github.com/katalvlaran/rnafold/rna"
)

// benchmarkSolve runs Solve on a deterministic random sequence of length n.
func benchmarkSolve(b *testing.B, n int, opts ...nussinov.Option) {
	seq, err := rna.Random(n, rna.NewRNG(1))
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err = nussinov.Solve(seq, opts...); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks the sequential fill on 64 positions.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 64) }

// BenchmarkSolve_Medium benchmarks the sequential fill on 256 positions.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 256) }

// BenchmarkSolve_MediumParallel benchmarks the wavefront fill with 4 workers.
func BenchmarkSolve_MediumParallel(b *testing.B) {
	benchmarkSolve(b, 256, nussinov.WithParallel(4))
}

// BenchmarkFold_Medium benchmarks fill + traceback on 256 positions.
func BenchmarkFold_Medium(b *testing.B) {
	seq, err := rna.Random(256, rna.NewRNG(1))
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = nussinov.Fold(seq); err != nil {
			b.Fatalf("Fold failed: %v", err)
		}
	}
}
