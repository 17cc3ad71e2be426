package sparse_test

import (
	"testing"

	"github.com/katalvlaran/wavekrylov/sparse"
)

// benchmarkMulVec runs MulVec on a random n×n operator with about 5 entries per row.
func benchmarkMulVec(b *testing.B, n int, opts ...sparse.Option) {
	rows, cols, vals := randomTriplets(n, n, 5*n, 1)
	a, err := sparse.New(n, n, rows, cols, vals, opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	x := randomState(n, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = a.MulVec(x); err != nil {
			b.Fatalf("MulVec failed: %v", err)
		}
	}
}

// BenchmarkMulVec_Serial64K benchmarks the serial row loop.
func BenchmarkMulVec_Serial64K(b *testing.B) { benchmarkMulVec(b, 1<<16) }

// BenchmarkMulVec_Parallel64K benchmarks four row chunks.
func BenchmarkMulVec_Parallel64K(b *testing.B) { benchmarkMulVec(b, 1<<16, sparse.WithWorkers(4)) }
