package movingmedian

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	f := New[float64](1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.Add(rng.Float64() * 1000)
	}
}

func BenchmarkMedian(b *testing.B) {
	for _, size := range []int{16, 128, 1024} {
		b.Run(fmt.Sprintf("window_%d", size), func(b *testing.B) {
			rng := rand.New(rand.NewSource(42))
			f := New[float64](size)
			for i := 0; i < size; i++ {
				f.Add(rng.Float64() * 1000)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.Median()
			}
		})
	}
}
