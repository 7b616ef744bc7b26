package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fourbar/rootfind"
)

// BenchmarkNewton_Trig measures a typical well-conditioned trig solve.
func BenchmarkNewton_Trig(b *testing.B) {
	df := func(x float64) float64 { return -math.Sin(x) }
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Newton(math.Cos, df, 1); err != nil {
			b.Fatalf("Newton failed: %v", err)
		}
	}
}

// BenchmarkSecant_Trig measures the same solve without an analytic slope.
func BenchmarkSecant_Trig(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Secant(math.Cos, 1, 1.1); err != nil {
			b.Fatalf("Secant failed: %v", err)
		}
	}
}
