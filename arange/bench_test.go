package arange_test

import (
	"testing"

	"github.com/katalvlaran/plotnum/arange"
)

func BenchmarkInclusive_Ints(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = arange.Inclusive(0, 10000)
	}
}

func BenchmarkInclusive_Floats(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = arange.Inclusive(0, 100, 0.01)
	}
}
