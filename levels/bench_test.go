package levels_test

import (
	"testing"

	"github.com/katalvlaran/plotnum/levels"
)

func BenchmarkAuto(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = levels.Auto(-3.7, 12.2)
	}
}
