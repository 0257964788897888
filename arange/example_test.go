package arange_test

import (
	"fmt"

	"github.com/katalvlaran/plotnum/arange"
)

// ExampleInclusive shows the three argument forms.
func ExampleInclusive() {
	for _, args := range [][]float64{{5}, {2, 5}, {0, 1, 0.25}} {
		seq, err := arange.Inclusive(args...)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(seq.Kind, seq.Float64s())
	}
	// Output:
	// int [0 1 2 3 4 5]
	// int [2 3 4 5]
	// float [0 0.25 0.5 0.75 1]
}

// ExampleInclusive_argCount shows the only argument-shape error.
func ExampleInclusive_argCount() {
	_, err := arange.Inclusive(1, 2, 3, 4)
	fmt.Println(err)
	// Output:
	// Resolve: got 4: arange: takes from one to three arguments
}
