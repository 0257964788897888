// Package arange generates evenly spaced numeric sequences whose stop value
// is INCLUDED, the way plot axes and contour levels usually want them.
//
// 🚀 What is an inclusive range?
//
//	A half-open generator for (0, 1, 0.25) yields 0, 0.25, 0.5, 0.75.
//	arange extends the upper bound so the endpoint survives:
//	  • integer input   → stop is pushed one unit past the endpoint
//	  • fractional input → stop is pushed half a step past the endpoint,
//	    which absorbs floating-point rounding in the step arithmetic
//
// ✨ Key features:
//   - argument-count dispatch: (stop) | (start, stop) | (start, stop, step)
//   - explicit type tagging: KindInt or KindFloat, decided once by Classify
//   - typed entry points (Ints, Floats) when the caller already knows the type
//   - pure functions, no hidden state: identical input, identical output
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/plotnum/arange"
//
//	seq, err := arange.Inclusive(0, 1, 0.25)
//	if err != nil {
//	  // handle ErrArgCount / ErrZeroStep / ErrNonFinite
//	}
//	fmt.Println(seq.Kind, seq.Floats) // float [0 0.25 0.5 0.75 1]
//
// Complexity:
//
//   - Time:   O(L), L = length of the produced sequence
//   - Memory: O(L)
//
// See example_test.go for runnable snippets.
package arange
