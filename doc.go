// Package plotnum is a small set of numeric helpers for getting data ready
// to plot: sequences that include their endpoint, and contour levels that
// land on round numbers.
//
// 🚀 What is in the box?
//
//	• arange/ — inclusive range generator: (stop) | (start, stop) | (start, stop, step),
//	            integer or float output decided once from the inputs
//	• levels/ — "nice" contour levels: searches round spacings around the
//	            data's power of ten and keeps the count closest to a target
//
// ✨ Why plotnum?
//
//   - Pure functions – no state, no I/O, identical input gives identical output
//   - Explicit errors – sentinel values checked with errors.Is
//   - Pure Go – no cgo; go-moremath for evenly spaced fills
//
// Quick example:
//
//	lv, _ := levels.Auto(-3.7, 12.2, levels.WithCount(20))
//	// lv.Values  = [-4 -3 ... 12], lv.Spacing = 1, lv.Locator = 10
//
//	go get github.com/katalvlaran/plotnum
package plotnum
