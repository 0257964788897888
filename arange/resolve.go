// SPDX-License-Identifier: MIT
// Package: plotnum/arange
//
// resolve.go — argument-count dispatch and integer/float classification.

package arange

import "math"

// maxExactInt is the largest magnitude at which every integer is exactly
// representable as float64 (2^53). Larger values classify as KindFloat.
const maxExactInt = 1 << 53

// Resolve maps 1..3 positional arguments onto a Bounds triple:
//
//	(stop)              → Bounds{0, stop, 1}
//	(start, stop)       → Bounds{start, stop, 1}
//	(start, stop, step) → Bounds{start, stop, step}
//
// Any other count returns ErrArgCount.
func Resolve(args ...float64) (Bounds, error) {
	switch len(args) {
	case 1:
		return Bounds{Start: 0, Stop: args[0], Step: 1}, nil
	case 2:
		return Bounds{Start: args[0], Stop: args[1], Step: 1}, nil
	case 3:
		return Bounds{Start: args[0], Stop: args[1], Step: args[2]}, nil
	default:
		return Bounds{}, arangeErrorf(MethodResolve, "got %d", ErrArgCount, len(args))
	}
}

// Classify returns KindInt when start, stop and step are all exact integers
// (finite, no fractional part, |x| ≤ 2^53), else KindFloat.
func Classify(b Bounds) Kind {
	if isIntegral(b.Start) && isIntegral(b.Stop) && isIntegral(b.Step) {
		return KindInt
	}

	return KindFloat
}

// isIntegral reports whether x is a finite, exactly representable integer.
func isIntegral(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	if math.Abs(x) > maxExactInt {
		return false
	}

	return math.Trunc(x) == x
}
