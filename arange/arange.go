// SPDX-License-Identifier: MIT
// Package: plotnum/arange
//
// arange.go — inclusive sequence generators.
//
// Contract:
//   • The stop value is part of the output whenever start + k·step hits it.
//   • Integer path: stop is extended by one unit toward step, then a
//     half-open range is generated.
//   • Float path: stop is extended by step/2, then a half-open range of
//     length n = ceil((stop'-start)/step) is spread evenly from start to
//     start + (n-1)·step.
//   • An empty (non-nil) slice is returned when start lies past stop.

package arange

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// MaxLen bounds the number of elements a single call may allocate.
const MaxLen = 1 << 31

// Inclusive is the general entry point: it resolves 1..3 arguments
// (see Resolve), classifies them once (see Classify) and delegates to
// Ints or Floats.
//
// Example:
//
//	seq, _ := Inclusive(5)          // int   [0 1 2 3 4 5]
//	seq, _ = Inclusive(2, 5)        // int   [2 3 4 5]
//	seq, _ = Inclusive(0, 1, 0.25)  // float [0 0.25 0.5 0.75 1]
//
// Errors: ErrArgCount, ErrZeroStep, ErrNonFinite, ErrTooLong.
func Inclusive(args ...float64) (Sequence, error) {
	b, err := Resolve(args...)
	if err != nil {
		return Sequence{}, err
	}

	if Classify(b) == KindInt {
		ints, err := Ints(int64(b.Start), int64(b.Stop), int64(b.Step))
		if err != nil {
			return Sequence{}, err
		}

		return Sequence{Kind: KindInt, Ints: ints}, nil
	}

	floats, err := Floats(b.Start, b.Stop, b.Step)
	if err != nil {
		return Sequence{}, err
	}

	return Sequence{Kind: KindFloat, Floats: floats}, nil
}

// Ints returns start, start+step, ... up to and including stop when it is
// reached exactly. A negative step walks downward.
//
// The bound is extended one unit in the direction of step (stop+1 for an
// ascending range, stop-1 for a descending one), not always stop+1, so
// Ints(5, 0, -1) includes 0.
//
// The count is computed in uint64 so that the stop+1 extension cannot
// overflow at the int64 limits.
func Ints(start, stop, step int64) ([]int64, error) {
	if step == 0 {
		return nil, arangeErrorf(MethodInts, "step=%d", ErrZeroStep, step)
	}

	var width, stride uint64
	if step > 0 {
		if stop < start {
			return make([]int64, 0), nil
		}
		width, stride = uint64(stop)-uint64(start), uint64(step)
	} else {
		if stop > start {
			return make([]int64, 0), nil
		}
		width, stride = uint64(start)-uint64(stop), uint64(-step)
	}

	// Same count as a half-open range over [start, stop±1). Checked before
	// the +1 so a full-width uint64 span cannot wrap to zero.
	steps := width / stride
	if steps >= MaxLen {
		return nil, arangeErrorf(MethodInts, "%d steps", ErrTooLong, steps)
	}
	n := steps + 1

	out := make([]int64, n)
	for i := range out {
		out[i] = start + int64(i)*step
	}

	return out, nil
}

// Floats returns start, start+step, ... including stop up to half a step of
// floating-point drift.
func Floats(start, stop, step float64) ([]float64, error) {
	if !isFinite(start) || !isFinite(stop) || !isFinite(step) {
		return nil, arangeErrorf(MethodFloats, "start=%g stop=%g step=%g", ErrNonFinite, start, stop, step)
	}
	if step == 0 {
		return nil, arangeErrorf(MethodFloats, "step=%g", ErrZeroStep, step)
	}

	return halfOpenFloats(start, stop+step/2, step)
}

// halfOpenFloats generates n = ceil((stop-start)/step) values from start
// to start + (n-1)·step, evenly spaced.
func halfOpenFloats(start, stop, step float64) ([]float64, error) {
	span := math.Ceil((stop - start) / step)
	if math.IsInf(span, 0) || span > MaxLen {
		return nil, arangeErrorf(MethodFloats, "span=%g", ErrTooLong, span)
	}
	if !(span > 0) {
		return make([]float64, 0), nil
	}

	n := int(span)

	return vec.Linspace(start, start+float64(n-1)*step, n), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
