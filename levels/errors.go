// SPDX-License-Identifier: MIT
// Package: plotnum/levels
//
// errors.go — sentinel errors for the levels package.
//
// Callers branch with errors.Is; context is attached via levelsErrorf.

package levels

import (
	"errors"
	"fmt"
)

// Method names used as error context prefixes.
const (
	MethodMagnitude  = "Magnitude"
	MethodCandidates = "Candidates"
)

// ErrUndefinedRange indicates that no base magnitude exists for the range:
// both bounds are NaN, or a bound is ±Inf.
var ErrUndefinedRange = errors.New("levels: undefined data range")

// levelsErrorf prefixes err with the method name and a formatted detail.
func levelsErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
