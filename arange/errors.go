// SPDX-License-Identifier: MIT
// Package: plotnum/arange
//
// errors.go — sentinel errors for the arange package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w through arangeErrorf; sentinels are never
//     rebuilt with formatted strings.
//   • Generators never panic on user input.

package arange

import (
	"errors"
	"fmt"
)

// Method names used as error context prefixes.
const (
	MethodResolve = "Resolve"
	MethodInts    = "Ints"
	MethodFloats  = "Floats"
)

// ErrArgCount indicates that Resolve/Inclusive received no arguments or
// more than three. Accepted forms are (stop), (start, stop), (start, stop, step).
var ErrArgCount = errors.New("arange: takes from one to three arguments")

// ErrZeroStep indicates step == 0; no finite sequence can be produced.
var ErrZeroStep = errors.New("arange: step must be non-zero")

// ErrNonFinite indicates a NaN or ±Inf start, stop or step on the float path,
// for which the sequence length is undefined.
var ErrNonFinite = errors.New("arange: bounds and step must be finite")

// ErrTooLong indicates that the requested sequence would hold more than
// MaxLen elements.
var ErrTooLong = errors.New("arange: sequence too long")

// arangeErrorf prefixes err with the method name and a formatted detail,
// keeping err matchable through errors.Is.
func arangeErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
