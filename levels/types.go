// SPDX-License-Identifier: MIT
// Package: plotnum/levels
//
// types.go — defaults and result types.

package levels

// DefaultCount is the target number of levels when WithCount is not given.
const DefaultCount = 50

// defaultFactors is the ordered menu of divisors applied to the base power
// of ten. Order matters: ties resolve to the earlier factor. Never mutated.
var defaultFactors = [...]int{2, 5, 10, 20, 50, 100, 200, 500, 1000}

// DefaultFactors returns a fresh copy of the default factor menu.
func DefaultFactors() []int {
	fs := defaultFactors

	return fs[:]
}

// Candidate is one evaluated spacing.
type Candidate struct {
	Factor  int       // divisor of the base power of ten
	Spacing float64   // tens / Factor
	Locator float64   // suggested major tick interval
	Values  []float64 // rounded, inclusive level boundaries
}

// Levels is the selected candidate.
type Levels struct {
	Values  []float64
	Spacing float64
	Locator float64
	Factor  int
}
