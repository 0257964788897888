// SPDX-License-Identifier: MIT
// Package: plotnum/arange
//
// types.go — resolved bounds and the type-tagged sequence result.

package arange

// Kind tags the numeric representation chosen for a sequence.
//
//   - KindInt   — every bound was an exact integer; values live in Sequence.Ints.
//   - KindFloat — at least one bound was fractional or non-finite; values live
//     in Sequence.Floats.
type Kind int

const (
	// KindInt marks an int64 sequence.
	KindInt Kind = iota

	// KindFloat marks a float64 sequence.
	KindFloat
)

// String returns "int" or "float".
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Bounds is the fully resolved (start, stop, step) triple.
// Stop is the INCLUSIVE endpoint requested by the caller.
type Bounds struct {
	Start float64
	Stop  float64
	Step  float64
}

// Sequence is the result of Inclusive. Exactly one of Ints/Floats is
// populated, as selected by Kind.
type Sequence struct {
	Kind   Kind
	Ints   []int64
	Floats []float64
}

// Len returns the number of elements regardless of Kind.
func (s Sequence) Len() int {
	if s.Kind == KindInt {
		return len(s.Ints)
	}

	return len(s.Floats)
}

// At returns element i widened to float64.
// Panics if i is out of range, like a slice index.
func (s Sequence) At(i int) float64 {
	if s.Kind == KindInt {
		return float64(s.Ints[i])
	}

	return s.Floats[i]
}

// Float64s returns a fresh []float64 copy of the sequence.
// Integer sequences are widened element by element.
func (s Sequence) Float64s() []float64 {
	out := make([]float64, s.Len())
	if s.Kind == KindInt {
		for i, v := range s.Ints {
			out[i] = float64(v)
		}

		return out
	}
	copy(out, s.Floats)

	return out
}
