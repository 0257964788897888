// SPDX-License-Identifier: MIT
// Package: plotnum/levels
//
// levels.go — base magnitude, rounding, locator and candidate search.

package levels

import (
	"math"
	"strconv"

	"github.com/katalvlaran/plotnum/arange"
)

// minNormal is the smallest positive normal float64 (2^-1022).
const minNormal = 0x1p-1022

// Auto returns the candidate whose level count is closest to the target
// (DefaultCount unless WithCount is given). Ties keep the earlier factor.
//
// A single NaN bound collapses onto the other bound. When lo > hi every
// candidate is empty and the first factor is returned with no values.
//
// Errors: ErrUndefinedRange.
func Auto(lo, hi float64, opts ...Option) (Levels, error) {
	cfg := newConfig(opts...)
	cands, err := candidates(lo, hi, cfg)
	if err != nil {
		return Levels{}, err
	}

	best, bestDiff := 0, absInt(len(cands[0].Values)-cfg.count)
	for i := 1; i < len(cands); i++ {
		if d := absInt(len(cands[i].Values) - cfg.count); d < bestDiff {
			best, bestDiff = i, d
		}
	}

	c := cands[best]
	return Levels{Values: c.Values, Spacing: c.Spacing, Locator: c.Locator, Factor: c.Factor}, nil
}

// Candidates evaluates every factor in menu order and returns all of them.
func Candidates(lo, hi float64, opts ...Option) ([]Candidate, error) {
	return candidates(lo, hi, newConfig(opts...))
}

func candidates(lo, hi float64, cfg config) ([]Candidate, error) {
	tens, err := Magnitude(lo, hi)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(lo) {
		lo = hi
	}
	if math.IsNaN(hi) {
		hi = lo
	}

	out := make([]Candidate, 0, len(cfg.factors))
	for _, f := range cfg.factors {
		spacing := tens / float64(f)
		seq, err := arange.Inclusive(RoundTo(lo, spacing), RoundTo(hi, spacing), spacing)
		if err != nil {
			return nil, levelsErrorf(MethodCandidates, "factor=%d", err, f)
		}
		out = append(out, Candidate{
			Factor:  f,
			Spacing: spacing,
			Locator: LocatorFor(tens, f),
			Values:  seq.Float64s(),
		})
	}

	return out, nil
}

// Magnitude returns tens = 10^max(floor(log10|lo|), floor(log10|hi|)).
//
//   - a NaN bound takes the other bound's exponent;
//   - both bounds zero fall back to tens = 1, as does a subnormal range
//     (e.g. 5e-324) whose spacings would underflow to 0;
//   - both NaN, or any ±Inf, is ErrUndefinedRange.
func Magnitude(lo, hi float64) (float64, error) {
	if math.IsNaN(lo) && math.IsNaN(hi) {
		return 0, levelsErrorf(MethodMagnitude, "lo=NaN hi=NaN", ErrUndefinedRange)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, levelsErrorf(MethodMagnitude, "lo=%g hi=%g", ErrUndefinedRange, lo, hi)
	}

	eLo, eHi := decade(lo), decade(hi)
	if math.IsNaN(eLo) {
		eLo = eHi
	}
	if math.IsNaN(eHi) {
		eHi = eLo
	}
	e := math.Max(eLo, eHi)
	if math.IsInf(e, -1) {
		return 1, nil
	}
	tens := math.Pow10(int(e))
	if tens < minNormal {
		return 1, nil
	}

	return tens, nil
}

// RoundTo rounds x to the nearest multiple of base, halves to even.
func RoundTo(x, base float64) float64 {
	return base * math.RoundToEven(x/base)
}

// LocatorFor returns the tick interval paired with tens/factor:
// 5·tens/factor when the factor's leading decimal digit is '5',
// otherwise 10·tens/factor.
func LocatorFor(tens float64, factor int) float64 {
	if strconv.Itoa(factor)[0] == '5' {
		return 5 * tens / float64(factor)
	}

	return 10 * tens / float64(factor)
}

// decade returns floor(log10|x|) as float64: -Inf for zero, NaN for NaN.
// math.Log10 can land just below an exact power of ten (1000 → 2.99…),
// so the exponent is corrected against math.Pow10.
func decade(x float64) float64 {
	ax := math.Abs(x)
	if math.IsNaN(ax) {
		return math.NaN()
	}
	if ax == 0 {
		return math.Inf(-1)
	}

	e := int(math.Floor(math.Log10(ax)))
	if math.Pow10(e+1) <= ax {
		e++
	} else if math.Pow10(e) > ax {
		e--
	}

	return float64(e)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
