// Package levels picks "nice" contour levels for a data range.
//
// 🚀 What does it solve?
//
//	Given min=-3.7, max=12.2 and a wish for ~20 contour intervals, a
//	plot wants levels like -4, -3, ..., 12 rather than -3.7, -2.9, ...
//	levels searches a fixed menu of round spacings derived from the
//	data's power of ten and keeps the one whose level count lands
//	closest to the target.
//
// ✨ Algorithm:
//  1. tens = 10^floor(log10(max(|min|, |max|))); a NaN side defers to the other.
//  2. For each factor in [2 5 10 20 50 100 200 500 1000]:
//     spacing = tens/factor
//     locator = 5·tens/factor if the factor starts with '5', else 10·tens/factor
//     levels  = round(min, spacing) … round(max, spacing) inclusive, step spacing
//  3. Keep the candidate minimizing |len(levels) − N|; ties keep the earlier factor.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/plotnum/levels"
//
//	lv, err := levels.Auto(0, 100, levels.WithCount(10))
//	if err != nil {
//	  // ErrUndefinedRange
//	}
//	fmt.Println(lv.Values, lv.Locator) // [0 10 ... 100] 100
//
// Complexity:
//
//   - Time:   O(F·L), F factors, L levels per candidate (bounded by the factor)
//   - Memory: O(F·L)
package levels
