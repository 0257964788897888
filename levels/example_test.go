package levels_test

import (
	"fmt"

	"github.com/katalvlaran/plotnum/levels"
)

// ExampleAuto picks ~10 contour levels for data spanning 0..100.
func ExampleAuto() {
	lv, err := levels.Auto(0, 100, levels.WithCount(10))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("values=%v\nspacing=%g locator=%g\n", lv.Values, lv.Spacing, lv.Locator)
	// Output:
	// values=[0 10 20 30 40 50 60 70 80 90 100]
	// spacing=10 locator=100
}

// ExampleCandidates lists the level count for each spacing on 0..100.
func ExampleCandidates() {
	cands, _ := levels.Candidates(0, 100, levels.WithFactors(2, 5, 10))
	for _, c := range cands {
		fmt.Printf("spacing=%g locator=%g n=%d\n", c.Spacing, c.Locator, len(c.Values))
	}
	// Output:
	// spacing=50 locator=500 n=3
	// spacing=20 locator=100 n=6
	// spacing=10 locator=100 n=11
}
