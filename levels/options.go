// SPDX-License-Identifier: MIT
// Package: plotnum/levels
//
// options.go — functional options for Auto and Candidates.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Auto/Candidates themselves never panic.
//   • Options apply in order; later ones override earlier ones.

package levels

// Option customizes a level search.
type Option func(*config)

// config holds the resolved knobs.
//
// Defaults:
//   • count   = DefaultCount (50)
//   • factors = DefaultFactors()
type config struct {
	count   int
	factors []int
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{count: DefaultCount, factors: DefaultFactors()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCount sets the target number of levels N. Panics if n < 1.
func WithCount(n int) Option {
	if n < 1 {
		panic("levels: WithCount(n<1)")
	}
	return func(c *config) {
		c.count = n
	}
}

// WithFactors replaces the factor menu. The slice is copied.
// Panics on an empty menu or a non-positive factor.
func WithFactors(factors ...int) Option {
	if len(factors) == 0 {
		panic("levels: WithFactors()")
	}
	for _, f := range factors {
		if f <= 0 {
			panic("levels: WithFactors(f<=0)")
		}
	}
	fs := append([]int(nil), factors...)
	return func(c *config) {
		c.factors = fs
	}
}
