// Package collapse - RNG policy for generation runs.
//
// All nondeterminism in a run (initial-tile selection when unseeded,
// weighted resolution) flows through a single *rand.Rand so that identical
// seeds reproduce identical boards across platforms. There is no hidden
// global source and no time-based seeding anywhere in the package.
package collapse

import "math/rand"

// defaultRNGSeed is the fixed seed used when Options carries neither an
// explicit generator nor a non-zero seed. The value is arbitrary but
// stable, so the zero Options stays a documented reproducible fixture.
const defaultRNGSeed int64 = 8675309

// rngFromOptions resolves the run's generator.
// Policy: explicit Rand wins; else Seed, with 0 ⇒ defaultRNGSeed.
// Complexity: O(1).
func rngFromOptions(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}
	s := opts.Seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
