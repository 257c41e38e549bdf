// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lottery generates lottery tickets.

# Sampling

All randomness flows through a Sampler, which returns a uniform integer in
an inclusive range:

	s := lottery.NewSampler()        // math/rand/v2, concurrency-safe
	s := lottery.NewSeededSampler(7) // reproducible
	s := lottery.NewSequenceSampler(5, 12, 23, 45, 67, 15, 3) // fixed draws

UniqueSet draws distinct numbers by rejection sampling and returns them
sorted. It fails with ErrInvalidParameters when the pool is smaller than
the requested count instead of looping forever:

	nums, err := lottery.UniqueSet(s, 5, 1, 69)

ChooseOption picks a list element by sampling its index.

# Tickets

A Generator assembles tickets for a Variant. Draw order is fixed: main
numbers, special number, multiplier index.

	g := lottery.NewGenerator(s)
	t := g.GeneratePowerball()    // 5 of 1-69, Powerball 1-26, Power Play {2,3,4,5,10}
	t = g.GenerateMegaMillions()  // 5 of 1-70, Mega Ball 1-25, Megaplier {2,3,4,5}

# Variants

DefaultCatalog holds the two built-in games. LoadCatalog adds games from a
YAML file; every definition is checked before use:

	variants:
	  - key: lotto-645
	    name: Lotto 6/45
	    pick: 6
	    pool: {min: 1, max: 45}
	    special: {min: 1, max: 45}
	    special_label: Bonus
	    multipliers: [1]
	    multiplier_label: Multiplier
*/
package lottery
