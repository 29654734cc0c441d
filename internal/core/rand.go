package core

import "math/rand"

// RandRange returns a uniform random integer in the INCLUSIVE range
// [lo, hi]. Every randomized decision in the game (wave sizes, spawn
// delays, spawn positions, species picks) goes through this with a
// session-seeded source, which keeps sessions reproducible under a
// fixed seed. Returns lo when hi <= lo.
func RandRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
