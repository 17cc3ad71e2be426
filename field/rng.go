// SPDX-License-Identifier: MIT

package field

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
// The returned generator is not goroutine-safe and is never shared.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
