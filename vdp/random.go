package vdp

import (
	"math/rand"
	"time"
)

// vramSeeder fills VRAM with pseudo-random bytes at power-on, matching
// real hardware's undefined startup contents (spec.md §3) so that
// software relying on a zeroed VRAM is caught rather than silently
// working by accident.
//
// Grounded on the Gopher2600 "random" package's split between a
// time-seeded production generator and a fixed-seed deterministic one for
// tests (this core has no rewind system to keep in sync, so it's a
// simpler split: seeded vs. fixed).
type vramSeeder struct {
	zeroSeed bool
}

func (s vramSeeder) fill(vram []uint8) {
	seed := time.Now().UnixNano()
	if s.zeroSeed {
		seed = 0
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Read(vram)
}
