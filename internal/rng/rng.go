// Package rng implements the deterministic battle PRNG.
//
// The generator is a 32-bit linear congruential generator using the same
// constants as Pokémon Showdown, so seeded battles replay identically
// against reference transcripts. All operations are fixed-width integer
// arithmetic and produce the same stream on every architecture.
package rng

const (
	multiplier = 0x41C64E6D
	increment  = 0x6073
)

// Generator is a seeded 32-bit LCG. It is not safe for concurrent use;
// each battle owns exactly one Generator.
type Generator struct {
	seed  uint32
	state uint32
}

// New creates a generator from a 32-bit seed.
func New(seed uint32) *Generator {
	return &Generator{seed: seed, state: seed}
}

// Restore creates a generator positioned at a previously captured state.
func Restore(seed, state uint32) *Generator {
	return &Generator{seed: seed, state: state}
}

// advance steps the LCG and returns the new 32-bit state.
func (g *Generator) advance() uint32 {
	g.state = g.state*multiplier + increment
	return g.state
}

// Next returns a uniform integer in [0, n). n must be positive.
// The draw uses the high 16 bits of the advanced state.
func (g *Generator) Next(n int) int {
	return int((g.advance() >> 16) % uint32(n))
}

// Chance returns true with probability num/den.
func (g *Generator) Chance(num, den int) bool {
	return g.Next(den) < num
}

// Range returns a uniform integer in [lo, hi] inclusive.
func (g *Generator) Range(lo, hi int) int {
	return lo + g.Next(hi-lo+1)
}

// Shuffle permutes items in place with a Fisher-Yates walk from the tail.
func (g *Generator) Shuffle(items []int) {
	for i := len(items) - 1; i > 0; i-- {
		j := g.Next(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample returns k distinct elements of population, drawn without
// replacement. If k exceeds the population size the whole population is
// returned in draw order.
func (g *Generator) Sample(population []int, k int) []int {
	if k > len(population) {
		k = len(population)
	}
	pool := make([]int, len(population))
	copy(pool, population)
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		idx := g.Next(len(pool))
		out = append(out, pool[idx])
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint32 { return g.seed }

// State returns the current internal state word.
func (g *Generator) State() uint32 { return g.state }

// SetState repositions the generator. Used when restoring a snapshot.
func (g *Generator) SetState(state uint32) { g.state = state }

// Clone returns an independent generator with identical state.
func (g *Generator) Clone() *Generator {
	return &Generator{seed: g.seed, state: g.state}
}
