package chip

import "math/rand"

// RNG is the machine's random byte source. Seeded construction keeps whole
// game runs reproducible for a given seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a random source from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// RandomByte returns a uniformly distributed value in [0, mask].
func (g *RNG) RandomByte(mask uint8) uint8 {
	return uint8(g.r.Intn(int(mask) + 1))
}
