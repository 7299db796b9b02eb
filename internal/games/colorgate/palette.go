package colorgate

import (
	"math/rand"

	"github.com/vovakirdan/colorgate/internal/core"
)

// Palette is the fixed set of gate colors a session draws from.
type Palette []core.Color

// Random returns a uniformly chosen palette entry.
func (p Palette) Random(rng *rand.Rand) core.Color {
	return p[rng.Intn(len(p))]
}

// RandomExcept returns a uniformly chosen entry that differs from current.
// If every entry equals current, current is returned unchanged.
func (p Palette) RandomExcept(rng *rand.Rand, current core.Color) core.Color {
	candidates := make([]core.Color, 0, len(p))
	for _, c := range p {
		if c != current {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return current
	}
	return candidates[rng.Intn(len(candidates))]
}
