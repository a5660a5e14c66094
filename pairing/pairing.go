// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

import (
	"math/rand/v2"

	"github.com/danielhkuo/nicer-face/faces"
	"github.com/danielhkuo/nicer-face/models"
)

// Rand is the random source used for shuffling. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand uses the math/rand/v2 top-level functions, which are safe
// for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Generator produces a fresh perfect matching of the catalog per session.
type Generator struct {
	catalog *faces.Catalog
	rng     Rand
}

// NewGenerator returns a Generator over catalog. A nil rng means the
// process-wide source, which is what the server uses.
func NewGenerator(catalog *faces.Catalog, rng Rand) *Generator {
	if rng == nil {
		rng = globalRand{}
	}
	return &Generator{catalog: catalog, rng: rng}
}

// Generate shuffles the catalog and cuts it into consecutive pairs,
// flipping left/right independently for each pair. Every face appears in
// exactly one pair.
//
// A Generator built with a non-global rng must not be shared between
// goroutines unless that rng is itself safe for concurrent use.
func (g *Generator) Generate() []models.TrialPair {
	ids := g.catalog.IDs()

	for i := len(ids) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}

	pairs := make([]models.TrialPair, 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		if g.rng.IntN(2) == 0 {
			pairs = append(pairs, models.TrialPair{Left: ids[i], Right: ids[i+1]})
		} else {
			pairs = append(pairs, models.TrialPair{Left: ids[i+1], Right: ids[i]})
		}
	}
	return pairs
}
