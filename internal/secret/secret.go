// internal/secret/secret.go
//
// Secret number generation for game rounds.
// The random source is created on the first call and reused afterwards.
// A Provider is not safe for concurrent use; the game only ever drives it
// from a single goroutine.

package secret

import (
	"math/rand"
	"time"
)

// Provider hands out one secret per round.
type Provider struct {
	rng    *rand.Rand
	seed   int64
	seeded bool
}

// New returns a Provider seeded from the clock on first use.
func New() *Provider {
	return &Provider{}
}

// NewSeeded returns a Provider with a fixed seed, giving a reproducible
// sequence of secrets.
func NewSeeded(seed int64) *Provider {
	return &Provider{seed: seed, seeded: true}
}

// Generate returns a value uniformly distributed in [min, max).
// Callers must guarantee min < max.
func (p *Provider) Generate(min, max int) int {
	return min + p.source().Intn(max-min)
}

func (p *Provider) source() *rand.Rand {
	if p.rng == nil {
		seed := p.seed
		if !p.seeded {
			seed = time.Now().UnixNano()
		}
		p.rng = rand.New(rand.NewSource(seed))
	}
	return p.rng
}
