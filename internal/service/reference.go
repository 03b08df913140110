package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const referenceDisambiguatorRange = 1000

// ReferenceGenerator produces complaint reference candidates, uniqueness is checked by caller
type ReferenceGenerator interface {
	Generate(at time.Time) string
}

type randomReferenceGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewReferenceGenerator builds generator of CMP-<epoch millis>-<3 digits> references
func NewReferenceGenerator() ReferenceGenerator {
	return &randomReferenceGenerator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))} //nolint:gosec // not a secret
}

func (g *randomReferenceGenerator) Generate(at time.Time) string {
	g.mu.Lock()
	n := g.rnd.Intn(referenceDisambiguatorRange)
	g.mu.Unlock()

	return fmt.Sprintf("CMP-%d-%03d", at.UnixMilli(), n)
}
