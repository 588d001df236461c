package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	referencePrefix  = "EVT"
	referenceSpace   = 1000
	maxReferenceDraw = 20
)

var ErrReferenceExhausted = errors.New("could not draw an unused booking reference")

// ReferenceGenerator produces EVT-<year>-<NNN> booking references. Draws are
// independent, so two bookings can share a reference unless the caller
// checks with Unique.
type ReferenceGenerator struct {
	now  Clock
	intn func(n int) int
}

func NewReferenceGenerator(now Clock, intn func(n int) int) *ReferenceGenerator {
	if now == nil {
		now = time.Now
	}
	if intn == nil {
		intn = rand.IntN
	}
	return &ReferenceGenerator{now: now, intn: intn}
}

func (g *ReferenceGenerator) Generate() string {
	return fmt.Sprintf("%s-%d-%03d", referencePrefix, g.now().Year(), g.intn(referenceSpace))
}

// Unique draws until taken reports an unused reference, giving up after a
// bounded number of attempts.
func (g *ReferenceGenerator) Unique(taken func(ref string) bool) (string, error) {
	if taken == nil {
		return g.Generate(), nil
	}
	for i := 0; i < maxReferenceDraw; i++ {
		ref := g.Generate()
		if !taken(ref) {
			return ref, nil
		}
	}
	return "", ErrReferenceExhausted
}
