package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^EVT-\d{4}-\d{3}$`)

func TestGenerateReference(t *testing.T) {
	g := NewReferenceGenerator(fixedClock, sequence(7))
	assert.Equal(t, "EVT-2025-007", g.Generate())

	g = NewReferenceGenerator(fixedClock, sequence(0))
	assert.Equal(t, "EVT-2025-000", g.Generate())

	g = NewReferenceGenerator(fixedClock, sequence(999))
	assert.Equal(t, "EVT-2025-999", g.Generate())
}

func TestGenerateReferenceRandom(t *testing.T) {
	g := NewReferenceGenerator(nil, nil)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, referencePattern, g.Generate())
	}
}

func TestUniqueReference(t *testing.T) {
	g := NewReferenceGenerator(fixedClock, sequence(1, 1, 2))
	taken := map[string]bool{"EVT-2025-001": true}

	ref, err := g.Unique(func(r string) bool { return taken[r] })
	require.NoError(t, err)
	assert.Equal(t, "EVT-2025-002", ref)
}

func TestUniqueReferenceExhausted(t *testing.T) {
	g := NewReferenceGenerator(fixedClock, sequence(5))

	_, err := g.Unique(func(string) bool { return true })
	assert.ErrorIs(t, err, ErrReferenceExhausted)
}
