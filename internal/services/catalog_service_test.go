package services

import (
	"testing"

	"github.com/joshua-takyi/eventbook/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSuitableVenues(t *testing.T) {
	cs := NewCatalogService(fixtureCatalog())

	tests := []struct {
		attendees int
		expected  []string
	}{
		{0, []string{"v-small", "v-medium", "v-large"}},
		{-5, []string{"v-small", "v-medium", "v-large"}},
		{100, []string{"v-small", "v-medium", "v-large"}},
		{101, []string{"v-medium", "v-large"}},
		{2000, []string{"v-large"}},
		{10000, []string{}},
	}

	for _, tc := range tests {
		venues := cs.SuitableVenues(tc.attendees)

		ids := make([]string, 0, len(venues))
		for _, v := range venues {
			assert.GreaterOrEqual(t, v.Capacity, tc.attendees)
			ids = append(ids, v.ID)
		}
		assert.Equal(t, tc.expected, ids, "attendees=%d", tc.attendees)
	}
}

func TestCatalogLookups(t *testing.T) {
	cs := NewCatalogService(fixtureCatalog())

	v, ok := cs.VenueByID("v-medium")
	assert.True(t, ok)
	assert.Equal(t, 250, v.Capacity)

	_, ok = cs.VenueByID("v-unknown")
	assert.False(t, ok)

	s, ok := cs.ServiceByID("s-dj")
	assert.True(t, ok)
	assert.Equal(t, 25000.0, s.BasePrice)

	_, ok = cs.ServiceByID("")
	assert.False(t, ok)
}

func TestServicesByCategory(t *testing.T) {
	cs := NewCatalogService(fixtureCatalog())

	assert.Len(t, cs.ServicesByCategory(""), 3)

	food := cs.ServicesByCategory(models.CategoryFood)
	if assert.Len(t, food, 1) {
		assert.Equal(t, "s-snacks", food[0].ID)
	}

	assert.Empty(t, cs.ServicesByCategory(models.CategoryDecoration))
}
