package models

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	catalog, err := LoadEmbeddedCatalog()
	require.NoError(t, err)

	assert.Len(t, catalog.Venues(), 6)
	assert.Len(t, catalog.Services(), 8)

	v, ok := catalog.VenueByID("venue-003")
	require.True(t, ok)
	assert.Equal(t, 100, v.Capacity)
	assert.Equal(t, 20000.0, v.BasePrice)

	s, ok := catalog.ServiceByID("service-002")
	require.True(t, ok)
	assert.True(t, s.PerAttendee())
	assert.Equal(t, 200.0, s.BasePrice)

	_, ok = catalog.VenueByID("venue-999")
	assert.False(t, ok)
	_, ok = catalog.ServiceByID("venue-001")
	assert.False(t, ok)
}

func TestStaticCatalogListingsAreCopies(t *testing.T) {
	catalog := NewStaticCatalog(
		[]Venue{{ID: "a", Capacity: 10}},
		[]Service{{ID: "b", BasePrice: 5}},
	)

	venues := catalog.Venues()
	venues[0].Capacity = 9999

	v, ok := catalog.VenueByID("a")
	require.True(t, ok)
	assert.Equal(t, 10, v.Capacity)
}

func TestSampleBookingsTotals(t *testing.T) {
	catalog, err := LoadEmbeddedCatalog()
	require.NoError(t, err)
	bookings, err := LoadSampleBookings()
	require.NoError(t, err)
	require.Len(t, bookings, 4)

	for _, b := range bookings {
		assert.NotEqual(t, uuid.Nil, b.ID)
		assert.True(t, b.Status.Valid(), b.ReferenceID)

		var expected float64
		if v, ok := catalog.VenueByID(b.SelectedVenue); ok {
			expected = v.BasePrice
		}
		for _, item := range b.SelectedServices {
			assert.Greater(t, item.Quantity, 0)
			assert.Equal(t, item.UnitPrice*float64(item.Quantity), item.Subtotal)
			expected += item.Subtotal
		}
		assert.Equal(t, expected, b.TotalEstimatedCost, b.ReferenceID)
	}
}

func TestInMemoryBookingsRepo(t *testing.T) {
	repo := NewInMemoryBookingsRepo()
	ctx := context.Background()

	assert.Error(t, repo.AppendBooking(ctx, nil))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.AppendBooking(ctx, &Booking{ID: uuid.New(), Status: StatusPending}))
		}()
	}
	wg.Wait()

	bookings, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 20)

	bookings[0] = nil
	again, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	assert.NotNil(t, again[0])
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Birthday Party", LabelFor(EventTypeOptions, "birthday"))
	assert.Equal(t, "Above ₹5,00,000", LabelFor(BudgetRangeOptions, "above-5L"))
	assert.Equal(t, "gala", LabelFor(EventTypeOptions, "gala"))
}
