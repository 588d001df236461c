package services

import (
	"testing"

	"github.com/joshua-takyi/eventbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	svc := models.Service{ID: "s-snacks", BasePrice: 200, Unit: models.UnitPerPerson}

	for _, q := range []int{1, 7, 50, 1200} {
		item, err := NewLineItem(svc, q)
		require.NoError(t, err)
		assert.Equal(t, "s-snacks", item.ServiceID)
		assert.Equal(t, q, item.Quantity)
		assert.Equal(t, 200.0, item.UnitPrice)
		assert.Equal(t, 200.0*float64(q), item.Subtotal)
	}

	_, err := NewLineItem(svc, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestDefaultQuantity(t *testing.T) {
	perPerson := models.Service{ID: "a", Unit: models.UnitPerPerson}
	flat := models.Service{ID: "b", Unit: models.UnitPerEvent}

	assert.Equal(t, 50, DefaultQuantity(perPerson, 50))
	assert.Equal(t, 1, DefaultQuantity(flat, 50))
	assert.Equal(t, 1, DefaultQuantity(perPerson, 0))
}

func TestSelectionFreezesUnitPrice(t *testing.T) {
	svc := models.Service{ID: "s-snacks", BasePrice: 200, Unit: models.UnitPerPerson}
	sel := NewSelection("", nil)
	sel.ToggleService(svc, true, 50)

	// the catalog price moves after selection
	svc.BasePrice = 500
	sel.ToggleService(svc, true, 50)
	sel.SetQuantity("s-snacks", 10)

	items := sel.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 200.0, items[0].UnitPrice)
	assert.Equal(t, 2000.0, items[0].Subtotal)
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	for _, q := range []int{0, -1, -100} {
		sel := NewSelection("", nil)
		sel.ToggleService(fixtureServices()[1], true, 10)
		sel.ToggleService(fixtureServices()[2], true, 10)

		sel.SetQuantity("s-photo", q)
		assert.False(t, sel.Contains("s-photo"))
		assert.Len(t, sel.Items(), 1)

		// second removal is a no-op
		sel.SetQuantity("s-photo", q)
		assert.Len(t, sel.Items(), 1)
		assert.True(t, sel.Contains("s-dj"))
	}
}

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection("", nil)
	snacks := fixtureServices()[0]

	sel.ToggleService(snacks, true, 80)
	sel.ToggleService(snacks, true, 80)
	assert.Len(t, sel.Items(), 1)
	assert.Equal(t, 80, sel.Quantity("s-snacks"))
	assert.Equal(t, 1, sel.Quantity("s-photo"))

	sel.ToggleService(snacks, false, 80)
	assert.Empty(t, sel.Items())
}

func TestSelectionKeepsPickOrder(t *testing.T) {
	sel := NewSelection("", nil)
	svcs := fixtureServices()
	sel.ToggleService(svcs[2], true, 10)
	sel.ToggleService(svcs[0], true, 10)
	sel.ToggleService(svcs[1], true, 10)

	var ids []string
	for _, item := range sel.Items() {
		ids = append(ids, item.ServiceID)
	}
	assert.Equal(t, []string{"s-dj", "s-snacks", "s-photo"}, ids)
}

func TestTotal(t *testing.T) {
	items := []models.BookingItem{
		{ServiceID: "a", Quantity: 50, UnitPrice: 200, Subtotal: 10000},
		{ServiceID: "b", Quantity: 1, UnitPrice: 35000, Subtotal: 35000},
	}
	venue := &models.Venue{ID: "v", BasePrice: 20000}

	assert.Equal(t, 45000.0, Total(nil, items))
	assert.Equal(t, 65000.0, Total(venue, items))
	assert.Equal(t, 20000.0, Total(venue, nil))
	assert.Equal(t, 0.0, Total(nil, nil))
}

func TestSelectionTotalResolvesVenue(t *testing.T) {
	catalog := fixtureCatalog()
	sel := NewSelection("v-small", nil)
	sel.ToggleService(fixtureServices()[0], true, 50)

	assert.Equal(t, 30000.0, sel.Total(catalog))

	sel.SelectVenue("v-missing")
	assert.Equal(t, 10000.0, sel.Total(catalog))

	sel.SelectVenue("")
	assert.Equal(t, 10000.0, sel.Total(catalog))
}

func TestNormalizeItems(t *testing.T) {
	items := []models.BookingItem{
		{ServiceID: "a", Quantity: 3, UnitPrice: 100, Subtotal: 1},
		{ServiceID: "b", Quantity: 0, UnitPrice: 100, Subtotal: 0},
		{ServiceID: "c", Quantity: -2, UnitPrice: 100, Subtotal: -200},
	}

	out := NormalizeItems(items)

	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ServiceID)
	assert.Equal(t, 300.0, out[0].Subtotal)
}
