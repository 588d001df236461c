package services

import (
	"errors"
	"fmt"

	"github.com/joshua-takyi/eventbook/internal/models"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// DefaultQuantity is the quantity a service gets when first selected:
// the attendee count for per-person services, otherwise 1.
func DefaultQuantity(s models.Service, attendees int) int {
	if s.PerAttendee() && attendees > 0 {
		return attendees
	}
	return 1
}

// NewLineItem prices quantity units of s at its current base price. The unit
// price is frozen into the item.
func NewLineItem(s models.Service, quantity int) (models.BookingItem, error) {
	if quantity < 1 {
		return models.BookingItem{}, fmt.Errorf("service %s: %w", s.ID, ErrInvalidQuantity)
	}
	return models.BookingItem{
		ServiceID: s.ID,
		Quantity:  quantity,
		UnitPrice: s.BasePrice,
		Subtotal:  s.BasePrice * float64(quantity),
	}, nil
}

func withQuantity(item models.BookingItem, quantity int) models.BookingItem {
	item.Quantity = quantity
	item.Subtotal = item.UnitPrice * float64(quantity)
	return item
}

// Total is the venue base price (0 without a venue) plus every subtotal.
func Total(venue *models.Venue, items []models.BookingItem) float64 {
	var total float64
	if venue != nil {
		total = venue.BasePrice
	}
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

// NormalizeItems drops items with a non-positive quantity and recomputes
// every subtotal from the frozen unit price.
func NormalizeItems(items []models.BookingItem) []models.BookingItem {
	out := make([]models.BookingItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		out = append(out, withQuantity(item, item.Quantity))
	}
	return out
}

// Selection holds the venue and service choices of the selection step.
// Items keep the order in which services were picked.
type Selection struct {
	venueID string
	items   []models.BookingItem
}

func NewSelection(venueID string, items []models.BookingItem) *Selection {
	return &Selection{
		venueID: venueID,
		items:   NormalizeItems(items),
	}
}

func (s *Selection) SelectVenue(venueID string) {
	s.venueID = venueID
}

func (s *Selection) VenueID() string {
	return s.venueID
}

func (s *Selection) Items() []models.BookingItem {
	return append([]models.BookingItem(nil), s.items...)
}

func (s *Selection) index(serviceID string) int {
	for i, item := range s.items {
		if item.ServiceID == serviceID {
			return i
		}
	}
	return -1
}

func (s *Selection) Contains(serviceID string) bool {
	return s.index(serviceID) >= 0
}

// Quantity returns the selected quantity, or 1 for an unselected service.
func (s *Selection) Quantity(serviceID string) int {
	if i := s.index(serviceID); i >= 0 {
		return s.items[i].Quantity
	}
	return 1
}

// ToggleService adds the service with its default quantity when checked and
// removes it otherwise. Checking an already selected service keeps the
// existing item and its frozen price.
func (s *Selection) ToggleService(svc models.Service, checked bool, attendees int) {
	if !checked {
		s.RemoveService(svc.ID)
		return
	}
	if s.Contains(svc.ID) {
		return
	}
	item, err := NewLineItem(svc, DefaultQuantity(svc, attendees))
	if err != nil {
		return
	}
	s.items = append(s.items, item)
}

// RemoveService is a no-op when the service is not selected.
func (s *Selection) RemoveService(serviceID string) {
	i := s.index(serviceID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// SetQuantity changes a selected item's quantity. A quantity of zero or
// less removes the item instead.
func (s *Selection) SetQuantity(serviceID string, quantity int) {
	if quantity <= 0 {
		s.RemoveService(serviceID)
		return
	}
	if i := s.index(serviceID); i >= 0 {
		s.items[i] = withQuantity(s.items[i], quantity)
	}
}

// Total resolves the selected venue against catalog. An unknown venue id
// contributes nothing.
func (s *Selection) Total(catalog models.CatalogRepo) float64 {
	var venue *models.Venue
	if s.venueID != "" {
		if v, ok := catalog.VenueByID(s.venueID); ok {
			venue = &v
		}
	}
	return Total(venue, s.items)
}
