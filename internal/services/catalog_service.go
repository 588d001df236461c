package services

import (
	"github.com/joshua-takyi/eventbook/internal/models"
)

type CatalogService struct {
	catalog models.CatalogRepo
}

func NewCatalogService(catalog models.CatalogRepo) *CatalogService {
	return &CatalogService{
		catalog: catalog,
	}
}

func (cs *CatalogService) Venues() []models.Venue {
	return cs.catalog.Venues()
}

func (cs *CatalogService) Services() []models.Service {
	return cs.catalog.Services()
}

func (cs *CatalogService) VenueByID(id string) (models.Venue, bool) {
	return cs.catalog.VenueByID(id)
}

func (cs *CatalogService) ServiceByID(id string) (models.Service, bool) {
	return cs.catalog.ServiceByID(id)
}

// SuitableVenues returns the venues whose capacity covers attendees, in
// catalog order. A non-positive attendee count admits every venue.
func (cs *CatalogService) SuitableVenues(attendees int) []models.Venue {
	return FilterSuitableVenues(cs.catalog.Venues(), attendees)
}

func FilterSuitableVenues(venues []models.Venue, attendees int) []models.Venue {
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if v.Capacity >= attendees {
			out = append(out, v)
		}
	}
	return out
}

// ServicesByCategory returns every service when category is empty.
func (cs *CatalogService) ServicesByCategory(category models.ServiceCategory) []models.Service {
	all := cs.catalog.Services()
	if category == "" {
		return all
	}
	out := make([]models.Service, 0, len(all))
	for _, s := range all {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
