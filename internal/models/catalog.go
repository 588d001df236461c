package models

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var catalogFS embed.FS

type ServiceCategory string

const (
	CategoryFood          ServiceCategory = "food"
	CategoryPhotography   ServiceCategory = "photography"
	CategoryEntertainment ServiceCategory = "entertainment"
	CategoryDecoration    ServiceCategory = "decoration"
	CategoryOther         ServiceCategory = "other"
)

// PricingUnit tells the pricer how to pick a default quantity.
type PricingUnit string

const (
	UnitPerPerson PricingUnit = "per_person"
	UnitPerEvent  PricingUnit = "per_event"
)

type Venue struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Type         string   `json:"type" bson:"type"`
	Capacity     int      `json:"capacity" bson:"capacity" validate:"gte=0"`
	Location     string   `json:"location" bson:"location"`
	Description  string   `json:"description" bson:"description"`
	BasePrice    float64  `json:"basePrice" bson:"base_price" validate:"gte=0"`
	Amenities    []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Images       []string `json:"images,omitempty" bson:"images,omitempty"`
	Availability bool     `json:"availability" bson:"availability"`
}

type Service struct {
	ID          string          `json:"id" bson:"id"`
	Name        string          `json:"name" bson:"name"`
	Type        string          `json:"type" bson:"type"`
	Description string          `json:"description" bson:"description"`
	BasePrice   float64         `json:"basePrice" bson:"base_price" validate:"gte=0"`
	Unit        PricingUnit     `json:"unit" bson:"unit"`
	Category    ServiceCategory `json:"category" bson:"category" validate:"oneof=food photography entertainment decoration other"`
	Features    []string        `json:"features,omitempty" bson:"features,omitempty"`
}

// PerAttendee reports whether the service is priced per guest.
func (s Service) PerAttendee() bool {
	return s.Unit == UnitPerPerson
}

// CatalogRepo is the read-only view over bookable venues and services.
// Lookups report a missing id with ok == false; that is not an error.
type CatalogRepo interface {
	Venues() []Venue
	Services() []Service
	VenueByID(id string) (Venue, bool)
	ServiceByID(id string) (Service, bool)
}

// StaticCatalog is an in-memory catalog that is never mutated after
// construction. Listings are returned as fresh slices.
type StaticCatalog struct {
	venues     []Venue
	services   []Service
	venueIdx   map[string]int
	serviceIdx map[string]int
}

func NewStaticCatalog(venues []Venue, services []Service) *StaticCatalog {
	c := &StaticCatalog{
		venues:     append([]Venue(nil), venues...),
		services:   append([]Service(nil), services...),
		venueIdx:   make(map[string]int, len(venues)),
		serviceIdx: make(map[string]int, len(services)),
	}
	for i, v := range c.venues {
		if _, dup := c.venueIdx[v.ID]; !dup {
			c.venueIdx[v.ID] = i
		}
	}
	for i, s := range c.services {
		if _, dup := c.serviceIdx[s.ID]; !dup {
			c.serviceIdx[s.ID] = i
		}
	}
	return c
}

// LoadEmbeddedCatalog reads the bundled venues.json and services.json.
func LoadEmbeddedCatalog() (*StaticCatalog, error) {
	var venues []Venue
	if err := readEmbedded("data/venues.json", &venues); err != nil {
		return nil, err
	}
	var services []Service
	if err := readEmbedded("data/services.json", &services); err != nil {
		return nil, err
	}

	for i := range venues {
		if err := Validate.Struct(venues[i]); err != nil {
			return nil, fmt.Errorf("invalid venue %q in catalog: %w", venues[i].ID, err)
		}
	}
	for i := range services {
		if err := Validate.Struct(services[i]); err != nil {
			return nil, fmt.Errorf("invalid service %q in catalog: %w", services[i].ID, err)
		}
	}

	return NewStaticCatalog(venues, services), nil
}

func readEmbedded(name string, out interface{}) error {
	raw, err := catalogFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (c *StaticCatalog) Venues() []Venue {
	return append([]Venue(nil), c.venues...)
}

func (c *StaticCatalog) Services() []Service {
	return append([]Service(nil), c.services...)
}

func (c *StaticCatalog) VenueByID(id string) (Venue, bool) {
	i, ok := c.venueIdx[id]
	if !ok {
		return Venue{}, false
	}
	return c.venues[i], true
}

func (c *StaticCatalog) ServiceByID(id string) (Service, bool) {
	i, ok := c.serviceIdx[id]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}
