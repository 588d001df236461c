package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/eventbook/internal/models"
)

var ErrPreconditionFailed = errors.New("booking details have not passed validation")

// PreconditionError is returned when a booking is assembled from details
// that did not pass their validators. Fields holds the per-field messages
// when they are known.
type PreconditionError struct {
	Fields FieldErrors
}

func (e *PreconditionError) Error() string {
	if len(e.Fields) == 0 {
		return ErrPreconditionFailed.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed.Error(), strings.Join(keys, ", "))
}

func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionFailed
}

type Assembler struct {
	catalog models.CatalogRepo
	refs    *ReferenceGenerator
	now     Clock
}

func NewAssembler(catalog models.CatalogRepo, refs *ReferenceGenerator, now Clock) *Assembler {
	if now == nil {
		now = time.Now
	}
	if refs == nil {
		refs = NewReferenceGenerator(now, nil)
	}
	return &Assembler{
		catalog: catalog,
		refs:    refs,
		now:     now,
	}
}

// Assemble builds a pending booking from validated details. The total is
// the venue base price plus the item subtotals; an unknown venue id adds 0.
func (a *Assembler) Assemble(p ValidPersonalDetails, e ValidEventDetails, venueID string, items []models.BookingItem) (*models.Booking, error) {
	return a.AssembleUnique(p, e, venueID, items, nil)
}

// AssembleUnique is Assemble with a reference that taken does not report as
// already in use.
func (a *Assembler) AssembleUnique(p ValidPersonalDetails, e ValidEventDetails, venueID string, items []models.BookingItem, taken func(string) bool) (*models.Booking, error) {
	if !p.ok || !e.ok {
		return nil, &PreconditionError{}
	}

	ref, err := a.refs.Unique(taken)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeItems(items)

	var venue *models.Venue
	if venueID != "" {
		if v, ok := a.catalog.VenueByID(venueID); ok {
			venue = &v
		}
	}

	now := a.now()
	return &models.Booking{
		ID:                 uuid.New(),
		ReferenceID:        ref,
		Status:             models.StatusPending,
		PersonalDetails:    p.Details(),
		EventDetails:       e.Details(),
		SelectedServices:   normalized,
		SelectedVenue:      venueID,
		TotalEstimatedCost: Total(venue, normalized),
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}
