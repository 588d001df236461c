package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshua-takyi/eventbook/internal/models"
)

// BookingDraft is everything the wizard has collected by the review step.
type BookingDraft struct {
	PersonalDetails  models.PersonalDetails `json:"personalDetails"`
	EventDetails     models.EventDetails    `json:"eventDetails"`
	SelectedVenue    string                 `json:"selectedVenue,omitempty"`
	SelectedServices []models.BookingItem   `json:"selectedServices"`
}

// BookingFilter narrows the booking history. Query matches the customer name,
// the reference or the event type; StatusAll disables the status filter.
type BookingFilter struct {
	Query  string
	Status string
}

const StatusAll = "all"

type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

// QuoteRequest asks for a priced selection. A nil Quantity means the
// service's default quantity; a non-positive one drops the service.
type QuoteRequest struct {
	Attendees int            `json:"attendees"`
	VenueID   string         `json:"venueId"`
	Services  []QuoteService `json:"services"`
}

type QuoteService struct {
	ServiceID string `json:"serviceId"`
	Quantity  *int   `json:"quantity,omitempty"`
}

type Quote struct {
	Venue           *models.Venue        `json:"venue,omitempty"`
	Items           []models.BookingItem `json:"items"`
	Total           float64              `json:"total"`
	MissingServices []string             `json:"missingServices,omitempty"`
	MissingVenue    bool                 `json:"missingVenue,omitempty"`
}

type BookingService struct {
	catalog   models.CatalogRepo
	repo      models.BookingsRepo
	samples   []*models.Booking
	validator *DetailsValidator
	assembler *Assembler
	logger    *slog.Logger
}

func NewBookingService(
	catalog models.CatalogRepo,
	repo models.BookingsRepo,
	samples []*models.Booking,
	validator *DetailsValidator,
	assembler *Assembler,
	logger *slog.Logger,
) *BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingService{
		catalog:   catalog,
		repo:      repo,
		samples:   samples,
		validator: validator,
		assembler: assembler,
		logger:    logger,
	}
}

func (bs *BookingService) Validator() *DetailsValidator {
	return bs.validator
}

// Quote prices a selection against the live catalog. Unknown ids are
// reported and left out of the total.
func (bs *BookingService) Quote(req QuoteRequest) Quote {
	sel := NewSelection("", nil)
	var q Quote

	if req.VenueID != "" {
		if v, ok := bs.catalog.VenueByID(req.VenueID); ok {
			q.Venue = &v
			sel.SelectVenue(v.ID)
		} else {
			q.MissingVenue = true
		}
	}

	for _, rs := range req.Services {
		svc, ok := bs.catalog.ServiceByID(rs.ServiceID)
		if !ok {
			q.MissingServices = append(q.MissingServices, rs.ServiceID)
			continue
		}
		sel.ToggleService(svc, true, req.Attendees)
		if rs.Quantity != nil {
			sel.SetQuantity(svc.ID, *rs.Quantity)
		}
	}

	q.Items = sel.Items()
	q.Total = sel.Total(bs.catalog)
	return q
}

const selectedServicesMessage = "Please review your selected services"

// Submit validates the draft, assembles a pending booking and appends it to
// the store. Every item must carry the catalog's current unit price.
func (bs *BookingService) Submit(ctx context.Context, draft BookingDraft) (*models.Booking, error) {
	personal, personalErrs := bs.validator.ValidatePersonalDetails(draft.PersonalDetails)
	event, eventErrs := bs.validator.ValidateEventDetails(draft.EventDetails)

	fieldErrs := FieldErrors{}
	for k, v := range personalErrs {
		fieldErrs[k] = v
	}
	for k, v := range eventErrs {
		fieldErrs[k] = v
	}

	// Items are replayed through a Selection so a service appears once, with
	// the last quantity sent for it.
	sel := NewSelection("", nil)
	for _, item := range draft.SelectedServices {
		svc, ok := bs.catalog.ServiceByID(item.ServiceID)
		if !ok {
			bs.logger.Warn("Dropping unknown service from booking", "service_id", item.ServiceID)
			continue
		}
		if item.UnitPrice != svc.BasePrice {
			fieldErrs["selectedServices"] = selectedServicesMessage
			break
		}
		sel.ToggleService(svc, true, draft.EventDetails.Attendees)
		sel.SetQuantity(svc.ID, item.Quantity)
	}
	if len(fieldErrs) > 0 {
		return nil, &PreconditionError{Fields: fieldErrs}
	}
	items := sel.Items()

	existing, err := bs.AllBookings(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		taken[b.ReferenceID] = struct{}{}
	}

	booking, err := bs.assembler.AssembleUnique(personal, event, draft.SelectedVenue, items, func(ref string) bool {
		_, used := taken[ref]
		return used
	})
	if err != nil {
		return nil, err
	}

	if err := bs.repo.AppendBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	bs.logger.Info("Booking submitted",
		"booking_id", booking.ID,
		"reference_id", booking.ReferenceID,
		"total", booking.TotalEstimatedCost,
	)
	return booking, nil
}

// AllBookings is the sample history followed by every stored booking.
func (bs *BookingService) AllBookings(ctx context.Context) ([]*models.Booking, error) {
	stored, err := bs.repo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return MergeBookings(bs.samples, stored), nil
}

func MergeBookings(samples, stored []*models.Booking) []*models.Booking {
	out := make([]*models.Booking, 0, len(samples)+len(stored))
	out = append(out, samples...)
	return append(out, stored...)
}

func (bs *BookingService) ListBookings(ctx context.Context, filter BookingFilter) ([]*models.Booking, error) {
	all, err := bs.AllBookings(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBookings(all, filter), nil
}

func FilterBookings(bookings []*models.Booking, filter BookingFilter) []*models.Booking {
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	status := strings.TrimSpace(filter.Status)

	out := make([]*models.Booking, 0, len(bookings))
	for _, b := range bookings {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(b.PersonalDetails.FullName), q) ||
			strings.Contains(strings.ToLower(b.ReferenceID), q) ||
			strings.Contains(strings.ToLower(string(b.EventDetails.EventType)), q)
		matchesStatus := status == "" || status == StatusAll || string(b.Status) == status
		if matchesSearch && matchesStatus {
			out = append(out, b)
		}
	}
	return out
}

// GetBooking finds a booking by id or by reference.
func (bs *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	all, err := bs.AllBookings(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range all {
		if b.ID.String() == id || strings.EqualFold(b.ReferenceID, id) {
			return b, nil
		}
	}
	return nil, models.ErrBookingNotFound
}

func (bs *BookingService) Stats(ctx context.Context) (BookingStats, error) {
	all, err := bs.AllBookings(ctx)
	if err != nil {
		return BookingStats{}, err
	}
	return CountBookings(all), nil
}

func CountBookings(bookings []*models.Booking) BookingStats {
	stats := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
