package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	StatusDraft     BookingStatus = "draft"
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusPaid      BookingStatus = "paid"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusConfirmed, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type EventType string

const (
	EventWedding     EventType = "wedding"
	EventBirthday    EventType = "birthday"
	EventCorporate   EventType = "corporate"
	EventAnniversary EventType = "anniversary"
	EventOther       EventType = "other"
)

type BudgetRange string

const (
	BudgetUnder50k BudgetRange = "under-50k"
	Budget50kTo1L  BudgetRange = "50k-1L"
	Budget1LTo3L   BudgetRange = "1L-3L"
	Budget3LTo5L   BudgetRange = "3L-5L"
	BudgetAbove5L  BudgetRange = "above-5L"
)

// Option is a value/label pair rendered by select inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var EventTypeOptions = []Option{
	{Value: string(EventWedding), Label: "Wedding"},
	{Value: string(EventBirthday), Label: "Birthday Party"},
	{Value: string(EventCorporate), Label: "Corporate Event"},
	{Value: string(EventAnniversary), Label: "Anniversary"},
	{Value: string(EventOther), Label: "Other"},
}

var BudgetRangeOptions = []Option{
	{Value: string(BudgetUnder50k), Label: "Under ₹50,000"},
	{Value: string(Budget50kTo1L), Label: "₹50,000 - ₹1,00,000"},
	{Value: string(Budget1LTo3L), Label: "₹1,00,000 - ₹3,00,000"},
	{Value: string(Budget3LTo5L), Label: "₹3,00,000 - ₹5,00,000"},
	{Value: string(BudgetAbove5L), Label: "Above ₹5,00,000"},
}

// LabelFor returns the label for value, or value itself when unknown.
func LabelFor(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// PersonalDetails is step one of the wizard. Fields may be partially filled
// until validation succeeds; an Age of 0 means "not given".
type PersonalDetails struct {
	FullName string `json:"fullName" bson:"full_name" validate:"trimmin=2"`
	Age      int    `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,min=1,max=120"`
	Email    string `json:"email" bson:"email" validate:"booking_email"`
	Phone    string `json:"phone" bson:"phone" validate:"booking_phone"`
	Address  string `json:"address" bson:"address" validate:"trimmin=10"`
}

// EventDetails is step two of the wizard.
type EventDetails struct {
	EventType     EventType   `json:"eventType" bson:"event_type" validate:"required,oneof=wedding birthday corporate anniversary other"`
	PreferredDate string      `json:"preferredDate" bson:"preferred_date" validate:"required,future_date"`
	Attendees     int         `json:"attendees" bson:"attendees" validate:"required,min=1"`
	BudgetRange   BudgetRange `json:"budgetRange" bson:"budget_range" validate:"required,oneof=under-50k 50k-1L 1L-3L 3L-5L above-5L"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// BookingItem is one selected service. UnitPrice is copied from the catalog
// when the service is picked and is not re-read afterwards.
type BookingItem struct {
	ServiceID string  `json:"serviceId" bson:"service_id"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unitPrice" bson:"unit_price"`
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
}

type Booking struct {
	ID                 uuid.UUID       `json:"id" bson:"id"`
	ReferenceID        string          `json:"referenceId" bson:"reference_id"`
	Status             BookingStatus   `json:"status" bson:"status"`
	PersonalDetails    PersonalDetails `json:"personalDetails" bson:"personal_details"`
	EventDetails       EventDetails    `json:"eventDetails" bson:"event_details"`
	SelectedServices   []BookingItem   `json:"selectedServices" bson:"selected_services"`
	SelectedVenue      string          `json:"selectedVenue,omitempty" bson:"selected_venue,omitempty"`
	TotalEstimatedCost float64         `json:"totalEstimatedCost" bson:"total_estimated_cost"`
	CreatedAt          time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" bson:"updated_at"`
}
