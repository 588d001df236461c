package services

import (
	"github.com/joshua-takyi/eventbook/internal/models"
)

type WizardStep int

const (
	StepPersonalDetails WizardStep = iota + 1
	StepEventDetails
	StepServiceSelection
	StepReview
)

var stepTitles = map[WizardStep]string{
	StepPersonalDetails:  "Personal Details",
	StepEventDetails:     "Event Details",
	StepServiceSelection: "Service Selection",
	StepReview:           "Review",
}

func (s WizardStep) Title() string {
	return stepTitles[s]
}

// Wizard walks a booking through its four steps. It refuses to move past a
// step whose fields still have messages.
type Wizard struct {
	validator *DetailsValidator
	step      WizardStep
	personal  models.PersonalDetails
	event     models.EventDetails
	selection *Selection
}

func NewWizard(validator *DetailsValidator) *Wizard {
	return &Wizard{
		validator: validator,
		step:      StepPersonalDetails,
		selection: NewSelection("", nil),
	}
}

func (w *Wizard) Step() WizardStep {
	return w.step
}

// Progress is the share of steps reached, in percent.
func (w *Wizard) Progress() float64 {
	return float64(w.step) / float64(StepReview) * 100
}

func (w *Wizard) UpdatePersonalDetails(d models.PersonalDetails) {
	w.personal = d
}

func (w *Wizard) UpdateEventDetails(d models.EventDetails) {
	w.event = d
}

func (w *Wizard) Selection() *Selection {
	return w.selection
}

// Next validates the current step and advances when it passed. The returned
// map is empty on success.
func (w *Wizard) Next() FieldErrors {
	var errs FieldErrors
	switch w.step {
	case StepPersonalDetails:
		errs = w.validator.PersonalDetailsErrors(w.personal)
	case StepEventDetails:
		errs = w.validator.EventDetailsErrors(w.event)
	default:
		errs = FieldErrors{}
	}
	if len(errs) == 0 && w.step < StepReview {
		w.step++
	}
	return errs
}

func (w *Wizard) Previous() {
	if w.step > StepPersonalDetails {
		w.step--
	}
}

// GoTo jumps back to a step already reached. Forward jumps are refused.
func (w *Wizard) GoTo(step WizardStep) bool {
	if step < StepPersonalDetails || step > w.step {
		return false
	}
	w.step = step
	return true
}

// Draft snapshots everything collected so far for submission.
func (w *Wizard) Draft() BookingDraft {
	return BookingDraft{
		PersonalDetails:  w.personal,
		EventDetails:     w.event,
		SelectedVenue:    w.selection.VenueID(),
		SelectedServices: w.selection.Items(),
	}
}
