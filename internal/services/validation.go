package services

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/joshua-takyi/eventbook/internal/models"
)

// Clock returns the current instant. Tests pin it to a fixed date.
type Clock func() time.Time

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
)

const dateLayout = "2006-01-02"

// FieldErrors maps a JSON field name to a message for the user. An empty
// map means every field passed.
type FieldErrors map[string]string

var fieldMessages = map[string]string{
	"fullName":      "Please enter your full name (min 2 characters)",
	"age":           "Please enter a valid age",
	"email":         "Please enter a valid email address",
	"phone":         "Please enter a valid phone number",
	"address":       "Please enter your complete address",
	"eventType":     "Please select an event type",
	"preferredDate": "Please select a future date",
	"attendees":     "Please enter the number of attendees (must be greater than 0)",
	"budgetRange":   "Please select a budget range",
}

const missingDateMessage = "Please select an event date"

// ValidPersonalDetails can only be obtained from a successful
// DetailsValidator.ValidatePersonalDetails call.
type ValidPersonalDetails struct {
	details models.PersonalDetails
	ok      bool
}

func (v ValidPersonalDetails) Details() models.PersonalDetails { return v.details }

// ValidEventDetails can only be obtained from a successful
// DetailsValidator.ValidateEventDetails call.
type ValidEventDetails struct {
	details models.EventDetails
	ok      bool
}

func (v ValidEventDetails) Details() models.EventDetails { return v.details }

type DetailsValidator struct {
	validate *validator.Validate
	now      Clock
}

func NewDetailsValidator(now Clock) *DetailsValidator {
	if now == nil {
		now = time.Now
	}
	dv := &DetailsValidator{validate: validator.New(), now: now}

	dv.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = dv.validate.RegisterValidation("trimmin", validateTrimmedMin)
	_ = dv.validate.RegisterValidation("booking_email", validateEmail)
	_ = dv.validate.RegisterValidation("booking_phone", validatePhone)
	_ = dv.validate.RegisterValidation("future_date", dv.validateFutureDate)

	return dv
}

func validateTrimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len([]rune(strings.TrimSpace(fl.Field().String()))) >= n
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(stripSpaces(fl.Field().String()))
}

// stripSpaces removes every Unicode space, including the non-breaking ones
// that pasted numbers often carry.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func (dv *DetailsValidator) validateFutureDate(fl validator.FieldLevel) bool {
	return dv.IsFutureDate(fl.Field().String())
}

// IsFutureDate reports whether the day named by value falls strictly after
// today. Today itself is rejected.
func (dv *DetailsValidator) IsFutureDate(value string) bool {
	now := dv.now()
	loc := now.Location()

	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		ts, rfcErr := time.Parse(time.RFC3339, strings.TrimSpace(value))
		if rfcErr != nil {
			return false
		}
		ts = ts.In(loc)
		day = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return day.After(today)
}

// PersonalDetailsErrors returns a message for every failing field of d.
func (dv *DetailsValidator) PersonalDetailsErrors(d models.PersonalDetails) FieldErrors {
	return dv.collect(d)
}

// EventDetailsErrors returns a message for every failing field of d.
func (dv *DetailsValidator) EventDetailsErrors(d models.EventDetails) FieldErrors {
	return dv.collect(d)
}

func (dv *DetailsValidator) ValidatePersonalDetails(d models.PersonalDetails) (ValidPersonalDetails, FieldErrors) {
	errs := dv.PersonalDetailsErrors(d)
	if len(errs) > 0 {
		return ValidPersonalDetails{}, errs
	}
	return ValidPersonalDetails{details: d, ok: true}, errs
}

func (dv *DetailsValidator) ValidateEventDetails(d models.EventDetails) (ValidEventDetails, FieldErrors) {
	errs := dv.EventDetailsErrors(d)
	if len(errs) > 0 {
		return ValidEventDetails{}, errs
	}
	return ValidEventDetails{details: d, ok: true}, errs
}

func (dv *DetailsValidator) collect(s interface{}) FieldErrors {
	out := FieldErrors{}
	err := dv.validate.Struct(s)
	if err == nil {
		return out
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = "invalid input"
		return out
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(field, fe.Tag())
	}
	return out
}

func messageFor(field, tag string) string {
	if field == "preferredDate" && tag == "required" {
		return missingDateMessage
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return "Invalid value"
}
