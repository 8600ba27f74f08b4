package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"salon-site-server/models"
)

const (
	bookingDateLayout     = "2006-01-02"
	bookingRedirectTarget = "/"
	bookingRedirectDelay  = 2000

	MissingInfoTitle   = "Missing Information"
	MissingInfoMessage = "Please fill in all required fields."
	ReservedTitle      = "Appointment Reserved Successfully!"
)

// BookingService validates appointment requests. It never stores them.
type BookingService struct {
	validate *validator.Validate
	options  models.BookingOptions
}

// NewBookingService creates a booking service offering the given options
func NewBookingService(options models.BookingOptions) *BookingService {
	return &BookingService{
		validate: validator.New(),
		options:  options,
	}
}

// DefaultBookingOptions returns the services, slots and branches of the salon
func DefaultBookingOptions(locations []models.Location) models.BookingOptions {
	branches := make([]models.BookingLocation, 0, len(locations))
	for _, l := range locations {
		branches = append(branches, models.BookingLocation{
			Value: l.ID,
			Label: fmt.Sprintf("%s - %s", l.Name, l.Address),
		})
	}

	return models.BookingOptions{
		Services: []string{
			"Classic Haircut",
			"Premium Haircut & Style",
			"Cut & Style",
			"Beard Styling & Trim",
			"Hair Coloring & Highlights",
			"Hair Spa Treatment",
			"Deep Hair Spa",
			"Manicure & Pedicure",
			"Eyebrow Shaping",
			"Luxury Facial Treatment",
			"Body Massage",
		},
		TimeSlots: TimeSlots(9, 20, 30*time.Minute),
		Locations: branches,
		Genders:   models.AllGenders,
	}
}

// TimeSlots lists appointment start times from the opening hour up to,
// but excluding, the closing hour.
func TimeSlots(openHour, closeHour int, step time.Duration) []string {
	day := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	start := day.Add(time.Duration(openHour) * time.Hour)
	end := day.Add(time.Duration(closeHour) * time.Hour)

	var slots []string
	for t := start; t.Before(end); t = t.Add(step) {
		slots = append(slots, t.Format("3:04 PM"))
	}
	return slots
}

// Options returns the choices offered by the booking form
func (s *BookingService) Options() models.BookingOptions {
	return s.options
}

// Prefill returns a form preselecting a catalog service and its gender
func (s *BookingService) Prefill(record models.ServiceRecord) models.BookingForm {
	return models.BookingForm{
		Services: []string{record.Name},
		Gender:   string(record.Gender),
	}
}

// Submit validates a booking form. On failure the form is handed back
// untouched with the missing fields listed; on success a confirmation
// is produced and the form is reset.
func (s *BookingService) Submit(form models.BookingForm) models.BookingResult {
	missing := s.MissingFields(form)
	if len(missing) > 0 {
		return models.BookingResult{
			Success: false,
			Title:   MissingInfoTitle,
			Message: MissingInfoMessage,
			Missing: missing,
			Form:    form,
		}
	}

	date, _ := time.Parse(bookingDateLayout, form.Date)
	return models.BookingResult{
		Success: true,
		Title:   ReservedTitle,
		Message: fmt.Sprintf("Your luxury appointment for %s has been confirmed for %s at %s.",
			strings.Join(form.Services, ", "), FormatLongDate(date), form.Time),
		Form:            models.BookingForm{},
		Redirect:        bookingRedirectTarget,
		RedirectAfterMs: bookingRedirectDelay,
	}
}

// MissingFields returns the json names of required fields that are empty
// or unusable, in form order.
func (s *BookingService) MissingFields(form models.BookingForm) []string {
	form.CustomerName = strings.TrimSpace(form.CustomerName)
	form.Phone = strings.TrimSpace(form.Phone)

	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{"form"}
	}

	seen := make(map[string]bool)
	var missing []string
	for _, fe := range validationErrors {
		name := jsonFieldName(fe.StructField())
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
	}
	return missing
}

func jsonFieldName(structField string) string {
	switch {
	case strings.HasPrefix(structField, "Services"):
		return "services"
	case structField == "CustomerName":
		return "customer_name"
	}
	return strings.ToLower(structField)
}

// FormatLongDate renders a date like "October 17th, 2026"
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
