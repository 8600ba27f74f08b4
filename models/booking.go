package models

// BookingForm is the appointment form as submitted by the browser.
//
// Nothing here is persisted; a submission is validated, confirmed and
// the form is handed back empty.
type BookingForm struct {
	CustomerName string   `json:"customer_name" validate:"required"`
	Gender       string   `json:"gender" validate:"required"`
	Services     []string `json:"services" validate:"required,min=1,dive,required"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string   `json:"time" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	Location     string   `json:"location" validate:"required"`
}

// BookingLocation is a branch selectable in the booking form
type BookingLocation struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BookingOptions are the choices the booking form offers
type BookingOptions struct {
	Services  []string          `json:"services"`
	TimeSlots []string          `json:"time_slots"`
	Locations []BookingLocation `json:"locations"`
	Genders   []Gender          `json:"genders"`
}

// BookingResult is returned for every submission, successful or not
type BookingResult struct {
	Success         bool        `json:"success"`
	Title           string      `json:"title"`
	Message         string      `json:"message"`
	Missing         []string    `json:"missing,omitempty"`
	Form            BookingForm `json:"form"`
	Redirect        string      `json:"redirect,omitempty"`
	RedirectAfterMs int         `json:"redirect_after_ms,omitempty"`
}
