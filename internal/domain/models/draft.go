package models

// DraftState is the booking screen's position in its workflow.
type DraftState string

const (
	DraftTripLoaded          DraftState = "trip_loaded"
	DraftDateSelected        DraftState = "date_selected"
	DraftAvailabilityChecked DraftState = "availability_checked"
	DraftSubmitting          DraftState = "submitting"
)

// BookingDraft is the per-visitor state of the booking form for one trip.
type BookingDraft struct {
	TripID       ID            `json:"tripId"`
	UserName     string        `json:"userName"`
	UserEmail    string        `json:"userEmail"`
	Date         string        `json:"date"`
	Availability *Availability `json:"availability,omitempty"`
	Submitting   bool          `json:"submitting"`
	Error        string        `json:"error,omitempty"`
}

func (d BookingDraft) State() DraftState {
	switch {
	case d.Submitting:
		return DraftSubmitting
	case d.Availability != nil:
		return DraftAvailabilityChecked
	case d.Date != "":
		return DraftDateSelected
	default:
		return DraftTripLoaded
	}
}

// CanSubmit is true only after a positive availability check for the
// current date and while nothing is in flight.
func (d BookingDraft) CanSubmit() bool {
	return d.Availability != nil && d.Availability.Available && !d.Submitting
}

// SetDate stores the date and drops any previous availability result.
func (d *BookingDraft) SetDate(date string) {
	d.Date = date
	d.Availability = nil
}
