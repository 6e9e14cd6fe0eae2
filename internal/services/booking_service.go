package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
	"tripzy/internal/repositories"
	"tripzy/internal/utils"
)

// Messages shown inline on the booking form.
const (
	MsgTripLoadFailed      = "Failed to load trip"
	MsgSelectDateFirst     = "Please select a date first"
	MsgAvailabilityFailed  = "Failed to check availability"
	MsgFillRequiredFields  = "Please fill all required fields"
	MsgCheckAvailability   = "Please check availability first"
	MsgSubmissionInFlight  = "Your booking is already being processed"
	MsgMissingConfirmation = "The booking service did not return a booking reference"
)

var validate = validator.New()

// BookingForm is what the visitor typed. Payment fields are placeholders and
// never reach this struct.
type BookingForm struct {
	UserName  string
	UserEmail string
	Date      string
}

// BookingPage is everything the booking view renders.
type BookingPage struct {
	Trip  models.Trip
	Draft models.BookingDraft
}

// BookingService drives the booking workflow for one visitor and one trip.
// Every method returns the current draft, including on failure, so the form
// can be re-rendered with its inline error.
type BookingService struct {
	API       BookingAPI
	Drafts    repositories.DraftRepository
	RequestID string
}

func (s BookingService) catalog() CatalogService {
	return CatalogService{API: s.API, RequestID: s.RequestID}
}

// Open loads the trip and the visitor's draft for it.
func (s BookingService) Open(ctx context.Context, key string, tripID models.ID) (BookingPage, error) {
	trip, err := s.catalog().FindTrip(ctx, tripID)
	if err != nil {
		return BookingPage{}, err
	}
	draft, err := s.loadDraft(ctx, key, tripID)
	if err != nil {
		return BookingPage{Trip: trip}, err
	}
	return BookingPage{Trip: trip, Draft: draft}, nil
}

// SelectDate records a new date. Any previous availability answer is dropped,
// even when the same date is picked again. Typed contact fields are kept.
func (s BookingService) SelectDate(ctx context.Context, key string, tripID models.ID, form BookingForm) (models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, key, tripID)
	if err != nil {
		return draft, err
	}
	if draft.Submitting {
		return draft, domain.ConflictError{Resource: "booking", Msg: MsgSubmissionInFlight}
	}
	rememberContact(&draft, form)
	draft.SetDate(strings.TrimSpace(form.Date))
	draft.Error = ""
	return draft, s.Drafts.Save(ctx, key, draft)
}

// CheckAvailability asks the booking service about the given date. A date
// that differs from the draft's invalidates the previous answer first.
func (s BookingService) CheckAvailability(ctx context.Context, key string, tripID models.ID, form BookingForm) (models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, key, tripID)
	if err != nil {
		return draft, err
	}
	if draft.Submitting {
		return draft, domain.ConflictError{Resource: "booking", Msg: MsgSubmissionInFlight}
	}

	rememberContact(&draft, form)
	if date := strings.TrimSpace(form.Date); date != draft.Date {
		draft.SetDate(date)
	}
	if draft.Date == "" {
		draft.Error = MsgSelectDateFirst
		return draft, s.saveWith(ctx, key, draft, domain.ValidationError{Field: "date", Msg: MsgSelectDateFirst})
	}

	// a fresh check always starts from "unknown"
	draft.Availability = nil
	result, err := s.API.CheckAvailability(ctx, draft.Date)
	if err != nil {
		draft.Error = MsgAvailabilityFailed
		return draft, s.saveWith(ctx, key, draft, err)
	}

	draft.Availability = &result
	draft.Error = ""
	utils.LogEvent(s.RequestID, "booking", "check_availability",
		fmt.Sprintf("trip_id=%s date=%s available=%t vans=%d/%d", tripID, draft.Date, result.Available, result.AvailableVans, result.TotalVans))
	return draft, s.Drafts.Save(ctx, key, draft)
}

// Submit validates the form, requires a positive availability answer for the
// current date and creates the booking. On success the draft is discarded.
func (s BookingService) Submit(ctx context.Context, key string, tripID models.ID, form BookingForm) (models.Booking, models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, key, tripID)
	if err != nil {
		return models.Booking{}, draft, err
	}
	if draft.Submitting {
		return models.Booking{}, draft, domain.ConflictError{Resource: "booking", Msg: MsgSubmissionInFlight}
	}

	rememberContact(&draft, form)
	if date := strings.TrimSpace(form.Date); date != draft.Date {
		draft.SetDate(date)
	}

	req := models.BookingRequest{
		TripID:    tripID,
		UserName:  draft.UserName,
		UserEmail: draft.UserEmail,
		Date:      draft.Date,
	}
	if err := validate.Struct(req); err != nil {
		draft.Error = MsgFillRequiredFields
		return models.Booking{}, draft, s.saveWith(ctx, key, draft, domain.ValidationError{Msg: MsgFillRequiredFields, Err: err})
	}
	if !draft.CanSubmit() {
		draft.Error = MsgCheckAvailability
		return models.Booking{}, draft, s.saveWith(ctx, key, draft, domain.ValidationError{Field: "date", Msg: MsgCheckAvailability})
	}

	draft.Submitting = true
	draft.Error = ""
	if err := s.Drafts.Save(ctx, key, draft); err != nil {
		return models.Booking{}, draft, err
	}

	booking, err := s.API.CreateBooking(ctx, req)
	if err == nil && booking.ID.IsZero() {
		err = domain.InternalError{Msg: MsgMissingConfirmation}
	}

	// the in-flight flag must be cleared even when the visitor went away
	settle := context.WithoutCancel(ctx)
	if err != nil {
		draft.Submitting = false
		draft.Error = err.Error()
		return models.Booking{}, draft, s.saveWith(settle, key, draft, err)
	}

	if err := s.Drafts.Delete(settle, key); err != nil {
		utils.LogFailure(s.RequestID, "booking", "discard_draft", err)
	}
	utils.LogEvent(s.RequestID, "booking", "create_booking",
		fmt.Sprintf("booking_id=%s trip_id=%s date=%s status=%s", booking.ID, tripID, booking.Date, booking.Status))
	return booking, draft, nil
}

func (s BookingService) loadDraft(ctx context.Context, key string, tripID models.ID) (models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, key)
	if domain.IsNotFound(err) {
		return models.BookingDraft{TripID: tripID}, nil
	}
	if err != nil {
		return models.BookingDraft{TripID: tripID}, err
	}
	return draft, nil
}

// saveWith persists the draft and returns cause, unless saving itself failed.
func (s BookingService) saveWith(ctx context.Context, key string, draft models.BookingDraft, cause error) error {
	if err := s.Drafts.Save(ctx, key, draft); err != nil {
		return err
	}
	return cause
}

// rememberContact keeps what the visitor typed so re-rendered forms stay filled.
func rememberContact(draft *models.BookingDraft, form BookingForm) {
	draft.UserName = utils.NormalizeSpace(form.UserName)
	draft.UserEmail = strings.TrimSpace(form.UserEmail)
}
