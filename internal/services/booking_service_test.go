package services

import (
	"context"
	"testing"
	"time"

	"tripzy/internal/apiclient"
	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
	"tripzy/internal/repositories"
)

func newBookingFixture() (*fakeAPI, BookingService) {
	api := &fakeAPI{
		trips: []models.Trip{{ID: "1", Title: "Coastal Drive", Price: 120}},
		availability: map[string]models.Availability{
			"2025-03-01": {Available: true, AvailableVans: 2, TotalVans: 5},
			"2025-03-02": {Available: false},
		},
	}
	svc := BookingService{API: api, Drafts: repositories.NewMemoryDraftRepo(time.Minute)}
	return api, svc
}

func TestBookingHappyPath(t *testing.T) {
	api, svc := newBookingFixture()
	ctx := context.Background()
	key := repositories.DraftKey("s1", "1")

	page, err := svc.Open(ctx, key, "1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if page.Trip.Price != 120 || page.Draft.State() != models.DraftTripLoaded {
		t.Fatalf("unexpected page: %+v", page)
	}

	draft, err := svc.CheckAvailability(ctx, key, "1", BookingForm{Date: "2025-03-01"})
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if !draft.CanSubmit() || draft.Availability.AvailableVans != 2 || draft.Availability.TotalVans != 5 {
		t.Fatalf("expected submittable draft, got %+v", draft)
	}

	booking, _, err := svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if booking.ID != "b1" || booking.Price != 120 {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if api.count("CreateBooking") != 1 {
		t.Fatalf("expected exactly one create call")
	}
	if _, err := svc.Drafts.Get(ctx, key); !domain.IsNotFound(err) {
		t.Fatalf("draft should be discarded after success, got %v", err)
	}
}

func TestSubmitRequiresAvailabilityCheck(t *testing.T) {
	api, svc := newBookingFixture()
	ctx := context.Background()
	key := repositories.DraftKey("s1", "1")

	_, draft, err := svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"})
	if !domain.IsValidation(err) || draft.Error != MsgCheckAvailability {
		t.Fatalf("expected check-availability error, got %v / %q", err, draft.Error)
	}
	if api.count("CreateBooking") != 0 {
		t.Fatalf("no booking must be created without an availability check")
	}
}

func TestUnavailableDateBlocksSubmit(t *testing.T) {
	api, svc := newBookingFixture()
	ctx := context.Background()
	key := repositories.DraftKey("s1", "1")

	draft, err := svc.CheckAvailability(ctx, key, "1", BookingForm{Date: "2025-03-02"})
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if draft.CanSubmit() {
		t.Fatalf("unavailable date must not be submittable")
	}

	_, _, err = svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-02"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.count("CreateBooking") != 0 {
		t.Fatalf("no booking must be created for an unavailable date")
	}
}

func TestNewDateInvalidatesPreviousCheck(t *testing.T) {
	api, svc := newBookingFixture()
	ctx := context.Background()
	key := repositories.DraftKey("s1", "1")

	if _, err := svc.CheckAvailability(ctx, key, "1", BookingForm{Date: "2025-03-01"}); err != nil {
		t.Fatalf("check availability: %v", err)
	}

	draft, err := svc.SelectDate(ctx, key, "1", BookingForm{Date: "2025-03-05"})
	if err != nil {
		t.Fatalf("select date: %v", err)
	}
	if draft.Availability != nil || draft.State() != models.DraftDateSelected {
		t.Fatalf("selecting a date must clear availability, got %+v", draft)
	}

	// the same date again still resets
	if _, err := svc.CheckAvailability(ctx, key, "1", BookingForm{Date: "2025-03-01"}); err != nil {
		t.Fatalf("check availability: %v", err)
	}
	draft, _ = svc.SelectDate(ctx, key, "1", BookingForm{Date: "2025-03-01"})
	if draft.Availability != nil {
		t.Fatalf("re-selecting a date must clear availability")
	}

	// submitting with a different date than the checked one is refused
	if _, err := svc.CheckAvailability(ctx, key, "1", BookingForm{Date: "2025-03-01"}); err != nil {
		t.Fatalf("check availability: %v", err)
	}
	_, draft, err = svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-09"})
	if !domain.IsValidation(err) || draft.Availability != nil {
		t.Fatalf("changed date on submit must invalidate the check, got %v %+v", err, draft)
	}
	if api.count("CreateBooking") != 0 {
		t.Fatalf("no booking must be created")
	}
}

func TestRequiredFieldsCheckedBeforeNetwork(t *testing.T) {
	api, svc := newBookingFixture()
	ctx := context.Background()
	key := repositories.DraftKey("s1", "1")

	if _, err := svc.CheckAvailability(ctx, key, "1", BookingForm{Date: "2025-03-01"}); err != nil {
		t.Fatalf("check availability: %v", err)
	}

	_, draft, err := svc.Submit(ctx, key, "1", BookingForm{UserName: "  ", UserEmail: "a@x.com", Date: "2025-03-01"})
	if !domain.IsValidation(err) || draft.Error != MsgFillRequiredFields {
		t.Fatalf("expected required-field error, got %v / %q", err, draft.Error)
	}
	if api.count("CreateBooking") != 0 {
		t.Fatalf("validation must run before any network call")
	}
}

func TestCheckAvailabilityWithoutDate(t *testing.T) {
	api, svc := newBookingFixture()
	draft, err := svc.CheckAvailability(context.Background(), "k", "1", BookingForm{Date: ""})
	if !domain.IsValidation(err) || draft.Error != MsgSelectDateFirst {
		t.Fatalf("expected select-date error, got %v / %q", err, draft.Error)
	}
	if api.count("CheckAvailability") != 0 {
		t.Fatalf("no availability call without a date")
	}
}

func TestAvailabilityFailureMessage(t *testing.T) {
	api, svc := newBookingFixture()
	api.availErr = &apiclient.RequestError{StatusCode: 500, Message: "boom"}

	draft, err := svc.CheckAvailability(context.Background(), "k", "1", BookingForm{Date: "2025-03-01"})
	if err == nil || draft.Error != MsgAvailabilityFailed || draft.Availability != nil {
		t.Fatalf("expected availability failure, got %v %+v", err, draft)
	}
}

func TestSubmitFailureReturnsToCheckedState(t *testing.T) {
	api, svc := newBookingFixture()
	api.createErr = &apiclient.RequestError{StatusCode: 409, Message: "No vans left"}
	ctx := context.Background()
	key := repositories.DraftKey("s1", "1")

	if _, err := svc.CheckAvailability(ctx, key, "1", BookingForm{Date: "2025-03-01"}); err != nil {
		t.Fatalf("check availability: %v", err)
	}
	_, draft, err := svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if draft.Error != "No vans left" || draft.Submitting || draft.State() != models.DraftAvailabilityChecked {
		t.Fatalf("unexpected draft after failure: %+v", draft)
	}

	stored, err := svc.Drafts.Get(ctx, key)
	if err != nil || stored.Submitting || stored.Error != "No vans left" {
		t.Fatalf("stored draft not restored: %v %+v", err, stored)
	}
}

func TestSubmitWhileInFlightIsRejected(t *testing.T) {
	api, svc := newBookingFixture()
	ctx := context.Background()
	key := repositories.DraftKey("s1", "1")

	inflight := models.BookingDraft{TripID: "1", Date: "2025-03-01", UserName: "A", UserEmail: "a@x.com",
		Availability: &models.Availability{Available: true}, Submitting: true}
	if err := svc.Drafts.Save(ctx, key, inflight); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, _, err := svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if api.count("CreateBooking") != 0 {
		t.Fatalf("second submission must not reach the service")
	}
}

func TestOpenUnknownTrip(t *testing.T) {
	_, svc := newBookingFixture()
	if _, err := svc.Open(context.Background(), "k", "42"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ctxDraftRepo refuses work on a finished context, like a network-backed store.
type ctxDraftRepo struct {
	inner repositories.DraftRepository
}

func (r ctxDraftRepo) Get(ctx context.Context, key string) (models.BookingDraft, error) {
	if err := ctx.Err(); err != nil {
		return models.BookingDraft{}, domain.InternalError{Msg: "draft store unavailable", Err: err}
	}
	return r.inner.Get(ctx, key)
}

func (r ctxDraftRepo) Save(ctx context.Context, key string, d models.BookingDraft) error {
	if err := ctx.Err(); err != nil {
		return domain.InternalError{Msg: "draft store unavailable", Err: err}
	}
	return r.inner.Save(ctx, key, d)
}

func (r ctxDraftRepo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return domain.InternalError{Msg: "draft store unavailable", Err: err}
	}
	return r.inner.Delete(ctx, key)
}

func TestCancelledSubmitDoesNotLeaveDraftInFlight(t *testing.T) {
	api, svc := newBookingFixture()
	svc.Drafts = ctxDraftRepo{inner: repositories.NewMemoryDraftRepo(time.Minute)}
	key := repositories.DraftKey("s1", "1")

	if _, err := svc.CheckAvailability(context.Background(), key, "1", BookingForm{Date: "2025-03-01"}); err != nil {
		t.Fatalf("check availability: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api.onCreate = cancel
	api.createErr = &apiclient.RequestError{Method: "POST", Path: "/bookings", Message: "Something went wrong", Err: context.Canceled}

	if _, _, err := svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"}); err == nil {
		t.Fatalf("expected the cancelled submit to fail")
	}

	stored, err := svc.Drafts.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Submitting || stored.State() != models.DraftAvailabilityChecked {
		t.Fatalf("draft stuck after cancelled submit: %+v", stored)
	}

	api.onCreate = nil
	api.createErr = nil
	if _, _, err := svc.Submit(context.Background(), key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"}); err != nil {
		t.Fatalf("retry should succeed, got %v", err)
	}
}

func TestCancelledSuccessStillDiscardsDraft(t *testing.T) {
	api, svc := newBookingFixture()
	svc.Drafts = ctxDraftRepo{inner: repositories.NewMemoryDraftRepo(time.Minute)}
	key := repositories.DraftKey("s1", "1")

	if _, err := svc.CheckAvailability(context.Background(), key, "1", BookingForm{Date: "2025-03-01"}); err != nil {
		t.Fatalf("check availability: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api.onCreate = cancel

	if _, _, err := svc.Submit(ctx, key, "1", BookingForm{UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Drafts.Get(context.Background(), key); !domain.IsNotFound(err) {
		t.Fatalf("draft should be discarded, got %v", err)
	}
}
