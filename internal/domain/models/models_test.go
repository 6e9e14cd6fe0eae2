package models

import (
	"encoding/json"
	"testing"
)

func TestIDAcceptsNumberAndString(t *testing.T) {
	var trips []Trip
	raw := []byte(`[{"id":1,"title":"A","price":120},{"id":"b7","title":"B","price":80.5}]`)
	if err := json.Unmarshal(raw, &trips); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if trips[0].ID != "1" || trips[1].ID != "b7" {
		t.Fatalf("unexpected ids: %q %q", trips[0].ID, trips[1].ID)
	}
	if !trips[0].ID.Same(ID("01")) {
		t.Fatalf("numeric ids should compare by value")
	}
}

func TestBookingRequestSendsNumericTripID(t *testing.T) {
	b, err := json.Marshal(BookingRequest{TripID: "1", UserName: "A", UserEmail: "a@x.com", Date: "2025-03-01"})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"tripId":1,"userName":"A","userEmail":"a@x.com","date":"2025-03-01"}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
}

func TestDraftSetDateClearsAvailability(t *testing.T) {
	d := BookingDraft{TripID: "1", Date: "2025-03-01", Availability: &Availability{Available: true, AvailableVans: 2, TotalVans: 5}}
	if !d.CanSubmit() || d.State() != DraftAvailabilityChecked {
		t.Fatalf("expected submittable checked draft, got state %s", d.State())
	}

	d.SetDate("2025-03-01")
	if d.Availability != nil {
		t.Fatalf("availability must be cleared on every date change")
	}
	if d.CanSubmit() {
		t.Fatalf("draft without availability must not be submittable")
	}
	if d.State() != DraftDateSelected {
		t.Fatalf("expected date_selected, got %s", d.State())
	}
}

func TestDraftCannotSubmitWhenUnavailableOrInFlight(t *testing.T) {
	d := BookingDraft{Date: "2025-03-01", Availability: &Availability{Available: false}}
	if d.CanSubmit() {
		t.Fatalf("unavailable date must block submission")
	}
	d.Availability = &Availability{Available: true}
	d.Submitting = true
	if d.CanSubmit() {
		t.Fatalf("in-flight submission must block another one")
	}
	if d.State() != DraftSubmitting {
		t.Fatalf("expected submitting, got %s", d.State())
	}
}

func TestParseBookingStatus(t *testing.T) {
	if s, ok := ParseBookingStatus(" Confirmed "); !ok || s != StatusConfirmed {
		t.Fatalf("expected confirmed, got %q ok=%v", s, ok)
	}
	if _, ok := ParseBookingStatus("refunded"); ok {
		t.Fatalf("refunded is not a booking status")
	}
}
