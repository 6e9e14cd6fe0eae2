package services

import (
	"context"
	"sync"

	"tripzy/internal/apiclient"
	"tripzy/internal/domain/models"
)

// fakeAPI records calls and serves canned answers.
type fakeAPI struct {
	mu sync.Mutex

	trips        []models.Trip
	availability map[string]models.Availability
	bookings     []models.Booking
	createErr    error
	listErr      error
	updateErr    error
	deleteErr    error
	availErr     error

	// onCreate runs inside CreateBooking before the canned answer
	onCreate func()

	calls []string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) ListTrips(context.Context) ([]models.Trip, error) {
	f.record("ListTrips")
	return f.trips, nil
}

func (f *fakeAPI) CheckAvailability(_ context.Context, date string) (models.Availability, error) {
	f.record("CheckAvailability")
	if f.availErr != nil {
		return models.Availability{}, f.availErr
	}
	return f.availability[date], nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, req models.BookingRequest) (models.Booking, error) {
	f.record("CreateBooking")
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.createErr != nil {
		return models.Booking{}, f.createErr
	}
	var price float64
	var name string
	for _, t := range f.trips {
		if t.ID.Same(req.TripID) {
			price, name = t.Price, t.Title
		}
	}
	b := models.Booking{ID: "b1", TripID: req.TripID, TripName: name, UserName: req.UserName, UserEmail: req.UserEmail, Date: req.Date, Price: price, Status: models.StatusPending}
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeAPI) ListBookings(context.Context) ([]models.Booking, error) {
	f.record("ListBookings")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Booking(nil), f.bookings...), nil
}

func (f *fakeAPI) GetBooking(_ context.Context, id models.ID) (models.Booking, error) {
	f.record("GetBooking")
	for _, b := range f.bookings {
		if b.ID.Same(id) {
			return b, nil
		}
	}
	return models.Booking{}, &apiclient.RequestError{StatusCode: 404, Message: "Booking not found"}
}

func (f *fakeAPI) UpdateBookingStatus(_ context.Context, id models.ID, status models.BookingStatus) (models.Booking, error) {
	f.record("UpdateBookingStatus")
	if f.updateErr != nil {
		return models.Booking{}, f.updateErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID.Same(id) {
			f.bookings[i].Status = status
			return f.bookings[i], nil
		}
	}
	return models.Booking{}, &apiclient.RequestError{StatusCode: 404, Message: "Booking not found"}
}

func (f *fakeAPI) DeleteBooking(_ context.Context, id models.ID) error {
	f.record("DeleteBooking")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	out := f.bookings[:0]
	for _, b := range f.bookings {
		if !b.ID.Same(id) {
			out = append(out, b)
		}
	}
	f.bookings = out
	return nil
}
