package services

import (
	"context"

	"tripzy/internal/domain/models"
)

// BookingAPI is the booking service contract the views depend on.
// *apiclient.Client implements it.
type BookingAPI interface {
	ListTrips(ctx context.Context) ([]models.Trip, error)
	CheckAvailability(ctx context.Context, date string) (models.Availability, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id models.ID) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id models.ID, status models.BookingStatus) (models.Booking, error)
	DeleteBooking(ctx context.Context, id models.ID) error
}
