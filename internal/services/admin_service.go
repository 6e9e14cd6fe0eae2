package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
	"tripzy/internal/utils"
)

// Alerts shown after a failed admin action.
const (
	AlertStatusUpdateFailed = "Failed to update booking status"
	AlertDeleteFailed       = "Failed to delete booking"
)

// Dashboard is the admin view: the full list and the stats derived from it.
type Dashboard struct {
	Bookings []models.Booking
	Stats    models.Stats
}

type AdminService struct {
	API       BookingAPI
	RequestID string
}

// Dashboard reloads every booking and recomputes the stats from that list.
// On failure it returns an empty dashboard alongside the error.
func (s AdminService) Dashboard(ctx context.Context) (Dashboard, error) {
	bookings, err := s.API.ListBookings(ctx)
	if err != nil {
		return Dashboard{Bookings: []models.Booking{}}, err
	}
	for _, b := range bookings {
		if !b.Status.Valid() {
			utils.GetLogger().Warn("unexpected booking status",
				zap.String("request_id", s.RequestID),
				zap.String("booking_id", b.ID.String()),
				zap.String("status", string(b.Status)),
			)
		}
	}
	return Dashboard{Bookings: bookings, Stats: ComputeStats(bookings)}, nil
}

// UpdateStatus sends a new status for one booking. Values outside the enum
// are rejected without a network call.
func (s AdminService) UpdateStatus(ctx context.Context, id models.ID, raw string) error {
	if id.IsZero() {
		return domain.ValidationError{Field: "id", Msg: "booking id is required"}
	}
	status, ok := models.ParseBookingStatus(raw)
	if !ok {
		return domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unexpected booking status %q", raw)}
	}
	if _, err := s.API.UpdateBookingStatus(ctx, id, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "admin", "update_status", fmt.Sprintf("booking_id=%s status=%s", id, status))
	return nil
}

// Delete removes a booking once the operator has confirmed. Without
// confirmation nothing is sent and deleted is false.
func (s AdminService) Delete(ctx context.Context, id models.ID, confirmed bool) (bool, error) {
	if id.IsZero() {
		return false, domain.ValidationError{Field: "id", Msg: "booking id is required"}
	}
	if !confirmed {
		return false, nil
	}
	if err := s.API.DeleteBooking(ctx, id); err != nil {
		return false, err
	}
	utils.LogEvent(s.RequestID, "admin", "delete_booking", "booking_id="+id.String())
	return true, nil
}

// ComputeStats counts bookings, sums their prices and counts confirmed ones.
func ComputeStats(bookings []models.Booking) models.Stats {
	st := models.Stats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		st.TotalRevenue += b.Price
		if b.Status == models.StatusConfirmed {
			st.ConfirmedBookings++
		}
	}
	return st
}
