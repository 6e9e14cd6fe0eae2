package models

import "strings"

// BookingStatus is one of pending, confirmed or cancelled.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists the statuses in the order the admin select shows them.
var BookingStatuses = []BookingStatus{StatusConfirmed, StatusPending, StatusCancelled}

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseBookingStatus normalizes case and whitespace; ok is false for values
// outside the enum.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// Booking mirrors the booking service payload. TripName and Price are
// denormalized from the trip at booking time.
type Booking struct {
	ID        ID            `json:"id"`
	TripID    ID            `json:"tripId"`
	TripName  string        `json:"tripName"`
	UserName  string        `json:"userName"`
	UserEmail string        `json:"userEmail"`
	Date      string        `json:"date"`
	Price     float64       `json:"price"`
	Status    BookingStatus `json:"status"`
}

// BookingRequest is the create-booking payload. Payment details are never part of it.
type BookingRequest struct {
	TripID    ID     `json:"tripId"`
	UserName  string `json:"userName" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required"`
	Date      string `json:"date" validate:"required"`
}

// Stats is derived from a booking list and never stored on its own.
type Stats struct {
	TotalBookings     int     `json:"totalBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	ConfirmedBookings int     `json:"confirmedBookings"`
}

// Label is the capitalized status shown in the admin select.
func (s BookingStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
