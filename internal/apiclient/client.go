// Package apiclient talks to the external booking service over its JSON
// contract. Every call is a single round trip: no retries, no caching.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tripzy/internal/domain/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for baseURL (e.g. "http://host:5000/api"). A nil
// httpClient means a plain client without a timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    httpClient,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

type availabilityRequest struct {
	Date string `json:"date"`
}

type statusRequest struct {
	Status models.BookingStatus `json:"status"`
}

type createBookingResponse struct {
	Booking models.Booking `json:"booking"`
}

type errorBody struct {
	Error string `json:"error"`
}

// ListTrips: GET /trips
func (c *Client) ListTrips(ctx context.Context) ([]models.Trip, error) {
	trips := []models.Trip{}
	if err := c.do(ctx, http.MethodGet, "/trips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// CheckAvailability: POST /check-availability
func (c *Client) CheckAvailability(ctx context.Context, date string) (models.Availability, error) {
	var out models.Availability
	err := c.do(ctx, http.MethodPost, "/check-availability", availabilityRequest{Date: date}, &out)
	return out, err
}

// CreateBooking: POST /bookings, the created booking comes wrapped in {"booking": ...}.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	var out createBookingResponse
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &out); err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

// ListBookings: GET /bookings
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking: GET /bookings/{id}
func (c *Client) GetBooking(ctx context.Context, id models.ID) (models.Booking, error) {
	var out models.Booking
	err := c.do(ctx, http.MethodGet, bookingPath(id), nil, &out)
	return out, err
}

// UpdateBookingStatus: PUT /bookings/{id}
func (c *Client) UpdateBookingStatus(ctx context.Context, id models.ID, status models.BookingStatus) (models.Booking, error) {
	var out models.Booking
	err := c.do(ctx, http.MethodPut, bookingPath(id), statusRequest{Status: status}, &out)
	return out, err
}

// DeleteBooking: DELETE /bookings/{id}. Any success body is ignored.
func (c *Client) DeleteBooking(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, bookingPath(id), nil, nil)
}

func bookingPath(id models.ID) string {
	return "/bookings/" + url.PathEscape(strings.TrimSpace(id.String()))
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	fail := func(status int, msg string, err error) error {
		return &RequestError{Method: method, Path: path, StatusCode: status, Message: msg, Err: err}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fail(0, DefaultErrorMessage, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fail(0, DefaultErrorMessage, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, DefaultErrorMessage, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, DefaultErrorMessage, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := DefaultErrorMessage
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && strings.TrimSpace(eb.Error) != "" {
			msg = strings.TrimSpace(eb.Error)
		}
		return fail(resp.StatusCode, msg, nil)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fail(resp.StatusCode, DefaultErrorMessage, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// AsRequestError unwraps a client failure.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
