// Package apitest runs an in-memory booking service speaking the same JSON
// contract as the real one, for client and router tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"tripzy/internal/domain/models"
)

type Server struct {
	*httptest.Server

	mu           sync.Mutex
	trips        []models.Trip
	bookings     []models.Booking
	availability map[string]models.Availability
	nextID       int
	calls        []string
	failures     map[string]failure
}

type failure struct {
	status int
	msg    string
}

// New starts the fake with the given trips. Its URL plus "/api" is the client base.
func New(trips ...models.Trip) *Server {
	s := &Server{
		trips:        append([]models.Trip(nil), trips...),
		availability: map[string]models.Availability{},
		failures:     map[string]failure{},
		nextID:       1,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// BaseURL is the value the client should be built with.
func (s *Server) BaseURL() string { return s.URL + "/api" }

func (s *Server) SetAvailability(date string, a models.Availability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability[date] = a
}

func (s *Server) AddBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

func (s *Server) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking(nil), s.bookings...)
}

// Calls lists "METHOD /path" for every request served, in order.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// FailNext makes the next request to "METHOD /path" answer status with
// {"error": msg}; an empty msg sends an empty JSON object.
func (s *Server) FailNext(methodPath string, status int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[methodPath] = failure{status: status, msg: msg}
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	key := r.Method + " " + path

	s.mu.Lock()
	s.calls = append(s.calls, key)
	f, failing := s.failures[key]
	if failing {
		delete(s.failures, key)
	}
	s.mu.Unlock()

	if failing {
		if f.msg == "" {
			writeJSON(w, f.status, map[string]string{})
			return
		}
		writeJSON(w, f.status, map[string]string{"error": f.msg})
		return
	}

	switch {
	case key == "GET /trips":
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, s.trips)
	case key == "POST /check-availability":
		s.checkAvailability(w, r)
	case key == "POST /bookings":
		s.createBooking(w, r)
	case key == "GET /bookings":
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, s.bookings)
	case strings.HasPrefix(path, "/bookings/"):
		s.bookingByID(w, r, models.ID(strings.TrimPrefix(path, "/bookings/")))
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "route not found"})
	}
}

func (s *Server) checkAvailability(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Date == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.availability[in.Date]
	if !ok {
		a = models.Availability{Available: false}
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var in models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var trip *models.Trip
	for i := range s.trips {
		if s.trips[i].ID.Same(in.TripID) {
			trip = &s.trips[i]
			break
		}
	}
	if trip == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Trip not found"})
		return
	}

	b := models.Booking{
		ID:        models.ID("bk" + strconv.Itoa(s.nextID)),
		TripID:    trip.ID,
		TripName:  trip.Title,
		UserName:  in.UserName,
		UserEmail: in.UserEmail,
		Date:      in.Date,
		Price:     trip.Price,
		Status:    models.StatusConfirmed,
	}
	s.nextID++
	s.bookings = append(s.bookings, b)
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Booking created", "booking": b})
}

func (s *Server) bookingByID(w http.ResponseWriter, r *http.Request, id models.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.bookings {
		if s.bookings[i].ID.Same(id) {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Booking not found"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.bookings[idx])
	case http.MethodPut:
		var in struct {
			Status models.BookingStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || !in.Status.Valid() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
		s.bookings[idx].Status = in.Status
		writeJSON(w, http.StatusOK, s.bookings[idx])
	case http.MethodDelete:
		s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
