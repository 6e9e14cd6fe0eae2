package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
	"tripzy/internal/http/middleware"
	"tripzy/internal/repositories"
	"tripzy/internal/services"
	"tripzy/internal/utils"
)

// bookingFormInput is the booking page form. Payment inputs are read-only
// placeholders and have no field here on purpose.
type bookingFormInput struct {
	UserName  string `form:"userName"`
	UserEmail string `form:"userEmail"`
	Date      string `form:"date"`
}

func (in bookingFormInput) toForm() services.BookingForm {
	return services.BookingForm{UserName: in.UserName, UserEmail: in.UserEmail, Date: in.Date}
}

const msgSessionUnavailable = "Your booking session is unavailable, please retry"

func draftKey(c *gin.Context, tripID models.ID) string {
	return repositories.DraftKey(middleware.GetSessionID(c), tripID)
}

func bookingURL(tripID models.ID) string {
	return "/book/" + url.PathEscape(tripID.String())
}

// BookingForm: GET /book/:tripId
func (h *Handler) BookingForm(c *gin.Context) {
	tripID := paramID(c, "tripId")
	page, err := h.booking(c).Open(c.Request.Context(), draftKey(c, tripID), tripID)
	switch {
	case err == nil:
	case domain.IsNotFound(err):
		h.renderError(c, http.StatusNotFound, "Trip not found")
		return
	case domain.IsValidation(err):
		h.renderError(c, http.StatusBadRequest, err.Error())
		return
	case page.Trip.ID.IsZero():
		h.logFailure(c, "booking", "load_trip", err)
		h.renderError(c, http.StatusBadGateway, services.MsgTripLoadFailed)
		return
	default:
		// trip loaded but the draft store failed
		h.logFailure(c, "booking", "load_draft", err)
		h.renderError(c, http.StatusInternalServerError, msgSessionUnavailable)
		return
	}

	c.HTML(http.StatusOK, "booking.tmpl", gin.H{
		"Title":     "Book " + page.Trip.Title,
		"Nav":       "book",
		"Trip":      page.Trip,
		"Draft":     page.Draft,
		"State":     string(page.Draft.State()),
		"CanSubmit": page.Draft.CanSubmit(),
		"MinDate":   utils.Today(),
	})
}

// SelectDate: POST /book/:tripId/date
func (h *Handler) SelectDate(c *gin.Context) {
	tripID := paramID(c, "tripId")
	var in bookingFormInput
	_ = c.ShouldBind(&in)

	draft, err := h.booking(c).SelectDate(c.Request.Context(), draftKey(c, tripID), tripID, in.toForm())
	h.afterBookingAction(c, tripID, draft, err)
}

// CheckAvailability: POST /book/:tripId/availability
func (h *Handler) CheckAvailability(c *gin.Context) {
	tripID := paramID(c, "tripId")
	var in bookingFormInput
	_ = c.ShouldBind(&in)

	draft, err := h.booking(c).CheckAvailability(c.Request.Context(), draftKey(c, tripID), tripID, in.toForm())
	h.afterBookingAction(c, tripID, draft, err)
}

// SubmitBooking: POST /book/:tripId. Success leaves for the confirmation page.
func (h *Handler) SubmitBooking(c *gin.Context) {
	tripID := paramID(c, "tripId")
	var in bookingFormInput
	_ = c.ShouldBind(&in)

	booking, draft, err := h.booking(c).Submit(c.Request.Context(), draftKey(c, tripID), tripID, in.toForm())
	if err != nil {
		h.afterBookingAction(c, tripID, draft, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/confirmation/"+url.PathEscape(booking.ID.String()))
}

// afterBookingAction sends the visitor back to the form. Failures the visitor
// can act on are already recorded on the draft as its inline error; anything
// else means the draft store itself failed.
func (h *Handler) afterBookingAction(c *gin.Context, tripID models.ID, draft models.BookingDraft, err error) {
	if err != nil {
		switch {
		case domain.IsConflict(err):
			h.renderError(c, http.StatusConflict, services.MsgSubmissionInFlight)
			return
		case draft.Error == "":
			h.logFailure(c, "booking", "draft_store", err)
			h.renderError(c, http.StatusInternalServerError, msgSessionUnavailable)
			return
		default:
			h.logFailure(c, "booking", "form_action", err)
		}
	}
	c.Redirect(http.StatusSeeOther, bookingURL(tripID))
}
