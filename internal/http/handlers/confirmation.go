package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripzy/internal/domain/models"
	"tripzy/internal/services"
)

func (h *Handler) loadBooking(c *gin.Context) (services.TicketService, models.Booking, bool) {
	svc := h.tickets(c)
	b, err := svc.GetBooking(c.Request.Context(), paramID(c, "bookingId"))
	if err != nil {
		h.logFailure(c, "confirmation", "get_booking", err)
		c.HTML(http.StatusNotFound, "confirmation.tmpl", gin.H{
			"Title":    "Booking not found",
			"Nav":      "",
			"NotFound": true,
		})
		return svc, models.Booking{}, false
	}
	return svc, b, true
}

// Confirmation: GET /confirmation/:bookingId
func (h *Handler) Confirmation(c *gin.Context) {
	_, b, ok := h.loadBooking(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "confirmation.tmpl", gin.H{
		"Title":   "Booking Confirmed!",
		"Nav":     "",
		"Booking": b,
	})
}

// TicketText: GET /confirmation/:bookingId/ticket.txt
func (h *Handler) TicketText(c *gin.Context) {
	svc, b, ok := h.loadBooking(c)
	if !ok {
		return
	}
	body, filename := svc.TicketText(b)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// TicketPDF: GET /confirmation/:bookingId/ticket.pdf
func (h *Handler) TicketPDF(c *gin.Context) {
	svc, b, ok := h.loadBooking(c)
	if !ok {
		return
	}
	pdf, filename, err := svc.TicketPDF(b)
	if err != nil {
		h.logFailure(c, "confirmation", "ticket_pdf", err)
		h.renderError(c, http.StatusInternalServerError, "Failed to render ticket")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
