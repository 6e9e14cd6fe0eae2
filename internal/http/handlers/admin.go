package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripzy/internal/domain/models"
	"tripzy/internal/services"
	"tripzy/internal/utils"
)

// Alert codes carried across the redirect back to /admin.
const (
	alertStatusFailed = "status_failed"
	alertDeleteFailed = "delete_failed"
)

var adminAlerts = map[string]string{
	alertStatusFailed: services.AlertStatusUpdateFailed,
	alertDeleteFailed: services.AlertDeleteFailed,
}

// AdminPanel: GET /admin
func (h *Handler) AdminPanel(c *gin.Context) {
	dash, err := h.admin(c).Dashboard(c.Request.Context())
	if err != nil {
		h.logFailure(c, "admin", "list_bookings", err)
	}

	c.HTML(http.StatusOK, "admin.tmpl", gin.H{
		"Title":     "Admin Dashboard",
		"Nav":       "admin",
		"Bookings":  dash.Bookings,
		"Stats":     dash.Stats,
		"Statuses":  models.BookingStatuses,
		"Alert":     adminAlerts[c.Query("alert")],
		"LoadError": err != nil,
	})
}

// UpdateBookingStatus: POST /admin/bookings/:id/status. Always ends with a
// full reload of the dashboard.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	err := h.admin(c).UpdateStatus(c.Request.Context(), paramID(c, "id"), c.PostForm("status"))
	if err != nil {
		h.logFailure(c, "admin", "update_status", err)
		c.Redirect(http.StatusSeeOther, "/admin?alert="+alertStatusFailed)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// ConfirmDelete: GET /admin/bookings/:id/delete asks before anything is sent.
func (h *Handler) ConfirmDelete(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_delete.tmpl", gin.H{
		"Title":     "Delete booking",
		"Nav":       "admin",
		"BookingID": paramID(c, "id"),
	})
}

// DeleteBooking: POST /admin/bookings/:id/delete. Only confirm=yes deletes.
func (h *Handler) DeleteBooking(c *gin.Context) {
	confirmed := strings.EqualFold(utils.TrimOrEmpty(c.PostForm("confirm")), "yes")
	_, err := h.admin(c).Delete(c.Request.Context(), paramID(c, "id"), confirmed)
	if err != nil {
		h.logFailure(c, "admin", "delete_booking", err)
		c.Redirect(http.StatusSeeOther, "/admin?alert="+alertDeleteFailed)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminStats: GET /api/admin/stats
func (h *Handler) AdminStats(c *gin.Context) {
	dash, err := h.admin(c).Dashboard(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash.Stats)
}
