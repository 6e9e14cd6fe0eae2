package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TripList renders the catalog. A failed load is only logged; the page then
// stays in its loading state.
func (h *Handler) TripList(c *gin.Context) {
	trips, err := h.catalog(c).ListTrips(c.Request.Context())
	if err != nil {
		h.logFailure(c, "catalog", "list_trips", err)
		c.HTML(http.StatusOK, "trips.tmpl", gin.H{
			"Title":   "Choose Your Adventure",
			"Nav":     "book",
			"Loading": true,
		})
		return
	}

	c.HTML(http.StatusOK, "trips.tmpl", gin.H{
		"Title": "Choose Your Adventure",
		"Nav":   "book",
		"Trips": trips,
	})
}
