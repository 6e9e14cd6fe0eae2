// Package handlers renders the TripZy views and serves the small JSON surface
// under /api. Every handler builds its service per request so the request id
// follows the call into the logs.
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripzy/internal/domain/models"
	"tripzy/internal/http/middleware"
	"tripzy/internal/repositories"
	"tripzy/internal/services"
	"tripzy/internal/utils"
)

type Handler struct {
	API      services.BookingAPI
	Drafts   repositories.DraftRepository
	Currency string
	Log      *zap.Logger
}

func New(api services.BookingAPI, drafts repositories.DraftRepository, currency string, log *zap.Logger) *Handler {
	if log == nil {
		log = utils.GetLogger()
	}
	return &Handler{API: api, Drafts: drafts, Currency: currency, Log: log}
}

func (h *Handler) catalog(c *gin.Context) services.CatalogService {
	return services.CatalogService{API: h.API, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) booking(c *gin.Context) services.BookingService {
	return services.BookingService{API: h.API, Drafts: h.Drafts, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) tickets(c *gin.Context) services.TicketService {
	return services.TicketService{API: h.API, Currency: h.Currency, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) admin(c *gin.Context) services.AdminService {
	return services.AdminService{API: h.API, RequestID: middleware.GetRequestID(c)}
}

func paramID(c *gin.Context, name string) models.ID {
	return models.ID(utils.TrimOrEmpty(c.Param(name)))
}

// logFailure records an error that the page swallows or turns into a
// friendlier message.
func (h *Handler) logFailure(c *gin.Context, module, action string, err error) {
	utils.LogFailureTo(h.Log, middleware.GetRequestID(c), module, action, err)
}
