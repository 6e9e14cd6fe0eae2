package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "tripzy/internal/config"
	h "tripzy/internal/http/handlers"
	"tripzy/internal/http/middleware"
	"tripzy/internal/repositories"
	"tripzy/internal/services"
	"tripzy/internal/utils"
)

// Deps are the collaborators the web layer is built from.
type Deps struct {
	API    services.BookingAPI
	Drafts repositories.DraftRepository
	Log    *zap.Logger
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = utils.GetLogger()
	}
	if deps.Drafts == nil {
		deps.Drafts = repositories.NewMemoryDraftRepo(env.SessionTTL)
	}
	handler := h.New(deps.API, deps.Drafts, env.CurrencySymbol, log)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(env.AllowedOrigins()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}
	r.SetHTMLTemplate(loadTemplates(env.CurrencySymbol))

	r.NoRoute(func(c *gin.Context) {
		c.HTML(stdhttp.StatusNotFound, "error.tmpl", gin.H{
			"Title":     "Not Found",
			"Nav":       "",
			"Status":    stdhttp.StatusNotFound,
			"Message":   "Page not found",
			"RequestID": middleware.GetRequestID(c),
		})
	})

	limit := middleware.NewRateLimiter(env.RateLimitPerMin).Middleware(log)

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/routes", h.Routes)
		api.GET("/admin/stats", handler.AdminStats)
	}

	pages := r.Group("/", middleware.Session(env.SessionTTL, env.IsProduction()))
	{
		pages.GET("", handler.TripList)

		book := pages.Group("/book/:tripId")
		book.GET("", handler.BookingForm)
		book.POST("", limit, handler.SubmitBooking)
		book.POST("/date", limit, handler.SelectDate)
		book.POST("/availability", limit, handler.CheckAvailability)

		confirmation := pages.Group("/confirmation/:bookingId")
		confirmation.GET("", handler.Confirmation)
		confirmation.GET("/ticket.txt", handler.TicketText)
		confirmation.GET("/ticket.pdf", handler.TicketPDF)

		admin := pages.Group("/admin")
		admin.GET("", handler.AdminPanel)
		admin.POST("/bookings/:id/status", limit, handler.UpdateBookingStatus)
		admin.GET("/bookings/:id/delete", handler.ConfirmDelete)
		admin.POST("/bookings/:id/delete", limit, handler.DeleteBooking)
	}

	h.SetRouter(r)
	return r
}
