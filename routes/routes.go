package routes

import (
	"net/http"
	"time"

	"tourify/handlers"
	"tourify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReservationRoutes sets up the endpoints for the reservation flow.
func RegisterReservationRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	api := r.Group("/api/reservations")
	{
		api.POST("/session", h.StartSession)
		api.GET("/session/:sessionID", h.GetSession)
		api.DELETE("/session/:sessionID", h.CancelSession)

		api.PUT("/session/:sessionID/selection", h.UpdateSelection)
		api.PUT("/session/:sessionID/extras", h.UpdateExtras)
		api.PUT("/session/:sessionID/participants", h.UpdateParticipants)
		api.PUT("/session/:sessionID/contact", h.UpdateContact)

		api.POST("/session/:sessionID/advance", h.Advance)
		api.POST("/session/:sessionID/back", h.Back)
		api.POST("/session/:sessionID/submit", h.Submit)

		api.GET("/session/:sessionID/availability", h.DayAvailability)
	}
}

// RegisterTrackingRoutes sets up the token-based tracking endpoints.
func RegisterTrackingRoutes(r *gin.Engine, h *handlers.TrackingHandler) {
	api := r.Group("/api/track")
	{
		api.GET("/:token", h.GetReservation)
		api.GET("/:token/eligibility", h.GetEligibility)
		api.GET("/:token/calendar", h.GetCalendar)
		api.POST("/:token/requests", h.SubmitRequest)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// CORSMiddleware returns the CORS policy for the public booking website.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
