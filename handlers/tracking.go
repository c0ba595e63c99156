package handlers

import (
	"errors"
	"net/http"

	"tourify/services/tracking"
	"tourify/utils"

	"github.com/gin-gonic/gin"
)

// TrackingHandler exposes the tracking flow: reservation lookup by token,
// cancellation eligibility, the reschedule calendar and customer requests.
type TrackingHandler struct {
	Tracking tracking.Service
}

// NewTrackingHandler creates a handler backed by the given tracking service.
func NewTrackingHandler(svc tracking.Service) *TrackingHandler {
	return &TrackingHandler{Tracking: svc}
}

// GetReservation looks a reservation up by tracking token.
func (h *TrackingHandler) GetReservation(c *gin.Context) {
	tracked, err := h.Tracking.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.renderTrackingError(c, err)
		return
	}
	c.JSON(http.StatusOK, tracked)
}

// GetEligibility returns the cancellation/date-change eligibility and countdown.
func (h *TrackingHandler) GetEligibility(c *gin.Context) {
	tracked, err := h.Tracking.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.renderTrackingError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Tracking.Eligibility(*tracked))
}

// GetCalendar returns the computed reschedule calendar.
func (h *TrackingHandler) GetCalendar(c *gin.Context) {
	days, err := h.Tracking.Calendar(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.renderTrackingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// SubmitRequest files a cancellation/date-change/other request. The
// reservation is fetched once and the eligibility gate is applied before the
// request goes anywhere near the reservation API.
func (h *TrackingHandler) SubmitRequest(c *gin.Context) {
	var input tracking.RequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tracked, err := h.Tracking.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.renderTrackingError(c, err)
		return
	}

	if err := h.Tracking.SubmitRequest(c.Request.Context(), *tracked, input); err != nil {
		h.renderTrackingError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}

func (h *TrackingHandler) renderTrackingError(c *gin.Context, err error) {
	if errors.Is(err, tracking.ErrReservationNotFound) {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", "no reservation matches this tracking token")
		return
	}

	var trackingErr *tracking.TrackingError
	if errors.As(err, &trackingErr) {
		switch trackingErr.Code {
		case tracking.CodeValidation:
			utils.JSONErrorCode(c, http.StatusBadRequest, trackingErr.Code, trackingErr.Message)
		case tracking.CodeIneligible, tracking.CodeExternal:
			utils.JSONErrorCode(c, http.StatusConflict, trackingErr.Code, trackingErr.Message)
		case tracking.CodeNetwork:
			utils.JSONErrorCode(c, http.StatusServiceUnavailable, trackingErr.Code, trackingErr.Message)
		default:
			utils.JSONErrorCode(c, http.StatusInternalServerError, trackingErr.Code, trackingErr.Message)
		}
		return
	}

	getLogger(c).Error("tracking handler: unclassified error: " + err.Error())
	utils.JSONError(c, http.StatusInternalServerError, "internal error", "an unexpected error occurred")
}
