package handlers

import (
	"errors"
	"net/http"

	"tourify/models"
	"tourify/services/reservation"
	"tourify/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes the reservation flow over HTTP.
type ReservationHandler struct {
	Flow reservation.FlowService
}

// NewReservationHandler creates a handler backed by the given flow service.
func NewReservationHandler(flow reservation.FlowService) *ReservationHandler {
	return &ReservationHandler{Flow: flow}
}

// StartSession opens a new reservation session for an activity.
func (h *ReservationHandler) StartSession(c *gin.Context) {
	var input struct {
		ActivityID string `json:"activityId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Flow.StartSession(c.Request.Context(), input.ActivityID)
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current session state.
func (h *ReservationHandler) GetSession(c *gin.Context) {
	session, err := h.Flow.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession destroys the session and its draft.
func (h *ReservationHandler) CancelSession(c *gin.Context) {
	if err := h.Flow.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// UpdateSelection applies date/time/participant-count changes.
func (h *ReservationHandler) UpdateSelection(c *gin.Context) {
	var input reservation.SelectionUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Flow.UpdateSelection(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateExtras replaces the selected extras.
func (h *ReservationHandler) UpdateExtras(c *gin.Context) {
	var input struct {
		Extras []reservation.ExtraSelection `json:"extras"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Flow.UpdateExtras(c.Request.Context(), c.Param("sessionID"), input.Extras)
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateParticipants stores participant details.
func (h *ReservationHandler) UpdateParticipants(c *gin.Context) {
	var input struct {
		Participants []models.Participant `json:"participants" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Flow.UpdateParticipants(c.Request.Context(), c.Param("sessionID"), input.Participants)
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateContact stores contact details.
func (h *ReservationHandler) UpdateContact(c *gin.Context) {
	var input reservation.ContactUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Flow.UpdateContact(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Advance moves the session to the next step.
func (h *ReservationHandler) Advance(c *gin.Context) {
	session, err := h.Flow.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back moves the session to the previous step.
func (h *ReservationHandler) Back(c *gin.Context) {
	session, err := h.Flow.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Submit finalizes the reservation; the response carries either the payment
// page URL or the confirmed result.
func (h *ReservationHandler) Submit(c *gin.Context) {
	session, err := h.Flow.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DayAvailability returns the computed availability for a date.
func (h *ReservationHandler) DayAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	day, err := h.Flow.DayAvailability(c.Request.Context(), c.Param("sessionID"), date)
	if err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// renderFlowError maps flow errors onto HTTP statuses: guard violations are
// 400, ineligible actions and upstream rejections 409, network failures 503.
func (h *ReservationHandler) renderFlowError(c *gin.Context, err error) {
	if errors.Is(err, reservation.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "session not found", "the reservation session expired or does not exist")
		return
	}

	var flowErr *reservation.FlowError
	if errors.As(err, &flowErr) {
		switch flowErr.Code {
		case reservation.CodeValidation:
			utils.JSONErrorCode(c, http.StatusBadRequest, flowErr.Code, flowErr.Message)
		case reservation.CodeIneligible, reservation.CodeExternal:
			utils.JSONErrorCode(c, http.StatusConflict, flowErr.Code, flowErr.Message)
		case reservation.CodeNetwork:
			utils.JSONErrorCode(c, http.StatusServiceUnavailable, flowErr.Code, flowErr.Message)
		default:
			utils.JSONErrorCode(c, http.StatusInternalServerError, flowErr.Code, flowErr.Message)
		}
		return
	}

	getLogger(c).Error("reservation handler: unclassified error: " + err.Error())
	utils.JSONError(c, http.StatusInternalServerError, "internal error", "an unexpected error occurred")
}
