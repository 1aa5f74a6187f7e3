package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"talentflow/models"
	"talentflow/services/calendar"
	"talentflow/utils"
)

// CalendarHandler exposes the raw calendar collaborator: event listing and
// interview booking. Availability computation lives in AvailabilityHandler.
type CalendarHandler struct {
	Calendar calendar.Client
}

func NewCalendarHandler(cal calendar.Client) *CalendarHandler {
	return &CalendarHandler{Calendar: cal}
}

// GetEventsHandler returns the user's raw calendar events in a time range.
func (h *CalendarHandler) GetEventsHandler(c *gin.Context) {
	var input struct {
		UserEmail string `json:"userEmail" binding:"required,email"`
		StartTime string `json:"startTime" binding:"required"`
		EndTime   string `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	start, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startTime", err.Error())
		return
	}
	end, err := time.Parse(time.RFC3339, input.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endTime", err.Error())
		return
	}

	events, err := h.Calendar.FetchEvents(c.Request.Context(), input.UserEmail, start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch calendar events", err.Error())
		return
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// ScheduleInterviewHandler books the interview on the recruiter's calendar.
// Slot validity is the caller's concern; pair with the validate-slot
// endpoint before booking.
func (h *CalendarHandler) ScheduleInterviewHandler(c *gin.Context) {
	var req models.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Calendar.ScheduleInterview(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("failed to schedule interview for %s", req.CandidateName), err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
