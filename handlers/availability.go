package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentflow/models"
	"talentflow/services/availability"
	"talentflow/services/intelligence"
	"talentflow/utils"
)

// AvailabilityHandler exposes the availability engine over HTTP. Proposed
// slot sets are cached under a proposal ID so the booking flow can refer
// back to exactly what was offered to the candidate.
type AvailabilityHandler struct {
	Engine  availability.Service
	Drafter intelligence.OutreachDrafter

	Cache       *redis.Client
	ProposalTTL time.Duration

	ProposalSlots   int
	SearchDaysAhead int
}

func NewAvailabilityHandler(engine availability.Service, drafter intelligence.OutreachDrafter, cache *redis.Client, proposalTTL time.Duration, proposalSlots, searchDaysAhead int) *AvailabilityHandler {
	return &AvailabilityHandler{
		Engine:          engine,
		Drafter:         drafter,
		Cache:           cache,
		ProposalTTL:     proposalTTL,
		ProposalSlots:   proposalSlots,
		SearchDaysAhead: searchDaysAhead,
	}
}

// AvailableSlotsHandler proposes a diverse slot selection for a candidate
// email and caches it under a fresh proposal ID.
func (h *AvailabilityHandler) AvailableSlotsHandler(c *gin.Context) {
	var input struct {
		UserEmail string `json:"userEmail" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	proposed, err := h.Engine.ProposeSlots(c.Request.Context(), input.UserEmail, h.ProposalSlots, h.SearchDaysAhead)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch available slots", err.Error())
		return
	}

	resp := gin.H{
		"availableSlots": proposed.Formatted,
		"slots":          proposed.Slots,
	}
	if id := h.cacheProposal(c.Request.Context(), proposed); id != "" {
		resp["proposalId"] = id
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AvailabilityHandler) cacheProposal(ctx context.Context, proposed availability.ProposedSlots) string {
	if h.Cache == nil || len(proposed.Slots) == 0 {
		return ""
	}
	data, err := json.Marshal(proposed)
	if err != nil {
		return ""
	}
	proposalID := uuid.New().String()
	if err := h.Cache.Set(ctx, "proposal:"+proposalID, data, h.ProposalTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache proposal", zap.Error(err))
		return ""
	}
	return proposalID
}

// GetProposalHandler returns a previously proposed slot set, if still live.
func (h *AvailabilityHandler) GetProposalHandler(c *gin.Context) {
	if h.Cache == nil {
		utils.JSONError(c, http.StatusNotFound, "proposal not found", "proposal caching disabled")
		return
	}
	proposalID := c.Param("proposalID")
	data, err := h.Cache.Get(c.Request.Context(), "proposal:"+proposalID).Result()
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "proposal not found", "unknown or expired proposal ID")
		return
	}
	var proposed availability.ProposedSlots
	if err := json.Unmarshal([]byte(data), &proposed); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to decode proposal", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposalId": proposalID, "proposal": proposed})
}

// AvailabilityHandler returns the full structured availability for a range.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	input, ok := bindRangeRequest(c)
	if !ok {
		return
	}

	result, err := h.Engine.AvailableSlots(c.Request.Context(), input.userEmail, input.start, input.end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SummaryHandler returns the availability statistics for a range.
func (h *AvailabilityHandler) SummaryHandler(c *gin.Context) {
	input, ok := bindRangeRequest(c)
	if !ok {
		return
	}

	summary, err := h.Engine.Summary(c.Request.Context(), input.userEmail, input.start, input.end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability summary", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// NextSlotHandler returns the earliest bookable slot.
func (h *AvailabilityHandler) NextSlotHandler(c *gin.Context) {
	userEmail := c.Query("userEmail")
	if userEmail == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "userEmail is required")
		return
	}
	daysAhead := h.SearchDaysAhead
	if raw := c.Query("daysAhead"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "daysAhead must be a positive integer")
			return
		}
		daysAhead = n
	}

	slot, err := h.Engine.NextAvailableSlot(c.Request.Context(), userEmail, time.Time{}, daysAhead)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to find next available slot", err.Error())
		return
	}
	if slot == nil {
		c.JSON(http.StatusOK, gin.H{"slot": nil, "message": availability.NoSlotsMessage})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// ValidateSlotHandler reports whether one specific proposed slot is
// currently bookable. Booking itself stays with the calendar collaborator.
func (h *AvailabilityHandler) ValidateSlotHandler(c *gin.Context) {
	var input struct {
		UserEmail string `json:"userEmail" binding:"required,email"`
		StartTime string `json:"startTime" binding:"required"`
		EndTime   string `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	start, err := availability.ParseTimestamp(input.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startTime", err.Error())
		return
	}
	end, err := availability.ParseTimestamp(input.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endTime", err.Error())
		return
	}
	proposed, err := models.NewTimeInterval(start, end)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot", err.Error())
		return
	}

	valid, err := h.Engine.CheckSlot(c.Request.Context(), input.UserEmail, proposed)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to validate slot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid, "slot": proposed})
}

// OutreachDraftHandler proposes slots and drafts the candidate email around
// them.
func (h *AvailabilityHandler) OutreachDraftHandler(c *gin.Context) {
	var input struct {
		UserEmail     string `json:"userEmail" binding:"required,email"`
		CandidateName string `json:"candidateName" binding:"required"`
		Position      string `json:"position" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if h.Drafter == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "outreach drafting unavailable", "no drafting model configured")
		return
	}

	proposed, err := h.Engine.ProposeSlots(c.Request.Context(), input.UserEmail, h.ProposalSlots, h.SearchDaysAhead)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch available slots", err.Error())
		return
	}

	body, err := h.Drafter.DraftOutreachEmail(c.Request.Context(), input.CandidateName, input.Position, proposed.Formatted)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to draft outreach email", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emailBody":      body,
		"availableSlots": proposed.Formatted,
		"slots":          proposed.Slots,
	})
}

type rangeRequest struct {
	userEmail  string
	start, end time.Time
}

// bindRangeRequest parses the shared {userEmail, startDate, endDate} body.
// Dates are calendar dates ("2006-01-02"), inclusive on both ends.
func bindRangeRequest(c *gin.Context) (rangeRequest, bool) {
	var input struct {
		UserEmail string `json:"userEmail" binding:"required,email"`
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return rangeRequest{}, false
	}

	start, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startDate", "expected YYYY-MM-DD")
		return rangeRequest{}, false
	}
	end, err := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endDate", "expected YYYY-MM-DD")
		return rangeRequest{}, false
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "endDate must not precede startDate")
		return rangeRequest{}, false
	}

	return rangeRequest{userEmail: input.UserEmail, start: start, end: end}, true
}
