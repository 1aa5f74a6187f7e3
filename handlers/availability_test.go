package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"talentflow/models"
	"talentflow/services/availability"
)

type fakeAvailabilityService struct {
	availableSlots func(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilityResult, error)
	proposeSlots   func(ctx context.Context, recruiterEmail string, numSlots, searchDaysAhead int) (availability.ProposedSlots, error)
	nextSlot       func(ctx context.Context, recruiterEmail string, from time.Time, maxDaysAhead int) (*models.CandidateSlot, error)
	summary        func(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilitySummary, error)
	checkSlot      func(ctx context.Context, recruiterEmail string, proposed models.TimeInterval) (bool, error)
}

func (f *fakeAvailabilityService) AvailableSlots(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilityResult, error) {
	return f.availableSlots(ctx, recruiterEmail, startDate, endDate)
}

func (f *fakeAvailabilityService) ProposeSlots(ctx context.Context, recruiterEmail string, numSlots, searchDaysAhead int) (availability.ProposedSlots, error) {
	return f.proposeSlots(ctx, recruiterEmail, numSlots, searchDaysAhead)
}

func (f *fakeAvailabilityService) NextAvailableSlot(ctx context.Context, recruiterEmail string, from time.Time, maxDaysAhead int) (*models.CandidateSlot, error) {
	return f.nextSlot(ctx, recruiterEmail, from, maxDaysAhead)
}

func (f *fakeAvailabilityService) Summary(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilitySummary, error) {
	return f.summary(ctx, recruiterEmail, startDate, endDate)
}

func (f *fakeAvailabilityService) CheckSlot(ctx context.Context, recruiterEmail string, proposed models.TimeInterval) (bool, error) {
	return f.checkSlot(ctx, recruiterEmail, proposed)
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAvailableSlotsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	slot := models.CandidateSlot{
		Start: time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local),
		End:   time.Date(2025, time.March, 10, 10, 45, 0, 0, time.Local),
	}
	svc := &fakeAvailabilityService{
		proposeSlots: func(ctx context.Context, recruiterEmail string, numSlots, searchDaysAhead int) (availability.ProposedSlots, error) {
			if recruiterEmail != "recruiter@example.com" {
				t.Errorf("recruiterEmail = %q", recruiterEmail)
			}
			if numSlots != 3 || searchDaysAhead != 14 {
				t.Errorf("numSlots = %d, searchDaysAhead = %d", numSlots, searchDaysAhead)
			}
			return availability.ProposedSlots{
				Slots:     []models.CandidateSlot{slot},
				Formatted: "- Monday, March 10th at 10:00 AM - 10:45 AM",
			}, nil
		},
	}
	h := NewAvailabilityHandler(svc, nil, nil, 0, 3, 14)

	r := gin.New()
	r.POST("/available-slots", h.AvailableSlotsHandler)

	w := performJSON(t, r, http.MethodPost, "/available-slots", gin.H{"userEmail": "recruiter@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		AvailableSlots string                 `json:"availableSlots"`
		Slots          []models.CandidateSlot `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Slots) != 1 || resp.AvailableSlots == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAvailableSlotsHandlerRejectsBadEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(&fakeAvailabilityService{}, nil, nil, 0, 3, 14)

	r := gin.New()
	r.POST("/available-slots", h.AvailableSlotsHandler)

	w := performJSON(t, r, http.MethodPost, "/available-slots", gin.H{"userEmail": "not-an-email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestValidateSlotHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeAvailabilityService{
		checkSlot: func(ctx context.Context, recruiterEmail string, proposed models.TimeInterval) (bool, error) {
			if proposed.Start.Hour() != 10 || proposed.End.Minute() != 45 {
				t.Errorf("parsed interval wrong: %v", proposed)
			}
			return true, nil
		},
	}
	h := NewAvailabilityHandler(svc, nil, nil, 0, 3, 14)

	r := gin.New()
	r.POST("/validate-slot", h.ValidateSlotHandler)

	w := performJSON(t, r, http.MethodPost, "/validate-slot", gin.H{
		"userEmail": "recruiter@example.com",
		"startTime": "2025-03-10T10:00:00",
		"endTime":   "2025-03-10T10:45:00",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Valid {
		t.Errorf("expected valid = true")
	}
}

func TestValidateSlotHandlerInvertedRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(&fakeAvailabilityService{}, nil, nil, 0, 3, 14)

	r := gin.New()
	r.POST("/validate-slot", h.ValidateSlotHandler)

	w := performJSON(t, r, http.MethodPost, "/validate-slot", gin.H{
		"userEmail": "recruiter@example.com",
		"startTime": "2025-03-10T11:00:00",
		"endTime":   "2025-03-10T10:00:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestNextSlotHandlerNoSlot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeAvailabilityService{
		nextSlot: func(ctx context.Context, recruiterEmail string, from time.Time, maxDaysAhead int) (*models.CandidateSlot, error) {
			return nil, nil
		},
	}
	h := NewAvailabilityHandler(svc, nil, nil, 0, 3, 14)

	r := gin.New()
	r.GET("/next-slot", h.NextSlotHandler)

	req := httptest.NewRequest(http.MethodGet, "/next-slot?userEmail=recruiter@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != availability.NoSlotsMessage {
		t.Errorf("message = %q", resp.Message)
	}
}
