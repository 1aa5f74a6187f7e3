package availability

import (
	"context"
	"time"

	"talentflow/models"
)

// ProposedSlots is a diverse selection ready for a candidate email: the
// structured slots plus their formatted rendering.
type ProposedSlots struct {
	Slots     []models.CandidateSlot `json:"slots"`
	Formatted string                 `json:"formatted"`
}

// Service computes recruiter availability from calendar state. Every method
// is safe for concurrent use: the implementation holds only immutable
// configuration and stateless clients.
type Service interface {
	// AvailableSlots derives all bookable slots per day over the inclusive
	// date range. Days with zero slots are omitted; an empty result is a
	// normal outcome.
	AvailableSlots(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilityResult, error)

	// ProposeSlots selects a small, temporally spread set of slots from the
	// next searchDaysAhead days, starting tomorrow.
	ProposeSlots(ctx context.Context, recruiterEmail string, numSlots, searchDaysAhead int) (ProposedSlots, error)

	// NextAvailableSlot finds the earliest bookable slot from the given day
	// (tomorrow when zero). Nil means nothing is open in the window.
	NextAvailableSlot(ctx context.Context, recruiterEmail string, from time.Time, maxDaysAhead int) (*models.CandidateSlot, error)

	// Summary aggregates slot counts and per-day renderings for reporting.
	Summary(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilitySummary, error)

	// CheckSlot reports whether one specific proposed slot is currently
	// free and constraint-compliant. Never mutates calendar state.
	CheckSlot(ctx context.Context, recruiterEmail string, proposed models.TimeInterval) (bool, error)
}
