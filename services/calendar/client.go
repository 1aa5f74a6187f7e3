package calendar

import (
	"context"
	"time"

	"talentflow/models"
)

// Client is the calendar collaborator the availability engine consumes. The
// engine only ever reads busy events and books interviews through this
// boundary; any retry or timeout policy lives behind it.
type Client interface {
	// FetchEvents returns the raw events on the user's calendar between
	// start and end. A failed call is the caller's problem; malformed
	// individual events are tolerated downstream by the normalizer.
	FetchEvents(ctx context.Context, userEmail string, start, end time.Time) ([]models.CalendarEvent, error)

	// ScheduleInterview creates the interview event on the recruiter's
	// calendar and invites the candidate and interviewers.
	ScheduleInterview(ctx context.Context, req models.ScheduleInterviewRequest) (models.ScheduleInterviewResult, error)
}
