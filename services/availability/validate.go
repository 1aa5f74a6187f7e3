package availability

import (
	"time"

	"talentflow/models"
)

// SlotMeetsConstraints checks one proposed slot against the scheduling rules
// given the busy intervals already on that slot's date. Overlap with busy
// intervals is checked separately; this covers the constraint set:
// working hours, lunch boundaries, exact duration, the per-day cap and the
// minimum break on both sides of every existing interval.
func SlotMeetsConstraints(slot models.TimeInterval, existing []models.BusyInterval, c models.AvailabilityConstraints) bool {
	if models.ClockTimeOf(slot.Start).Before(c.EarliestMeetingTime) {
		return false
	}
	if models.ClockTimeOf(slot.End).After(c.LatestMeetingEnd) {
		return false
	}

	if slot.ContainsClock(c.LunchBreakStart) || slot.ContainsClock(c.LunchBreakEnd) {
		return false
	}

	// Duration must match the configured length; anything a full minute or
	// more off is rejected, sub-minute jitter is tolerated.
	diff := slot.Duration() - c.MeetingDuration()
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Minute {
		return false
	}

	sameDay := make([]models.BusyInterval, 0, len(existing))
	for _, b := range existing {
		if b.Date() == slot.Date() {
			sameDay = append(sameDay, b)
		}
	}

	if len(sameDay) >= c.MaxMeetingsPerDay {
		return false
	}

	for _, b := range sameDay {
		var gap time.Duration
		if !slot.Start.Before(b.End) {
			// b precedes the slot.
			gap = slot.Start.Sub(b.End)
		} else {
			// The slot precedes b; overlapping intervals yield a negative
			// gap and fail the same check.
			gap = b.Start.Sub(slot.End)
		}
		if gap < c.MinBreak() {
			return false
		}
	}

	return true
}
