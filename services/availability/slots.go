package availability

import (
	"sort"
	"time"

	"talentflow/models"
)

// SlotsForDay derives every bookable interview slot on one calendar date
// from that day's busy intervals and the scheduling constraints. Pure and
// deterministic: identical inputs yield identical ordered output.
//
// The walk injects the lunch break as a synthetic busy interval, sorts all
// busy intervals by start, and sweeps a cursor across the working-hour
// window, filling each free gap with fixed-duration slots. Overlapping busy
// intervals are treated independently in sort order; the gap check keeps the
// result conservative.
func SlotsForDay(date time.Time, busy []models.BusyInterval, c models.AvailabilityConstraints) []models.CandidateSlot {
	dayStart := c.EarliestMeetingTime.On(date)
	dayEnd := c.LatestMeetingEnd.On(date)
	lunch := models.BusyInterval{Start: c.LunchBreakStart.On(date), End: c.LunchBreakEnd.On(date)}

	all := make([]models.BusyInterval, 0, len(busy)+1)
	all = append(all, busy...)
	all = append(all, lunch)
	sort.Slice(all, func(i, j int) bool { return all[i].Start.Before(all[j].Start) })

	var slots []models.CandidateSlot
	cursor := dayStart

	for _, b := range all {
		if cursor.Before(b.Start) {
			slots = append(slots, slotsInWindow(cursor, b.Start, c)...)
		}
		if isLunch(b, lunch) {
			// Lunch is a blackout, not a meeting: no recovery break after it.
			cursor = b.End
		} else {
			cursor = b.End.Add(c.MinBreak())
		}
	}

	if cursor.Before(dayEnd) {
		slots = append(slots, slotsInWindow(cursor, dayEnd, c)...)
	}

	if c.MaxMeetingsPerDay > 0 && len(slots) > c.MaxMeetingsPerDay {
		slots = slots[:c.MaxMeetingsPerDay]
	}
	return slots
}

// slotsInWindow proposes fixed-duration slots inside the free window
// [windowStart, windowEnd). A proposal that straddles a lunch boundary is
// discarded but the walk still advances past it.
func slotsInWindow(windowStart, windowEnd time.Time, c models.AvailabilityConstraints) []models.CandidateSlot {
	var slots []models.CandidateSlot
	cur := windowStart

	for {
		end := cur.Add(c.MeetingDuration())

		// Guard against windows running past the working day, including
		// ones produced near the date boundary.
		if end.After(c.LatestMeetingEnd.On(end)) {
			break
		}
		if end.After(windowEnd) {
			break
		}

		slot := models.CandidateSlot{Start: cur, End: end}
		if !slot.ContainsClock(c.LunchBreakStart) && !slot.ContainsClock(c.LunchBreakEnd) {
			slots = append(slots, slot)
		}

		cur = end.Add(c.MinBreak())
	}
	return slots
}

func isLunch(b, lunch models.BusyInterval) bool {
	return b.Start.Equal(lunch.Start) && b.End.Equal(lunch.End)
}
