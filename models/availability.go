package models

// DayAvailability is one calendar date's bookable slots, chronological.
type DayAvailability struct {
	Date  string          `json:"date"` // 2006-01-02
	Slots []CandidateSlot `json:"slots"`
}

// AvailabilityResult maps calendar dates to their bookable slots. Days are
// kept in ascending date order and days with zero slots are omitted.
type AvailabilityResult struct {
	Days []DayAvailability `json:"days"`
}

// TotalSlots counts slots across all days.
func (r AvailabilityResult) TotalSlots() int {
	total := 0
	for _, day := range r.Days {
		total += len(day.Slots)
	}
	return total
}

// Earliest returns the first slot of the first non-empty day, or false when
// the result is empty. An empty result is a normal outcome, not an error.
func (r AvailabilityResult) Earliest() (CandidateSlot, bool) {
	for _, day := range r.Days {
		if len(day.Slots) > 0 {
			return day.Slots[0], true
		}
	}
	return CandidateSlot{}, false
}

// AllSlots flattens the result into a single chronological slice.
func (r AvailabilityResult) AllSlots() []CandidateSlot {
	out := make([]CandidateSlot, 0, r.TotalSlots())
	for _, day := range r.Days {
		out = append(out, day.Slots...)
	}
	return out
}

// AvailabilitySummary is the reporting aggregation over a search range.
type AvailabilitySummary struct {
	RecruiterEmail       string              `json:"recruiterEmail"`
	PeriodStart          string              `json:"periodStart"`
	PeriodEnd            string              `json:"periodEnd"`
	TotalAvailableSlots  int                 `json:"totalAvailableSlots"`
	DaysWithAvailability int                 `json:"daysWithAvailability"`
	SlotsByDate          map[string][]string `json:"availableSlotsByDate"`
	Constraints          SummaryConstraints  `json:"constraints"`
}

// SummaryConstraints echoes the constraint set a summary was computed under.
type SummaryConstraints struct {
	EarliestMeeting         string `json:"earliestMeeting"`
	LatestMeetingEnd        string `json:"latestMeetingEnd"`
	LunchBreak              string `json:"lunchBreak"`
	MeetingDurationMinutes  int    `json:"meetingDurationMinutes"`
	MinBreakBetweenMeetings int    `json:"minBreakBetweenMeetings"`
	MaxMeetingsPerDay       int    `json:"maxMeetingsPerDay"`
}
