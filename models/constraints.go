package models

import (
	"fmt"
	"time"
)

// ClockTime is a naive wall-clock time of day. No date, no zone.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockTimeOf extracts the wall-clock time of day of an instant.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.Hour < other.Hour || (c.Hour == other.Hour && c.Minute < other.Minute)
}

func (c ClockTime) After(other ClockTime) bool {
	return other.Before(c)
}

// On anchors the clock time to a calendar date in the date's location.
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// AvailabilityConstraints are the scheduling rules applied when deriving
// bookable interview slots from a recruiter's calendar. Passed explicitly to
// every computation; the engine keeps no hidden state.
type AvailabilityConstraints struct {
	// Working hours.
	EarliestMeetingTime ClockTime
	LatestMeetingEnd    ClockTime

	// Daily lunch blackout.
	LunchBreakStart ClockTime
	LunchBreakEnd   ClockTime

	// Meeting constraints.
	MeetingDurationMinutes  int
	MinBreakBetweenMeetings int
	MaxMeetingsPerDay       int

	// Time reserved before a meeting to prepare. Carried through for
	// reporting; the generator does not enforce it.
	SetupTimeMinutes int
}

// DefaultAvailabilityConstraints returns the standard recruiter working
// pattern: 10:00-18:00 with a 13:00-14:00 lunch, 45-minute interviews,
// 5-minute breaks, at most 4 interviews a day.
func DefaultAvailabilityConstraints() AvailabilityConstraints {
	return AvailabilityConstraints{
		EarliestMeetingTime:     ClockTime{Hour: 10},
		LatestMeetingEnd:        ClockTime{Hour: 18},
		LunchBreakStart:         ClockTime{Hour: 13},
		LunchBreakEnd:           ClockTime{Hour: 14},
		MeetingDurationMinutes:  45,
		MinBreakBetweenMeetings: 5,
		MaxMeetingsPerDay:       4,
		SetupTimeMinutes:        5,
	}
}

// MeetingDuration returns the slot length as a time.Duration.
func (c AvailabilityConstraints) MeetingDuration() time.Duration {
	return time.Duration(c.MeetingDurationMinutes) * time.Minute
}

// MinBreak returns the minimum gap after a busy or generated interval.
func (c AvailabilityConstraints) MinBreak() time.Duration {
	return time.Duration(c.MinBreakBetweenMeetings) * time.Minute
}
