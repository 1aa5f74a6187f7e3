package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned when an interval would start at or after its end.
var ErrInvalidInterval = errors.New("interval start must be before end")

// TimeInterval is a half-open time range [Start, End). The start instant is
// included, the end instant is not, so two adjacent intervals never overlap.
// Values are immutable once constructed.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeInterval builds an interval, rejecting start >= end.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: start=%s end=%s", ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share any instant. Touching
// endpoints do not count: a meeting may end exactly when the next one starts.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// ContainsInstant reports whether t falls inside the interval (half-open).
func (iv TimeInterval) ContainsInstant(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// ContainsClock reports whether a wall-clock time of day falls inside the
// interval's own wall-clock range. Used for the lunch boundary checks.
func (iv TimeInterval) ContainsClock(c ClockTime) bool {
	start := ClockTimeOf(iv.Start)
	end := ClockTimeOf(iv.End)
	return !c.Before(start) && c.Before(end)
}

// Duration returns End - Start.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Date returns the calendar date the interval starts on, formatted 2006-01-02.
func (iv TimeInterval) Date() string {
	return iv.Start.Format("2006-01-02")
}

func (iv TimeInterval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format("3:04 PM"), iv.End.Format("3:04 PM"))
}

// BusyInterval is a time range during which the recruiter is already
// committed: a calendar event, or the synthetic lunch block the generator
// injects.
type BusyInterval = TimeInterval

// CandidateSlot is a generated, constraint-satisfying interval of exactly the
// configured meeting duration. Equality is structural (same start and end).
type CandidateSlot = TimeInterval
