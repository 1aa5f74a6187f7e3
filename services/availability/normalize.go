package availability

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"talentflow/models"
	"talentflow/utils"
)

// Timestamp layouts the calendar backend is known to emit. Offsets are
// accepted during parsing but discarded afterwards: every timestamp is
// reinterpreted as local wall-clock time. That assumption (recruiter,
// candidate and server share a timezone) is inherited behaviour; revisit it
// before serving recruiters across zones.
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseBusyIntervals converts raw calendar events into busy intervals.
// Malformed events are skipped with a warning rather than failing the whole
// query; a few bad calendar entries must not blank out a day's availability.
// Output order is arbitrary; callers sort before use.
func ParseBusyIntervals(events []models.CalendarEvent) []models.BusyInterval {
	logger := utils.GetLogger()

	busy := make([]models.BusyInterval, 0, len(events))
	for _, ev := range events {
		start, err := parseEventTime(ev.StartTime)
		if err != nil {
			logger.Warn("skipping event with unparsable start time",
				zap.String("eventId", ev.EventID),
				zap.String("startTime", ev.StartTime),
				zap.Error(err))
			continue
		}
		end, err := parseEventTime(ev.EndTime)
		if err != nil {
			logger.Warn("skipping event with unparsable end time",
				zap.String("eventId", ev.EventID),
				zap.String("endTime", ev.EndTime),
				zap.Error(err))
			continue
		}
		interval, err := models.NewTimeInterval(start, end)
		if err != nil {
			logger.Warn("skipping event with inverted time range",
				zap.String("eventId", ev.EventID),
				zap.Time("start", start),
				zap.Time("end", end))
			continue
		}
		busy = append(busy, interval)
	}
	return busy
}

// ParseTimestamp parses an ISO-8601 timestamp the way the normalizer does:
// any offset is discarded and the wall-clock reading is kept, local.
func ParseTimestamp(s string) (time.Time, error) {
	return parseEventTime(s)
}

func parseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Keep the wall-clock reading, drop the offset.
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
