package availability

import (
	"testing"
	"time"

	"talentflow/models"
)

func TestParseBusyIntervalsSkipsMalformed(t *testing.T) {
	events := []models.CalendarEvent{
		{EventID: "ok-1", StartTime: "2025-03-10T10:00:00", EndTime: "2025-03-10T11:00:00"},
		{EventID: "bad-ts", StartTime: "not a timestamp", EndTime: "2025-03-10T12:00:00"},
		{EventID: "inverted", StartTime: "2025-03-10T15:00:00", EndTime: "2025-03-10T14:00:00"},
		{EventID: "ok-2", StartTime: "2025-03-10T16:00:00", EndTime: "2025-03-10T16:30:00"},
	}

	busy := ParseBusyIntervals(events)
	if len(busy) != 2 {
		t.Fatalf("got %d intervals, want 2: %v", len(busy), busy)
	}
	if busy[0].Start.Hour() != 10 || busy[1].Start.Hour() != 16 {
		t.Errorf("surviving intervals wrong: %v", busy)
	}
}

func TestParseBusyIntervalsStillFeedsGenerator(t *testing.T) {
	events := []models.CalendarEvent{
		{EventID: "bad", StartTime: "garbage", EndTime: "2025-03-10T12:00:00"},
		{EventID: "ok", StartTime: "2025-03-10T11:00:00", EndTime: "2025-03-10T12:00:00"},
	}

	busy := ParseBusyIntervals(events)
	got := SlotsForDay(testDay, busy, models.DefaultAvailabilityConstraints())

	// The surviving 11:00-12:00 event must still block the late morning.
	for _, slot := range got {
		if slot.Overlaps(busy[0]) {
			t.Errorf("slot %v overlaps surviving busy interval", slot)
		}
	}
	if len(got) == 0 {
		t.Fatalf("expected slots despite one malformed event")
	}
}

func TestParseTimestampDiscardsOffset(t *testing.T) {
	got, err := ParseTimestamp("2025-03-10T10:00:00+05:30")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	want := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want wall clock kept local %v", got, want)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	for _, s := range []string{
		"2025-03-10T10:00:00Z",
		"2025-03-10T10:00:00.123456789",
		"2025-03-10T10:00:00",
	} {
		got, err := ParseTimestamp(s)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", s, err)
			continue
		}
		if got.Hour() != 10 || got.Minute() != 0 {
			t.Errorf("ParseTimestamp(%q) = %v, want 10:00 wall clock", s, got)
		}
	}

	if _, err := ParseTimestamp("10/03/2025 10:00"); err == nil {
		t.Errorf("expected error for unsupported layout")
	}
}
