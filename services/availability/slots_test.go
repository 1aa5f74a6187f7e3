package availability

import (
	"testing"
	"time"

	"talentflow/models"
)

var testDay = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)

func slotAt(t *testing.T, day time.Time, startH, startM, endH, endM int) models.TimeInterval {
	t.Helper()
	iv, err := models.NewTimeInterval(
		time.Date(day.Year(), day.Month(), day.Day(), startH, startM, 0, 0, time.Local),
		time.Date(day.Year(), day.Month(), day.Day(), endH, endM, 0, 0, time.Local),
	)
	if err != nil {
		t.Fatalf("bad test interval: %v", err)
	}
	return iv
}

func assertSlots(t *testing.T, got []models.CandidateSlot, want []models.TimeInterval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("slot %d = %v - %v, want %v - %v",
				i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}

func TestSlotsForDayEmptyCalendar(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	got := SlotsForDay(testDay, nil, c)

	assertSlots(t, got, []models.TimeInterval{
		slotAt(t, testDay, 10, 0, 10, 45),
		slotAt(t, testDay, 10, 50, 11, 35),
		slotAt(t, testDay, 11, 40, 12, 25),
		slotAt(t, testDay, 14, 0, 14, 45),
	})
}

func TestSlotsForDaySingleBusyBlock(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	busy := []models.BusyInterval{slotAt(t, testDay, 11, 0, 12, 0)}

	got := SlotsForDay(testDay, busy, c)

	assertSlots(t, got, []models.TimeInterval{
		slotAt(t, testDay, 10, 0, 10, 45),
		slotAt(t, testDay, 12, 5, 12, 50),
		slotAt(t, testDay, 14, 0, 14, 45),
		slotAt(t, testDay, 14, 50, 15, 35),
	})
}

func TestSlotsForDayFullyBusy(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	busy := []models.BusyInterval{slotAt(t, testDay, 9, 0, 19, 0)}

	if got := SlotsForDay(testDay, busy, c); len(got) != 0 {
		t.Errorf("expected no slots on a fully busy day, got %v", got)
	}
}

func TestSlotsForDayUnsortedBusyInput(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	sorted := []models.BusyInterval{
		slotAt(t, testDay, 10, 30, 11, 0),
		slotAt(t, testDay, 15, 0, 15, 30),
	}
	shuffled := []models.BusyInterval{sorted[1], sorted[0]}

	assertSlots(t, SlotsForDay(testDay, shuffled, c), SlotsForDay(testDay, sorted, c))
}

func TestSlotsForDayProperties(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	busy := []models.BusyInterval{
		slotAt(t, testDay, 10, 20, 10, 50),
		slotAt(t, testDay, 12, 0, 12, 30),
		slotAt(t, testDay, 16, 15, 16, 45),
	}

	got := SlotsForDay(testDay, busy, c)
	if len(got) == 0 {
		t.Fatalf("expected slots on a lightly-booked day")
	}
	if len(got) > c.MaxMeetingsPerDay {
		t.Errorf("got %d slots, cap is %d", len(got), c.MaxMeetingsPerDay)
	}

	dayStart := c.EarliestMeetingTime.On(testDay)
	dayEnd := c.LatestMeetingEnd.On(testDay)
	lunch := models.TimeInterval{Start: c.LunchBreakStart.On(testDay), End: c.LunchBreakEnd.On(testDay)}

	for i, slot := range got {
		if slot.Duration() != c.MeetingDuration() {
			t.Errorf("slot %d duration = %v, want %v", i, slot.Duration(), c.MeetingDuration())
		}
		if slot.Start.Before(dayStart) || slot.End.After(dayEnd) {
			t.Errorf("slot %d %v outside working hours", i, slot)
		}
		if slot.Overlaps(lunch) {
			t.Errorf("slot %d %v overlaps lunch", i, slot)
		}
		for _, b := range busy {
			if slot.Overlaps(b) {
				t.Errorf("slot %d %v overlaps busy interval %v", i, slot, b)
			}
		}
		if i > 0 {
			if gap := slot.Start.Sub(got[i-1].End); gap < 0 {
				t.Errorf("slots %d and %d out of order or overlapping", i-1, i)
			}
		}
	}
}

func TestSlotsForDayDeterministic(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	busy := []models.BusyInterval{slotAt(t, testDay, 11, 0, 12, 0)}

	first := SlotsForDay(testDay, busy, c)
	second := SlotsForDay(testDay, busy, c)
	assertSlots(t, second, first)
}

func TestSlotsForDayBusyOutsideWorkingHours(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	// An early-morning event must not eat into the working window.
	busy := []models.BusyInterval{slotAt(t, testDay, 7, 0, 8, 0)}

	got := SlotsForDay(testDay, busy, c)
	if len(got) == 0 || !got[0].Start.Equal(c.EarliestMeetingTime.On(testDay)) {
		t.Errorf("first slot should start at working-day open, got %v", got)
	}
}

func TestSlotsForDayNoCapWhenZero(t *testing.T) {
	c := models.DefaultAvailabilityConstraints()
	c.MaxMeetingsPerDay = 0

	got := SlotsForDay(testDay, nil, c)
	if len(got) <= 4 {
		t.Errorf("uncapped day should yield more than 4 slots, got %d", len(got))
	}
}
