package availability

import (
	"fmt"
	"strings"

	"talentflow/models"
)

// NoSlotsMessage is the human-readable rendering of an empty result.
const NoSlotsMessage = "No available time slots found in recruiter's calendar"

// FormatSlotsForEmail renders slots as email-ready lines, one per slot:
//
//	- Monday, December 2nd at 10:00 AM - 10:45 AM
//	- Wednesday, December 4th at 2:00 PM - 2:45 PM
func FormatSlotsForEmail(slots []models.CandidateSlot) string {
	lines := make([]string, 0, len(slots))
	for _, slot := range slots {
		lines = append(lines, fmt.Sprintf("- %s, %s %d%s at %s - %s",
			slot.Start.Weekday(),
			slot.Start.Month(),
			slot.Start.Day(),
			ordinalSuffix(slot.Start.Day()),
			slot.Start.Format("3:04 PM"),
			slot.End.Format("3:04 PM"),
		))
	}
	return strings.Join(lines, "\n")
}

// ordinalSuffix follows English day-of-month rules: the teens always take
// "th" (11th, 12th, 13th), everything else goes by the last digit.
func ordinalSuffix(day int) string {
	if rem := day % 100; rem >= 10 && rem <= 20 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
