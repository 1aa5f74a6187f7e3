package availability

import (
	"sort"

	"talentflow/models"
)

// Time-of-day buckets used to spread proposals. Slots outside every bucket
// are skipped by the diversity passes but stay eligible as filler.
const (
	bucketMorning   = "morning"   // [10:00, 12:00)
	bucketMidday    = "midday"    // [12:00, 16:00)
	bucketAfternoon = "afternoon" // [16:00, 18:00)
	bucketOther     = "other"
)

func classifyTimeOfDay(slot models.CandidateSlot) string {
	switch hour := slot.Start.Hour(); {
	case hour >= 10 && hour < 12:
		return bucketMorning
	case hour >= 12 && hour < 16:
		return bucketMidday
	case hour >= 16 && hour < 18:
		return bucketAfternoon
	default:
		return bucketOther
	}
}

// SelectDiverseSlots picks at most numSlots from the chronologically sorted
// candidates, spreading them across times of day and, where possible,
// distinct dates. Three morning options on one day make a worse candidate
// experience than a varied spread.
//
// Deterministic: ties always resolve to the first slot encountered in the
// sorted input.
func SelectDiverseSlots(allSlots []models.CandidateSlot, numSlots int) []models.CandidateSlot {
	if len(allSlots) <= numSlots {
		return allSlots
	}

	buckets := map[string][]models.CandidateSlot{}
	for _, slot := range allSlots {
		key := classifyTimeOfDay(slot)
		if key != bucketOther {
			buckets[key] = append(buckets[key], slot)
		}
	}

	var selected []models.CandidateSlot
	usedDates := map[string]bool{}

	// One slot per bucket, each on a date not used yet.
	for _, key := range []string{bucketMorning, bucketMidday, bucketAfternoon} {
		if len(selected) >= numSlots {
			break
		}
		for _, slot := range buckets[key] {
			if !usedDates[slot.Date()] {
				selected = append(selected, slot)
				usedDates[slot.Date()] = true
				break
			}
		}
	}

	// Top up with any slot on a still-unused date.
	if len(selected) < numSlots {
		for _, slot := range allSlots {
			if len(selected) >= numSlots {
				break
			}
			if !usedDates[slot.Date()] {
				selected = append(selected, slot)
				usedDates[slot.Date()] = true
			}
		}
	}

	// Still short: allow repeat dates, just avoid duplicate slots.
	if len(selected) < numSlots {
		for _, slot := range allSlots {
			if len(selected) >= numSlots {
				break
			}
			if !containsSlot(selected, slot) {
				selected = append(selected, slot)
			}
		}
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].Start.Before(selected[j].Start) })
	if len(selected) > numSlots {
		selected = selected[:numSlots]
	}
	return selected
}

func containsSlot(slots []models.CandidateSlot, s models.CandidateSlot) bool {
	for _, existing := range slots {
		if existing.Start.Equal(s.Start) && existing.End.Equal(s.End) {
			return true
		}
	}
	return false
}
