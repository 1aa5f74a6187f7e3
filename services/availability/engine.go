package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"talentflow/models"
	"talentflow/services/calendar"
	"talentflow/utils"
)

// DefaultAvailabilityEngine is the production availability engine. All state
// is configuration; computations are pure over the fetched calendar events,
// so concurrent queries for the same or different recruiters are independent.
type DefaultAvailabilityEngine struct {
	Calendar    calendar.Client
	Constraints models.AvailabilityConstraints

	// Cache is optional; when set, computed ranges are cached under a
	// recruiter+range key for CacheTTL.
	Cache    *redis.Client
	CacheTTL time.Duration

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultAvailabilityEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// AvailableSlots fetches busy events once for the whole inclusive range,
// partitions them by calendar date and runs the daily generator per date.
func (e *DefaultAvailabilityEngine) AvailableSlots(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	cacheKey := fmt.Sprintf("availability:%s:%s:%s", recruiterEmail, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if e.Cache != nil {
		if data, err := e.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.AvailabilityResult
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				logger.Debug("availability served from cache", zap.String("key", cacheKey))
				return cached, nil
			}
		}
	}

	events, err := e.Calendar.FetchEvents(ctx, recruiterEmail, startDate, endDate)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to fetch calendar events for %s: %w", recruiterEmail, err)
	}

	busyByDate := map[string][]models.BusyInterval{}
	for _, b := range ParseBusyIntervals(events) {
		busyByDate[b.Date()] = append(busyByDate[b.Date()], b)
	}

	var result models.AvailabilityResult
	last := midnightOf(endDate)
	for d := midnightOf(startDate); !d.After(last); d = d.AddDate(0, 0, 1) {
		daySlots := SlotsForDay(d, busyByDate[d.Format("2006-01-02")], e.Constraints)
		if len(daySlots) > 0 {
			result.Days = append(result.Days, models.DayAvailability{
				Date:  d.Format("2006-01-02"),
				Slots: daySlots,
			})
		}
	}

	logger.Info("computed availability",
		zap.String("recruiterEmail", recruiterEmail),
		zap.Int("totalSlots", result.TotalSlots()),
		zap.Int("daysWithSlots", len(result.Days)))

	if e.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := e.Cache.Set(ctx, cacheKey, data, e.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return result, nil
}

// ProposeSlots picks a diverse selection from the search window starting
// tomorrow and renders it for a candidate email.
func (e *DefaultAvailabilityEngine) ProposeSlots(ctx context.Context, recruiterEmail string, numSlots, searchDaysAhead int) (ProposedSlots, error) {
	start := e.now().AddDate(0, 0, 1)
	end := start.AddDate(0, 0, searchDaysAhead)

	result, err := e.AvailableSlots(ctx, recruiterEmail, start, end)
	if err != nil {
		return ProposedSlots{}, err
	}

	all := result.AllSlots()
	if len(all) == 0 {
		utils.GetLogger().Warn("no available slots found", zap.String("recruiterEmail", recruiterEmail))
		return ProposedSlots{Formatted: NoSlotsMessage}, nil
	}

	selected := SelectDiverseSlots(all, numSlots)
	return ProposedSlots{
		Slots:     selected,
		Formatted: FormatSlotsForEmail(selected),
	}, nil
}

// NextAvailableSlot scans forward from the given day for the earliest slot.
func (e *DefaultAvailabilityEngine) NextAvailableSlot(ctx context.Context, recruiterEmail string, from time.Time, maxDaysAhead int) (*models.CandidateSlot, error) {
	if from.IsZero() {
		from = midnightOf(e.now().AddDate(0, 0, 1))
	}
	end := from.AddDate(0, 0, maxDaysAhead)

	result, err := e.AvailableSlots(ctx, recruiterEmail, from, end)
	if err != nil {
		return nil, err
	}
	if slot, ok := result.Earliest(); ok {
		return &slot, nil
	}
	return nil, nil
}

// Summary aggregates availability statistics for reporting.
func (e *DefaultAvailabilityEngine) Summary(ctx context.Context, recruiterEmail string, startDate, endDate time.Time) (models.AvailabilitySummary, error) {
	result, err := e.AvailableSlots(ctx, recruiterEmail, startDate, endDate)
	if err != nil {
		return models.AvailabilitySummary{}, err
	}

	byDate := make(map[string][]string, len(result.Days))
	for _, day := range result.Days {
		rendered := make([]string, 0, len(day.Slots))
		for _, slot := range day.Slots {
			rendered = append(rendered, slot.String())
		}
		byDate[day.Date] = rendered
	}

	c := e.Constraints
	return models.AvailabilitySummary{
		RecruiterEmail:       recruiterEmail,
		PeriodStart:          startDate.Format(time.RFC3339),
		PeriodEnd:            endDate.Format(time.RFC3339),
		TotalAvailableSlots:  result.TotalSlots(),
		DaysWithAvailability: len(result.Days),
		SlotsByDate:          byDate,
		Constraints: models.SummaryConstraints{
			EarliestMeeting:         c.EarliestMeetingTime.String(),
			LatestMeetingEnd:        c.LatestMeetingEnd.String(),
			LunchBreak:              fmt.Sprintf("%s - %s", c.LunchBreakStart, c.LunchBreakEnd),
			MeetingDurationMinutes:  c.MeetingDurationMinutes,
			MinBreakBetweenMeetings: c.MinBreakBetweenMeetings,
			MaxMeetingsPerDay:       c.MaxMeetingsPerDay,
		},
	}, nil
}

// CheckSlot validates one proposed slot against the recruiter's calendar for
// that slot's day. A cached range is never consulted; validation always sees
// fresh events.
func (e *DefaultAvailabilityEngine) CheckSlot(ctx context.Context, recruiterEmail string, proposed models.TimeInterval) (bool, error) {
	dayStart := midnightOf(proposed.Start)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := e.Calendar.FetchEvents(ctx, recruiterEmail, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("failed to fetch calendar events for %s: %w", recruiterEmail, err)
	}

	busy := ParseBusyIntervals(events)
	for _, b := range busy {
		if proposed.Overlaps(b) {
			return false, nil
		}
	}
	return SlotMeetsConstraints(proposed, busy, e.Constraints), nil
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var _ Service = (*DefaultAvailabilityEngine)(nil)
