package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"talentflow/models"
	"talentflow/utils"
)

// GoogleClient talks to the Google Calendar API. The service account (or
// ambient credentials) must have domain-wide access to the recruiters'
// calendars.
type GoogleClient struct {
	svc *gcal.Service
}

// NewGoogleClient builds a client; credentialsFile may be empty to use
// application default credentials.
func NewGoogleClient(ctx context.Context, credentialsFile string) (*GoogleClient, error) {
	opts := []option.ClientOption{option.WithScopes(gcal.CalendarScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleClient{svc: svc}, nil
}

// FetchEvents lists the user's events in [start, end], expanded to single
// events and ordered by start time.
func (g *GoogleClient) FetchEvents(ctx context.Context, userEmail string, start, end time.Time) ([]models.CalendarEvent, error) {
	logger := utils.GetLogger()

	call := g.svc.Events.List(userEmail).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	var out []models.CalendarEvent
	pageToken := ""
	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events for %s: %w", userEmail, err)
		}
		for _, item := range resp.Items {
			out = append(out, toCalendarEvent(item))
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	logger.Debug("fetched calendar events",
		zap.String("userEmail", userEmail),
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("count", len(out)))
	return out, nil
}

func toCalendarEvent(item *gcal.Event) models.CalendarEvent {
	ev := models.CalendarEvent{
		Summary:  item.Summary,
		EventID:  item.Id,
		Location: item.Location,
		Link:     item.HtmlLink,
	}
	if item.Start != nil {
		ev.StartTime = item.Start.DateTime
		if ev.StartTime == "" {
			ev.StartTime = item.Start.Date
		}
	}
	if item.End != nil {
		ev.EndTime = item.End.DateTime
		if ev.EndTime == "" {
			ev.EndTime = item.End.Date
		}
	}
	for _, att := range item.Attendees {
		if att != nil && att.Email != "" {
			ev.Attendees = append(ev.Attendees, att.Email)
		}
	}
	return ev
}

// ScheduleInterview creates the interview event, inviting the candidate and
// any extra interviewers, optionally with a Google Meet room attached.
func (g *GoogleClient) ScheduleInterview(ctx context.Context, req models.ScheduleInterviewRequest) (models.ScheduleInterviewResult, error) {
	logger := utils.GetLogger()

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	attendees := []*gcal.EventAttendee{{Email: req.CandidateEmail}}
	attendeeEmails := []string{req.CandidateEmail}
	for _, email := range req.InterviewerEmails {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
		attendeeEmails = append(attendeeEmails, email)
	}

	description := fmt.Sprintf("Interview for position: %s\nCandidate: %s", req.Position, req.CandidateName)
	if req.Description != "" {
		description += "\n\n" + req.Description
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("Interview - %s for %s", req.CandidateName, req.Position),
		Description: description,
		Location:    req.Location,
		Start:       &gcal.EventDateTime{DateTime: req.StartTime, TimeZone: tz},
		End:         &gcal.EventDateTime{DateTime: req.EndTime, TimeZone: tz},
		Attendees:   attendees,
	}

	insert := g.svc.Events.Insert(userCalendarID(req.UserEmail), event).
		SendUpdates("all").
		Context(ctx)

	addMeet := req.AddGoogleMeet == nil || *req.AddGoogleMeet
	if addMeet {
		event.ConferenceData = &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             uuid.New().String(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		}
		insert = insert.ConferenceDataVersion(1)
	}

	created, err := insert.Do()
	if err != nil {
		return models.ScheduleInterviewResult{}, fmt.Errorf("failed to create interview event: %w", err)
	}

	logger.Info("interview scheduled",
		zap.String("userEmail", req.UserEmail),
		zap.String("candidateEmail", req.CandidateEmail),
		zap.String("eventId", created.Id))

	result := models.ScheduleInterviewResult{
		EventID:        created.Id,
		EventLink:      created.HtmlLink,
		Summary:        created.Summary,
		Attendees:      attendeeEmails,
		GoogleMeetLink: created.HangoutLink,
	}
	if created.Start != nil {
		result.StartTime = created.Start.DateTime
	}
	if created.End != nil {
		result.EndTime = created.End.DateTime
	}
	return result, nil
}

// userCalendarID maps a recruiter email to their primary calendar.
func userCalendarID(email string) string {
	if email == "" {
		return "primary"
	}
	return email
}
