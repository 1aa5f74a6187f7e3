package models

// CalendarEvent is the raw event record the calendar collaborator returns.
// Start and end are ISO-8601 timestamp strings, possibly UTC-suffixed; the
// normalizer is responsible for turning them into intervals.
type CalendarEvent struct {
	Summary   string   `json:"summary"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Location  string   `json:"location,omitempty"`
	Attendees []string `json:"attendees,omitempty"`
	EventID   string   `json:"eventId"`
	Link      string   `json:"link,omitempty"`
}

// ScheduleInterviewRequest carries everything needed to put an interview on
// the recruiter's calendar.
type ScheduleInterviewRequest struct {
	UserEmail         string   `json:"userEmail" binding:"required,email"`
	CandidateName     string   `json:"candidateName" binding:"required"`
	CandidateEmail    string   `json:"candidateEmail" binding:"required,email"`
	Position          string   `json:"position" binding:"required"`
	StartTime         string   `json:"startTime" binding:"required"`
	EndTime           string   `json:"endTime" binding:"required"`
	Timezone          string   `json:"timezone"`
	Location          string   `json:"location,omitempty"`
	InterviewerEmails []string `json:"interviewerEmails,omitempty"`
	AddGoogleMeet     *bool    `json:"addGoogleMeet,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// ScheduleInterviewResult reports the created calendar event.
type ScheduleInterviewResult struct {
	EventID        string   `json:"eventId"`
	EventLink      string   `json:"eventLink"`
	Summary        string   `json:"summary"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Attendees      []string `json:"attendees"`
	GoogleMeetLink string   `json:"googleMeetLink,omitempty"`
}
